package repository

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/internal/entity"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

type SellOfferRepository interface {
	Get(ctx context.Context, collection string, tokenID *uint256.Int) (*entity.SellOffer, error)
	Exists(ctx context.Context, collection string, tokenID *uint256.Int) (bool, error)
	Upsert(ctx context.Context, tokenID *uint256.Int, offer *entity.SellOffer) error
	Delete(ctx context.Context, collection string, tokenID *uint256.Int) error
}

type sellOfferRepository struct{}

func NewSellOfferRepository() *sellOfferRepository {
	return &sellOfferRepository{}
}

func (r *sellOfferRepository) Get(
	ctx context.Context, collection string, tokenID *uint256.Int,
) (*entity.SellOffer, error) {
	var result entity.SellOffer
	if err := getRecord(ctx, common.SellOfferKey(collection, tokenID), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *sellOfferRepository) Exists(ctx context.Context, collection string, tokenID *uint256.Int) (bool, error) {
	return xcontext.KV(ctx).Has(common.SellOfferKey(collection, tokenID))
}

func (r *sellOfferRepository) Upsert(ctx context.Context, tokenID *uint256.Int, offer *entity.SellOffer) error {
	return setRecord(ctx, common.SellOfferKey(offer.CollectionAddress, tokenID), offer)
}

func (r *sellOfferRepository) Delete(ctx context.Context, collection string, tokenID *uint256.Int) error {
	return xcontext.KV(ctx).Delete(common.SellOfferKey(collection, tokenID))
}
