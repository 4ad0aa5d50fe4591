package repository

import (
	"context"

	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/internal/entity"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

type CollectionRepository interface {
	Get(ctx context.Context, address string) (*entity.CollectionDetail, error)
	Exists(ctx context.Context, address string) (bool, error)
	Upsert(ctx context.Context, collection *entity.CollectionDetail) error
	Delete(ctx context.Context, address string) error
}

type collectionRepository struct{}

func NewCollectionRepository() *collectionRepository {
	return &collectionRepository{}
}

func (r *collectionRepository) Get(ctx context.Context, address string) (*entity.CollectionDetail, error) {
	var result entity.CollectionDetail
	if err := getRecord(ctx, common.CollectionKey(address), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *collectionRepository) Exists(ctx context.Context, address string) (bool, error) {
	return xcontext.KV(ctx).Has(common.CollectionKey(address))
}

func (r *collectionRepository) Upsert(ctx context.Context, collection *entity.CollectionDetail) error {
	return setRecord(ctx, common.CollectionKey(collection.Address), collection)
}

func (r *collectionRepository) Delete(ctx context.Context, address string) error {
	return xcontext.KV(ctx).Delete(common.CollectionKey(address))
}
