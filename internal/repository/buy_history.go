package repository

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/internal/entity"
)

type BuyHistoryRepository interface {
	Get(ctx context.Context, buyer, collection string, tokenID *uint256.Int) (*entity.BuyTokenOperation, error)

	// Upsert overwrites the previous record of the same buyer for this token.
	Upsert(ctx context.Context, tokenID *uint256.Int, op *entity.BuyTokenOperation) error
}

type buyHistoryRepository struct{}

func NewBuyHistoryRepository() *buyHistoryRepository {
	return &buyHistoryRepository{}
}

func (r *buyHistoryRepository) Get(
	ctx context.Context, buyer, collection string, tokenID *uint256.Int,
) (*entity.BuyTokenOperation, error) {
	var result entity.BuyTokenOperation
	if err := getRecord(ctx, common.BuyHistoryKey(buyer, collection, tokenID), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *buyHistoryRepository) Upsert(ctx context.Context, tokenID *uint256.Int, op *entity.BuyTokenOperation) error {
	return setRecord(ctx, common.BuyHistoryKey(op.Buyer, op.CollectionAddress, tokenID), op)
}
