package repository

import (
	"context"
	"errors"

	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/pkg/kvstore"
)

type MarketplaceSettingRepository interface {
	GetOwner(ctx context.Context) (string, error)
	SetOwner(ctx context.Context, owner string) error

	// GetFee returns zero if no fee was ever set.
	GetFee(ctx context.Context) (uint64, error)
	SetFee(ctx context.Context, fee uint64) error
}

type marketplaceSettingRepository struct{}

func NewMarketplaceSettingRepository() *marketplaceSettingRepository {
	return &marketplaceSettingRepository{}
}

func (r *marketplaceSettingRepository) GetOwner(ctx context.Context) (string, error) {
	return getString(ctx, common.MarketplaceOwnerKey)
}

func (r *marketplaceSettingRepository) SetOwner(ctx context.Context, owner string) error {
	return setString(ctx, common.MarketplaceOwnerKey, owner)
}

func (r *marketplaceSettingRepository) GetFee(ctx context.Context) (uint64, error) {
	fee, err := getUint64(ctx, common.MarketplaceFeeKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return 0, nil
	}

	return fee, err
}

func (r *marketplaceSettingRepository) SetFee(ctx context.Context, fee uint64) error {
	return setUint64(ctx, common.MarketplaceFeeKey, fee)
}
