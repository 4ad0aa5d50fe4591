package repository

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/questx-lab/marketplace/internal/common"
)

// NFTSetting holds the collection-wide state of a collection contract.
type NFTSetting struct {
	Name        string
	Symbol      string
	Owner       string
	BaseURI     string
	TokenURI    string
	TotalSupply *uint256.Int
	MintPrice   uint64
	StartTime   uint64
	Paused      bool
}

type NFTSettingRepository interface {
	Init(ctx context.Context, setting *NFTSetting) error
	Get(ctx context.Context) (*NFTSetting, error)

	GetOwner(ctx context.Context) (string, error)
	SetBaseURI(ctx context.Context, uri string) error
	SetTokenURI(ctx context.Context, uri string) error
	SetPaused(ctx context.Context, paused bool) error
	SetMintPrice(ctx context.Context, price uint64) error

	GetCounter(ctx context.Context) (*uint256.Int, error)
	SetCounter(ctx context.Context, counter *uint256.Int) error
}

type nftSettingRepository struct{}

func NewNFTSettingRepository() *nftSettingRepository {
	return &nftSettingRepository{}
}

// Init writes every setting and resets the mint counter.
func (r *nftSettingRepository) Init(ctx context.Context, s *NFTSetting) error {
	steps := []func() error{
		func() error { return setString(ctx, common.NFTNameKey, s.Name) },
		func() error { return setString(ctx, common.NFTSymbolKey, s.Symbol) },
		func() error { return setString(ctx, common.NFTOwnerKey, s.Owner) },
		func() error { return setString(ctx, common.NFTBaseURIKey, s.BaseURI) },
		func() error { return setString(ctx, common.NFTTokenURIKey, s.TokenURI) },
		func() error { return setUint256(ctx, common.NFTTotalSupplyKey, s.TotalSupply) },
		func() error { return setUint64(ctx, common.NFTMintPriceKey, s.MintPrice) },
		func() error { return setUint64(ctx, common.NFTStartTimeKey, s.StartTime) },
		func() error { return setBool(ctx, common.NFTMintPausedKey, s.Paused) },
		func() error { return setUint256(ctx, common.NFTCounterKey, uint256.NewInt(0)) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

func (r *nftSettingRepository) Get(ctx context.Context) (*NFTSetting, error) {
	var s NFTSetting
	var err error

	if s.Name, err = getString(ctx, common.NFTNameKey); err != nil {
		return nil, err
	}
	if s.Symbol, err = getString(ctx, common.NFTSymbolKey); err != nil {
		return nil, err
	}
	if s.Owner, err = getString(ctx, common.NFTOwnerKey); err != nil {
		return nil, err
	}
	if s.BaseURI, err = getString(ctx, common.NFTBaseURIKey); err != nil {
		return nil, err
	}
	if s.TokenURI, err = getString(ctx, common.NFTTokenURIKey); err != nil {
		return nil, err
	}
	if s.TotalSupply, err = getUint256(ctx, common.NFTTotalSupplyKey); err != nil {
		return nil, err
	}
	if s.MintPrice, err = getUint64(ctx, common.NFTMintPriceKey); err != nil {
		return nil, err
	}
	if s.StartTime, err = getUint64(ctx, common.NFTStartTimeKey); err != nil {
		return nil, err
	}
	if s.Paused, err = getBool(ctx, common.NFTMintPausedKey); err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *nftSettingRepository) GetOwner(ctx context.Context) (string, error) {
	return getString(ctx, common.NFTOwnerKey)
}

func (r *nftSettingRepository) SetBaseURI(ctx context.Context, uri string) error {
	return setString(ctx, common.NFTBaseURIKey, uri)
}

func (r *nftSettingRepository) SetTokenURI(ctx context.Context, uri string) error {
	return setString(ctx, common.NFTTokenURIKey, uri)
}

func (r *nftSettingRepository) SetPaused(ctx context.Context, paused bool) error {
	return setBool(ctx, common.NFTMintPausedKey, paused)
}

func (r *nftSettingRepository) SetMintPrice(ctx context.Context, price uint64) error {
	return setUint64(ctx, common.NFTMintPriceKey, price)
}

func (r *nftSettingRepository) GetCounter(ctx context.Context) (*uint256.Int, error) {
	return getUint256(ctx, common.NFTCounterKey)
}

func (r *nftSettingRepository) SetCounter(ctx context.Context, counter *uint256.Int) error {
	return setUint256(ctx, common.NFTCounterKey, counter)
}
