package repository

import (
	"context"
	"errors"

	"github.com/holiman/uint256"
	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/pkg/kvstore"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

// TokenRepository holds the ownership, approval and balance tables of a
// collection contract.
type TokenRepository interface {
	// GetOwner returns kvstore.ErrNotFound for a token which was never minted
	// or was burned.
	GetOwner(ctx context.Context, tokenID *uint256.Int) (string, error)
	SetOwner(ctx context.Context, tokenID *uint256.Int, owner string) error
	DeleteOwner(ctx context.Context, tokenID *uint256.Int) error

	// GetApproved returns an empty address if nobody is approved.
	GetApproved(ctx context.Context, tokenID *uint256.Int) (string, error)
	SetApproved(ctx context.Context, tokenID *uint256.Int, address string) error
	DeleteApproved(ctx context.Context, tokenID *uint256.Int) error

	GetBalance(ctx context.Context, address string) (uint64, error)
	SetBalance(ctx context.Context, address string, balance uint64) error

	IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error)
	SetApprovalForAll(ctx context.Context, owner, operator string, approved bool) error
}

type tokenRepository struct{}

func NewTokenRepository() *tokenRepository {
	return &tokenRepository{}
}

func (r *tokenRepository) GetOwner(ctx context.Context, tokenID *uint256.Int) (string, error) {
	return getString(ctx, common.TokenOwnerKey(tokenID))
}

func (r *tokenRepository) SetOwner(ctx context.Context, tokenID *uint256.Int, owner string) error {
	return setString(ctx, common.TokenOwnerKey(tokenID), owner)
}

func (r *tokenRepository) DeleteOwner(ctx context.Context, tokenID *uint256.Int) error {
	return xcontext.KV(ctx).Delete(common.TokenOwnerKey(tokenID))
}

func (r *tokenRepository) GetApproved(ctx context.Context, tokenID *uint256.Int) (string, error) {
	approved, err := getString(ctx, common.TokenApprovalKey(tokenID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", nil
	}

	return approved, err
}

func (r *tokenRepository) SetApproved(ctx context.Context, tokenID *uint256.Int, address string) error {
	return setString(ctx, common.TokenApprovalKey(tokenID), address)
}

func (r *tokenRepository) DeleteApproved(ctx context.Context, tokenID *uint256.Int) error {
	return xcontext.KV(ctx).Delete(common.TokenApprovalKey(tokenID))
}

func (r *tokenRepository) GetBalance(ctx context.Context, address string) (uint64, error) {
	balance, err := getUint64(ctx, common.BalanceKey(address))
	if errors.Is(err, kvstore.ErrNotFound) {
		return 0, nil
	}

	return balance, err
}

func (r *tokenRepository) SetBalance(ctx context.Context, address string, balance uint64) error {
	if balance == 0 {
		return xcontext.KV(ctx).Delete(common.BalanceKey(address))
	}

	return setUint64(ctx, common.BalanceKey(address), balance)
}

func (r *tokenRepository) IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error) {
	approved, err := getBool(ctx, common.OperatorApprovalKey(owner, operator))
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}

	return approved, err
}

func (r *tokenRepository) SetApprovalForAll(ctx context.Context, owner, operator string, approved bool) error {
	if !approved {
		return xcontext.KV(ctx).Delete(common.OperatorApprovalKey(owner, operator))
	}

	return setBool(ctx, common.OperatorApprovalKey(owner, operator), true)
}
