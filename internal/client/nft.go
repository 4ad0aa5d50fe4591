package client

import (
	"context"

	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/errorx"
)

// NFTCaller calls a collection contract. Every failure of the callee comes
// back as an ExternalCall error wrapping the callee's error.
type NFTCaller interface {
	OwnerOf(ctx context.Context, collection, tokenID string) (string, error)
	GetApproved(ctx context.Context, collection, tokenID string) (string, error)
	BalanceOf(ctx context.Context, collection, address string) (uint64, error)
	IsApprovedForAll(ctx context.Context, collection, owner, operator string) (bool, error)
	Approve(ctx context.Context, collection, to, tokenID string) error
	TransferFrom(ctx context.Context, collection, from, to, tokenID string) error
	SafeTransferFrom(ctx context.Context, collection, from, to, tokenID string) error
}

type nftCaller struct {
	caller ContractCaller
}

func NewNFTCaller(caller ContractCaller) *nftCaller {
	return &nftCaller{caller: caller}
}

func (c *nftCaller) OwnerOf(ctx context.Context, collection, tokenID string) (string, error) {
	var resp model.StringResponse
	err := c.call(ctx, collection, "ownerOf", &model.TokenIDRequest{TokenID: tokenID}, &resp)
	if err != nil {
		return "", err
	}

	return resp.Value, nil
}

func (c *nftCaller) GetApproved(ctx context.Context, collection, tokenID string) (string, error) {
	var resp model.StringResponse
	err := c.call(ctx, collection, "getApproved", &model.TokenIDRequest{TokenID: tokenID}, &resp)
	if err != nil {
		return "", err
	}

	return resp.Value, nil
}

func (c *nftCaller) BalanceOf(ctx context.Context, collection, address string) (uint64, error) {
	var resp model.Uint64Response
	err := c.call(ctx, collection, "balanceOf", &model.AddressRequest{Address: address}, &resp)
	if err != nil {
		return 0, err
	}

	return resp.Value, nil
}

func (c *nftCaller) IsApprovedForAll(ctx context.Context, collection, owner, operator string) (bool, error) {
	var resp model.BoolResponse
	err := c.call(ctx, collection, "isApprovedForAll",
		&model.IsApprovedForAllRequest{Owner: owner, Operator: operator}, &resp)
	if err != nil {
		return false, err
	}

	return resp.Value, nil
}

func (c *nftCaller) Approve(ctx context.Context, collection, to, tokenID string) error {
	return c.call(ctx, collection, "approve", &model.ApproveRequest{To: to, TokenID: tokenID}, nil)
}

func (c *nftCaller) TransferFrom(ctx context.Context, collection, from, to, tokenID string) error {
	return c.call(ctx, collection, "transferFrom",
		&model.TransferFromRequest{From: from, To: to, TokenID: tokenID}, nil)
}

func (c *nftCaller) SafeTransferFrom(ctx context.Context, collection, from, to, tokenID string) error {
	return c.call(ctx, collection, "safeTransferFrom",
		&model.TransferFromRequest{From: from, To: to, TokenID: tokenID}, nil)
}

func (c *nftCaller) call(ctx context.Context, collection, function string, req, resp any) error {
	if err := c.caller.Call(ctx, collection, function, 0, req, resp); err != nil {
		return errorx.Wrap(errorx.ExternalCall, err, "Cannot call %s of %s", function, collection)
	}

	return nil
}
