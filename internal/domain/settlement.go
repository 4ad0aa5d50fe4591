package domain

import (
	"context"
	"fmt"

	"github.com/questx-lab/marketplace/internal/client"
	"github.com/questx-lab/marketplace/internal/entity"
	"github.com/questx-lab/marketplace/pkg/errorx"
)

const (
	SettlementApproval = "approval"
	SettlementEscrow   = "escrow"
)

// SettlementModel decides who holds a listed token and how it moves.
type SettlementModel interface {
	Name() string

	// Custodial is true if the marketplace owns listed tokens.
	Custodial() bool

	// List runs after the seller's ownership was verified.
	List(ctx context.Context, nft client.NFTCaller, marketplace, collection, tokenID, seller string) error

	// Holder is the expected owner of a listed token.
	Holder(marketplace string, offer *entity.SellOffer) string

	// Deliver moves a listed token to the buyer.
	Deliver(ctx context.Context, nft client.NFTCaller, marketplace string, offer *entity.SellOffer, to string) error

	// Release gives a token back to the seller when the offer is cancelled.
	Release(ctx context.Context, nft client.NFTCaller, marketplace string, offer *entity.SellOffer) error
}

func NewSettlementModel(name string) (SettlementModel, error) {
	switch name {
	case SettlementApproval, "":
		return approvalSettlement{}, nil
	case SettlementEscrow:
		return escrowSettlement{}, nil
	default:
		return nil, fmt.Errorf("unknown settlement model %q", name)
	}
}

// approvalSettlement leaves the token with the seller, who approves the
// marketplace to transfer it.
type approvalSettlement struct{}

func (approvalSettlement) Name() string    { return SettlementApproval }
func (approvalSettlement) Custodial() bool { return false }

func (approvalSettlement) List(
	ctx context.Context, nft client.NFTCaller, marketplace, collection, tokenID, seller string,
) error {
	approved, err := nft.GetApproved(ctx, collection, tokenID)
	if err != nil {
		return err
	}

	if approved != marketplace {
		return errorx.New(errorx.FailedPrecondition, "Marketplace not approved for trading")
	}

	return nil
}

func (approvalSettlement) Holder(_ string, offer *entity.SellOffer) string {
	return offer.CreatorAddress
}

func (approvalSettlement) Deliver(
	ctx context.Context, nft client.NFTCaller, _ string, offer *entity.SellOffer, to string,
) error {
	return nft.SafeTransferFrom(ctx, offer.CollectionAddress, offer.CreatorAddress, to, offer.TokenID)
}

func (approvalSettlement) Release(context.Context, client.NFTCaller, string, *entity.SellOffer) error {
	return nil
}

// escrowSettlement moves the token into marketplace custody at listing time.
type escrowSettlement struct{}

func (escrowSettlement) Name() string    { return SettlementEscrow }
func (escrowSettlement) Custodial() bool { return true }

func (escrowSettlement) List(
	ctx context.Context, nft client.NFTCaller, marketplace, collection, tokenID, seller string,
) error {
	return nft.TransferFrom(ctx, collection, seller, marketplace, tokenID)
}

func (escrowSettlement) Holder(marketplace string, _ *entity.SellOffer) string {
	return marketplace
}

func (escrowSettlement) Deliver(
	ctx context.Context, nft client.NFTCaller, marketplace string, offer *entity.SellOffer, to string,
) error {
	if err := nft.Approve(ctx, offer.CollectionAddress, to, offer.TokenID); err != nil {
		return err
	}

	return nft.SafeTransferFrom(ctx, offer.CollectionAddress, marketplace, to, offer.TokenID)
}

func (s escrowSettlement) Release(
	ctx context.Context, nft client.NFTCaller, marketplace string, offer *entity.SellOffer,
) error {
	return s.Deliver(ctx, nft, marketplace, offer, offer.CreatorAddress)
}
