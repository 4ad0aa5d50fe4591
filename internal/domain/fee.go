package domain

import (
	"fmt"

	"github.com/questx-lab/marketplace/pkg/errorx"
)

const (
	FeePolicyNone       = "none"
	FeePolicyListing    = "listing"
	FeePolicyPercentage = "percentage"
	FeePolicyModulus    = "modulus"
)

// FeePolicy decides what the marketplace keeps. The stored marketplace fee is
// interpreted by the policy.
type FeePolicy interface {
	Name() string

	// ListingFee is the amount a seller must send with a sell offer.
	ListingFee(fee uint64) uint64

	// SettlementFee is deducted from the seller's proceeds, it never exceeds
	// price.
	SettlementFee(price, fee uint64) uint64

	ValidateFee(fee uint64) error
}

func NewFeePolicy(name string) (FeePolicy, error) {
	switch name {
	case FeePolicyNone, "":
		return noFee{}, nil
	case FeePolicyListing:
		return listingFee{}, nil
	case FeePolicyPercentage:
		return percentageFee{}, nil
	case FeePolicyModulus:
		return modulusFee{}, nil
	default:
		return nil, fmt.Errorf("unknown fee policy %q", name)
	}
}

type noFee struct{}

func (noFee) Name() string                        { return FeePolicyNone }
func (noFee) ListingFee(uint64) uint64            { return 0 }
func (noFee) SettlementFee(uint64, uint64) uint64 { return 0 }
func (noFee) ValidateFee(uint64) error            { return nil }

// listingFee charges a flat fee when the offer is created, settlement is free.
type listingFee struct{}

func (listingFee) Name() string                        { return FeePolicyListing }
func (listingFee) ListingFee(fee uint64) uint64        { return fee }
func (listingFee) SettlementFee(uint64, uint64) uint64 { return 0 }
func (listingFee) ValidateFee(uint64) error            { return nil }

// percentageFee keeps fee percent of the price. The division happens first,
// so prices under 100 pay nothing.
type percentageFee struct{}

func (percentageFee) Name() string             { return FeePolicyPercentage }
func (percentageFee) ListingFee(uint64) uint64 { return 0 }

func (percentageFee) SettlementFee(price, fee uint64) uint64 {
	return price / 100 * fee
}

func (percentageFee) ValidateFee(fee uint64) error {
	if fee > 100 {
		return errorx.New(errorx.BadRequest, "Percentage fee must be at most 100")
	}

	return nil
}

// modulusFee keeps price mod fee. It is not a percentage: a price which is a
// multiple of fee pays nothing.
type modulusFee struct{}

func (modulusFee) Name() string             { return FeePolicyModulus }
func (modulusFee) ListingFee(uint64) uint64 { return 0 }

func (modulusFee) SettlementFee(price, fee uint64) uint64 {
	if fee == 0 {
		return 0
	}

	return price % fee
}

func (modulusFee) ValidateFee(uint64) error { return nil }
