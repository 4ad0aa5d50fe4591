package entity

import (
	"github.com/questx-lab/marketplace/pkg/codec"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	sellOfferCollectionAddress protowire.Number = iota + 1
	sellOfferTokenID
	sellOfferPrice
	sellOfferCreatorAddress
	sellOfferExpirationTime
	sellOfferCreatedTime
)

// SellOffer is a live listing of a token. At most one exists per collection
// and token id.
type SellOffer struct {
	CollectionAddress string `json:"collection_address"`
	TokenID           string `json:"token_id"`
	Price             uint64 `json:"price"`
	CreatorAddress    string `json:"creator_address"`
	ExpirationTime    uint64 `json:"expiration_time"`
	CreatedTime       uint64 `json:"created_time"`
}

func (o *SellOffer) Serialize() []byte {
	return codec.NewEncoder().
		String(sellOfferCollectionAddress, o.CollectionAddress).
		String(sellOfferTokenID, o.TokenID).
		Uint64(sellOfferPrice, o.Price).
		String(sellOfferCreatorAddress, o.CreatorAddress).
		Uint64(sellOfferExpirationTime, o.ExpirationTime).
		Uint64(sellOfferCreatedTime, o.CreatedTime).
		Bytes()
}

func (o *SellOffer) Deserialize(b []byte) error {
	var decoded SellOffer
	required := []protowire.Number{
		sellOfferCollectionAddress, sellOfferTokenID, sellOfferPrice,
		sellOfferCreatorAddress, sellOfferExpirationTime, sellOfferCreatedTime,
	}

	err := decodeRecord("sell offer", b, required, func(f codec.Field) error {
		var err error
		switch f.Number {
		case sellOfferCollectionAddress:
			decoded.CollectionAddress, err = f.String()
		case sellOfferTokenID:
			decoded.TokenID, err = f.String()
		case sellOfferPrice:
			decoded.Price, err = f.Uint64()
		case sellOfferCreatorAddress:
			decoded.CreatorAddress, err = f.String()
		case sellOfferExpirationTime:
			decoded.ExpirationTime, err = f.Uint64()
		case sellOfferCreatedTime:
			decoded.CreatedTime, err = f.Uint64()
		}
		return err
	})
	if err != nil {
		return err
	}

	*o = decoded
	return nil
}
