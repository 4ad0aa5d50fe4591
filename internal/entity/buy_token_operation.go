package entity

import (
	"github.com/questx-lab/marketplace/pkg/codec"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	buyCollectionAddress protowire.Number = iota + 1
	buyTokenID
	buyPrice
	buyBuyer
	buySeller
	buyTimestamp
)

// BuyTokenOperation is written once per settlement and never read by the
// marketplace itself.
type BuyTokenOperation struct {
	CollectionAddress string `json:"collection_address"`
	TokenID           string `json:"token_id"`
	Price             uint64 `json:"price"`
	Buyer             string `json:"buyer"`
	Seller            string `json:"seller"`
	Timestamp         uint64 `json:"timestamp"`
}

func (o *BuyTokenOperation) Serialize() []byte {
	return codec.NewEncoder().
		String(buyCollectionAddress, o.CollectionAddress).
		String(buyTokenID, o.TokenID).
		Uint64(buyPrice, o.Price).
		String(buyBuyer, o.Buyer).
		String(buySeller, o.Seller).
		Uint64(buyTimestamp, o.Timestamp).
		Bytes()
}

func (o *BuyTokenOperation) Deserialize(b []byte) error {
	var decoded BuyTokenOperation
	required := []protowire.Number{
		buyCollectionAddress, buyTokenID, buyPrice, buyBuyer, buySeller, buyTimestamp,
	}

	err := decodeRecord("buy history", b, required, func(f codec.Field) error {
		var err error
		switch f.Number {
		case buyCollectionAddress:
			decoded.CollectionAddress, err = f.String()
		case buyTokenID:
			decoded.TokenID, err = f.String()
		case buyPrice:
			decoded.Price, err = f.Uint64()
		case buyBuyer:
			decoded.Buyer, err = f.String()
		case buySeller:
			decoded.Seller, err = f.String()
		case buyTimestamp:
			decoded.Timestamp, err = f.Uint64()
		}
		return err
	})
	if err != nil {
		return err
	}

	*o = decoded
	return nil
}
