package model

import "github.com/questx-lab/marketplace/internal/entity"

func ConvertSellOffer(offer *entity.SellOffer) SellOffer {
	if offer == nil {
		return SellOffer{}
	}

	return SellOffer{
		CollectionAddress: offer.CollectionAddress,
		TokenID:           offer.TokenID,
		Price:             offer.Price,
		CreatorAddress:    offer.CreatorAddress,
		ExpirationTime:    offer.ExpirationTime,
		CreatedTime:       offer.CreatedTime,
	}
}

func ConvertCollection(collection *entity.CollectionDetail) Collection {
	if collection == nil {
		return Collection{}
	}

	return Collection{
		Name:               collection.Name,
		Description:        collection.Description,
		Address:            collection.Address,
		ExternalWebsite:    collection.ExternalWebsite,
		BannerImage:        collection.BannerImage,
		BackgroundImage:    collection.BackgroundImage,
		LogoImage:          collection.LogoImage,
		BaseURI:            collection.BaseURI,
		MintPrice:          collection.MintPrice,
		ExtraMetadata:      collection.ExtraMetadata,
		MarketplaceMinting: collection.MarketplaceMinting,
	}
}

func ConvertBuyHistory(op *entity.BuyTokenOperation) BuyHistory {
	if op == nil {
		return BuyHistory{}
	}

	return BuyHistory{
		CollectionAddress: op.CollectionAddress,
		TokenID:           op.TokenID,
		Price:             op.Price,
		Buyer:             op.Buyer,
		Seller:            op.Seller,
		Timestamp:         op.Timestamp,
	}
}
