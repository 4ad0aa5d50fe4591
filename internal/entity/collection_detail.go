package entity

import (
	"github.com/questx-lab/marketplace/pkg/codec"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	collectionName protowire.Number = iota + 1
	collectionDescription
	collectionAddress
	collectionExternalWebsite
	collectionBannerImage
	collectionBackgroundImage
	collectionLogoImage
	collectionBaseURI
	collectionMintPrice
	collectionExtraMetadata
	collectionMarketplaceMinting
)

// CollectionDetail is the registry entry of a collection which can be traded
// on the marketplace.
type CollectionDetail struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Address            string `json:"address"`
	ExternalWebsite    string `json:"external_website"`
	BannerImage        string `json:"banner_image"`
	BackgroundImage    string `json:"background_image"`
	LogoImage          string `json:"logo_image"`
	BaseURI            string `json:"base_uri"`
	MintPrice          uint64 `json:"mint_price"`
	ExtraMetadata      string `json:"extra_metadata"`
	MarketplaceMinting string `json:"marketplace_minting"`
}

func (c *CollectionDetail) Serialize() []byte {
	return codec.NewEncoder().
		String(collectionName, c.Name).
		String(collectionDescription, c.Description).
		String(collectionAddress, c.Address).
		String(collectionExternalWebsite, c.ExternalWebsite).
		String(collectionBannerImage, c.BannerImage).
		String(collectionBackgroundImage, c.BackgroundImage).
		String(collectionLogoImage, c.LogoImage).
		String(collectionBaseURI, c.BaseURI).
		Uint64(collectionMintPrice, c.MintPrice).
		String(collectionExtraMetadata, c.ExtraMetadata).
		String(collectionMarketplaceMinting, c.MarketplaceMinting).
		Bytes()
}

func (c *CollectionDetail) Deserialize(b []byte) error {
	var decoded CollectionDetail
	required := []protowire.Number{
		collectionName, collectionDescription, collectionAddress,
		collectionExternalWebsite, collectionBannerImage, collectionBackgroundImage,
		collectionLogoImage, collectionBaseURI, collectionMintPrice,
		collectionExtraMetadata, collectionMarketplaceMinting,
	}

	err := decodeRecord("collection", b, required, func(f codec.Field) error {
		var err error
		switch f.Number {
		case collectionName:
			decoded.Name, err = f.String()
		case collectionDescription:
			decoded.Description, err = f.String()
		case collectionAddress:
			decoded.Address, err = f.String()
		case collectionExternalWebsite:
			decoded.ExternalWebsite, err = f.String()
		case collectionBannerImage:
			decoded.BannerImage, err = f.String()
		case collectionBackgroundImage:
			decoded.BackgroundImage, err = f.String()
		case collectionLogoImage:
			decoded.LogoImage, err = f.String()
		case collectionBaseURI:
			decoded.BaseURI, err = f.String()
		case collectionMintPrice:
			decoded.MintPrice, err = f.Uint64()
		case collectionExtraMetadata:
			decoded.ExtraMetadata, err = f.String()
		case collectionMarketplaceMinting:
			decoded.MarketplaceMinting, err = f.String()
		}
		return err
	})
	if err != nil {
		return err
	}

	*c = decoded
	return nil
}
