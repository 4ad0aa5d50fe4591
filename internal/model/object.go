package model

type SellOffer struct {
	CollectionAddress string `json:"collection_address"`
	TokenID           string `json:"token_id"`
	Price             uint64 `json:"price"`
	CreatorAddress    string `json:"creator_address"`
	ExpirationTime    uint64 `json:"expiration_time"`
	CreatedTime       uint64 `json:"created_time"`
}

type Collection struct {
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

type BuyHistory struct {
	CollectionAddress string `json:"collection_address"`
	TokenID           string `json:"token_id"`
	Price             uint64 `json:"price"`
	Buyer             string `json:"buyer"`
	Seller            string `json:"seller"`
	Timestamp         uint64 `json:"timestamp"`
}
