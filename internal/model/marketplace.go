package model

type MarketplaceConstructorRequest struct {
	Owner string `json:"owner"`
	Fee   uint64 `json:"fee"`
}

type SellOfferRequest struct {
	Collection string `json:"collection"`
	TokenID    string `json:"token_id"`
	Price      uint64 `json:"price"`
	ExpireIn   uint64 `json:"expire_in"`
}

type SellOfferResponse struct {
	Offer SellOffer `json:"offer"`
}

type OfferRequest struct {
	Collection string `json:"collection"`
	TokenID    string `json:"token_id"`
}

type BuyOfferResponse struct {
	Seller   string `json:"seller"`
	Price    uint64 `json:"price"`
	Fee      uint64 `json:"fee"`
	Proceeds uint64 `json:"proceeds"`
}

type AutonomousDelOfferRequest struct {
	Collection string `json:"collection"`
	TokenID    string `json:"token_id"`

	// ExpirationTime identifies the listing the message was scheduled for. Zero
	// matches any listing.
	ExpirationTime uint64 `json:"expiration_time"`
}

type GetSellOfferResponse struct {
	Offer SellOffer `json:"offer"`
}

type AdminAddCollectionRequest struct {
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

type AdminDellCollectionRequest struct {
	Address string `json:"address"`
}

type GetCollectionRequest struct {
	Address string `json:"address"`
}

type GetCollectionResponse struct {
	Collection Collection `json:"collection"`
}

type AdminChangeMarketplaceOwnerRequest struct {
	Owner string `json:"owner"`
}

type AdminSendCoinsFromRequest struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

type SendAllCoinsToAddressRequest struct {
	Address string `json:"address"`
}

type SendAllCoinsToAddressResponse struct {
	Amount uint64 `json:"amount"`
}

type ChangeMarketplaceFeeRequest struct {
	Fee uint64 `json:"fee"`
}

type GetBuyHistoryRequest struct {
	Buyer      string `json:"buyer"`
	Collection string `json:"collection"`
	TokenID    string `json:"token_id"`
}

type GetBuyHistoryResponse struct {
	History BuyHistory `json:"history"`
}
