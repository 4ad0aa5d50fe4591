package model

// Event names emitted by the marketplace contract.
const (
	SellOfferEvent       = "SELL_OFFER"
	RemoveSellOfferEvent = "REMOVE_SELL_OFFER"
	BuyOfferEvent        = "BUY_OFFER"
	DeleteOfferEvent     = "DELETE_OFFER"
	ExpireOfferEvent     = "EXPIRE_OFFER"
)

// Event names emitted by collection contracts.
const (
	MintEvent     = "MINT"
	TransferEvent = "TRANSFER"
	ApprovalEvent = "APPROVAL"
	BurnEvent     = "BURN"
)
