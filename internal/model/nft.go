package model

type NFTConstructorRequest struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	TotalSupply string `json:"total_supply"`
	BaseURI     string `json:"base_uri"`
	TokenURI    string `json:"token_uri"`
	MintPrice   uint64 `json:"mint_price"`
	StartTime   uint64 `json:"start_time"`
}

type IsApprovedForAllRequest struct {
	Owner    string `json:"owner"`
	Operator string `json:"operator"`
}

type MintRequest struct {
	Recipient string `json:"recipient"`
}

type MintResponse struct {
	TokenID string `json:"token_id"`
}

type ApproveRequest struct {
	To      string `json:"to"`
	TokenID string `json:"token_id"`
}

type SetApprovalForAllRequest struct {
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

type TransferFromRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	TokenID string `json:"token_id"`
}

type SetURIRequest struct {
	URI string `json:"uri"`
}

type ChangePauseStatusRequest struct {
	Paused bool `json:"paused"`
}

type ChangeMintPriceRequest struct {
	Price uint64 `json:"price"`
}

type WithdrawCoinsRequest struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

type GetNFTInfoResponse struct {
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Owner         string `json:"owner"`
	TotalSupply   string `json:"total_supply"`
	CurrentSupply string `json:"current_supply"`
	BaseURI       string `json:"base_uri"`
	TokenURI      string `json:"token_uri"`
	MintPrice     uint64 `json:"mint_price"`
	StartTime     uint64 `json:"start_time"`
	Paused        bool   `json:"paused"`
}
