package model

type EmptyRequest struct{}

type EmptyResponse struct{}

type StringResponse struct {
	Value string `json:"value"`
}

type Uint64Response struct {
	Value uint64 `json:"value"`
}

type BoolResponse struct {
	Value bool `json:"value"`
}

type AddressRequest struct {
	Address string `json:"address"`
}

type TokenIDRequest struct {
	TokenID string `json:"token_id"`
}
