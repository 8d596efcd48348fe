package models

type GenerateResponse struct {
	GeneratedImageID  string `json:"generatedImageId"`
	GeneratedImageURL string `json:"generatedImageUrl"`
	UserID            string `json:"userId"`
}

type MintConfirmResponse struct {
	OK     bool   `json:"ok"`
	MintID string `json:"mintId"`
}

type MintSummary struct {
	MintID   string `json:"mintId"`
	TxHash   string `json:"txHash"`
	Network  string `json:"network"`
	PriceEth string `json:"priceEth"`
}

type ImageStatusResponse struct {
	GeneratedImageID  string        `json:"generatedImageId"`
	GeneratedImageURL string        `json:"generatedImageUrl"`
	UserID            string        `json:"userId"`
	FarcasterFID      string        `json:"farcasterFid"`
	Mints             []MintSummary `json:"mints"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
