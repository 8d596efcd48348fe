package models

type GenerateRequest struct {
	SourceProfileImageURL string `json:"sourceProfileImageUrl"`
	FarcasterFID          string `json:"farcasterFid"`
	WalletAddress         string `json:"walletAddress,omitempty"`
}

type MintConfirmRequest struct {
	GeneratedImageID string `json:"generatedImageId"`
	UserID           string `json:"userId"`
	TxHash           string `json:"txHash"`
}
