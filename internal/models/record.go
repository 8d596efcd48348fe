package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// User is keyed by the Farcaster fid supplied by the client. The wallet
// address is overwritten only by a new non-null value, never cleared.
type User struct {
	ID            uuid.UUID
	FarcasterFID  string
	WalletAddress sql.NullString
	CreatedAt     time.Time
}

// GeneratedImage is one AI-generation result. Rows are immutable: a new
// generation always inserts a new row.
type GeneratedImage struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	SourceProfileImageURL string
	GeneratedImageURL     string
	CreatedAt             time.Time
}

// MintRecord is one client-reported on-chain mint confirmation. Several
// records may reference the same generated image; re-minting is allowed.
type MintRecord struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	GeneratedImageID uuid.UUID
	TxHash           string
	Network          string
	PriceEth         string
	CreatedAt        time.Time
}
