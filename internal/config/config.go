package config

import (
	"log"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"

	"avatar-mint-backend/internal/apperr"
)

type Config struct {
	// AI image provider
	AIAPIURL string
	AIAPIKey string

	// Mint target
	NFTContractAddress string
	ChainRPCURL        string
	VerifyMintTx       bool

	// Supabase (optional: generated-image hosting + realtime events)
	SupabaseURL           string
	SupabaseKey           string
	SupabaseStorageBucket string

	// Auth (optional: when set, /api routes require a Bearer JWT)
	AuthJWTSecret string

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	cfg := &Config{
		AIAPIURL: getEnv("AI_API_URL", "https://api.openai.com/v1/images/edits"),
		AIAPIKey: getEnv("AI_API_KEY", ""),

		NFTContractAddress: getEnv("NFT_CONTRACT_ADDRESS", ""),
		ChainRPCURL:        getEnv("CHAIN_RPC_URL", ""),
		VerifyMintTx:       getEnv("VERIFY_MINT_TX", "false") == "true",

		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseKey:           getEnv("SUPABASE_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "avatars"),

		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AIAPIKey == "" {
		return apperr.Configuration("AI_API_KEY is required")
	}
	if c.AIAPIURL == "" {
		return apperr.Configuration("AI_API_URL is required")
	}
	if c.DatabaseURL == "" {
		return apperr.Configuration("DATABASE_URL is required")
	}
	if c.NFTContractAddress == "" {
		return apperr.Configuration("NFT_CONTRACT_ADDRESS is required")
	}
	if !common.IsHexAddress(c.NFTContractAddress) {
		return apperr.Configuration("NFT_CONTRACT_ADDRESS is not a valid hex address")
	}
	if c.VerifyMintTx && c.ChainRPCURL == "" {
		return apperr.Configuration("CHAIN_RPC_URL is required when VERIFY_MINT_TX is enabled")
	}
	return nil
}

// StorageEnabled reports whether generated images can be hosted in the
// storage bucket instead of being returned as data URIs.
func (c *Config) StorageEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
