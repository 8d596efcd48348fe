package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avatar-mint-backend/internal/apperr"
	"avatar-mint-backend/internal/config"
)

func validConfig() *config.Config {
	return &config.Config{
		AIAPIURL:           "https://api.openai.com/v1/images/edits",
		AIAPIKey:           "sk-test",
		NFTContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		DatabaseURL:        "postgres://localhost/avatars",
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing api key", func(c *config.Config) { c.AIAPIKey = "" }},
		{"missing api url", func(c *config.Config) { c.AIAPIURL = "" }},
		{"missing database url", func(c *config.Config) { c.DatabaseURL = "" }},
		{"missing contract address", func(c *config.Config) { c.NFTContractAddress = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindConfiguration))
		})
	}
}

func TestValidate_InvalidContractAddress(t *testing.T) {
	cfg := validConfig()
	cfg.NFTContractAddress = "not-an-address"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConfiguration))
	assert.Contains(t, err.Error(), "hex address")
}

func TestValidate_VerifyRequiresRPCURL(t *testing.T) {
	cfg := validConfig()
	cfg.VerifyMintTx = true

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHAIN_RPC_URL")

	cfg.ChainRPCURL = "https://mainnet.base.org"
	assert.NoError(t, cfg.Validate())
}

func TestStorageEnabled(t *testing.T) {
	cfg := validConfig()
	assert.False(t, cfg.StorageEnabled())

	cfg.SupabaseURL = "https://project.supabase.co"
	assert.False(t, cfg.StorageEnabled())

	cfg.SupabaseKey = "service-role-key"
	assert.True(t, cfg.StorageEnabled())
}
