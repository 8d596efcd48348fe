// Package chain offers opt-in verification of client-reported mint
// transactions. By default the recorder trusts the reported hash; deployments
// that set VERIFY_MINT_TX route through this verifier before persisting.
package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

type Verifier struct {
	client   *ethclient.Client
	contract common.Address
	timeout  time.Duration
}

func NewVerifier(rpcURL, contractAddress string) (*Verifier, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial chain rpc: %w", err)
	}

	return &Verifier{
		client:   client,
		contract: common.HexToAddress(contractAddress),
		timeout:  15 * time.Second,
	}, nil
}

// VerifyMint checks that txHash names a mined, successful transaction
// addressed to the configured NFT contract.
func (v *Verifier) VerifyMint(txHash string) error {
	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()

	hash := common.HexToHash(txHash)

	tx, pending, err := v.client.TransactionByHash(ctx, hash)
	if err != nil {
		return fmt.Errorf("transaction %s not found: %w", txHash, err)
	}
	if pending {
		return fmt.Errorf("transaction %s is still pending", txHash)
	}
	if tx.To() == nil || *tx.To() != v.contract {
		return fmt.Errorf("transaction %s does not target the NFT contract", txHash)
	}

	receipt, err := v.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return fmt.Errorf("receipt for %s not found: %w", txHash, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted", txHash)
	}

	return nil
}

func (v *Verifier) Close() {
	v.client.Close()
}
