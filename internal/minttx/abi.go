package minttx

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// MintABIJSON is the single-function ABI of the avatar NFT contract.
const MintABIJSON = `[
  {
    "inputs": [
      {"internalType": "address", "name": "to", "type": "address"},
      {"internalType": "string", "name": "tokenURI", "type": "string"}
    ],
    "name": "mint",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]`

var mintABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(MintABIJSON))
	if err != nil {
		panic(fmt.Sprintf("minttx: invalid embedded ABI: %v", err))
	}
	return parsed
}()

// CallData ABI-packs the configured mint call, ready for a raw transaction.
func (c *CallConfig) CallData() ([]byte, error) {
	data, err := mintABI.Pack(c.FunctionName, c.Recipient, c.TokenURI)
	if err != nil {
		return nil, fmt.Errorf("minttx: failed to pack call data: %w", err)
	}
	return data, nil
}
