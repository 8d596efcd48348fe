// Package minttx builds the contract call for minting a generated avatar:
// fixed metadata encoded into a base64 JSON data URI passed as the token URI
// of a payable mint(address,string) call. Pure computation, no I/O.
package minttx

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	MetadataName        = "Disney-Style Avatar"
	MetadataDescription = "A Farcaster-generated Disney-style avatar."

	FunctionMint = "mint"

	tokenURIPrefix = "data:application/json;base64,"
)

// MintValueWei is the fixed mint price, 0.001 ETH expressed in wei.
var MintValueWei = new(big.Int).Exp(big.NewInt(10), big.NewInt(15), nil)

var (
	ErrInvalidContractAddress  = errors.New("minttx: contract address is not a valid hex address")
	ErrInvalidRecipientAddress = errors.New("minttx: recipient address is not a valid hex address")
	ErrEmptyImageURL           = errors.New("minttx: image url is empty")
)

// Metadata is the token metadata embedded in the token URI.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CallConfig holds the parameters the wallet signer needs to submit the mint.
type CallConfig struct {
	Address      common.Address `json:"address"`
	FunctionName string         `json:"functionName"`
	Recipient    common.Address `json:"recipient"`
	TokenURI     string         `json:"tokenUri"`
	Value        *big.Int       `json:"value"`
}

// Args returns the call arguments in contract order: (recipient, tokenURI).
func (c *CallConfig) Args() []interface{} {
	return []interface{}{c.Recipient, c.TokenURI}
}

// TokenURI serializes the fixed metadata for imageURL into a base64-encoded
// JSON data URI. The JSON bytes round-trip exactly through the encoding.
func TokenURI(imageURL string) (string, error) {
	if imageURL == "" {
		return "", ErrEmptyImageURL
	}

	metadata := Metadata{
		Name:        MetadataName,
		Description: MetadataDescription,
		Image:       imageURL,
	}

	payload, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("minttx: failed to encode metadata: %w", err)
	}

	return tokenURIPrefix + base64.StdEncoding.EncodeToString(payload), nil
}

// DecodeTokenURI is the inverse of TokenURI.
func DecodeTokenURI(uri string) (*Metadata, error) {
	payload, ok := strings.CutPrefix(uri, tokenURIPrefix)
	if !ok {
		return nil, fmt.Errorf("minttx: token uri has unexpected prefix")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("minttx: failed to decode token uri: %w", err)
	}

	var metadata Metadata
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil, fmt.Errorf("minttx: failed to parse token uri metadata: %w", err)
	}

	return &metadata, nil
}

// BuildMintCall constructs the mint call for imageURL, addressed to the NFT
// contract and minting to recipient. Deterministic for identical inputs.
func BuildMintCall(imageURL, contractAddress, recipientAddress string) (*CallConfig, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, ErrInvalidContractAddress
	}
	if !common.IsHexAddress(recipientAddress) {
		return nil, ErrInvalidRecipientAddress
	}

	tokenURI, err := TokenURI(imageURL)
	if err != nil {
		return nil, err
	}

	return &CallConfig{
		Address:      common.HexToAddress(contractAddress),
		FunctionName: FunctionMint,
		Recipient:    common.HexToAddress(recipientAddress),
		TokenURI:     tokenURI,
		Value:        new(big.Int).Set(MintValueWei),
	}, nil
}
