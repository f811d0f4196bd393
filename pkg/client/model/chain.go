package model

import (
	"encoding/hex"
	"fmt"
)

// Network is the chain a daemon runs, as reported by getblockchaininfo.chain.
type Network string

const (
	Mainnet  Network = "main"
	Testnet  Network = "test"
	Testnet4 Network = "testnet4"
	Signet   Network = "signet"
	Regtest  Network = "regtest"
)

// ParseNetwork accepts the chain names bitcoind reports.
func ParseNetwork(s string) (Network, error) {
	switch n := Network(s); n {
	case Mainnet, Testnet, Testnet4, Signet, Regtest:
		return n, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChain, s)
	}
}

// ParseHash checks a 32 byte hash in the daemon's reversed hex notation.
func ParseHash(s, field string) (string, error) {
	if len(s) != 64 {
		return "", fmt.Errorf("%w: %s has length %d", ErrInvalidHash, field, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidHash, field, err)
	}
	return s, nil
}

// ParseHashPtr is ParseHash for optional fields.
func ParseHashPtr(s *string, field string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	h, err := ParseHash(*s, field)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ParseHex decodes a hex payload such as a block filter.
func ParseHex(s, field string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidHex, field, err)
	}
	return b, nil
}
