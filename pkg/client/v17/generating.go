package v17

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
)

// GenerateToAddress mines n blocks paying to address and returns their hashes. Regtest only.
func (c *Client) GenerateToAddress(ctx context.Context, n int, address string) ([]string, error) {
	if err := client.CheckVar("nblocks", n, "gt=0"); err != nil {
		return nil, err
	}
	if err := client.CheckVar("address", address, "required"); err != nil {
		return nil, err
	}
	return client.Do[[]string](ctx, c.Base, "generatetoaddress", n, address)
}

// InvalidateBlock marks a block and its descendants invalid.
func (c *Client) InvalidateBlock(ctx context.Context, hash string) error {
	if err := client.CheckVar("blockhash", hash, "len=64,hexadecimal"); err != nil {
		return err
	}
	return c.Call(ctx, "invalidateblock", nil, hash)
}
