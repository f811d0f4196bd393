package v29

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
	"github.com/rust-bitcoin/corepc/pkg/client/v28"
)

// GetBlockchainInfo is the result of getblockchaininfo, which now reports the tip's compact
// target and the expanded target.
type GetBlockchainInfo struct {
	v28.GetBlockchainInfo
	Bits   string `json:"bits"`
	Target string `json:"target"`
}

// GetBlockVerboseOne is the result of getblock with verbosity 1.
type GetBlockVerboseOne struct {
	v17.GetBlockVerboseOne
	Target string `json:"target"`
}

// GetBlockchainInfo returns the chain state summary with the tip target.
func (c *Client) GetBlockchainInfo(ctx context.Context) (GetBlockchainInfo, error) {
	return client.Do[GetBlockchainInfo](ctx, c.Base, "getblockchaininfo")
}

// GetBlockVerboseOne returns the decoded block with txids only.
func (c *Client) GetBlockVerboseOne(ctx context.Context, hash string) (GetBlockVerboseOne, error) {
	if err := client.CheckVar("blockhash", hash, "len=64,hexadecimal"); err != nil {
		return GetBlockVerboseOne{}, err
	}
	return client.Do[GetBlockVerboseOne](ctx, c.Base, "getblock", hash, 1)
}

// IntoModel converts to the version-independent shape.
func (r GetBlockchainInfo) IntoModel() (model.GetBlockchainInfo, error) {
	out, err := r.GetBlockchainInfo.IntoModel()
	if err != nil {
		return out, err
	}
	out.Bits = r.Bits
	out.Target = r.Target
	return out, nil
}
