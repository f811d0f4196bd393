package v17

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
)

// MiningInfoCore holds the getmininginfo fields every version reports.
type MiningInfoCore struct {
	Blocks             int64   `json:"blocks"`
	CurrentBlockWeight *int64  `json:"currentblockweight,omitempty"`
	CurrentBlockTx     *int64  `json:"currentblocktx,omitempty"`
	Difficulty         float64 `json:"difficulty"`
	NetworkHashPS      float64 `json:"networkhashps"`
	PooledTx           int64   `json:"pooledtx"`
	Chain              string  `json:"chain"`
}

// GetMiningInfo is the result of getmininginfo.
type GetMiningInfo struct {
	MiningInfoCore
	Warnings string `json:"warnings"`
}

// GetNetworkHashPS estimates the network hash rate over the last 120 blocks.
func (c *Client) GetNetworkHashPS(ctx context.Context) (float64, error) {
	return client.Do[float64](ctx, c.Base, "getnetworkhashps")
}

// GetMiningInfo returns mining related state.
func (c *Client) GetMiningInfo(ctx context.Context) (GetMiningInfo, error) {
	return client.Do[GetMiningInfo](ctx, c.Base, "getmininginfo")
}

// PrioritiseTransaction adjusts the fee a transaction is mined with by feeDelta satoshis.
func (c *Client) PrioritiseTransaction(ctx context.Context, txid string, feeDelta int64) (bool, error) {
	if err := client.CheckVar("txid", txid, "len=64,hexadecimal"); err != nil {
		return false, err
	}
	// The second positional argument is a dummy that must be zero.
	return client.Do[bool](ctx, c.Base, "prioritisetransaction", txid, 0, feeDelta)
}
