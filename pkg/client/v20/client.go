// Package v20 is the typed client for Bitcoin Core 0.20.
package v20

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v18"
	"github.com/rust-bitcoin/corepc/pkg/client/v19"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v0.20 daemon.
type Client struct {
	*v19.Client
}

// New prepares a v20 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V20, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase builds a v20 client on b. Newer packages use it for the embedded client.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v19.NewFromBase(b)}
}

// GetRPCInfo is the result of getrpcinfo, which now reports the debug log location.
type GetRPCInfo struct {
	ActiveCommands []v18.ActiveCommand `json:"active_commands"`
	LogPath        string              `json:"logpath"`
}

// GetRPCInfo lists the RPC calls in flight and the debug log path.
func (c *Client) GetRPCInfo(ctx context.Context) (GetRPCInfo, error) {
	return client.Do[GetRPCInfo](ctx, c.Base, "getrpcinfo")
}
