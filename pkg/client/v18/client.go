// Package v18 is the typed client for Bitcoin Core 0.18.
package v18

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v0.18 daemon.
type Client struct {
	*v17.Client
}

// New prepares a v18 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V18, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase builds a v18 client on b. Newer packages use it for the embedded client.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v17.NewFromBase(b)}
}

// GetRPCInfo is the result of getrpcinfo.
type GetRPCInfo struct {
	ActiveCommands []ActiveCommand `json:"active_commands"`
}

// ActiveCommand is an RPC call in flight. Duration is in microseconds.
type ActiveCommand struct {
	Method   string `json:"method"`
	Duration int64  `json:"duration"`
}

// GetRPCInfo lists the RPC calls the daemon is currently serving, this one included.
func (c *Client) GetRPCInfo(ctx context.Context) (GetRPCInfo, error) {
	return client.Do[GetRPCInfo](ctx, c.Base, "getrpcinfo")
}
