// Package v27 is the typed client for Bitcoin Core 27. The RPC surface it uses is unchanged
// from v26.
package v27

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v26"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v27 daemon.
type Client struct {
	*v26.Client
}

// New prepares a v27 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V27, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase wraps an existing connection.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v26.NewFromBase(b)}
}
