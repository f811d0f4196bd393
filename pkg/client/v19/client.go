// Package v19 is the typed client for Bitcoin Core 0.19.
package v19

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v18"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v0.19 daemon.
type Client struct {
	*v18.Client
}

// New prepares a v19 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V19, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase wraps an existing connection.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v18.NewFromBase(b)}
}
