// Package v25 is the typed client for Bitcoin Core 25.
package v25

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v24"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v25 daemon.
type Client struct {
	*v24.Client
}

// New prepares a v25 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V25, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase wraps an existing connection.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v24.NewFromBase(b)}
}
