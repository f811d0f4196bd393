// Package v21 is the typed client for Bitcoin Core 0.21.
package v21

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v20"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v0.21 daemon.
type Client struct {
	*v20.Client
}

// New prepares a v21 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V21, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase wraps an existing connection.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v20.NewFromBase(b)}
}
