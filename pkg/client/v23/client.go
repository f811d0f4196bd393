// Package v23 is the typed client for Bitcoin Core 23.
package v23

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v22"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v23 daemon.
type Client struct {
	*v22.Client
}

// New prepares a v23 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V23, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase wraps an existing connection.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v22.NewFromBase(b)}
}
