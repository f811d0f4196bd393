// Package v29 is the typed client for Bitcoin Core 29.
package v29

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v28"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v29 daemon.
type Client struct {
	*v28.Client
}

// New prepares a v29 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V29, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase wraps an existing connection.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v28.NewFromBase(b)}
}
