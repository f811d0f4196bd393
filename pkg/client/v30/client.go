// Package v30 is the typed client for Bitcoin Core 30, the newest supported release.
package v30

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v29"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v30 daemon.
type Client struct {
	*v29.Client
}

// New prepares a v30 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V30, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase wraps an existing connection.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v29.NewFromBase(b)}
}
