// Package v24 is the typed client for Bitcoin Core 24.
package v24

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v23"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v24 daemon.
type Client struct {
	*v23.Client
}

// New prepares a v24 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V24, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase builds a v24 client on b. Newer packages use it for the embedded client.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v23.NewFromBase(b)}
}
