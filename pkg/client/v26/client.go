// Package v26 is the typed client for Bitcoin Core 26.
package v26

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v25"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v26 daemon.
type Client struct {
	*v25.Client
}

// New prepares a v26 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V26, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase builds a v26 client on b. Newer packages use it for the embedded client.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v25.NewFromBase(b)}
}
