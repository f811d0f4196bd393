// Package v22 is the typed client for Bitcoin Core 22. It declares no methods of its own:
// every result it relies on has the v21 shape.
package v22

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v21"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v22 daemon.
type Client struct {
	*v21.Client
}

// New prepares a v22 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V22, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase builds a v22 client on b. Newer packages use it for the embedded client.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v21.NewFromBase(b)}
}
