// Package v17 is the typed client for Bitcoin Core 0.17. It declares every method the later
// version packages build on.
package v17

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v0.17 daemon.
type Client struct {
	*client.Base
}

// New prepares a client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V17, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase wraps an existing connection. Newer version packages use it to build the
// embedded client.
func NewFromBase(b *client.Base) *Client {
	return &Client{Base: b}
}
