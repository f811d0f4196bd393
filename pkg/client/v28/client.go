// Package v28 is the typed client for Bitcoin Core 28. From this release warnings are
// reported as a list in getblockchaininfo, getmininginfo and getnetworkinfo.
package v28

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v27"
	"github.com/rust-bitcoin/corepc/pkg/rpc"
)

// Client talks to a v28 daemon.
type Client struct {
	*v27.Client
}

// New prepares a v28 client for the daemon at cfg.URL.
func New(cfg rpc.Config, opts ...rpc.Option) (*Client, error) {
	b, err := client.NewBase(client.V28, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBase(b), nil
}

// NewFromBase builds a v28 client on b. Newer packages use it for the embedded client.
func NewFromBase(b *client.Base) *Client {
	return &Client{Client: v27.NewFromBase(b)}
}
