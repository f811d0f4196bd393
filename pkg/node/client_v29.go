//go:build corepc_v29 && !corepc_v30

package node

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v29"
)

// Client is the typed client for the release this package is built for.
type Client = v29.Client

// Version is the release the supervisor runs and its Client speaks.
const Version = client.V29

func newClient(b *client.Base) *Client {
	return v29.NewFromBase(b)
}
