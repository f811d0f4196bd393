//go:build corepc_v27 && !corepc_v28 && !corepc_v29 && !corepc_v30

package node

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v27"
)

// Client is the typed client for the release this package is built for.
type Client = v27.Client

// Version is the release the supervisor runs and its Client speaks.
const Version = client.V27

func newClient(b *client.Base) *Client {
	return v27.NewFromBase(b)
}
