//go:build corepc_v28 && !corepc_v29 && !corepc_v30

package node

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v28"
)

// Client is the typed client for the release this package is built for.
type Client = v28.Client

// Version is the release the supervisor runs and its Client speaks.
const Version = client.V28

func newClient(b *client.Base) *Client {
	return v28.NewFromBase(b)
}
