//go:build corepc_v21 && !corepc_v22 && !corepc_v23 && !corepc_v24 && !corepc_v25 && !corepc_v26 && !corepc_v27 && !corepc_v28 && !corepc_v29 && !corepc_v30

package node

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v21"
)

// Client is the typed client for the release this package is built for.
type Client = v21.Client

// Version is the release the supervisor runs and its Client speaks.
const Version = client.V21

func newClient(b *client.Base) *Client {
	return v21.NewFromBase(b)
}
