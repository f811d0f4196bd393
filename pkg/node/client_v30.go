//go:build corepc_v30 || (!corepc_v17 && !corepc_v18 && !corepc_v19 && !corepc_v20 && !corepc_v21 && !corepc_v22 && !corepc_v23 && !corepc_v24 && !corepc_v25 && !corepc_v26 && !corepc_v27 && !corepc_v28 && !corepc_v29)

package node

import (
	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/v30"
)

// Default build: the newest supported release.
// Client is the typed client for the release this package is built for.
type Client = v30.Client

// Version is the release the supervisor runs and its Client speaks.
const Version = client.V30

func newClient(b *client.Base) *Client {
	return v30.NewFromBase(b)
}
