package v26

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client/v17"
)

// AddNodeV2 is addnode with the v2transport flag, which asks for a BIP324 encrypted connection.
func (c *Client) AddNodeV2(ctx context.Context, node string, cmd v17.AddNodeCommand, v2transport bool) error {
	if err := v17.CheckAddNode(node, cmd); err != nil {
		return err
	}
	return c.Call(ctx, "addnode", nil, node, cmd, v2transport)
}
