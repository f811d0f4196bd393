package v21

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v19"
)

// GetNetworkInfo is the result of getnetworkinfo, which now splits connections by direction.
type GetNetworkInfo struct {
	v19.GetNetworkInfo
	ConnectionsIn  int64 `json:"connections_in"`
	ConnectionsOut int64 `json:"connections_out"`
}

// GetNetworkInfo returns the p2p state with inbound and outbound counts.
func (c *Client) GetNetworkInfo(ctx context.Context) (GetNetworkInfo, error) {
	return client.Do[GetNetworkInfo](ctx, c.Base, "getnetworkinfo")
}

func (r GetNetworkInfo) IntoModel() (model.GetNetworkInfo, error) {
	out, err := r.GetNetworkInfo.IntoModel()
	if err != nil {
		return out, err
	}
	if out.ConnectionsIn, err = model.ToU32Ptr(&r.ConnectionsIn, "connections_in"); err != nil {
		return out, err
	}
	if out.ConnectionsOut, err = model.ToU32Ptr(&r.ConnectionsOut, "connections_out"); err != nil {
		return out, err
	}
	return out, nil
}
