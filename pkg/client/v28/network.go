package v28

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
)

// GetNetworkInfo is the result of getnetworkinfo.
type GetNetworkInfo struct {
	v17.NetworkInfoCore
	LocalServicesNames []string `json:"localservicesnames"`
	ConnectionsIn      int64    `json:"connections_in"`
	ConnectionsOut     int64    `json:"connections_out"`
	Warnings           []string `json:"warnings"`
}

// GetNetworkInfo returns the p2p state of the node.
func (c *Client) GetNetworkInfo(ctx context.Context) (GetNetworkInfo, error) {
	return client.Do[GetNetworkInfo](ctx, c.Base, "getnetworkinfo")
}

func (r GetNetworkInfo) IntoModel() (model.GetNetworkInfo, error) {
	out, err := r.IntoModelCore()
	if err != nil {
		return out, err
	}
	if out.ConnectionsIn, err = model.ToU32Ptr(&r.ConnectionsIn, "connections_in"); err != nil {
		return out, err
	}
	if out.ConnectionsOut, err = model.ToU32Ptr(&r.ConnectionsOut, "connections_out"); err != nil {
		return out, err
	}
	out.LocalServicesNames = r.LocalServicesNames
	out.Warnings = nonEmpty(r.Warnings)
	return out, nil
}
