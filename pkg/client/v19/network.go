package v19

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
)

// GetNetworkInfo is the result of getnetworkinfo, which gained localservicesnames.
type GetNetworkInfo struct {
	v17.NetworkInfoCore
	LocalServicesNames []string `json:"localservicesnames"`
	Warnings           string   `json:"warnings"`
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
	out.LocalServicesNames = r.LocalServicesNames
	out.Warnings = v17.Warnings(r.Warnings)
	return out, nil
}
