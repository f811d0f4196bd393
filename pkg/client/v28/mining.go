package v28

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
)

// GetMiningInfo is the result of getmininginfo.
type GetMiningInfo struct {
	v17.MiningInfoCore
	Warnings []string `json:"warnings"`
}

// GetMiningInfo returns mining related state.
func (c *Client) GetMiningInfo(ctx context.Context) (GetMiningInfo, error) {
	return client.Do[GetMiningInfo](ctx, c.Base, "getmininginfo")
}

func (r GetMiningInfo) IntoModel() (model.GetMiningInfo, error) {
	out, err := r.IntoModelCore()
	if err != nil {
		return out, err
	}
	out.Warnings = nonEmpty(r.Warnings)
	return out, nil
}
