package v28

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
)

// GetBlockchainInfo is the result of getblockchaininfo.
type GetBlockchainInfo struct {
	v17.BlockchainInfoCore
	Time     int64    `json:"time"`
	Warnings []string `json:"warnings"`
}

// GetBlockchainInfo returns the chain state summary with the warnings list.
func (c *Client) GetBlockchainInfo(ctx context.Context) (GetBlockchainInfo, error) {
	return client.Do[GetBlockchainInfo](ctx, c.Base, "getblockchaininfo")
}

// IntoModel converts to the version-independent shape.
func (r GetBlockchainInfo) IntoModel() (model.GetBlockchainInfo, error) {
	out, err := r.IntoModelCore()
	if err != nil {
		return out, err
	}
	t, err := model.ToU32(r.Time, "time")
	if err != nil {
		return out, err
	}
	out.Time = &t
	out.Warnings = nonEmpty(r.Warnings)
	return out, nil
}

func nonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
