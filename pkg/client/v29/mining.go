package v29

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v28"
)

// GetMiningInfo is the result of getmininginfo. It describes the next block as well.
type GetMiningInfo struct {
	v28.GetMiningInfo
	Bits   string        `json:"bits"`
	Target string        `json:"target"`
	Next   NextBlockInfo `json:"next"`
}

// NextBlockInfo describes the block template being mined on.
type NextBlockInfo struct {
	Height     int64   `json:"height"`
	Bits       string  `json:"bits"`
	Difficulty float64 `json:"difficulty"`
	Target     string  `json:"target"`
}

// GetMiningInfo returns mining related state including the next block.
func (c *Client) GetMiningInfo(ctx context.Context) (GetMiningInfo, error) {
	return client.Do[GetMiningInfo](ctx, c.Base, "getmininginfo")
}

// IntoModel converts to the version-independent shape.
func (r GetMiningInfo) IntoModel() (model.GetMiningInfo, error) {
	out, err := r.GetMiningInfo.IntoModel()
	if err != nil {
		return out, err
	}
	height, err := model.ToU32(r.Next.Height, "next.height")
	if err != nil {
		return out, err
	}
	out.Bits = r.Bits
	out.Target = r.Target
	out.Next = &model.NextBlockInfo{
		Height:     height,
		Bits:       r.Next.Bits,
		Difficulty: r.Next.Difficulty,
		Target:     r.Next.Target,
	}
	return out, nil
}
