package v19

import (
	"context"
	"fmt"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
)

// GetBlockchainInfo is the result of getblockchaininfo. Softforks became a map keyed by
// deployment name and bip9_softforks was folded into it.
type GetBlockchainInfo struct {
	v17.BlockchainInfoCore
	Softforks map[string]Softfork `json:"softforks"`
	Warnings  string              `json:"warnings"`
}

// Softfork is an entry of the softforks map.
type Softfork struct {
	Type   string        `json:"type"`
	Active bool          `json:"active"`
	Height *int64        `json:"height,omitempty"`
	BIP9   *SoftforkBIP9 `json:"bip9,omitempty"`
}

// SoftforkBIP9 is the version bits state of a softfork.
type SoftforkBIP9 struct {
	Status              string              `json:"status"`
	Bit                 *int64              `json:"bit,omitempty"`
	StartTime           int64               `json:"start_time"`
	Timeout             int64               `json:"timeout"`
	Since               int64               `json:"since"`
	MinActivationHeight *int64              `json:"min_activation_height,omitempty"`
	Statistics          *v17.BIP9Statistics `json:"statistics,omitempty"`
}

// GetBlockFilter is the result of getblockfilter.
type GetBlockFilter struct {
	Filter string `json:"filter"`
	Header string `json:"header"`
}

// GetBlockchainInfo returns the chain state summary with softforks keyed by name.
func (c *Client) GetBlockchainInfo(ctx context.Context) (GetBlockchainInfo, error) {
	return client.Do[GetBlockchainInfo](ctx, c.Base, "getblockchaininfo")
}

// GetBlockFilter returns the basic BIP158 filter of a block. The daemon needs -blockfilterindex.
func (c *Client) GetBlockFilter(ctx context.Context, hash string) (GetBlockFilter, error) {
	if err := client.CheckVar("blockhash", hash, "len=64,hexadecimal"); err != nil {
		return GetBlockFilter{}, err
	}
	return client.Do[GetBlockFilter](ctx, c.Base, "getblockfilter", hash)
}

// IntoModel converts to the version-independent shape.
func (r GetBlockchainInfo) IntoModel() (model.GetBlockchainInfo, error) {
	out, err := r.IntoModelCore()
	if err != nil {
		return out, err
	}
	if out.Softforks, err = ConvertSoftforks(r.Softforks); err != nil {
		return out, err
	}
	out.Warnings = v17.Warnings(r.Warnings)
	return out, nil
}

// ConvertSoftforks converts the softforks map used from v19 to v22.
func ConvertSoftforks(in map[string]Softfork) (map[string]model.Softfork, error) {
	out := make(map[string]model.Softfork, len(in))
	for name, sf := range in {
		height, err := model.ToU32Ptr(sf.Height, "height")
		if err != nil {
			return nil, fmt.Errorf("softforks.%s: %w", name, err)
		}
		m := model.Softfork{Active: sf.Active, Height: height}
		switch sf.Type {
		case "buried":
			m.Type = model.SoftforkBuried
		case "bip9":
			m.Type = model.SoftforkBIP9
			if sf.BIP9 != nil {
				b := sf.BIP9
				if m.BIP9, err = v17.ConvertBIP9(b.Status, b.Bit, b.StartTime, b.Timeout, b.Since); err != nil {
					return nil, fmt.Errorf("softforks.%s: %w", name, err)
				}
			}
		default:
			return nil, fmt.Errorf("%w: softforks.%s has type %q", model.ErrConversion, name, sf.Type)
		}
		out[name] = m
	}
	return out, nil
}

func (r GetBlockFilter) IntoModel() (model.GetBlockFilter, error) {
	filter, err := model.ParseHex(r.Filter, "filter")
	if err != nil {
		return model.GetBlockFilter{}, err
	}
	header, err := model.ParseHash(r.Header, "header")
	if err != nil {
		return model.GetBlockFilter{}, err
	}
	return model.GetBlockFilter{Filter: filter, Header: header}, nil
}
