package v23

import (
	"context"
	"fmt"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
	"github.com/rust-bitcoin/corepc/pkg/client/v17"
)

// GetBlockchainInfo is the result of getblockchaininfo. Deployments moved to getdeploymentinfo
// and the tip time is reported.
type GetBlockchainInfo struct {
	v17.BlockchainInfoCore
	Time     int64  `json:"time"`
	Warnings string `json:"warnings"`
}

// SaveMempool is the result of savemempool.
type SaveMempool struct {
	Filename string `json:"filename"`
}

// GetDeploymentInfo is the result of getdeploymentinfo.
type GetDeploymentInfo struct {
	Hash        string                `json:"hash"`
	Height      int64                 `json:"height"`
	Deployments map[string]Deployment `json:"deployments"`
}

// Deployment is an entry of getdeploymentinfo.
type Deployment struct {
	Type   string          `json:"type"`
	Height *int64          `json:"height,omitempty"`
	Active bool            `json:"active"`
	BIP9   *DeploymentBIP9 `json:"bip9,omitempty"`
}

// DeploymentBIP9 is the version bits state of a deployment.
type DeploymentBIP9 struct {
	Bit                 *int64          `json:"bit,omitempty"`
	StartTime           int64           `json:"start_time"`
	Timeout             int64           `json:"timeout"`
	MinActivationHeight int64           `json:"min_activation_height"`
	Status              string          `json:"status"`
	Since               int64           `json:"since"`
	StatusNext          string          `json:"status_next"`
	Statistics          *BIP9Statistics `json:"statistics,omitempty"`
	Signalling          *string         `json:"signalling,omitempty"`
}

type BIP9Statistics struct {
	Period    int64  `json:"period"`
	Threshold *int64 `json:"threshold,omitempty"`
	Elapsed   int64  `json:"elapsed"`
	Count     int64  `json:"count"`
	Possible  *bool  `json:"possible,omitempty"`
}

// GetBlockchainInfo returns the chain state summary. Softforks moved to getdeploymentinfo.
func (c *Client) GetBlockchainInfo(ctx context.Context) (GetBlockchainInfo, error) {
	return client.Do[GetBlockchainInfo](ctx, c.Base, "getblockchaininfo")
}

// SaveMempool dumps the mempool and reports the file written.
func (c *Client) SaveMempool(ctx context.Context) (SaveMempool, error) {
	return client.Do[SaveMempool](ctx, c.Base, "savemempool")
}

// GetDeploymentInfo reports deployment state at the chain tip.
func (c *Client) GetDeploymentInfo(ctx context.Context) (GetDeploymentInfo, error) {
	return client.Do[GetDeploymentInfo](ctx, c.Base, "getdeploymentinfo")
}

// GetDeploymentInfoAt reports deployment state at the given block.
func (c *Client) GetDeploymentInfoAt(ctx context.Context, hash string) (GetDeploymentInfo, error) {
	if err := client.CheckVar("blockhash", hash, "len=64,hexadecimal"); err != nil {
		return GetDeploymentInfo{}, err
	}
	return client.Do[GetDeploymentInfo](ctx, c.Base, "getdeploymentinfo", hash)
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
	out.Warnings = v17.Warnings(r.Warnings)
	return out, nil
}

// Softforks converts the deployments into the canonical softfork map.
func (r GetDeploymentInfo) Softforks() (map[string]model.Softfork, error) {
	out := make(map[string]model.Softfork, len(r.Deployments))
	for name, d := range r.Deployments {
		height, err := model.ToU32Ptr(d.Height, "height")
		if err != nil {
			return nil, fmt.Errorf("deployments.%s: %w", name, err)
		}
		sf := model.Softfork{Active: d.Active, Height: height}
		switch d.Type {
		case "buried":
			sf.Type = model.SoftforkBuried
		case "bip9":
			sf.Type = model.SoftforkBIP9
			if b := d.BIP9; b != nil {
				if sf.BIP9, err = v17.ConvertBIP9(b.Status, b.Bit, b.StartTime, b.Timeout, b.Since); err != nil {
					return nil, fmt.Errorf("deployments.%s: %w", name, err)
				}
			}
		default:
			return nil, fmt.Errorf("%w: deployments.%s has type %q", model.ErrConversion, name, d.Type)
		}
		out[name] = sf
	}
	return out, nil
}
