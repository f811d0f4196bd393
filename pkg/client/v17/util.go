package v17

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
)

// EstimateSmartFee is the result of estimatesmartfee. FeeRate is BTC/kvB and absent when the
// daemon lacks data.
type EstimateSmartFee struct {
	FeeRate *float64 `json:"feerate,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Blocks  int64    `json:"blocks"`
}

// ValidateAddress is the result of validateaddress.
type ValidateAddress struct {
	IsValid        bool    `json:"isvalid"`
	Address        *string `json:"address,omitempty"`
	ScriptPubKey   *string `json:"scriptPubKey,omitempty"`
	IsScript       *bool   `json:"isscript,omitempty"`
	IsWitness      *bool   `json:"iswitness,omitempty"`
	WitnessVersion *int64  `json:"witness_version,omitempty"`
	WitnessProgram *string `json:"witness_program,omitempty"`
}

// EstimateSmartFee estimates the fee rate for confirmation within confTarget blocks.
func (c *Client) EstimateSmartFee(ctx context.Context, confTarget int) (EstimateSmartFee, error) {
	if err := client.CheckVar("conf_target", confTarget, "gte=1,lte=1008"); err != nil {
		return EstimateSmartFee{}, err
	}
	return client.Do[EstimateSmartFee](ctx, c.Base, "estimatesmartfee", confTarget)
}

// ValidateAddress reports whether address is valid on the daemon's chain.
func (c *Client) ValidateAddress(ctx context.Context, address string) (ValidateAddress, error) {
	return client.Do[ValidateAddress](ctx, c.Base, "validateaddress", address)
}
