package v26

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
)

// GetPrioritisedTransactions maps txid to the fee delta applied with prioritisetransaction.
type GetPrioritisedTransactions map[string]PrioritisedTransaction

// PrioritisedTransaction is a fee delta applied with PrioritiseTransaction.
type PrioritisedTransaction struct {
	FeeDelta    int64  `json:"fee_delta"`
	InMempool   bool   `json:"in_mempool"`
	ModifiedFee *int64 `json:"modified_fee,omitempty"`
}

// GetPrioritisedTransactions returns the fee deltas keyed by txid.
func (c *Client) GetPrioritisedTransactions(ctx context.Context) (GetPrioritisedTransactions, error) {
	return client.Do[GetPrioritisedTransactions](ctx, c.Base, "getprioritisedtransactions")
}
