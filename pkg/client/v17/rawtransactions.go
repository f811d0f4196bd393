package v17

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
)

// GetRawTransactionVerbose is the result of getrawtransaction with verbose=true.
type GetRawTransactionVerbose struct {
	Txid          string  `json:"txid"`
	Hash          string  `json:"hash"`
	Size          int64   `json:"size"`
	VSize         int64   `json:"vsize"`
	Weight        int64   `json:"weight"`
	Version       int64   `json:"version"`
	LockTime      int64   `json:"locktime"`
	Vin           []TxIn  `json:"vin"`
	Vout          []TxOut `json:"vout"`
	Hex           string  `json:"hex"`
	BlockHash     *string `json:"blockhash,omitempty"`
	Confirmations *int64  `json:"confirmations,omitempty"`
	Time          *int64  `json:"time,omitempty"`
	BlockTime     *int64  `json:"blocktime,omitempty"`
}

// TxIn is a transaction input. Coinbase inputs carry Coinbase instead of an outpoint.
type TxIn struct {
	Txid        *string    `json:"txid,omitempty"`
	Vout        *int64     `json:"vout,omitempty"`
	ScriptSig   *ScriptSig `json:"scriptSig,omitempty"`
	Coinbase    *string    `json:"coinbase,omitempty"`
	TxInWitness []string   `json:"txinwitness,omitempty"`
	Sequence    int64      `json:"sequence"`
}

// ScriptSig is an input script in asm and hex.
type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

// TxOut is a decoded transaction output.
type TxOut struct {
	Value        float64      `json:"value"`
	N            int64        `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

// ScriptPubKey reports Addresses up to v21 and Address from v22.
type ScriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	Type      string   `json:"type"`
	ReqSigs   *int64   `json:"reqSigs,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
}

// GetRawTransaction returns the serialized transaction as hex.
func (c *Client) GetRawTransaction(ctx context.Context, txid string) (string, error) {
	if err := client.CheckVar("txid", txid, "len=64,hexadecimal"); err != nil {
		return "", err
	}
	return client.Do[string](ctx, c.Base, "getrawtransaction", txid, false)
}

// GetRawTransactionVerbose returns the decoded transaction. Without -txindex only
// mempool and wallet transactions are found.
func (c *Client) GetRawTransactionVerbose(ctx context.Context, txid string) (GetRawTransactionVerbose, error) {
	if err := client.CheckVar("txid", txid, "len=64,hexadecimal"); err != nil {
		return GetRawTransactionVerbose{}, err
	}
	return client.Do[GetRawTransactionVerbose](ctx, c.Base, "getrawtransaction", txid, true)
}

// SendRawTransaction broadcasts a serialized transaction and returns its txid.
func (c *Client) SendRawTransaction(ctx context.Context, txHex string) (string, error) {
	if err := client.CheckVar("hexstring", txHex, "required,hexadecimal"); err != nil {
		return "", err
	}
	return client.Do[string](ctx, c.Base, "sendrawtransaction", txHex)
}
