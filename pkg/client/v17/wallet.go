package v17

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/client/model"
)

// CreateWallet is the result of createwallet.
type CreateWallet struct {
	Name    string `json:"name"`
	Warning string `json:"warning"`
}

// LoadWallet is the result of loadwallet.
type LoadWallet struct {
	Name    string `json:"name"`
	Warning string `json:"warning"`
}

// GetBalance is the result of getbalance, in BTC.
type GetBalance float64

// ListUnspent is the result of listunspent.
type ListUnspent []UnspentOutput

// UnspentOutput is one entry of listunspent.
type UnspentOutput struct {
	Txid          string  `json:"txid"`
	Vout          int64   `json:"vout"`
	Address       *string `json:"address,omitempty"`
	Label         *string `json:"label,omitempty"`
	ScriptPubKey  string  `json:"scriptPubKey"`
	Amount        float64 `json:"amount"`
	Confirmations int64   `json:"confirmations"`
	RedeemScript  *string `json:"redeemScript,omitempty"`
	Spendable     bool    `json:"spendable"`
	Solvable      bool    `json:"solvable"`
	Safe          bool    `json:"safe"`
}

// ListUnspentOptions narrows listunspent. A zero MaxConf means no upper bound.
type ListUnspentOptions struct {
	MinConf       int      `validate:"gte=0"`
	MaxConf       int      `validate:"omitempty,gtefield=MinConf"`
	Addresses     []string `validate:"dive,required"`
	IncludeUnsafe *bool
}

const maxConfirmations = 9_999_999

// AddressType selects the output type getnewaddress derives.
type AddressType string

const (
	AddressLegacy     AddressType = "legacy"
	AddressP2SHSegwit AddressType = "p2sh-segwit"
	AddressBech32     AddressType = "bech32"
)

// CreateWallet creates and loads a wallet with default options.
func (c *Client) CreateWallet(ctx context.Context, name string) (CreateWallet, error) {
	return client.Do[CreateWallet](ctx, c.Base, "createwallet", name)
}

// LoadWallet loads a wallet from the wallet directory.
func (c *Client) LoadWallet(ctx context.Context, name string) (LoadWallet, error) {
	if err := client.CheckVar("filename", name, "required"); err != nil {
		return LoadWallet{}, err
	}
	return client.Do[LoadWallet](ctx, c.Base, "loadwallet", name)
}

// ListWallets returns the names of the loaded wallets.
func (c *Client) ListWallets(ctx context.Context) ([]string, error) {
	return client.Do[[]string](ctx, c.Base, "listwallets")
}

// GetNewAddress derives an address of the wallet default type.
func (c *Client) GetNewAddress(ctx context.Context) (string, error) {
	return client.Do[string](ctx, c.Base, "getnewaddress")
}

// GetNewAddressWith derives an address of the given type under label.
func (c *Client) GetNewAddressWith(ctx context.Context, label string, addrType AddressType) (string, error) {
	if err := client.CheckVar("address_type", string(addrType), "oneof=legacy p2sh-segwit bech32 bech32m"); err != nil {
		return "", err
	}
	return client.Do[string](ctx, c.Base, "getnewaddress", label, addrType)
}

// GetBalance returns the trusted balance with at least one confirmation.
func (c *Client) GetBalance(ctx context.Context) (GetBalance, error) {
	return client.Do[GetBalance](ctx, c.Base, "getbalance")
}

// GetBalanceWithMinConf counts only outputs with at least minConf confirmations.
func (c *Client) GetBalanceWithMinConf(ctx context.Context, minConf int) (GetBalance, error) {
	if err := client.CheckVar("minconf", minConf, "gte=0"); err != nil {
		return 0, err
	}
	return client.Do[GetBalance](ctx, c.Base, "getbalance", "*", minConf)
}

// ListUnspent lists wallet outputs. A nil opts uses the daemon defaults.
func (c *Client) ListUnspent(ctx context.Context, opts *ListUnspentOptions) (ListUnspent, error) {
	if opts == nil {
		return client.Do[ListUnspent](ctx, c.Base, "listunspent")
	}
	if err := client.CheckStruct(opts); err != nil {
		return nil, err
	}
	maxConf := opts.MaxConf
	if maxConf == 0 {
		maxConf = maxConfirmations
	}
	addresses := opts.Addresses
	if addresses == nil {
		addresses = []string{}
	}
	includeUnsafe := true
	if opts.IncludeUnsafe != nil {
		includeUnsafe = *opts.IncludeUnsafe
	}
	return client.Do[ListUnspent](ctx, c.Base, "listunspent", opts.MinConf, maxConf, addresses, includeUnsafe)
}

// SendToAddress pays amount to address and returns the txid.
func (c *Client) SendToAddress(ctx context.Context, address string, amount model.Amount) (string, error) {
	if err := client.CheckVar("address", address, "required"); err != nil {
		return "", err
	}
	if err := client.CheckVar("amount", int64(amount), "gt=0"); err != nil {
		return "", err
	}
	return client.Do[string](ctx, c.Base, "sendtoaddress", address, amount)
}
