package model

// CreateWallet is the canonical result of createwallet.
type CreateWallet struct {
	Name     string
	Warnings []string
}

// GetBalance is the canonical result of getbalance.
type GetBalance struct {
	Balance Amount
}

// ListUnspent is the canonical result of listunspent.
type ListUnspent []UnspentOutput

// UnspentOutput is one entry of listunspent.
type UnspentOutput struct {
	Txid          string
	Vout          uint32
	Address       string
	Label         string
	ScriptPubKey  string
	Amount        Amount
	Confirmations uint32
	RedeemScript  string
	Spendable     bool
	Solvable      bool
	Safe          bool
}
