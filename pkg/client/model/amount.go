package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SatoshiPerBitcoin is the number of satoshis in one BTC.
const SatoshiPerBitcoin = 100_000_000

// MaxMoney is the consensus cap on the total supply, in satoshis.
const MaxMoney = 21_000_000 * SatoshiPerBitcoin

// Amount is a signed quantity of satoshis.
type Amount int64

// AmountFromBTC converts the BTC float bitcoind puts on the wire. Values with more than
// eight decimals or beyond MaxMoney are rejected.
func AmountFromBTC(btc float64) (Amount, error) {
	return AmountFromDecimal(decimal.NewFromFloat(btc))
}

// AmountFromDecimal converts an exact BTC value.
func AmountFromDecimal(btc decimal.Decimal) (Amount, error) {
	sats := btc.Shift(8)
	if !sats.Equal(sats.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s BTC has sub-satoshi precision", ErrAmount, btc)
	}
	if sats.Abs().GreaterThan(decimal.NewFromInt(MaxMoney)) {
		return 0, fmt.Errorf("%w: %s BTC exceeds max money", ErrAmount, btc)
	}
	return Amount(sats.IntPart()), nil
}

// AmountPtrFromBTC is AmountFromBTC for optional fields.
func AmountPtrFromBTC(btc *float64) (*Amount, error) {
	if btc == nil {
		return nil, nil
	}
	a, err := AmountFromBTC(*btc)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// BTC returns the amount as an exact decimal number of bitcoin.
func (a Amount) BTC() decimal.Decimal {
	return decimal.New(int64(a), -8)
}

func (a Amount) String() string {
	return a.BTC().StringFixed(8) + " BTC"
}

// MarshalJSON encodes the amount as a BTC number, the form bitcoind expects in params.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.BTC().StringFixed(8)), nil
}

// UnmarshalJSON accepts a BTC number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAmount, err)
	}
	v, err := AmountFromDecimal(d)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
