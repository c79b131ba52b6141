package price

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

var (
	ErrEmptyValue    = xerrors.New("empty value")
	ErrInvalidValue  = xerrors.New("invalid value")
	ErrTooManyDigits = xerrors.New("value has more decimals than the currency supports")
)

// FromWei scales an on-chain integer amount down by decimals
func FromWei(value *big.Int, decimals int32) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -decimals)
}

// ToWei parses a user entered amount and scales it up by decimals.
// Negative values and values finer than the currency precision are rejected.
func ToWei(value string, decimals int32) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrEmptyValue
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, xerrors.Errorf("%w: %s", ErrInvalidValue, value)
	}
	if d.Sign() < 0 {
		return nil, xerrors.Errorf("%w: %s", ErrInvalidValue, value)
	}
	scaled := d.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, ErrTooManyDigits
	}
	return scaled.BigInt(), nil
}

// Display renders "<amount> <symbol>" without trailing zeros
func Display(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		return amount.String()
	}
	return amount.String() + " " + symbol
}
