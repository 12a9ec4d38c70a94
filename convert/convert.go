// Package convert converts bigint.Ints to and from math/big integers and
// github.com/shopspring/decimal decimals.
//
// Conversions go through the decimal string representation, which all three
// types share.
package convert

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/db47h/bigint"
)

// ToBig returns x as a *big.Int.
func ToBig(x bigint.Int) *big.Int {
	z, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic("convert: invalid Int " + x.String())
	}
	return z
}

// FromBig returns the Int of value x. A nil x yields 0.
func FromBig(x *big.Int) bigint.Int {
	if x == nil {
		return bigint.Int{}
	}
	return bigint.MustParse(x.String())
}

// ToDecimal returns x as a decimal.Decimal with exponent 0.
func ToDecimal(x bigint.Int) decimal.Decimal {
	return decimal.NewFromBigInt(ToBig(x), 0)
}

// FromDecimal returns the Int of value d. It fails if d has a fractional part.
func FromDecimal(d decimal.Decimal) (bigint.Int, error) {
	i := d.Truncate(0)
	if !d.Equal(i) {
		return bigint.Int{}, errors.Errorf("convert: %s is not an integer", d)
	}
	x, err := bigint.Parse(i.String())
	if err != nil {
		return bigint.Int{}, errors.Wrapf(err, "convert: cannot convert %s", d)
	}
	return x, nil
}
