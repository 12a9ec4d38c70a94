package math

import "github.com/db47h/bigint"

// FMA returns x * y + u.
//
// This function is a proxy for x.Mul(y).Add(u)
func FMA(x, y, u bigint.Int) bigint.Int {
	return x.Mul(y).Add(u)
}

// Abs returns |x|.
//
// This function is a proxy for x.Abs()
func Abs(x bigint.Int) bigint.Int {
	return x.Abs()
}
