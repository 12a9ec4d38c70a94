package math

import (
	"github.com/db47h/bigint"
)

// constants
var (
	one = bigint.NewFromInt64(1)
)

// Pow returns x**n, with 0**0 == 1.
func Pow(x bigint.Int, n uint64) bigint.Int {
	if n == 0 {
		return one
	}
	y := one
	z := x

	for n > 1 {
		if n%2 != 0 {
			y = y.Mul(z)
		}
		z = z.Mul(z)
		if z.IsZero() {
			return z
		}
		n /= 2
	}
	if y.Equal(one) {
		return z
	}
	return z.Mul(y)
}

// Sum returns the sum of xs. The sum of no values is 0.
func Sum(xs ...bigint.Int) bigint.Int {
	var z bigint.Int
	for _, x := range xs {
		z = z.Add(x)
	}
	return z
}

// Product returns the product of xs. The product of no values is 1.
func Product(xs ...bigint.Int) bigint.Int {
	z := one
	for _, x := range xs {
		if x.IsZero() {
			return x
		}
		z = z.Mul(x)
	}
	return z
}
