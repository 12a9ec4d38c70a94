// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bigint"
)

// MulRange returns the product of all integers in the range [a, b].
// If a > b (empty range), the result is 1.
func MulRange(a, b int64) bigint.Int {
	switch {
	case a > b:
		return one // empty range
	case a <= 0 && b >= 0:
		return bigint.Int{} // range includes 0
	}
	// a <= b && (b < 0 || a > 0)
	z := one
	for i := a; ; i++ {
		z = z.Mul(bigint.NewFromInt64(i))
		if i == b {
			break
		}
	}
	return z
}

// Factorial returns n!.
func Factorial(n int64) bigint.Int {
	if n < 0 {
		panic("math: Factorial of negative number")
	}
	return MulRange(1, n)
}

// Binomial returns the binomial coefficient C(n, k), or 0 if k > n.
//
// The coefficient is computed by building row n of Pascal's triangle with
// additions only, keeping the first min(k, n-k)+1 entries of each row.
func Binomial(n, k int64) bigint.Int {
	if n < 0 || k < 0 {
		panic("math: Binomial of negative number")
	}
	if k > n {
		return bigint.Int{}
	}
	if k > n-k {
		k = n - k
	}
	row := make([]bigint.Int, k+1) // zero values are 0
	row[0] = one
	for i := int64(1); i <= n; i++ {
		j := i
		if j > k {
			j = k
		}
		for ; j > 0; j-- {
			row[j] = row[j].Add(row[j-1])
		}
	}
	return row[k]
}

// Fibonacci returns the n-th Fibonacci number, with Fibonacci(0) == 0 and
// Fibonacci(1) == 1.
func Fibonacci(n uint64) bigint.Int {
	var a bigint.Int
	b := one
	for ; n > 0; n-- {
		a, b = b, a.Add(b)
	}
	return a
}
