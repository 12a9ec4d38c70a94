// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// This file implements the digit-level kernels. All operands are normalized
// decs (little-endian magnitudes); results are normalized.

// add sets z to x+y and returns z.
//
// The shorter operand is conceptually padded with zero digits on the most
// significant side. Any digit reaching 10 keeps its value mod 10 and carries 1
// into the next digit; a carry out of the top digit adds one digit to z.
func (z dec) add(x, y dec) dec {
	m := len(x)
	n := len(y)
	if m < n {
		return z.add(y, x)
	}
	// m >= n

	z = z.make(m + 1)
	var c int8
	for i := 0; i < m; i++ {
		s := x[i] + c
		if i < n {
			s += y[i]
		}
		c = 0
		if s >= 10 {
			s -= 10
			c = 1
		}
		z[i] = s
	}
	z[m] = c

	return z.norm()
}

// sub sets z to x-y and returns z. x must be >= y.
//
// When a minuend digit is smaller than the subtrahend digit, 10 is added to it
// and the borrow is taken from the next non-zero digit of the minuend; the zero
// digits skipped on the way become 9.
func (z dec) sub(x, y dec) dec {
	m := len(x)
	n := len(y)
	if m < n {
		panic("bigint: underflow")
	}

	z = z.make(m)
	copy(z, x)
	for i := 0; i < n; i++ {
		d := y[i]
		if z[i] < d {
			j := i + 1
			for j < m && z[j] == 0 {
				z[j] = 9
				j++
			}
			if j == m {
				panic("bigint: underflow")
			}
			z[j]--
			z[i] += 10
		}
		z[i] -= d
	}

	return z.norm()
}

// mul sets z to x*y and returns z using grade school multiplication.
//
// For every digit y[i], the partial product y[i]*x is computed with in-row
// carries so that each of its digits stays below 10, then added into z at an
// offset of i digits.
func (z dec) mul(x, y dec) dec {
	if x.isZero() || y.isZero() {
		return z.make(1).setZero()
	}

	m := len(x)
	n := len(y)
	z = z.make(m + n)
	for i := range z {
		z[i] = 0
	}

	p := make(dec, m+1) // partial product
	for i, d := range y {
		if d == 0 {
			continue
		}
		var c int8
		for j, e := range x {
			t := d*e + c // <= 9*9 + 8
			p[j] = t % 10
			c = t / 10
		}
		p[m] = c

		// z[i:] += p
		c = 0
		k := i
		for _, t := range p {
			s := z[k] + t + c
			c = 0
			if s >= 10 {
				s -= 10
				c = 1
			}
			z[k] = s
			k++
		}
		// a carry left at this point always fits in z since x*y < 10^(m+n)
		for ; c != 0; k++ {
			s := z[k] + c
			c = 0
			if s >= 10 {
				s -= 10
				c = 1
			}
			z[k] = s
		}
	}

	return z.norm()
}

func (z dec) setZero() dec {
	z[0] = 0
	return z[:1]
}
