// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// dec is an unsigned integer x of the form
//
//   x = x[n-1]*10^(n-1) + x[n-2]*10^(n-2) + ... + x[1]*10 + x[0]
//
// with 0 <= x[i] <= 9 and 0 <= i < n, stored in a slice of length n with the
// digits x[i] as the slice elements. That is, a dec holds the magnitude of an
// Int in little-endian order, which is the order all kernels iterate in.
//
// A dec is normalized if the slice contains no leading (most significant)
// zero digits. Unlike the Int representation, the normalized representation
// of 0 is dec{0}, never the empty slice. During arithmetic operations,
// denormalized values may occur but are always normalized before being
// converted back to an Int.
type dec []int8

func (z dec) make(n int) dec {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most decs start small and stay that way; don't over-allocate.
		return make(dec, 1)
	}
	// one extra digit for a carry escaping the top
	const e = 1
	return make(dec, n, n+e)
}

func (z dec) set(x dec) dec {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// norm truncates leading zero digits down to a single digit.
func (z dec) norm() dec {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return append(z[:0], 0)
	}
	return z[:i]
}

func (x dec) isZero() bool {
	return len(x) == 1 && x[0] == 0
}

// cmp compares the normalized values x and y and returns:
//
//   -1 if x <  y
//    0 if x == y
//   +1 if x >  y
//
func (x dec) cmp(y dec) (r int) {
	m := len(x)
	n := len(y)
	if m != n {
		r = 1
		if m < n {
			r = -1
		}
		return
	}
	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// incr adds 1 to x in place and returns x. The result is one digit longer
// than x if the carry escapes the most significant digit.
func (x dec) incr() dec {
	for i := range x {
		if x[i] < 9 {
			x[i]++
			return x
		}
		x[i] = 0
	}
	return append(x, 1)
}

// decr subtracts 1 from x in place and returns the normalized result. x must
// not be zero.
func (x dec) decr() dec {
	for i := range x {
		if x[i] > 0 {
			x[i]--
			return x.norm()
		}
		x[i] = 9
	}
	panic("bigint: decrement of zero magnitude")
}
