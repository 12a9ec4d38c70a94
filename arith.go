// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// Neg returns -x. The negation of 0 is 0.
func (x Int) Neg() Int {
	s := x.digits()
	if s[0] == 0 {
		return Int{}
	}
	z := make([]int8, len(s))
	copy(z, s)
	z[0] = -z[0]
	return Int{slots: z}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.IsNegative() {
		return x.Neg()
	}
	return x
}

// Add returns the sum x+y.
//
// Only the sum of two non-negative values and the difference of two
// magnitudes are computed directly; every other sign combination is reduced
// to one of these two cases.
func (x Int) Add(y Int) Int {
	xneg, yneg := x.IsNegative(), y.IsNegative()
	switch {
	case !xneg && yneg:
		xm, ym := x.mag(), y.mag()
		if xm.cmp(ym) >= 0 {
			// x + y = x - |y|
			return fromDec(dec(nil).sub(xm, ym), false)
		}
		// x + y = -(|y| - x)
		return y.Neg().Add(x.Neg()).Neg()
	case xneg && !yneg:
		return y.Add(x)
	case xneg && yneg:
		// x + y = -(|x| + |y|)
		return x.Neg().Add(y.Neg()).Neg()
	}
	return fromDec(dec(nil).add(x.mag(), y.mag()), false)
}

// Sub returns the difference x-y, computed as x + (-y).
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns the product x*y. The product is negative if and only if
// exactly one non-zero operand is negative.
func (x Int) Mul(y Int) Int {
	neg := x.IsNegative() != y.IsNegative()
	return fromDec(dec(nil).mul(x.mag(), y.mag()), neg)
}
