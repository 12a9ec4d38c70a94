// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements arbitrary-precision signed integers stored as
sequences of decimal digits.

Unlike math/big, the value of an Int is held as one decimal digit per slot,
most significant first, and all arithmetic is carried out digit by digit in
base 10 with the usual carry and borrow propagation. The sign of the value is
carried by the first slot: -123 is stored as the slots [-1 2 3]. There are no
leading zero slots and zero is [0], so the representation of a value is
unique.

The zero value for an Int corresponds to 0. Thus, new values can be declared
in the usual ways and denote 0 without further initialization:

    var x bigint.Int  // x is an Int of value 0

Other values are created with one of the constructors:

    x, err := bigint.Parse("-9223372036854775807000")
    y := bigint.NewFromInt64(123400)
    z, err := bigint.NewFromSlots([]int{-1, 0, 0, 0, 4})

Parse and NewFromSlots validate their input and report failures as an *Error
whose Kind is one of NotNumerical, NegativeNonLeading, MultiDigit or
LeadingZero. The sentinels ErrNotNumerical, ErrNegativeNonLeading,
ErrMultiDigit and ErrLeadingZero can be used with errors.Is.

Ints are immutable values. Arithmetic operations return a new Int and never
modify their operands:

    sum := x.Add(y)
    diff := x.Sub(y)
    prod := x.Mul(y)
    neg := x.Neg()

Arithmetic and comparison never fail. Multiplication uses the grade school
algorithm and is quadratic in the number of digits; there is no division.

The only mutating operations are increment and decrement, in prefix and
postfix forms:

    x.Inc()       // ++x: increments x and returns the new value
    x.PostInc()   // x++: increments x and returns the old value
    x.Dec()       // --x
    x.PostDec()   // x--

Ints are ordered by Cmp, and by the Less, LessEq, Greater and GreaterEq
predicates. Equal compares two values for equality; the == operator must not
be used on Ints.

Int implements fmt.Formatter and fmt.Stringer, *Int implements fmt.Scanner,
and Ints can be marshaled as text, JSON numbers or gobs.
*/
package bigint
