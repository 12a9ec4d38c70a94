package bigint

import (
	"fmt"
	"math"
)

// An Int represents a signed integer of arbitrary size.
//
// The value is stored as a sequence of decimal digit slots, most significant
// first. The sign of the whole value is carried by the first slot only; all
// other slots hold a digit in 0..9. There are no leading zero slots, and zero
// is the single slot 0. This makes the representation canonical: two Ints are
// equal if and only if their slots are equal.
//
// The zero value for an Int represents 0 and is ready to use.
//
// Ints are values: copying an Int copies its value. Operations never modify
// the slots of their operands, and the mutating methods Inc, Dec, PostInc and
// PostDec replace the receiver's slots rather than writing into them, so
// copies are never affected.
type Int struct {
	slots []int8
}

var zeroSlots = []int8{0}

// New returns an Int set to 0. It is equivalent to Int{}.
func New() Int {
	return Int{}
}

// NewFromInt64 returns an Int set to the value of x.
func NewFromInt64(x int64) Int {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	var m dec
	for u > 0 {
		m = append(m, int8(u%10))
		u /= 10
	}
	return fromDec(m, x < 0)
}

// NewFromSlots returns an Int from a slot sequence, most significant first,
// with the sign carried by s[0]. An empty s yields 0. The slice is copied.
//
// NewFromSlots fails with LeadingZero if s[0] is 0 and s has more than one
// element, with NegativeNonLeading if any element other than s[0] is negative,
// and with MultiDigit if the absolute value of any element is 10 or more.
func NewFromSlots(s []int) (Int, error) {
	if len(s) == 0 {
		return Int{}, nil
	}
	if s[0] == 0 && len(s) > 1 {
		return Int{}, newSlotsError(LeadingZero, s, 0)
	}
	slots := make([]int8, len(s))
	for i, d := range s {
		if i > 0 && d < 0 {
			return Int{}, newSlotsError(NegativeNonLeading, s, i)
		}
		if d <= -10 || d >= 10 {
			return Int{}, newSlotsError(MultiDigit, s, i)
		}
		slots[i] = int8(d)
	}
	return Int{slots: slots}, nil
}

// digits returns the slots of x. The result must not be modified.
func (x Int) digits() []int8 {
	if len(x.slots) == 0 {
		return zeroSlots
	}
	return x.slots
}

// mag returns a fresh copy of |x| with room for one more digit.
func (x Int) mag() dec {
	s := x.digits()
	n := len(s)
	z := make(dec, n, n+1)
	for i, d := range s {
		if d < 0 {
			d = -d
		}
		z[n-1-i] = d
	}
	return z
}

// fromDec returns the Int of magnitude m, negated if neg is set and m is not
// zero. m is normalized first and is not retained.
func fromDec(m dec, neg bool) Int {
	m = m.norm()
	n := len(m)
	s := make([]int8, n)
	for i, d := range m {
		s[n-1-i] = d
	}
	if neg {
		s[0] = -s[0]
	}
	return Int{slots: s}
}

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool {
	return len(x.slots) > 0 && x.slots[0] < 0
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return len(x.slots) == 0 || len(x.slots) == 1 && x.slots[0] == 0
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
func (x Int) Sign() int {
	switch {
	case x.IsNegative():
		return -1
	case x.IsZero():
		return 0
	}
	return 1
}

// Len returns the number of decimal digits of |x|. Len of 0 is 1.
func (x Int) Len() int {
	return len(x.digits())
}

// Slots returns a copy of the slot sequence of x, most significant first,
// with the sign carried by the first element.
func (x Int) Slots() []int {
	s := x.digits()
	r := make([]int, len(s))
	for i, d := range s {
		r[i] = int(d)
	}
	return r
}

// Magnitude returns the digits of |x|, most significant first.
func (x Int) Magnitude() []int {
	r := x.Slots()
	if r[0] < 0 {
		r[0] = -r[0]
	}
	return r
}

// Int64 returns the int64 value of x and reports whether x fits in an int64.
// If it does not, the result is undefined.
func (x Int) Int64() (int64, bool) {
	const cutoff = math.MaxUint64 / 10
	var u uint64
	for _, d := range x.Magnitude() {
		if u > cutoff {
			return 0, false
		}
		u *= 10
		v := u + uint64(d)
		if v < u {
			return 0, false
		}
		u = v
	}
	if x.IsNegative() {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// validate panics if x does not satisfy the representation invariants.
func (x Int) validate() {
	s := x.slots
	if len(s) == 0 {
		return
	}
	if len(s) > 1 && s[0] == 0 {
		panic(fmt.Sprintf("bigint: leading zero in %v", s))
	}
	for i, d := range s {
		if i > 0 && d < 0 {
			panic(fmt.Sprintf("bigint: negative slot %d in %v", i, s))
		}
		if d <= -10 || d >= 10 {
			panic(fmt.Sprintf("bigint: multi-digit slot %d in %v", i, s))
		}
	}
}
