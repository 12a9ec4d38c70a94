package bigint

// Inc increments z by one and returns the new value (prefix increment).
func (z *Int) Inc() Int {
	m := z.mag()
	if z.IsNegative() {
		// -|z| + 1 = -(|z| - 1)
		*z = fromDec(m.decr(), true)
	} else {
		*z = fromDec(m.incr(), false)
	}
	return *z
}

// PostInc increments z by one and returns the value z had before the
// increment (postfix increment).
func (z *Int) PostInc() Int {
	old := *z
	z.Inc()
	return old
}

// Dec decrements z by one and returns the new value (prefix decrement).
func (z *Int) Dec() Int {
	m := z.mag()
	switch {
	case z.IsNegative():
		// -|z| - 1 = -(|z| + 1)
		*z = fromDec(m.incr(), true)
	case m.isZero():
		*z = fromDec(m.incr(), true)
	default:
		*z = fromDec(m.decr(), false)
	}
	return *z
}

// PostDec decrements z by one and returns the value z had before the
// decrement (postfix decrement).
func (z *Int) PostDec() Int {
	old := *z
	z.Dec()
	return old
}
