package bigint

// Equal reports whether x == y. Since the representation is canonical, this
// is a plain comparison of the slots.
func (x Int) Equal(y Int) bool {
	a, b := x.digits(), y.digits()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x Int) Cmp(y Int) int {
	a, b := x.digits(), y.digits()
	xneg, yneg := a[0] < 0, b[0] < 0
	switch {
	case xneg && !yneg:
		return -1
	case !xneg && yneg:
		return 1
	case xneg:
		// the larger magnitude is the smaller value
		return -cmpMag(a, b)
	}
	return cmpMag(a, b)
}

// cmpMag compares the magnitudes of the slot sequences a and b: the shorter
// one is smaller, otherwise the first differing slot decides.
func cmpMag(a, b []int8) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := range a {
		x, y := a[i], b[i]
		if i == 0 && x < 0 {
			x = -x
		}
		if i == 0 && y < 0 {
			y = -y
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// Less reports whether x < y.
func (x Int) Less(y Int) bool { return x.Cmp(y) < 0 }

// LessEq reports whether x <= y.
func (x Int) LessEq(y Int) bool { return x.Less(y) || x.Equal(y) }

// Greater reports whether x > y.
func (x Int) Greater(y Int) bool { return x.Cmp(y) > 0 }

// GreaterEq reports whether x >= y.
func (x Int) GreaterEq(y Int) bool { return x.Greater(y) || x.Equal(y) }

// Compare returns x.Cmp(y). It can be passed to slices.SortFunc.
func Compare(x, y Int) int {
	return x.Cmp(y)
}
