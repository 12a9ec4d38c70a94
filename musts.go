package bigint

import "fmt"

// MustParse is like [Parse] but panics if s is not a valid Int. It simplifies
// safe initialization of global variables holding constants.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustFromSlots is like [NewFromSlots] but panics if s is not a valid slot
// sequence.
func MustFromSlots(s []int) Int {
	x, err := NewFromSlots(s)
	if err != nil {
		panic(fmt.Sprintf("MustFromSlots(%v) failed: %v", s, err))
	}
	return x
}
