package bigint

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// An ErrorKind identifies why an Int could not be constructed.
type ErrorKind uint8

// Construction failures.
const (
	NotNumerical       ErrorKind = iota + 1 // a character other than a decimal digit or a single leading '-'
	NegativeNonLeading                      // a negative slot other than the first
	MultiDigit                              // a slot whose absolute value is 10 or more
	LeadingZero                             // a leading zero in a non-zero value
)

var kindText = [...]string{
	NotNumerical:       "input is not numerical",
	NegativeNonLeading: "negative slot other than the first",
	MultiDigit:         "slot is not a single digit",
	LeadingZero:        "leading zero",
}

func (k ErrorKind) String() string {
	if k == 0 || int(k) >= len(kindText) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindText[k]
}

// An Error is returned by the constructors when their input does not
// represent a valid Int. Input is the offending string or slot sequence and
// Pos the offset of the first invalid character or slot.
type Error struct {
	Kind  ErrorKind
	Input string
	Pos   int
}

// Sentinel errors for use with errors.Is.
var (
	ErrNotNumerical       = &Error{Kind: NotNumerical}
	ErrNegativeNonLeading = &Error{Kind: NegativeNonLeading}
	ErrMultiDigit         = &Error{Kind: MultiDigit}
	ErrLeadingZero        = &Error{Kind: LeadingZero}
)

func (e *Error) Error() string {
	if e.Input == "" {
		return "bigint: " + e.Kind.String()
	}
	return fmt.Sprintf("bigint: %s at offset %d in %q", e.Kind, e.Pos, e.Input)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the *Error in err's chain, if any.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newError(kind ErrorKind, input string, pos int) error {
	return errors.WithStack(&Error{Kind: kind, Input: input, Pos: pos})
}

func newSlotsError(kind ErrorKind, s []int, pos int) error {
	return newError(kind, fmt.Sprint(s), pos)
}
