// This file implements the fmt.Formatter and fmt.Scanner interfaces.

package bigint

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var _ fmt.Formatter = Int{}     // Int must implement fmt.Formatter
var _ fmt.Scanner = (*Int)(nil) // *Int must implement fmt.Scanner

// Format implements fmt.Formatter. It accepts the verbs 'd', 's' and 'v',
// the '+' and ' ' flags for the sign of non-negative values, and a width with
// optional '-' (left justify) or '0' (zero padding after the sign) flags.
func (x Int) Format(s fmt.State, verb rune) {
	switch verb {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", verb, x.String())
		return
	}

	var sign string
	buf := x.Append(nil)
	switch {
	case x.IsNegative():
		sign = "-"
		buf = buf[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var padding int
	if width, ok := s.Width(); ok && width > len(sign)+len(buf) {
		padding = width - len(sign) - len(buf)
	}

	switch {
	case s.Flag('-'):
		fmt.Fprint(s, sign, string(buf), strings.Repeat(" ", padding))
	case s.Flag('0'):
		fmt.Fprint(s, sign, strings.Repeat("0", padding), string(buf))
	default:
		fmt.Fprint(s, strings.Repeat(" ", padding), sign, string(buf))
	}
}

// byteReader is a local wrapper around fmt.ScanState;
// it implements the io.ByteScanner interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = errors.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number. It accepts the verbs 'd', 's' and 'v'. The scanned token
// is validated as by Parse.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'd', 's', 'v':
	default:
		return errors.Errorf("bigint: invalid verb %c for Scan", ch)
	}
	s.SkipSpace()
	return z.scan(byteReader{s})
}
