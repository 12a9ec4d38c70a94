// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package bigint

import (
	"bytes"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
//
// The encoding is a version byte, a sign byte and the digits of |x| packed
// two per byte (BCD), most significant first. An odd digit count is padded
// with a leading zero digit.
func (x Int) GobEncode() ([]byte, error) {
	m := x.Magnitude()
	n := (len(m) + 1) / 2
	buf := make([]byte, 2+n)
	buf[0] = intGobVersion
	if x.IsNegative() {
		buf[1] = 1
	}

	i := len(m) - 1
	for j := len(buf) - 1; j >= 2; j-- {
		b := byte(m[i])
		if i > 0 {
			b |= byte(m[i-1]) << 4
		}
		buf[j] = b
		i -= 2
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	if buf[0] != intGobVersion {
		return errors.Errorf("Int.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 3 || buf[1] > 1 {
		return errors.New("Int.GobDecode: invalid encoding")
	}

	m := make(dec, 0, 2*(len(buf)-2))
	for j := len(buf) - 1; j >= 2; j-- {
		lo, hi := buf[j]&0x0f, buf[j]>>4
		if lo > 9 || hi > 9 {
			return errors.Errorf("Int.GobDecode: invalid BCD byte %#02x", buf[j])
		}
		m = append(m, int8(lo), int8(hi))
	}
	*z = fromDec(m, buf[1] == 1)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x Int) MarshalText() (text []byte, err error) {
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	x, err := Parse(string(text))
	if err != nil {
		return errors.Wrapf(err, "bigint: cannot unmarshal %q into a *bigint.Int", text)
	}
	*z = x
	return nil
}

// MarshalJSON implements the json.Marshaler interface. Ints are encoded as
// bare JSON numbers.
func (x Int) MarshalJSON() ([]byte, error) {
	return x.Append(nil), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts a JSON
// number or a string holding a number. null is a no-op.
func (z *Int) UnmarshalJSON(text []byte) error {
	if bytes.Equal(text, []byte("null")) {
		return nil
	}
	if n := len(text); n >= 2 && text[0] == '"' && text[n-1] == '"' {
		text = text[1 : n-1]
	}
	return z.UnmarshalText(text)
}
