// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string conversion functions.

package bigint

import (
	"io"
)

// Parse returns the Int represented by s, which must match -?[0-9]+ with no
// leading zero unless the value is exactly 0 ("-0" is accepted as 0).
//
// Parse fails with LeadingZero if s starts with a 0 and has more digits,
// and with NotNumerical if s contains anything but decimal digits after an
// optional leading '-', including when s is empty or just "-". The returned
// Int is 0 if an error is reported.
func Parse(s string) (Int, error) {
	if len(s) == 0 {
		return Int{}, newError(NotNumerical, s, 0)
	}
	if s[0] == '0' && len(s) > 1 {
		return Int{}, newError(LeadingZero, s, 0)
	}

	i := 0
	neg := s[0] == '-'
	if neg {
		i = 1
		if len(s) == 1 || !isDigit(s[1]) {
			return Int{}, newError(NotNumerical, s, 1)
		}
		if s[1] == '0' && len(s) > 2 {
			return Int{}, newError(LeadingZero, s, 1)
		}
	}

	slots := make([]int8, 0, len(s)-i)
	for ; i < len(s); i++ {
		ch := s[i]
		if !isDigit(ch) {
			return Int{}, newError(NotNumerical, s, i)
		}
		slots = append(slots, int8(ch-'0'))
	}
	if neg {
		slots[0] = -slots[0]
	}
	return Int{slots: slots}, nil
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// scan reads the longest prefix of r of the form -?[0-9]* and parses it.
func (z *Int) scan(r io.ByteScanner) error {
	var buf []byte
	ch, err := r.ReadByte()
	if err == nil && ch == '-' {
		buf = append(buf, ch)
		ch, err = r.ReadByte()
	}
	for err == nil {
		if !isDigit(ch) {
			err = r.UnreadByte() // ch does not belong to the number anymore
			break
		}
		buf = append(buf, ch)
		ch, err = r.ReadByte()
	}
	if err != nil && err != io.EOF {
		return err
	}

	x, err := Parse(string(buf))
	if err != nil {
		return err
	}
	*z = x
	return nil
}

// String returns the decimal representation of x: the concatenation of its
// slots, with the sign of the first slot as a leading '-'.
func (x Int) String() string {
	return string(x.Append(nil))
}

// Append appends the decimal representation of x, as generated by
// x.String(), to buf and returns the extended buffer.
func (x Int) Append(buf []byte) []byte {
	s := x.digits()
	d := s[0]
	if d < 0 {
		buf = append(buf, '-')
		d = -d
	}
	buf = append(buf, byte('0'+d))
	for _, d := range s[1:] {
		buf = append(buf, byte('0'+d))
	}
	return buf
}
