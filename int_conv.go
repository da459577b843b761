// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements int-to-string conversion functions.

package bigint

import (
	"fmt"
	"io"
)

// Parse returns a new Int set to the value of s. s must be of the form
//
//	number = [ "-" ] digit { digit } .
//	digit  = "0" ... "9" .
//
// An empty s is 0. Any other malformed input is reported as a *ParseError.
func Parse(s string) (*Int, error) {
	z, err := new(Int).parse(s)
	if err != nil {
		return nil, err
	}
	return z, nil
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies
// safe initialization of global variables holding Int constants.
func MustParse(s string) *Int {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. See Parse for the accepted syntax. If SetString fails, z is left
// unchanged and the returned value is nil.
func (z *Int) SetString(s string) (*Int, bool) {
	if _, err := z.parse(s); err != nil {
		return nil, false
	}
	return z, true
}

// parse sets z to the value of s. The whole of s is validated before z is
// modified: on error z keeps its previous value.
func (z *Int) parse(s string) (*Int, error) {
	digits := s
	neg := len(s) > 0 && s[0] == '-'
	if neg {
		digits = s[1:]
		if digits == "" {
			return nil, &ParseError{Input: s, Offset: 1, Err: ErrNoDigits}
		}
	}
	for i := 0; i < len(digits); i++ {
		if ch := digits[i]; ch < '0' || '9' < ch {
			return nil, &ParseError{Input: s, Offset: len(s) - len(digits) + i, Err: ErrSyntax}
		}
	}

	z.abs, _ = z.abs.setDigits(digits)
	z.neg = len(z.abs) > 0 && neg // 0 has no sign
	return z, nil
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.Append(nil))
}

// Append appends the decimal representation of x, as generated by
// x.String(), to buf and returns the extended buffer.
func (x *Int) Append(buf []byte) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	if x.neg {
		buf = append(buf, '-')
	}
	return x.abs.appendDecimal(buf)
}

// writeMultiple writes text to s count times.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

var _ fmt.Formatter = intOne // *Int must implement fmt.Formatter

// Format implements fmt.Formatter. The verbs 'd', 's' and 'v' print x in
// decimal; 'x' prints its limbs in hexadecimal, most significant first and
// separated by '_'. Width and the '+', ' ', '0' and '-' flags behave as they
// do for Go integers. Precision is ignored.
func (x *Int) Format(s fmt.State, ch rune) {
	var digits []byte
	switch ch {
	case 'd', 's', 'v', 'x':
		if x == nil {
			fmt.Fprint(s, "<nil>")
			return
		}
		if ch == 'x' {
			digits = x.abs.appendLimbs(nil)
		} else {
			digits = x.abs.appendDecimal(nil)
		}
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", ch, x.String())
		return
	}

	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	// layout: [spaces][sign][zeros][digits][spaces]
	var lpad, zpad, rpad int
	if width, ok := s.Width(); ok {
		if d := width - len(sign) - len(digits); d > 0 {
			switch {
			case s.Flag('-'):
				rpad = d
			case s.Flag('0'):
				zpad = d
			default:
				lpad = d
			}
		}
	}

	writeMultiple(s, " ", lpad)
	writeMultiple(s, sign, 1)
	writeMultiple(s, "0", zpad)
	s.Write(digits)
	writeMultiple(s, " ", rpad)
}

var _ fmt.Scanner = intOne // *Int must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// next whitespace-delimited token, which must be a decimal integer as
// accepted by Parse. It accepts the formats 'd', 's' and 'v'. z is left
// unchanged if the token is malformed.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'd', 's', 'v':
		// ok
	default:
		return fmt.Errorf("bigint: invalid verb %%%c for Int.Scan", ch)
	}
	s.SkipSpace()
	tok, err := s.Token(true, nil)
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return io.ErrUnexpectedEOF
	}
	_, err = z.parse(string(tok))
	return err
}
