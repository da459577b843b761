// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"errors"
	"strconv"
)

// An ErrDivisionByZero panic is raised by an Int division whose divisor is
// zero. The value-returning functions Quo, Rem and QuoRem return it as an
// error instead. All ErrDivisionByZero values are equal, so errors.Is matches
// any of them.
type ErrDivisionByZero struct{}

func (ErrDivisionByZero) Error() string {
	return "bigint: division by zero"
}

var (
	// ErrSyntax indicates that a value contains a character that is not part
	// of the decimal integer syntax.
	ErrSyntax = errors.New("invalid syntax")
	// ErrNoDigits indicates that a sign was not followed by any digit.
	ErrNoDigits = errors.New("number has no digits")
)

// A ParseError records a failed conversion of decimal text to an Int.
type ParseError struct {
	Input  string // the input text
	Offset int    // byte offset of the offending character
	Err    error  // the reason the conversion failed (ErrSyntax, ErrNoDigits)
}

func (e *ParseError) Error() string {
	if e.Err == ErrSyntax && e.Offset < len(e.Input) {
		return "bigint: parsing " + strconv.Quote(e.Input) + ": unexpected " +
			strconv.QuoteRune(rune(e.Input[e.Offset])) + " at offset " + strconv.Itoa(e.Offset)
	}
	return "bigint: parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
