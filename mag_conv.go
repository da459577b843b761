// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between magnitudes and decimal digit
// strings.

package bigint

import "strconv"

const (
	// decimal digits per conversion chunk; 10**_DW is the largest power of 10
	// fitting a Word.
	_DW = 9
	_DB = 1000000000 // 10**_DW
)

var pow10tab = [_DW + 1]Word{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// setDigits sets z to the value of the decimal digit string s. It returns the
// offset of the first byte of s that is not a decimal digit, or -1 if all of s
// was consumed.
//
// Digits are accumulated by scaling the result by 10 and adding the digit.
// Algorithm: Collect digits in groups of at most _DW digits in di and then use
// mulAddWW for every such group to add them to the result.
func (z mag) setDigits(s string) (mag, int) {
	z = z[:0]
	di := Word(0) // 0 <= di < 10**i
	i := 0        // 0 <= i < _DW
	for k := 0; k < len(s); k++ {
		ch := s[k]
		if ch < '0' || '9' < ch {
			return z, k
		}
		di = di*10 + Word(ch-'0')
		i++

		// if di is "full", add it to the result
		if i == _DW {
			z = z.mulAddWW(z, _DB, di)
			di = 0
			i = 0
		}
	}
	if i > 0 {
		z = z.mulAddWW(z, pow10tab[i], di)
	}
	return z.norm(), -1
}

// maxDecimalDigits returns an upper bound on the number of decimal digits of
// an n-limb magnitude: _W*log10(2) < 9.64.
func maxDecimalDigits(n int) int {
	return n*10 + 1
}

// appendDecimal appends the decimal representation of x to buf and returns
// the extended buffer. Zero is formatted as "0".
//
// The digits are produced least-significant first by repeated division of a
// copy of x, _DW digits at a time.
func (x mag) appendDecimal(buf []byte) []byte {
	if len(x) == 0 {
		return append(buf, '0')
	}

	s := make([]byte, maxDecimalDigits(len(x)))
	i := len(s)

	q := mag(nil).set(x)
	for len(q) > 0 {
		var r Word
		q, r = q.divW(q, _DB)
		// all chunks but the most significant one are zero-padded to _DW digits
		for j := 0; j < _DW && (len(q) > 0 || r != 0); j++ {
			i--
			s[i] = '0' + byte(r%10)
			r /= 10
		}
	}

	return append(buf, s[i:]...)
}

// appendLimbs appends the limbs of x in hexadecimal, most significant first
// and separated by '_'. Zero is formatted as "0".
func (x mag) appendLimbs(buf []byte) []byte {
	if len(x) == 0 {
		return append(buf, '0')
	}
	buf = strconv.AppendUint(buf, uint64(x[len(x)-1]), 16)
	for i := len(x) - 2; i >= 0; i-- {
		buf = append(buf, '_')
		h := strconv.FormatUint(uint64(x[i]), 16)
		for k := len(h); k < _W/4; k++ {
			buf = append(buf, '0')
		}
		buf = append(buf, h...)
	}
	return buf
}
