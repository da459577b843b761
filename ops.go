// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the value-returning API. None of these functions
// modify their operands, and the returned values never share storage with
// them.

package bigint

// Add returns x+y.
func Add(x, y *Int) *Int { return new(Int).Add(x, y) }

// Sub returns x-y.
func Sub(x, y *Int) *Int { return new(Int).Sub(x, y) }

// Mul returns x*y.
func Mul(x, y *Int) *Int { return new(Int).Mul(x, y) }

// Neg returns -x.
func Neg(x *Int) *Int { return new(Int).Neg(x) }

// Abs returns |x|.
func Abs(x *Int) *Int { return new(Int).Abs(x) }

// Cmp compares x and y; see (*Int).Cmp.
func Cmp(x, y *Int) int { return x.Cmp(y) }

// Quo returns the quotient x/y truncated toward zero. It returns an
// ErrDivisionByZero error if y is zero.
func Quo(x, y *Int) (*Int, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero{}
	}
	return new(Int).Quo(x, y), nil
}

// Rem returns the remainder x%y, which is zero or has the sign of x. It
// returns an ErrDivisionByZero error if y is zero.
func Rem(x, y *Int) (*Int, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero{}
	}
	return new(Int).Rem(x, y), nil
}

// QuoRem returns both x/y and x%y; see (*Int).QuoRem. It returns an
// ErrDivisionByZero error if y is zero.
func QuoRem(x, y *Int) (q, r *Int, err error) {
	if y.Sign() == 0 {
		return nil, nil, ErrDivisionByZero{}
	}
	q, r = new(Int).QuoRem(x, y, new(Int))
	return q, r, nil
}
