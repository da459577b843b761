// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements signed arbitrary-precision integers.

package bigint

// An Int is a signed integer of unbounded size: a sign flag and a normalized
// magnitude of 32-bit limbs. Its zero value is 0, and 0 is never negative.
//
// Ints are used through *Int. Assigning an Int value shares its limbs; use
// Set to obtain an independent copy.
type Int struct {
	neg bool
	abs mag
}

var intOne = &Int{false, magOne}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// Sign returns -1, 0 or +1 for a negative, zero or positive x.
func (x *Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	u := uint64(x)
	if x < 0 {
		u = -u // two's complement negation also covers math.MinInt64
	}
	z.abs = z.abs.setUint64(u)
	z.neg = x < 0
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = z.abs.setUint64(x)
	z.neg = false
	return z
}

// Set sets z to x and returns z. z and x do not share storage afterwards.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
	}
	return z
}

// Bits returns a copy of the little-endian limbs of |x|.
func (x *Int) Bits() []Word {
	return append([]Word(nil), x.abs...)
}

// SetBits sets z to the magnitude represented by the little-endian limbs abs
// and the sign neg, and returns z. abs is copied and normalized; a zero
// magnitude is never negative.
func (z *Int) SetBits(abs []Word, neg bool) *Int {
	z.abs = z.abs.set(abs).norm()
	z.neg = len(z.abs) > 0 && neg
	return z
}

// IsInt64 reports whether x fits an int64: at most two limbs, with |x| below
// 1<<63, or equal to it when x is negative.
func (x *Int) IsInt64() bool {
	if len(x.abs) > 64/_W {
		return false
	}
	u := x.abs.uint64()
	return u < 1<<63 || x.neg && u == 1<<63
}

// Int64 returns x as an int64. The result is undefined unless x.IsInt64().
func (x *Int) Int64() int64 {
	v := int64(x.abs.uint64())
	if x.neg {
		v = -v
	}
	return v
}

// IsUint64 reports whether x is non-negative and has at most two limbs.
func (x *Int) IsUint64() bool {
	return !x.neg && len(x.abs) <= 64/_W
}

// Uint64 returns the low 64 bits of |x|. The result is meaningful only if
// x.IsUint64().
func (x *Int) Uint64() uint64 {
	return x.abs.uint64()
}

// BitLen returns the number of significant bits of |x|; 0 for x == 0.
func (x *Int) BitLen() int {
	return x.abs.bitLen()
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = len(z.abs) > 0 && !z.neg
	return z
}

// Cmp returns -1, 0 or +1 depending on whether x < y, x == y or x > y.
// Operands of opposite signs are ordered by sign alone; otherwise the
// magnitudes decide, reversed for negative operands.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	r := x.abs.cmp(y.abs)
	if x.neg {
		return -r
	}
	return r
}

// CmpAbs is like Cmp applied to |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.cmp(y.abs)
}

// Less reports whether x < y.
func (x *Int) Less(y *Int) bool {
	if x.neg != y.neg {
		return x.neg
	}
	if x.neg {
		return y.abs.less(x.abs)
	}
	return x.abs.less(y.abs)
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool {
	return x.neg == y.neg && x.abs.cmp(y.abs) == 0
}

// addSigned sets z = x + y where y carries the sign yneg instead of its own.
// Sub uses it with the sign of y flipped.
func (z *Int) addSigned(x *Int, y mag, yneg bool) *Int {
	neg := x.neg
	if x.neg == yneg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = z.abs.add(x.abs, y)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		// The larger magnitude decides the sign; sub always yields |x - y|.
		if x.abs.less(y) {
			neg = !neg
		}
		z.abs = z.abs.sub(x.abs, y)
	}
	z.neg = len(z.abs) > 0 && neg // 0 has no sign
	return z
}

// Add sets z to the sum x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	return z.addSigned(x, y.abs, y.neg)
}

// Sub sets z to the difference x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	return z.addSigned(x, y.abs, !y.neg)
}

// Inc sets z to x+1 and returns z.
func (z *Int) Inc(x *Int) *Int {
	return z.Add(x, intOne)
}

// Dec sets z to x-1 and returns z.
func (z *Int) Dec(x *Int) *Int {
	return z.Sub(x, intOne)
}

// Mul sets z to the product x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	// x * y == x * y
	// x * (-y) == -(x * y)
	// (-x) * y == -(x * y)
	// (-x) * (-y) == x * y
	z.abs = z.abs.mul(x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg != y.neg // 0 has no sign
	return z
}

// Quo sets z to the quotient x/y for y != 0 and returns z.
// If y == 0, a division-by-zero run-time panic occurs with an
// ErrDivisionByZero value.
// Quo implements truncated division; see QuoRem for more details.
func (z *Int) Quo(x, y *Int) *Int {
	checkDivisor(y)
	z.abs, _ = z.abs.div(nil, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg != y.neg // 0 has no sign
	return z
}

// Rem sets z to the remainder x%y for y != 0 and returns z.
// If y == 0, a division-by-zero run-time panic occurs with an
// ErrDivisionByZero value.
// Rem implements truncated modulus; see QuoRem for more details.
func (z *Int) Rem(x, y *Int) *Int {
	checkDivisor(y)
	_, z.abs = mag(nil).div(z.abs, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg // 0 has no sign
	return z
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y
// and returns the pair (z, r) for y != 0. z and r must be distinct.
// If y == 0, a division-by-zero run-time panic occurs with an
// ErrDivisionByZero value.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// The remainder takes the sign of the dividend, so that
// x == (x/y)*y + x%y holds for all x and all y != 0.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	checkDivisor(y)
	// both signs are taken before z or r may overwrite x or y
	qneg, rneg := x.neg != y.neg, x.neg
	z.abs, r.abs = z.abs.div(r.abs, x.abs, y.abs)
	z.neg, r.neg = len(z.abs) > 0 && qneg, len(r.abs) > 0 && rneg // 0 has no sign
	return z, r
}

func checkDivisor(y *Int) {
	if len(y.abs) == 0 {
		panic(ErrDivisionByZero{})
	}
}
