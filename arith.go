// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the word and vector primitives operating on limbs. All
// double-width intermediate results are held in a DWord; its low half is the
// result limb, its high half the carry (or borrow marker) for the next limb.

package bigint

// A Word represents a single limb of a magnitude.
type Word uint32

// A DWord holds a double-width intermediate result.
type DWord uint64

const (
	_W = 32      // limb size in bits
	_B = 1 << _W // limb base
	_M = _B - 1  // limb mask
	_S = _W / 8  // limb size in bytes
)

// addWW returns x + y + c as (carry, sum). c must be 0 or 1.
func addWW(x, y, c Word) (z1, z0 Word) {
	t := DWord(x) + DWord(y) + DWord(c)
	return Word(t >> _W), Word(t)
}

// subWW returns x - y - b as (borrow, difference). b must be 0 or 1.
func subWW(x, y, b Word) (z1, z0 Word) {
	// The subtraction wraps around in DWord; any bit set in the high half
	// marks a borrow.
	t := DWord(x) - DWord(y) - DWord(b)
	if t>>_W != 0 {
		z1 = 1
	}
	return z1, Word(t)
}

// mulAddWWW returns x*y + c as (high, low).
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	t := DWord(x)*DWord(y) + DWord(c)
	return Word(t >> _W), Word(t)
}

// divWW returns the quotient and remainder of (u1<<_W + u0) / v.
// The caller guarantees u1 < v so that the quotient fits a Word.
func divWW(u1, u0, v Word) (q, r Word) {
	u := DWord(u1)<<_W | DWord(u0)
	return Word(u / DWord(v)), Word(u % DWord(v))
}

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		c, z[i] = addWW(x[i], y[i], c)
	}
	return
}

// The resulting borrow b is either 0 or 1.
func subVV(z, x, y []Word) (b Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		b, z[i] = subWW(x[i], y[i], b)
	}
	return
}

// addVW sets z = x + y and returns the carry.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = addWW(x[i], 0, c)
	}
	return
}

// subVW sets z = x - y and returns the borrow.
func subVW(z, x []Word, y Word) (b Word) {
	b = y
	for i := 0; i < len(z) && i < len(x); i++ {
		b, z[i] = subWW(x[i], 0, b)
	}
	return
}

// invertV replaces z with its two's complement: ^z + 1, modulo _B**len(z).
func invertV(z []Word) {
	c := Word(1)
	for i := range z {
		c, z[i] = addWW(^z[i], 0, c)
	}
}

// mulAddVWW sets z = x*y + r and returns the carry.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW sets z += x*y and returns the carry.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		t := DWord(x[i])*DWord(y) + DWord(z[i]) + DWord(c)
		c, z[i] = Word(t>>_W), Word(t)
	}
	return
}

// divWVW sets z = (xn<<(_W*len(x)) + x) / y and returns the remainder.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}
