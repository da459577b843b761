// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rnd = rand.New(rand.NewSource(0x5eed))

func rndW() Word {
	return Word(rnd.Uint32())
}

func rndV(n int) []Word {
	v := make([]Word, n)
	for i := range v {
		v[i] = rndW()
	}
	return v
}

func TestAddWW(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x, y, c := rndW(), rndW(), Word(rnd.Intn(2))
		z1, z0 := addWW(x, y, c)
		s, cc := bits.Add32(uint32(x), uint32(y), uint32(c))
		require.Equal(t, Word(s), z0, "%d + %d + %d", x, y, c)
		require.Equal(t, Word(cc), z1, "%d + %d + %d", x, y, c)
	}
}

func TestSubWW(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x, y, b := rndW(), rndW(), Word(rnd.Intn(2))
		z1, z0 := subWW(x, y, b)
		d, bb := bits.Sub32(uint32(x), uint32(y), uint32(b))
		require.Equal(t, Word(d), z0, "%d - %d - %d", x, y, b)
		require.Equal(t, Word(bb), z1, "%d - %d - %d", x, y, b)
	}
}

func TestMulAddWWW(t *testing.T) {
	td := []struct {
		x, y, c Word
		z1, z0  Word
	}{
		{0, 0, 0, 0, 0},
		{_M, _M, 0, _M - 1, 1},
		{_M, _M, _M, _M, 0},
		{1 << 16, 1 << 16, 1, 1, 1},
	}
	for _, d := range td {
		z1, z0 := mulAddWWW(d.x, d.y, d.c)
		assert.Equal(t, d.z1, z1, "%d * %d + %d", d.x, d.y, d.c)
		assert.Equal(t, d.z0, z0, "%d * %d + %d", d.x, d.y, d.c)
	}
}

func TestDivWW(t *testing.T) {
	for i := 0; i < 10000; i++ {
		v := rndW() | 1
		u1, u0 := rndW()%v, rndW()
		q, r := divWW(u1, u0, v)
		qq, rr := bits.Div32(uint32(u1), uint32(u0), uint32(v))
		require.Equal(t, Word(qq), q)
		require.Equal(t, Word(rr), r)
	}
}

func TestInvertV(t *testing.T) {
	td := []struct {
		in, out []Word
	}{
		{[]Word{}, []Word{}},
		{[]Word{0}, []Word{0}},
		{[]Word{1}, []Word{_M}},
		{[]Word{0, 1}, []Word{0, _M}},
		{[]Word{1, 0}, []Word{_M, _M}},
		{[]Word{_M, _M}, []Word{1, 0}},
	}
	for _, d := range td {
		z := append([]Word{}, d.in...)
		invertV(z)
		assert.Equal(t, d.out, z, "invert %v", d.in)
	}
}

func TestVectorCarry(t *testing.T) {
	// x + y - y == x with matching carry and borrow
	for n := 1; n < 20; n++ {
		x, y := rndV(n), rndV(n)
		s := make([]Word, n)
		c := addVV(s, x, y)
		d := make([]Word, n)
		b := subVV(d, s, y)
		require.Equal(t, x, d)
		require.Equal(t, c, b)
	}
}

func TestAddVW(t *testing.T) {
	z := make([]Word, 3)
	c := addVW(z, []Word{_M, _M, _M}, 1)
	assert.Equal(t, []Word{0, 0, 0}, z)
	assert.Equal(t, Word(1), c)

	c = subVW(z, z, 1)
	assert.Equal(t, []Word{_M, _M, _M}, z)
	assert.Equal(t, Word(1), c)
}

func TestMulAddVWW(t *testing.T) {
	for n := 1; n < 20; n++ {
		x, y, r := rndV(n), rndW(), rndW()
		z := make([]Word, n)
		c := mulAddVWW(z, x, y, r)

		// (z, c) == x*y + r computed limb by limb with a DWord accumulator
		acc := DWord(r)
		for i := range x {
			acc += DWord(x[i]) * DWord(y)
			require.Equal(t, Word(acc), z[i])
			acc >>= _W
		}
		require.Equal(t, Word(acc), c)

		// addMulVVW on a zero vector is mulAddVWW without carry-in
		z2 := make([]Word, n)
		c2 := addMulVVW(z2, x, y)
		z3 := make([]Word, n)
		c3 := mulAddVWW(z3, x, y, 0)
		require.Equal(t, z3, z2)
		require.Equal(t, c3, c2)
	}
}
