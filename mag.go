// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

// mag is an unsigned integer x of the form
//
//   x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n is stored in a slice of length n,
// with the limbs x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 limbs.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
type mag []Word

var magOne = mag{1}

// norm truncates the most significant zero limbs of z.
func (z mag) norm() mag {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z mag) make(n int) mag {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most mags start small and stay that way; don't over-allocate.
		return make(mag, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(mag, n, n+e)
}

func (z mag) setWord(x Word) mag {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z mag) setUint64(x uint64) mag {
	// single-limb values are common
	if w := Word(x); DWord(w) == DWord(x) {
		return z.setWord(w)
	}
	z = z.make(2)
	z[1] = Word(x >> _W)
	z[0] = Word(x)
	return z
}

// set sets z to a copy of x. z never shares storage with x afterwards unless
// z and x are the same slice.
func (z mag) set(x mag) mag {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// uint64 returns the low 64 bits of x.
func (x mag) uint64() uint64 {
	var v uint64
	switch {
	case len(x) > 1:
		v = uint64(x[1])<<_W | uint64(x[0])
	case len(x) == 1:
		v = uint64(x[0])
	}
	return v
}

func (x mag) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + bits.Len32(uint32(x[i]))
	}
	return 0
}

// cmp returns -1, 0 or +1 depending on whether x < y, x == y or x > y.
// Both x and y must be normalized.
func (x mag) cmp(y mag) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// less reports whether x < y. Equal magnitudes are not less in either
// direction.
func (x mag) less(y mag) bool {
	return x.cmp(y) < 0
}

// add sets z = x + y.
func (z mag) add(x, y mag) mag {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m >= n > 0

	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub sets z = |x - y|.
//
// The limbs are subtracted with borrow propagation regardless of which operand
// is larger. If a borrow survives the most significant limb, y was larger and
// the partial result holds the two's complement of y - x; it is inverted back.
// Callers that need the sign of x - y must compare x and y themselves.
func (z mag) sub(x, y mag) mag {
	m := len(x)
	n := len(y)

	switch {
	case n == 0:
		return z.set(x)
	case m == 0:
		return z.set(y)
	}

	l := m
	if n > l {
		l = n
	}
	z = z.make(l)

	var b Word
	switch {
	case m == n:
		b = subVV(z, x, y)
	case m > n:
		b = subVV(z[:n], x, y)
		b = subVW(z[n:], x[n:], b)
	default:
		// x is shorter: continue with 0 - y[i] - b
		b = subVV(z[:m], x, y)
		for i := m; i < n; i++ {
			b, z[i] = subWW(0, y[i], b)
		}
	}
	if b != 0 {
		invertV(z)
	}

	return z.norm()
}

// mulWord sets z = x * k.
func (z mag) mulWord(x mag, k Word) mag {
	m := len(x)
	if m == 0 || k == 0 {
		return z[:0]
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, k, 0)
	return z.norm()
}

// mulAddWW sets z = x*y + r.
func (z mag) mulAddWW(x mag, y, r Word) mag {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r) // result is r
	}
	// m > 0

	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)

	return z.norm()
}

// mul sets z = x * y using schoolbook multiplication: for every limb x[i],
// y*x[i] shifted left by i limbs is accumulated into the result.
func (z mag) mul(x, y mag) mag {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulWord(x, y[0])
	}
	// m >= n > 1

	// determine if z can be reused
	if alias(z, x) || alias(z, y) {
		z = nil // z is an alias for x or y - cannot reuse
	}

	z = z.make(m + n)
	for i := range z {
		z[i] = 0
	}
	for i, d := range x {
		if d != 0 {
			z[n+i] = addMulVVW(z[i:i+n], y, d)
		}
	}

	return z.norm()
}

// alias reports whether x and y share the same base array.
//
// Note: alias assumes that the capacity of underlying arrays
// is never changed for mag values; i.e. that there are
// no 3-operand slice expressions in this code (or worse,
// reflect-based operations to the same effect).
func alias(x, y mag) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// bytes writes the value of z into buf using big-endian encoding.
// The value z[0] is stored in the lowest byte address. The buffer must be at
// least len(z)*_S bytes long. The index of the first significant byte is
// returned.
func (z mag) bytes(buf []byte) (i int) {
	i = len(buf)
	for _, d := range z {
		for j := 0; j < _S; j++ {
			i--
			buf[i] = byte(d)
			d >>= 8
		}
	}

	for i < len(buf) && buf[i] == 0 {
		i++
	}

	return
}

// setBytes interprets buf as the bytes of a big-endian unsigned
// integer, sets z to that value, and returns z.
func (z mag) setBytes(buf []byte) mag {
	z = z.make((len(buf) + _S - 1) / _S)

	i := len(buf)
	for k := 0; i >= _S; k++ {
		z[k] = Word(buf[i-1]) | Word(buf[i-2])<<8 | Word(buf[i-3])<<16 | Word(buf[i-4])<<24
		i -= _S
	}
	if i > 0 {
		var d Word
		for s := uint(0); i > 0; s += 8 {
			d |= Word(buf[i-1]) << s
			i--
		}
		z[len(z)-1] = d
	}

	return z.norm()
}
