// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements magnitude division.

package bigint

// div returns q = u/v and r = u%v, reusing the storage of z for q and of z2
// for r. v must not be zero; callers check for a zero divisor before calling.
func (z mag) div(z2, u, v mag) (q, r mag) {
	if len(v) == 0 {
		panic("bigint: division by zero magnitude")
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}

	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return
	}

	q, r = z.divLarge(z2, u, v)
	return
}

// divW sets z = x / y and returns z and the remainder x % y.
// y must not be zero.
func (z mag) divW(x mag, y Word) (q mag, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("bigint: division by zero limb")
	case y == 1:
		q = z.set(x) // result is x
		return
	case m == 0:
		q = z[:0] // result is 0
		return
	}
	// m > 0
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return
}

// divLarge computes u / v with len(v) >= 2 and u >= v by schoolbook long
// division. Every quotient limb is found by a binary search over [0, _B) for
// the largest k such that k*v <= p, p being the running partial remainder.
func (z mag) divLarge(z2, u, v mag) (q, r mag) {
	m := len(u)
	n := len(v)

	if alias(z, u) || alias(z, v) {
		z = nil
	}
	if alias(z2, u) || alias(z2, v) || alias(z2, z) {
		z2 = nil
	}

	q = z.make(m - n + 1)

	// The top n-1 limbs of u are less than v: the quotient limbs above
	// position m-n are all zero.
	p := z2.set(u[m-n+1:])

	var t mag
	for i := m - n; i >= 0; i-- {
		// bring down the next limb of u
		p = append(p, 0)
		copy(p[1:], p[:len(p)-1])
		p[0] = u[i]
		p = p.norm()

		// p < v*_B, so the quotient limb fits a Word
		lo, hi := DWord(0), DWord(_B)
		for hi-lo > 1 {
			mid := (lo + hi) / 2
			t = t.mulWord(v, Word(mid))
			if p.less(t) {
				hi = mid
			} else {
				lo = mid
			}
		}

		k := Word(lo)
		q[i] = k
		if k != 0 {
			t = t.mulWord(v, k)
			p = p.sub(p, t)
		}
	}

	return q.norm(), p
}
