// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/bigint"
)

func TestContextNoError(t *testing.T) {
	c := New()
	x, y := c.NewString("-7"), c.NewInt64(3)
	z := c.NewInt()

	assert.Equal(t, "-4", c.Add(z, x, y).String())
	assert.Equal(t, "-10", c.Sub(z, x, y).String())
	assert.Equal(t, "-21", c.Mul(z, x, y).String())
	assert.Equal(t, "-2", c.Quo(z, x, y).String())
	assert.Equal(t, "-1", c.Rem(z, x, y).String())
	assert.Equal(t, "7", c.Neg(z, x).String())
	assert.Equal(t, "7", c.Abs(z, x).String())
	assert.Equal(t, "-6", c.Inc(z, x).String())
	assert.Equal(t, "-8", c.Dec(z, x).String())

	m := c.NewInt()
	q, r := c.QuoRem(z, x, y, m)
	assert.Same(t, z, q)
	assert.Same(t, m, r)
	assert.Equal(t, "-2", q.String())
	assert.Equal(t, "-1", r.String())

	assert.NoError(t, c.Err())
}

func TestContextDivisionByZero(t *testing.T) {
	zero := new(bigint.Int)
	for name, f := range map[string]func(c *Context, z, x *bigint.Int) *bigint.Int{
		"Quo": func(c *Context, z, x *bigint.Int) *bigint.Int { return c.Quo(z, x, zero) },
		"Rem": func(c *Context, z, x *bigint.Int) *bigint.Int { return c.Rem(z, x, zero) },
		"QuoRem": func(c *Context, z, x *bigint.Int) *bigint.Int {
			q, _ := c.QuoRem(z, x, zero, new(bigint.Int))
			return q
		},
	} {
		t.Run(name, func(t *testing.T) {
			var c Context
			z := bigint.NewInt(11)
			got := f(&c, z, bigint.NewInt(5))
			assert.Same(t, z, got)

			err := c.Err()
			require.Error(t, err)
			assert.True(t, errors.Is(err, bigint.ErrDivisionByZero{}))

			// Err clears the error state
			assert.NoError(t, c.Err())
		})
	}
}

func TestContextStickyError(t *testing.T) {
	c := New()
	z := bigint.NewInt(1)
	c.Quo(z, z, new(bigint.Int))

	// every operation is a no-op until Err is called
	x := bigint.NewInt(100)
	before := z.String()
	c.Add(z, x, x)
	c.Sub(z, x, x)
	c.Mul(z, x, x)
	c.Neg(z, x)
	c.Abs(z, x)
	c.Inc(z, x)
	c.Dec(z, x)
	c.Quo(z, x, x)
	c.Rem(z, x, x)
	c.QuoRem(z, x, x, new(bigint.Int))
	assert.Equal(t, before, z.String())
	assert.Equal(t, 0, c.NewString("42").Sign())

	assert.ErrorIs(t, c.Err(), bigint.ErrDivisionByZero{})
	assert.Equal(t, "200", c.Add(z, x, x).String())
	assert.NoError(t, c.Err())
}

func TestContextNewString(t *testing.T) {
	c := New()
	x := c.NewString("12345678901234567890")
	assert.Equal(t, "12345678901234567890", x.String())
	require.NoError(t, c.Err())

	x = c.NewString("-")
	assert.Equal(t, 0, x.Sign())
	err := c.Err()
	assert.ErrorIs(t, err, bigint.ErrNoDigits)

	// the first error wins
	c.NewString("1a")
	c.NewString("-")
	err = c.Err()
	assert.ErrorIs(t, err, bigint.ErrSyntax)
}

func TestContextPropagatesOtherPanics(t *testing.T) {
	c := New()
	assert.Panics(t, func() {
		var nilInt *bigint.Int
		c.Quo(new(bigint.Int), nilInt, bigint.NewInt(1))
	})
	assert.NoError(t, c.Err())
}
