// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-trapping evaluation contexts for Ints.
//
// All factory functions of the form
//
//    func (c *Context) NewT(x T) *bigint.Int
//
// create a new bigint.Int set to the value of x.
//
// Operators that set a receiver z to function of other Int arguments like:
//
//    func (c *Context) UnaryOp(z, x *bigint.Int) *bigint.Int
//    func (c *Context) BinaryOp(z, x, y *bigint.Int) *bigint.Int
//
// set z to the result of z.Op(args) and return z.
//
// A Context catches errors: if an operation divides by zero, or if NewString
// is given malformed text, the operation silently succeeds with an undefined
// result. Further operations with the context will be no-ops (they simply
// return the receiver z) until (*Context).Err is called to check for errors.
package context

import (
	"errors"

	"github.com/db47h/bigint"
)

// A Context is a wrapper around Ints that records the first error raised by
// a sequence of operations.
//
// The zero value is an empty Context ready to use.
type Context struct {
	err error
}

// New creates a new, empty context.
func New() *Context {
	return new(Context)
}

// NewInt returns a new *bigint.Int with value 0.
func (c *Context) NewInt() *bigint.Int {
	return new(bigint.Int)
}

// NewInt64 returns a new *bigint.Int set to x.
func (c *Context) NewInt64(x int64) *bigint.Int {
	return bigint.NewInt(x)
}

// NewString returns a new *bigint.Int set to the value of s. If s is not a
// valid decimal integer, the error is recorded in c and the returned value
// is 0.
func (c *Context) NewString(s string) *bigint.Int {
	if c.err != nil {
		return new(bigint.Int)
	}
	z, err := bigint.Parse(s)
	if err != nil {
		c.err = err
		return new(bigint.Int)
	}
	return z
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// catch records a division by zero panic in c. Other panics are propagated.
func (c *Context) catch() {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok || !errors.Is(err, bigint.ErrDivisionByZero{}) {
			panic(r)
		}
		c.err = err
	}
}

// Add sets z to the sum x+y and returns z.
func (c *Context) Add(z, x, y *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Add(x, y)
}

// Sub sets z to the difference x-y and returns z.
func (c *Context) Sub(z, x, y *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Sub(x, y)
}

// Mul sets z to the product x*y and returns z.
func (c *Context) Mul(z, x, y *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Mul(x, y)
}

// Quo sets z to the quotient x/y truncated toward zero and returns z.
func (c *Context) Quo(z, x, y *bigint.Int) (r *bigint.Int) {
	if c.err != nil {
		return z
	}
	defer c.catch()
	r = z
	return z.Quo(x, y)
}

// Rem sets z to the remainder x%y, with the sign of x, and returns z.
func (c *Context) Rem(z, x, y *bigint.Int) (r *bigint.Int) {
	if c.err != nil {
		return z
	}
	defer c.catch()
	r = z
	return z.Rem(x, y)
}

// QuoRem sets z to the quotient x/y and m to the remainder x%y and returns
// the pair (z, m).
func (c *Context) QuoRem(z, x, y, m *bigint.Int) (q, r *bigint.Int) {
	if c.err != nil {
		return z, m
	}
	defer c.catch()
	q, r = z, m
	return z.QuoRem(x, y, m)
}

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Neg(x)
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (c *Context) Abs(z, x *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Abs(x)
}

// Inc sets z to x+1 and returns z.
func (c *Context) Inc(z, x *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Inc(x)
}

// Dec sets z to x-1 and returns z.
func (c *Context) Dec(z, x *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Dec(x)
}
