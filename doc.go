// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements arbitrary-precision signed integer arithmetic:
addition, subtraction, multiplication, truncated division with remainder,
comparison, and conversion to and from decimal text.

The magnitude of an Int is stored in a little-endian slice of 32-bit Words
(limbs, base 2**32). A magnitude never has a most significant zero limb; zero
is the empty slice and is never negative.

The zero value for an Int corresponds to 0. Thus, new values can be declared
in the usual ways and denote 0 without further initialization:

    x := new(Int)  // x is an *Int of value 0

Alternatively, new Int values can be allocated and initialized with one of
the functions:

    func NewInt(x int64) *Int
    func Parse(s string) (*Int, error)

Value-returning functions are the simplest way to compute with Ints. They
never modify their operands and their results never share storage with them:

    sum := bigint.Add(x, y)
    q, r, err := bigint.QuoRem(x, y) // err is ErrDivisionByZero if y == 0

Setters, numeric operations and predicates are also available as methods of
the form:

    func (z *Int) SetV(v V) *Int          // z = v
    func (z *Int) Unary(x *Int) *Int      // z = unary x
    func (z *Int) Binary(x, y *Int) *Int  // z = x binary y
    func (x *Int) Pred() P                // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z
in that case); if it is one of the operands x or y it may be safely
overwritten (and its memory reused). For instance,

    sum.Add(sum, x)

accumulates x in sum. These methods let callers control memory use: instead
of allocating new memory for each result, an operation can reuse the space
allocated for the result value.

Division follows Go's integer semantics: the quotient is truncated toward
zero and the remainder takes the sign of the dividend, so that
x == (x/y)*y + x%y. Division by zero never yields a result: the methods panic
with an ErrDivisionByZero value, the value-returning functions return it as an
error, and the context package turns it into a sticky error.

Int implements fmt.Formatter, fmt.Scanner, encoding.TextMarshaler,
json.Marshaler and gob.GobEncoder together with their decoding counterparts.
*/
package bigint
