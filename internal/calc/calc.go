// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc evaluates binary integer expressions of the form
// "operand operator operand" for the bigcalc command.
package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/context"
)

// An Op is a binary arithmetic operator.
type Op byte

// Supported operators.
const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Quo Op = '/' // truncated toward zero
	Rem Op = '%' // sign of the dividend
)

// ErrUnknownOperator is wrapped by every *OperatorError.
var ErrUnknownOperator = errors.New("unknown operator")

// ErrMalformedExpr is returned by ParseExpr for lines that do not hold
// exactly three fields.
var ErrMalformedExpr = errors.New("expected \"operand operator operand\"")

// An OperatorError reports an unrecognized operator symbol.
type OperatorError struct {
	Symbol string
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("%v %q: must be one of + - * / %%", ErrUnknownOperator, e.Symbol)
}

func (e *OperatorError) Unwrap() error { return ErrUnknownOperator }

// ParseOp returns the operator denoted by sym.
func ParseOp(sym string) (Op, error) {
	if len(sym) == 1 {
		switch op := Op(sym[0]); op {
		case Add, Sub, Mul, Quo, Rem:
			return op, nil
		}
	}
	return 0, &OperatorError{Symbol: sym}
}

func (op Op) String() string {
	return string(rune(op))
}

// Apply sets z to x op y using c and returns z. Errors are recorded in c.
func (op Op) Apply(c *context.Context, z, x, y *bigint.Int) *bigint.Int {
	switch op {
	case Add:
		return c.Add(z, x, y)
	case Sub:
		return c.Sub(z, x, y)
	case Mul:
		return c.Mul(z, x, y)
	case Quo:
		return c.Quo(z, x, y)
	case Rem:
		return c.Rem(z, x, y)
	}
	panic("calc: invalid operator " + op.String())
}

// An Expr is a parsed binary expression.
type Expr struct {
	X, Y string
	Op   Op
}

// ParseExpr splits line into its operands and operator. Fields are separated
// by white space.
func ParseExpr(line string) (Expr, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return Expr{}, fmt.Errorf("%q: %w", line, ErrMalformedExpr)
	}
	op, err := ParseOp(f[1])
	if err != nil {
		return Expr{}, err
	}
	return Expr{X: f[0], Op: op, Y: f[2]}, nil
}

func (e Expr) String() string {
	return e.X + " " + e.Op.String() + " " + e.Y
}

// Eval evaluates e and returns the decimal result.
func (e Expr) Eval() (string, error) {
	c := context.New()
	x, y := c.NewString(e.X), c.NewString(e.Y)
	z := e.Op.Apply(c, new(bigint.Int), x, y)
	if err := c.Err(); err != nil {
		return "", err
	}
	return z.String(), nil
}

// Eval evaluates x op y, where op is an operator symbol, and returns the
// decimal result.
func Eval(x, op, y string) (string, error) {
	o, err := ParseOp(op)
	if err != nil {
		return "", err
	}
	return Expr{X: x, Op: o, Y: y}.Eval()
}

// EvalLine parses and evaluates a single "operand operator operand" line.
func EvalLine(line string) (string, error) {
	e, err := ParseExpr(line)
	if err != nil {
		return "", err
	}
	return e.Eval()
}
