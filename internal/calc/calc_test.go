// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/bigint"
)

func TestParseOp(t *testing.T) {
	for _, sym := range []string{"+", "-", "*", "/", "%"} {
		op, err := ParseOp(sym)
		require.NoError(t, err)
		assert.Equal(t, sym, op.String())
	}

	for _, sym := range []string{"", "^", "**", "x", "//"} {
		_, err := ParseOp(sym)
		require.Error(t, err, "%q", sym)
		assert.ErrorIs(t, err, ErrUnknownOperator)
		var oe *OperatorError
		require.True(t, errors.As(err, &oe))
		assert.Equal(t, sym, oe.Symbol)
	}

	_, err := ParseOp("^")
	assert.EqualError(t, err, `unknown operator "^": must be one of + - * / %`)
}

func TestEval(t *testing.T) {
	td := []struct {
		x, op, y string
		want     string
	}{
		{"123", "+", "456", "579"},
		{"1000000000000000000000", "-", "1", "999999999999999999999"},
		{"999999999999", "*", "999999999999", "999999999998000000000001"},
		{"1000", "/", "7", "142"},
		{"1000", "%", "7", "6"},
		{"-7", "%", "3", "-1"},
		{"-7", "/", "3", "-2"},
		{"0", "-", "0", "0"},
		{"", "+", "5", "5"},
	}
	for _, d := range td {
		t.Run(d.x+d.op+d.y, func(t *testing.T) {
			got, err := Eval(d.x, d.op, d.y)
			require.NoError(t, err)
			assert.Equal(t, d.want, got)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := Eval("5", "/", "0")
	assert.ErrorIs(t, err, bigint.ErrDivisionByZero{})

	_, err = Eval("5", "%", "-0")
	assert.ErrorIs(t, err, bigint.ErrDivisionByZero{})

	_, err = Eval("5", "^", "2")
	assert.ErrorIs(t, err, ErrUnknownOperator)

	_, err = Eval("5x", "+", "2")
	assert.ErrorIs(t, err, bigint.ErrSyntax)

	_, err = Eval("-", "+", "2")
	assert.ErrorIs(t, err, bigint.ErrNoDigits)
}

func TestParseExpr(t *testing.T) {
	e, err := ParseExpr("  -7\t%  3 ")
	require.NoError(t, err)
	assert.Equal(t, Expr{X: "-7", Op: Rem, Y: "3"}, e)
	assert.Equal(t, "-7 % 3", e.String())

	for _, line := range []string{"", "1 +", "1 + 2 3", "1+2"} {
		_, err := ParseExpr(line)
		assert.ErrorIs(t, err, ErrMalformedExpr, "%q", line)
	}

	_, err = ParseExpr("1 & 2")
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestEvalLine(t *testing.T) {
	v, err := EvalLine("-5 * 3")
	require.NoError(t, err)
	assert.Equal(t, "-15", v)

	_, err = EvalLine("1 / 0")
	assert.ErrorIs(t, err, bigint.ErrDivisionByZero{})
}

func TestApplyPanicsOnInvalidOp(t *testing.T) {
	assert.Panics(t, func() {
		Op('^').Apply(nil, nil, nil, nil)
	})
}
