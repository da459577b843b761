// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ReadExpr reads the next three whitespace-delimited tokens of r as an
// expression. It returns io.EOF if r holds no token at all.
func ReadExpr(r io.Reader) (Expr, error) {
	s := bufio.NewScanner(r)
	s.Buffer(nil, 1<<30) // operands may be very long
	s.Split(bufio.ScanWords)
	var f []string
	for len(f) < 3 && s.Scan() {
		f = append(f, s.Text())
	}
	if err := s.Err(); err != nil {
		return Expr{}, err
	}
	switch len(f) {
	case 0:
		return Expr{}, io.EOF
	case 3:
		// ok
	default:
		return Expr{}, fmt.Errorf("%q: %w", strings.Join(f, " "), ErrMalformedExpr)
	}
	op, err := ParseOp(f[1])
	if err != nil {
		return Expr{}, err
	}
	return Expr{X: f[0], Op: op, Y: f[2]}, nil
}

// A Line is a non-blank input line and its 1-based line number.
type Line struct {
	N    int
	Text string
}

// ReadLines returns the non-blank lines of r.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	s := bufio.NewScanner(r)
	s.Buffer(nil, 1<<30)
	for n := 1; s.Scan(); n++ {
		if t := strings.TrimSpace(s.Text()); t != "" {
			lines = append(lines, Line{N: n, Text: t})
		}
	}
	return lines, s.Err()
}

// A Result holds the outcome of evaluating a Line.
type Result struct {
	Line
	Value string
	Err   error
}

// BatchOptions control EvalLines.
type BatchOptions struct {
	// Jobs is the maximum number of lines evaluated concurrently. Values <= 0
	// select runtime.NumCPU().
	Jobs int
	// KeepGoing records per-line errors in the results instead of aborting
	// the batch.
	KeepGoing bool
}

// EvalLines evaluates lines concurrently. The results are in the same order
// as lines. Unless opts.KeepGoing is set, the first failing line cancels the
// remaining work and its error, annotated with the line number, is returned.
func EvalLines(ctx context.Context, lines []Line, opts BatchOptions) ([]Result, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	res := make([]Result, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range lines {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := EvalLine(lines[i].Text)
			res[i] = Result{Line: lines[i], Value: v, Err: err}
			if err != nil && !opts.KeepGoing {
				return fmt.Errorf("line %d: %w", lines[i].N, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
