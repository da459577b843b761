// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/bigint"
)

const batchInput = `123 + 456
1000 / 7

5 / 0
-7 % 3
999999999999 * 999999999999
1 ^ 2
`

func TestBatchKeepGoing(t *testing.T) {
	out, stderr, err := execute(t, batchInput, "batch", "--keep-going", "--jobs", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "evaluation failed")

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "batch_keep_going", []byte(out))
}

func TestBatchAbort(t *testing.T) {
	out, _, err := execute(t, batchInput, "batch", "-j", "1")
	assert.ErrorIs(t, err, bigint.ErrDivisionByZero{})
	assert.EqualError(t, err, "line 4: bigint: division by zero")
	assert.Empty(t, out)
}

func TestBatchEmptyInput(t *testing.T) {
	out, _, err := execute(t, "\n\n", "batch")
	require.NoError(t, err)
	assert.Empty(t, out)
}
