// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/db47h/bigint/internal/calc"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate one expression read from standard input",
		Long: `Evaluate one expression read from standard input.

The operands and the operator are separated by white space, which may include
line breaks. The result is written on a single line.

Example:
  echo '999999999999 * 999999999999' | bigcalc eval`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, cmd)
		},
	}
	return cmd
}

func runEval(opts *RootOptions, cmd *cobra.Command) error {
	log := opts.Logger()

	e, err := calc.ReadExpr(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading expression: %w", err)
	}

	fields := logrus.Fields{"x": e.X, "op": e.Op.String(), "y": e.Y}
	log.WithFields(fields).Debug("evaluating")

	v, err := e.Eval()
	if err != nil {
		log.WithFields(fields).WithError(err).Debug("evaluation failed")
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}
