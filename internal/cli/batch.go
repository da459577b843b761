// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/db47h/bigint/internal/calc"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	Jobs      int
	KeepGoing bool
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate one expression per input line",
		Long: `Evaluate one expression per input line.

Every non-blank line of standard input must hold "operand operator operand".
Lines are evaluated concurrently; results are printed in input order, one per
line. Unless --keep-going is set, the first failing line aborts the batch and
nothing is printed.

Example:
  printf '1000 / 7\n1000 %% 7\n' | bigcalc batch`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "number of concurrent evaluations (0 = number of CPUs)")
	cmd.Flags().BoolVarP(&opts.KeepGoing, "keep-going", "k", false, "print an error line for failing expressions instead of aborting")

	return cmd
}

func runBatch(opts *BatchOptions, cmd *cobra.Command) error {
	log := opts.Logger()

	lines, err := calc.ReadLines(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.WithFields(logrus.Fields{"lines": len(lines), "jobs": opts.Jobs}).Debug("starting batch")

	res, err := calc.EvalLines(cmd.Context(), lines, calc.BatchOptions{
		Jobs:      opts.Jobs,
		KeepGoing: opts.KeepGoing,
	})
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, r := range res {
		if r.Err != nil {
			log.WithFields(logrus.Fields{"line": r.N, "expr": r.Text}).WithError(r.Err).Warn("evaluation failed")
			fmt.Fprintf(w, "error: line %d: %v\n", r.N, r.Err)
			continue
		}
		fmt.Fprintln(w, r.Value)
	}
	return w.Flush()
}
