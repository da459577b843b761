// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the bigcalc command tree.
package cli

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool

	log *logrus.Logger
}

// Logger returns the logger configured by the global flags.
func (o *RootOptions) Logger() *logrus.Logger {
	if o.log == nil {
		o.log = newLogger(io.Discard, false)
	}
	return o.log
}

// NewRootCommand creates the root command for the bigcalc CLI. Without a
// subcommand it behaves like "bigcalc eval".
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer calculator",
		Long: `Arbitrary-precision integer calculator.

Reads "operand operator operand" from standard input and prints the result.
Operands are decimal integers with an optional leading '-'. The operator is
one of + - * / %. Division truncates toward zero and the remainder has the
sign of the dividend.

Example:
  echo '-7 % 3' | bigcalc`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log = newLogger(cmd.ErrOrStderr(), opts.Verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
