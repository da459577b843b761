// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bigcalc evaluates arbitrary-precision integer expressions read from
// standard input.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/db47h/bigint/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		logrus.WithError(err).Error("bigcalc failed")
		os.Exit(1)
	}
}
