// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"github.com/cockroachdb/bitalgo/internal/base"
	"github.com/spf13/cobra"
)

// Logger exports the base.Logger type.
type Logger = base.Logger

// T is the container for all of the bit range tools.
type T struct {
	Commands []*cobra.Command
	bits     *bitsT
}

// New creates a new bit range tool. Verbose output is written to logger.
func New(logger Logger) *T {
	if logger == nil {
		logger = base.DefaultLogger{}
	}
	t := &T{}
	t.bits = newBits(logger)
	t.Commands = []*cobra.Command{
		t.bits.Count,
		t.bits.Reverse,
		t.bits.Dump,
	}
	return t
}
