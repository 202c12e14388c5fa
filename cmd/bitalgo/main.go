// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/cockroachdb/bitalgo/internal/base"
	"github.com/cockroachdb/bitalgo/tool"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bitalgo [command] (flags)",
	Short: "bit range counting and reversal tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(tool.New(base.DefaultLogger{}).Commands...)

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
