// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/cockroachdb/keyranges/tool"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keyranges [command] (flags)",
	Short: "key range set debugging tool",
	Long: `
Compute with sets of half-open key ranges. Sets are written as
"{[a, c), [x, +inf)}"; -inf and +inf stand for unbounded endpoints and keys
may use \xNN escapes or a 0x hex prefix.
`,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(tool.New().Commands...)

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
