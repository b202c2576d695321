// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/spf13/cobra"
)

// runTests runs the datadriven files matching path. Each test case names a
// command; every non-empty input line is passed to it as a single argument,
// so sets containing spaces need no quoting.
func runTests(t *testing.T, path string) {
	paths, err := filepath.Glob(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatalf("no test files match %s", path)
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
				args := []string{d.Cmd}
				for _, arg := range d.CmdArgs {
					args = append(args, arg.String())
				}
				for line := range crstrings.LinesSeq(d.Input) {
					if line = strings.TrimSpace(line); line != "" {
						args = append(args, line)
					}
				}

				var buf bytes.Buffer
				stdout = &buf
				stderr = &buf
				osExit = func(int) {}

				defer func() {
					stdout = os.Stdout
					stderr = os.Stderr
					osExit = os.Exit
				}()

				c := &cobra.Command{}
				c.AddCommand(New().Commands...)
				c.SetArgs(args)
				c.SetOut(&buf)
				c.SetErr(&buf)
				if err := c.Execute(); err != nil {
					return err.Error()
				}
				return buf.String()
			})
		})
	}
}

func TestSetCommands(t *testing.T) {
	runTests(t, "testdata/set_*")
}
