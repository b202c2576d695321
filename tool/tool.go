// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements debugging commands for sets of key ranges. Sets are
// given on the command line in their textual form, e.g. `{[a, c), [x, +inf)}`.
package tool

import "github.com/spf13/cobra"

// T is the container for all of the key range tools.
type T struct {
	Commands []*cobra.Command
	set      *setT
}

// New creates a new key range tool.
func New() *T {
	t := &T{}
	t.set = newSet()
	t.Commands = t.set.Commands
	return t
}
