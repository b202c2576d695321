// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/keyranges"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// setT implements the set algebra tools.
type setT struct {
	Commands []*cobra.Command

	// Flags.
	fmtKey  keyFormatter
	nearest string
}

func newSet() *setT {
	s := &setT{}
	s.fmtKey.mustSet("pretty")

	normalize := &cobra.Command{
		Use:   "normalize <set>",
		Short: "print the normalized form of a set",
		Long: `
Print the normalized form of a set: its ranges sorted, with empty ranges
dropped and overlapping or adjacent ranges merged. The ranges need not be
given in any order, e.g. "[c, e) [a, d)".
`,
		Args: cobra.ExactArgs(1),
		Run:  s.runNormalize,
	}
	inverse := &cobra.Command{
		Use:   "inverse <set>",
		Short: "print the keys not in a set",
		Args:  cobra.ExactArgs(1),
		Run:   s.runInverse,
	}
	union := &cobra.Command{
		Use:   "union <set> <set>...",
		Short: "print the union of sets",
		Args:  cobra.MinimumNArgs(1),
		Run:   s.runUnion,
	}
	intersect := &cobra.Command{
		Use:   "intersect <set> <set>...",
		Short: "print the intersection of sets",
		Args:  cobra.MinimumNArgs(1),
		Run:   s.runIntersect,
	}
	difference := &cobra.Command{
		Use:   "difference <set> <set>",
		Short: "print the keys in the first set but not the second",
		Args:  cobra.ExactArgs(2),
		Run:   s.runDifference,
	}
	contains := &cobra.Command{
		Use:   "contains <set> <key>...",
		Short: "check which keys are in a set",
		Long: `
Check which keys are in a set. Keys are given in the same form as the bounds
of a set, or prefixed with "hex:" or "raw:".
`,
		Args: cobra.MinimumNArgs(2),
		Run:  s.runContains,
	}
	lookup := &cobra.Command{
		Use:   "lookup <set> <key>...",
		Short: "find the range of a set containing each key",
		Long: `
Find the range of a set containing each key. With --nearest=forward or
--nearest=backward, a key outside the set yields the first range after it or
the last range before it.
`,
		Args: cobra.MinimumNArgs(2),
		Run:  s.runLookup,
	}
	prefix := &cobra.Command{
		Use:   "prefix <key>...",
		Short: "print the range of keys with each prefix",
		Args:  cobra.MinimumNArgs(1),
		Run:   s.runPrefix,
	}
	describe := &cobra.Command{
		Use:   "describe <set>",
		Short: "print the ranges of a set as a table",
		Args:  cobra.ExactArgs(1),
		Run:   s.runDescribe,
	}
	lookup.Flags().StringVar(
		&s.nearest, "nearest", keyranges.ExactOnly.String(),
		"result for keys outside the set (exact, forward, backward)")

	s.Commands = []*cobra.Command{
		normalize, inverse, union, intersect, difference, contains, lookup, prefix, describe,
	}
	for _, cmd := range s.Commands {
		cmd.Flags().Var(
			&s.fmtKey, "key-format", "key formatter (pretty, quoted, hex, or a printf spec)")
	}
	return s
}

func (s *setT) fail(err error) {
	fmt.Fprintf(stderr, "%s\n", err)
	osExit(1)
}

func (s *setT) printSet(set keyranges.Set) {
	fmt.Fprintf(stdout, "%s\n", set.Format(s.fmtKey.formatKey))
}

func (s *setT) runNormalize(cmd *cobra.Command, args []string) {
	sets, err := parseSets(args)
	if err != nil {
		s.fail(err)
		return
	}
	s.printSet(sets[0])
}

func (s *setT) runInverse(cmd *cobra.Command, args []string) {
	sets, err := parseSets(args)
	if err != nil {
		s.fail(err)
		return
	}
	s.printSet(sets[0].Inverse())
}

func (s *setT) runUnion(cmd *cobra.Command, args []string) {
	sets, err := parseSets(args)
	if err != nil {
		s.fail(err)
		return
	}
	res := keyranges.Empty
	for _, set := range sets {
		res = res.Union(set)
	}
	s.printSet(res)
}

func (s *setT) runIntersect(cmd *cobra.Command, args []string) {
	sets, err := parseSets(args)
	if err != nil {
		s.fail(err)
		return
	}
	res := keyranges.Full
	for _, set := range sets {
		res = res.Intersection(set)
	}
	s.printSet(res)
}

func (s *setT) runDifference(cmd *cobra.Command, args []string) {
	sets, err := parseSets(args)
	if err != nil {
		s.fail(err)
		return
	}
	s.printSet(sets[0].Difference(sets[1]))
}

func (s *setT) runContains(cmd *cobra.Command, args []string) {
	sets, err := parseSets(args[:1])
	if err != nil {
		s.fail(err)
		return
	}
	keys, err := parseKeys(args[1:])
	if err != nil {
		s.fail(err)
		return
	}
	for _, k := range keys {
		fmt.Fprintf(stdout, "%s: %t\n", s.fmtKey.formatKey(k), sets[0].Contains(k))
	}
}

func (s *setT) runLookup(cmd *cobra.Command, args []string) {
	nearest, err := keyranges.ParseNearest(s.nearest)
	if err != nil {
		s.fail(err)
		return
	}
	sets, err := parseSets(args[:1])
	if err != nil {
		s.fail(err)
		return
	}
	keys, err := parseKeys(args[1:])
	if err != nil {
		s.fail(err)
		return
	}
	for _, k := range keys {
		fmt.Fprintf(stdout, "%s: ", s.fmtKey.formatKey(k))
		if r, ok := sets[0].GetKeyRange(k, nearest); ok {
			fmt.Fprintf(stdout, "%s\n", r.Format(s.fmtKey.formatKey))
		} else {
			fmt.Fprintf(stdout, "none\n")
		}
	}
}

func (s *setT) runPrefix(cmd *cobra.Command, args []string) {
	keys, err := parseKeys(args)
	if err != nil {
		s.fail(err)
		return
	}
	for _, k := range keys {
		fmt.Fprintf(stdout, "%s: %s\n", s.fmtKey.formatKey(k),
			keyranges.KeyRangeForPrefix(k).Format(s.fmtKey.formatKey))
	}
}

func (s *setT) runDescribe(cmd *cobra.Command, args []string) {
	sets, err := parseSets(args)
	if err != nil {
		s.fail(err)
		return
	}
	set := sets[0]
	tbl := tablewriter.NewWriter(stdout)
	tbl.SetHeader([]string{"#", "Min", "Max"})
	i := 0
	for r := range set.All() {
		tbl.Append([]string{
			strconv.Itoa(i),
			s.formatBound(r.Min(), keyranges.Lower),
			s.formatBound(r.Max(), keyranges.Upper),
		})
		i++
	}
	tbl.Render()
	fmt.Fprintf(stdout, "ranges: %d\n", set.Len())
	fmt.Fprintf(stdout, "hash: %016x\n", set.Hash())
}

func (s *setT) formatBound(b []byte, kind keyranges.BoundKind) string {
	if b == nil {
		return kind.Infinity()
	}
	return fmt.Sprint(s.fmtKey.formatKey(b))
}
