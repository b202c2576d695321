// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package strparse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/keyranges/internal/base"
	"github.com/stretchr/testify/require"
)

func TestParserOffsets(t *testing.T) {
	tests := []struct {
		sep   string
		input string
		want  []token
	}{
		{sep: "|", input: "a   |  b   |c",
			want: []token{
				{tok: "a", offset: 0},
				{tok: "|", offset: 4},
				{tok: "b", offset: 7},
				{tok: "|", offset: 11},
				{tok: "c", offset: 12},
			},
		},
		{sep: RangeSeparators, input: "{[a, b), [c,+inf)}",
			want: []token{
				{tok: "{", offset: 0},
				{tok: "[", offset: 1},
				{tok: "a", offset: 2},
				{tok: ",", offset: 3},
				{tok: "b", offset: 5},
				{tok: ")", offset: 6},
				{tok: ",", offset: 7},
				{tok: "[", offset: 9},
				{tok: "c", offset: 10},
				{tok: ",", offset: 11},
				{tok: "+inf", offset: 12},
				{tok: ")", offset: 16},
				{tok: "}", offset: 17},
			},
		},
	}
	for _, test := range tests {
		p := MakeParser(test.sep, test.input)
		require.Equal(t, test.want, p.tokens)
	}
}

func TestParseKey(t *testing.T) {
	testCases := []struct {
		in   string
		want []byte
		err  string
	}{
		{in: "abc", want: []byte("abc")},
		{in: `""`, want: []byte{}},
		{in: "0x", want: []byte{}},
		{in: "0x10ff", want: []byte{0x10, 0xff}},
		{in: `a\x00`, want: []byte("a\x00")},
		{in: `\xff\xfe`, want: []byte{0xff, 0xfe}},
		{in: "0xzz", err: "invalid hex key"},
		{in: `\q`, err: "invalid escaped key"},
		{in: "", err: "empty key token"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			k, err := ParseKey(tc.in)
			if tc.err != "" {
				require.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, k)
		})
	}
}

// TestParseKeyFormatRoundTrip checks that keys printed by the default key
// formatter parse back to the same bytes.
func TestParseKeyFormatRoundTrip(t *testing.T) {
	for _, k := range [][]byte{
		[]byte("a"), []byte("a\x00"), {0x00}, {0xff, 0x01}, []byte("k\x7f\x80"),
	} {
		s := fmt.Sprint(base.DefaultFormatter(k))
		got, err := ParseKey(s)
		require.NoError(t, err)
		require.Equal(t, k, got, "%s", s)
	}
}

func TestParserBounds(t *testing.T) {
	datadriven.RunTest(t, "testdata/bounds", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "parse":
			var buf strings.Builder
			for _, line := range strings.Split(strings.TrimSpace(td.Input), "\n") {
				var min, max []byte
				err := Catch(func() {
					p := MakeParser(RangeSeparators, line)
					min, max = p.Bounds()
					p.ExpectDone()
				})
				if err != nil {
					fmt.Fprintf(&buf, "%s: error: %v\n", line, err)
					continue
				}
				fmt.Fprintf(&buf, "%s: min=%s max=%s\n", line, fmtBound(min, base.Lower), fmtBound(max, base.Upper))
			}
			return buf.String()
		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
			return ""
		}
	})
}

func fmtBound(b []byte, kind base.BoundKind) string {
	if b == nil {
		return kind.Infinity()
	}
	return fmt.Sprintf("%x(len=%d)", b, len(b))
}

func TestCatch(t *testing.T) {
	require.NoError(t, Catch(func() {}))
	err := Catch(func() {
		p := MakeParser(RangeSeparators, "[a b)")
		p.Bounds()
	})
	require.ErrorContains(t, err, `error parsing "[a b)" at token "b": expected ",", got "b"`)
	require.Panics(t, func() {
		_ = Catch(func() { panic("not an error") })
	})
}
