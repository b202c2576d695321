// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/cockroachdb/keyranges"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, int) {
	var buf bytes.Buffer
	stdout = &buf
	stderr = &buf
	exitCode := 0
	osExit = func(code int) { exitCode = code }
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
	require.NoError(t, c.Execute())
	return buf.String(), exitCode
}

func TestDescribe(t *testing.T) {
	out, code := runCommand(t, "describe", "{[x, +inf), [a, c)}")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Contains(t, lines[1], "MIN")
	require.Contains(t, lines[1], "MAX")

	var rows [][]string
	for _, l := range lines {
		if !strings.HasPrefix(l, "|") {
			continue
		}
		var cells []string
		for _, c := range strings.Split(strings.Trim(l, "|"), "|") {
			cells = append(cells, strings.TrimSpace(c))
		}
		rows = append(rows, cells)
	}
	require.Equal(t, [][]string{
		{"#", "MIN", "MAX"},
		{"0", "a", "c"},
		{"1", "x", "+inf"},
	}, rows)

	s, err := keyranges.ParseSet("{[a, c), [x, +inf)}")
	require.NoError(t, err)
	require.Contains(t, out, "ranges: 2\n")
	require.Contains(t, out, fmt.Sprintf("hash: %016x\n", s.Hash()))

	out, code = runCommand(t, "describe", "--key-format=hex", "{[-inf, a)}")
	require.Equal(t, 0, code)
	require.Contains(t, out, "-inf")
	require.Contains(t, out, "0x61")
}

func TestCommandErrorsExit(t *testing.T) {
	out, code := runCommand(t, "union", "{[b, a)}")
	require.Equal(t, 1, code)
	require.Contains(t, out, "min b > max a")

	out, code = runCommand(t, "lookup", "--nearest=up", "{}", "a")
	require.Equal(t, 1, code)
	require.Contains(t, out, `unknown nearest policy "up"`)
}

func TestKeyFlag(t *testing.T) {
	testCases := []struct {
		arg     string
		want    []byte
		wantErr bool
	}{
		{"abc", []byte("abc"), false},
		{"hex:00ff", []byte{0x00, 0xff}, false},
		{"hex:", []byte{}, false},
		{"raw:hex:00", []byte("hex:00"), false},
		{`a\x00`, []byte{'a', 0x00}, false},
		{"0x0102", []byte{0x01, 0x02}, false},
		{`""`, []byte{}, false},
		{"hex:0", nil, true},
		{"", nil, true},
	}
	for _, tc := range testCases {
		var k key
		err := k.Set(tc.arg)
		if tc.wantErr {
			require.Errorf(t, err, "%q", tc.arg)
			continue
		}
		require.NoErrorf(t, err, "%q", tc.arg)
		require.Equalf(t, len(tc.want), len(k), "%q", tc.arg)
		require.Equalf(t, string(tc.want), string(k), "%q", tc.arg)
	}
}

func TestKeyFormatter(t *testing.T) {
	testCases := []struct {
		spec string
		key  []byte
		want string
	}{
		{"pretty", []byte("a\x00"), `a\x00`},
		{"quoted", []byte("a\x00\""), `a\x00\"`},
		{"hex", []byte("ab"), "0x6162"},
		{"%x", []byte("ab"), "6162"},
		{"<%s>", []byte("ab"), "<ab>"},
	}
	for _, tc := range testCases {
		var f keyFormatter
		require.NoError(t, f.Set(tc.spec))
		require.Equal(t, tc.spec, f.String())
		require.Equal(t, tc.want, fmt.Sprint(f.formatKey(tc.key)))
	}

	var f keyFormatter
	require.Error(t, f.Set("%s%s"))
	require.Error(t, f.Set("plain"))
	require.Panics(t, func() { f.mustSet("plain") })
}
