// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/keyranges"
)

var stdout = io.Writer(os.Stdout)
var stderr = io.Writer(os.Stderr)
var osExit = os.Exit

// key is a command line key argument. A "hex:" prefix decodes the rest of the
// argument as hex and a "raw:" prefix takes it verbatim; otherwise the
// argument is parsed with keyranges.ParseKey.
type key []byte

func (k *key) String() string {
	return string(*k)
}

func (k *key) Type() string {
	return "key"
}

func (k *key) Set(v string) error {
	switch {
	case strings.HasPrefix(v, "hex:"):
		v = strings.TrimPrefix(v, "hex:")
		b, err := hex.DecodeString(v)
		if err != nil {
			return errors.Wrapf(err, "invalid hex key %q", v)
		}
		*k = key(b)

	case strings.HasPrefix(v, "raw:"):
		*k = key(strings.TrimPrefix(v, "raw:"))

	default:
		b, err := keyranges.ParseKey(v)
		if err != nil {
			return err
		}
		*k = key(b)
	}
	return nil
}

// keyFormatter is the --key-format flag: "pretty" (the default, matching the
// textual form sets are parsed from), "quoted", "hex", or a printf spec with
// a single verb.
type keyFormatter struct {
	spec string
	fn   func(w io.Writer, v []byte)
}

func (f *keyFormatter) String() string {
	return f.spec
}

func (f *keyFormatter) Type() string {
	return "formatter"
}

func (f *keyFormatter) Set(spec string) error {
	f.spec = spec
	switch spec {
	case "pretty":
		f.fn = formatPretty
	case "hex":
		f.fn = formatHex
	case "quoted":
		f.fn = formatQuoted
	default:
		if strings.Count(spec, "%") != 1 {
			return errors.Errorf("unknown formatter: %q", spec)
		}
		f.fn = func(w io.Writer, v []byte) {
			fmt.Fprintf(w, f.spec, v)
		}
	}
	return nil
}

func (f *keyFormatter) mustSet(spec string) {
	if err := f.Set(spec); err != nil {
		panic(err)
	}
}

// formatKey adapts the formatter to a keyranges.FormatKey.
func (f *keyFormatter) formatKey(k []byte) fmt.Formatter {
	return formattedKey{fn: f.fn, key: k}
}

type formattedKey struct {
	fn  func(w io.Writer, v []byte)
	key []byte
}

func (k formattedKey) Format(s fmt.State, _ rune) {
	k.fn(s, k.key)
}

func formatPretty(w io.Writer, v []byte) {
	fmt.Fprint(w, keyranges.DefaultFormatter(v))
}

func formatHex(w io.Writer, v []byte) {
	fmt.Fprintf(w, "0x%x", v)
}

func formatQuoted(w io.Writer, v []byte) {
	q := strconv.AppendQuote(make([]byte, 0, len(v)+2), string(v))
	q = q[1 : len(q)-1]
	_, _ = w.Write(q)
}

// parseSets parses each argument as a set.
func parseSets(args []string) ([]keyranges.Set, error) {
	sets := make([]keyranges.Set, len(args))
	for i, arg := range args {
		s, err := keyranges.ParseSet(arg)
		if err != nil {
			return nil, err
		}
		sets[i] = s
	}
	return sets, nil
}

// parseKeys parses each argument as a key.
func parseKeys(args []string) ([]key, error) {
	keys := make([]key, len(args))
	for i, arg := range args {
		if err := keys[i].Set(arg); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
