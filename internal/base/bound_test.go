// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestCompareBounds(t *testing.T) {
	cmp := DefaultComparer.Compare
	type bound struct {
		key  []byte
		kind BoundKind
	}
	// ordered lists bounds in ascending order; bounds within the same inner
	// slice compare equal.
	ordered := [][]bound{
		{{nil, Lower}},
		{{[]byte{}, Lower}, {[]byte{}, Upper}},
		{{[]byte("a"), Lower}, {[]byte("a"), Upper}},
		{{[]byte("a\x00"), Upper}},
		{{[]byte("b"), Lower}},
		{{[]byte("\xff"), Upper}, {[]byte("\xff"), Lower}},
		{{nil, Upper}},
	}
	for i := range ordered {
		for j := range ordered {
			expected := 0
			if i < j {
				expected = -1
			} else if i > j {
				expected = +1
			}
			for _, a := range ordered[i] {
				for _, b := range ordered[j] {
					require.Equalf(t, expected, CompareBounds(cmp, a.key, a.kind, b.key, b.kind),
						"%q/%s vs %q/%s", a.key, a.kind, b.key, b.kind)
				}
			}
		}
	}
}

func TestBoundKindFormat(t *testing.T) {
	require.Equal(t, "lower", Lower.String())
	require.Equal(t, "upper", Upper.String())
	require.Equal(t, "BoundKind(7)", BoundKind(7).String())
	require.Equal(t, redact.RedactableString("upper"), redact.Sprint(Upper))
	require.Equal(t, "-inf", Lower.Infinity())
	require.Equal(t, "+inf", Upper.Infinity())
}

func TestPrefixEnd(t *testing.T) {
	testCases := []struct {
		prefix string
		want   string
		ok     bool
	}{
		{"", "", false},
		{"\x00", "\x01", true},
		{"\x02", "\x03", true},
		{"a1", "a2", true},
		{"\x00\x00", "\x00\x01", true},
		{"\x00\xff", "\x01", true},
		{"\x00\xff\xff", "\x01", true},
		{"\xfe", "\xff", true},
		{"\xff\xfe", "\xff\xff", true},
		{"\xff", "", false},
		{"\xff\xff", "", false},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%x", tc.prefix), func(t *testing.T) {
			prefix := []byte(tc.prefix)
			got, ok := PrefixEnd(nil, prefix)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, string(got))
			// The prefix itself must be untouched.
			require.Equal(t, tc.prefix, string(prefix))
			if ok {
				require.Less(t, bytes.Compare(prefix, got), 0)
				// Every extension of the prefix sorts before the end.
				ext := append(append([]byte(nil), prefix...), 0xff, 0xff)
				require.Less(t, bytes.Compare(ext, got), 0)
			}
		})
	}

	// dst is appended to.
	got, ok := PrefixEnd([]byte("x"), []byte("a"))
	require.True(t, ok)
	require.Equal(t, "xb", string(got))
}

func TestFormatBytes(t *testing.T) {
	require.Equal(t, `abc`, fmt.Sprint(FormatBytes("abc")))
	require.Equal(t, `a\x00\xff`, fmt.Sprint(FormatBytes("a\x00\xff")))
	require.Equal(t, ``, fmt.Sprint(DefaultFormatter(nil)))
}

func TestComparerEnsureDefaults(t *testing.T) {
	require.Equal(t, DefaultComparer, (*Comparer)(nil).EnsureDefaults())
	c := &Comparer{Compare: bytes.Compare, Name: "test"}
	n := c.EnsureDefaults()
	require.NotSame(t, c, n)
	require.True(t, n.Equal([]byte("a"), []byte("a")))
	require.False(t, n.Equal([]byte("a"), []byte("b")))
	require.Equal(t, "a\\x01", fmt.Sprint(n.FormatKey([]byte("a\x01"))))
	require.Panics(t, func() { (&Comparer{Name: "x"}).EnsureDefaults() })
}
