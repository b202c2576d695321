// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/redact"

// BoundKind indicates which role a range endpoint plays in a comparison. The
// role only matters for an absent (nil) endpoint: an absent Lower bound is
// -infinity and an absent Upper bound is +infinity.
type BoundKind uint8

// The two possible values of BoundKind.
const (
	Lower BoundKind = iota
	Upper
)

// String implements fmt.Stringer.
func (k BoundKind) String() string {
	return redact.StringWithoutMarkers(k)
}

// SafeFormat implements redact.SafeFormatter.
func (k BoundKind) SafeFormat(w redact.SafePrinter, _ rune) {
	switch k {
	case Lower:
		w.SafeString("lower")
	case Upper:
		w.SafeString("upper")
	default:
		w.Printf("BoundKind(%d)", redact.SafeUint(k))
	}
}

// Infinity returns the textual form of an absent bound of this kind.
func (k BoundKind) Infinity() string {
	if k == Lower {
		return "-inf"
	}
	return "+inf"
}

// CompareBounds compares two range endpoints, each tagged with the role it
// plays. A nil endpoint is unbounded: it sorts before every key when its kind
// is Lower and after every key when its kind is Upper. Two nil endpoints of
// the same kind are equal; -inf always sorts before +inf.
//
// Non-nil endpoints are compared with cmp regardless of their kinds, so a
// range's max and the next range's min compare equal exactly when the two
// ranges are adjacent.
func CompareBounds(cmp Compare, a []byte, aKind BoundKind, b []byte, bKind BoundKind) int {
	switch {
	case a == nil && b == nil:
		switch {
		case aKind == bKind:
			return 0
		case aKind == Lower:
			return -1
		default:
			return +1
		}
	case a == nil:
		if aKind == Lower {
			return -1
		}
		return +1
	case b == nil:
		if bKind == Lower {
			return +1
		}
		return -1
	default:
		return cmp(a, b)
	}
}
