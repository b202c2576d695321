// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keyranges

import "github.com/cockroachdb/keyranges/internal/base"

// BoundKind exports the base.BoundKind type.
type BoundKind = base.BoundKind

// The two roles a range endpoint can play in CompareBounds.
const (
	Lower = base.Lower
	Upper = base.Upper
)

// FormatKey exports the base.FormatKey type.
type FormatKey = base.FormatKey

// DefaultFormatter exports the base.DefaultFormatter key formatter.
var DefaultFormatter = base.DefaultFormatter

// CompareBounds compares two range endpoints under the bytewise key order. A
// nil endpoint is -inf when its kind is Lower and +inf when it is Upper; see
// base.CompareBounds.
func CompareBounds(a []byte, aKind BoundKind, b []byte, bKind BoundKind) int {
	return base.CompareBounds(base.DefaultComparer.Compare, a, aKind, b, bKind)
}
