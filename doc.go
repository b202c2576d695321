// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package keyranges implements an algebra over subsets of an ordered key
// space. Keys are arbitrary byte strings ordered bytewise (unsigned
// lexicographic order), and the key space is unbounded in both directions.
//
// A [KeyRange] is a half-open interval [min, max). Either bound may be absent,
// meaning the range extends to -inf or +inf in that direction.
//
// A [Set] is an arbitrary subset of the key space, stored as the unique
// minimal list of KeyRanges that covers it: sorted, non-empty, and with a gap
// of at least one key between consecutive ranges. Sets are built from any
// list of ranges by [MakeSet] and support union, intersection, difference,
// complement, containment, and lookup of the range holding (or nearest to) a
// key:
//
//	visible := keyranges.MakeSet(
//		keyranges.KeyRangeForPrefix([]byte("users/")),
//		keyranges.KeyRangeForPrefix([]byte("orders/")),
//	)
//	hidden := visible.Inverse()
//	r, ok := visible.GetKeyRange([]byte("p"), keyranges.Forward) // [users/, users0)
//
// All types except [Builder] are immutable values and safe for concurrent use.
// No operation performs I/O or blocks.
package keyranges
