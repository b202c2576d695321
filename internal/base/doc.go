// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines fundamental types used across keyranges: the key
// comparer, key formatting, and the bound-aware comparison that gives an
// absent range endpoint its meaning.
//
// # Unbounded endpoints
//
// A range endpoint is either a key or absent (nil). An absent endpoint means
// "unbounded", and whether that is -infinity or +infinity depends on the role
// the endpoint plays. [CompareBounds] takes that role explicitly as a
// [BoundKind] for each operand, so the same function can compare a min against
// a min, a max against a max, or a min against a max:
//
//	CompareBounds(cmp, nil, Lower, k, Upper) < 0  // -inf < k
//	CompareBounds(cmp, nil, Upper, k, Lower) > 0  // +inf > k
//	CompareBounds(cmp, nil, Lower, nil, Upper) < 0
//
// Every merge and overlap decision made by the range algebra goes through
// CompareBounds.
package base
