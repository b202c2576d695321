// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keyranges

import (
	"github.com/cockroachdb/keyranges/internal/base"
	"github.com/cockroachdb/keyranges/internal/invariants"
)

// makeSetCanonical wraps ranges that are already in canonical form.
func makeSetCanonical(ranges []KeyRange) Set {
	if len(ranges) == 0 {
		return Empty
	}
	s := Set{ranges: ranges}
	if invariants.Enabled {
		if err := s.checkInvariants(); err != nil {
			panic(err)
		}
	}
	return s
}

// Inverse returns the set of all keys not in s.
func (s Set) Inverse() Set {
	if len(s.ranges) == 0 {
		return Full
	}
	out := make([]KeyRange, 0, len(s.ranges)+1)
	// gapStart is the start of the next gap; nil is -inf.
	var gapStart []byte
	rs := s.ranges
	if rs[0].min == nil {
		if rs[0].max == nil {
			return Empty
		}
		gapStart = rs[0].max
		rs = rs[1:]
	}
	for _, r := range rs {
		// r.min is never nil past the first range.
		out = append(out, KeyRange{min: gapStart, max: r.min})
		gapStart = r.max
	}
	if gapStart != nil {
		out = append(out, KeyRange{min: gapStart})
	}
	// The gaps are separated by the non-empty ranges of s, so they are
	// already minimal.
	return makeSetCanonical(out)
}

// Union returns the set of keys in s or in other.
func (s Set) Union(other Set) Set {
	switch {
	case len(other.ranges) == 0:
		return s
	case len(s.ranges) == 0:
		return other
	}
	// Both inputs are sorted; merge them and sweep once.
	merged := make([]KeyRange, 0, len(s.ranges)+len(other.ranges))
	a, b := s.ranges, other.ranges
	for len(a) > 0 && len(b) > 0 {
		if CompareKeyRanges(a[0], b[0]) <= 0 {
			merged = append(merged, a[0])
			a = a[1:]
		} else {
			merged = append(merged, b[0])
			b = b[1:]
		}
	}
	merged = append(merged, a...)
	merged = append(merged, b...)
	return makeSetFromSorted(merged)
}

// Intersection returns the set of keys in both s and other.
//
// It walks both range lists in order, emitting the overlap of the current pair
// and advancing whichever range ends first. This is equivalent to
// s.Inverse().Union(other.Inverse()).Inverse() without the extra passes.
func (s Set) Intersection(other Set) Set {
	if len(s.ranges) == 0 || len(other.ranges) == 0 {
		return Empty
	}
	cmp := base.DefaultComparer.Compare
	var out []KeyRange
	a, b := s.ranges, other.ranges
	for len(a) > 0 && len(b) > 0 {
		x, y := a[0], b[0]
		lo := x.min
		if base.CompareBounds(cmp, y.min, base.Lower, lo, base.Lower) > 0 {
			lo = y.min
		}
		hi := x.max
		if base.CompareBounds(cmp, y.max, base.Upper, hi, base.Upper) < 0 {
			hi = y.max
		}
		if base.CompareBounds(cmp, lo, base.Lower, hi, base.Upper) < 0 {
			out = append(out, KeyRange{min: lo, max: hi})
		}
		if base.CompareBounds(cmp, x.max, base.Upper, y.max, base.Upper) < 0 {
			a = a[1:]
		} else {
			b = b[1:]
		}
	}
	return makeSetFromSorted(out)
}

// Difference returns the set of keys in s but not in other.
func (s Set) Difference(other Set) Set {
	if len(s.ranges) == 0 || len(other.ranges) == 0 {
		return s
	}
	return s.Intersection(other.Inverse())
}

// ContainsSet returns true if every key in other is also in s.
func (s Set) ContainsSet(other Set) bool {
	return s.Intersection(other).Equal(other)
}

// Overlaps returns true if s and other have at least one key in common.
func (s Set) Overlaps(other Set) bool {
	a, b := s.ranges, other.ranges
	for len(a) > 0 && len(b) > 0 {
		if a[0].Overlaps(b[0]) {
			return true
		}
		if base.CompareBounds(base.DefaultComparer.Compare, a[0].max, base.Upper, b[0].max, base.Upper) < 0 {
			a = a[1:]
		} else {
			b = b[1:]
		}
	}
	return false
}
