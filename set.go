// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keyranges

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/keyranges/internal/base"
	"github.com/cockroachdb/keyranges/internal/invariants"
)

// Set is an immutable set of keys, represented as the minimal list of
// KeyRanges whose union is the set. The ranges are sorted by their lower
// bound, none of them is empty, and no two of them overlap or touch: between
// any two consecutive ranges there is at least one key outside the set. This
// representation is unique, so two Sets are equal iff their ranges are.
//
// The zero value is the empty set. Sets are safe for concurrent use; every
// operation returns a new Set and none modifies its receiver.
type Set struct {
	ranges []KeyRange
}

var (
	// Empty is the set containing no keys.
	Empty = Set{}
	// Full is the set containing every key.
	Full = Set{ranges: []KeyRange{FullKeyRange}}
)

// MakeSet returns the set of keys contained in any of the given ranges. The
// ranges may be listed in any order and may overlap, touch, repeat, or be
// empty. The input slice is neither retained nor modified.
func MakeSet(ranges ...KeyRange) Set {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, CompareKeyRanges)
	return makeSetFromSorted(sorted)
}

// SetOf returns the set containing the single range [min, max). It fails like
// MakeKeyRange if min sorts after max.
func SetOf(min, max []byte) (Set, error) {
	r, err := MakeKeyRange(min, max)
	if err != nil {
		return Set{}, err
	}
	return MakeSet(r), nil
}

// SetForPrefix returns the set of all keys beginning with prefix.
func SetForPrefix(prefix []byte) Set {
	return MakeSet(KeyRangeForPrefix(prefix))
}

// makeSetFromSorted minimizes ranges, which must be sorted by
// CompareKeyRanges. The slice is reused for the result.
func makeSetFromSorted(sorted []KeyRange) Set {
	s := Set{ranges: minimize(sorted)}
	if invariants.Enabled {
		if err := s.checkInvariants(); err != nil {
			panic(err)
		}
	}
	return s
}

// minimize merges a sorted list of ranges in place into the minimal list with
// the same union. It sweeps left to right, growing an accumulator range cur
// for as long as the next range starts at or before cur's end.
func minimize(sorted []KeyRange) []KeyRange {
	cmp := base.DefaultComparer.Compare
	out := sorted[:0]
	var cur KeyRange
	have := false
	for _, r := range sorted {
		if r.IsEmpty() {
			continue
		}
		if !have {
			cur, have = r, true
			continue
		}
		switch {
		case base.CompareBounds(cmp, r.min, base.Lower, cur.min, base.Lower) == 0:
			// Same start. The sort order puts the larger end last, so r contains
			// cur; max() keeps this true even if cur was already extended.
			cur.max = maxUpper(cur.max, r.max)
		case base.CompareBounds(cmp, r.min, base.Lower, cur.max, base.Upper) <= 0:
			// r starts inside cur or right where it ends: extend cur.
			cur.max = maxUpper(cur.max, r.max)
		default:
			out = append(out, cur)
			cur = r
		}
	}
	if have {
		out = append(out, cur)
	}
	if len(out) == 0 {
		return nil
	}
	return slices.Clip(out)
}

// maxUpper returns the larger of two upper bounds; nil (+inf) wins.
func maxUpper(a, b []byte) []byte {
	if base.CompareBounds(base.DefaultComparer.Compare, a, base.Upper, b, base.Upper) >= 0 {
		return a
	}
	return b
}

// checkInvariants verifies that s is in canonical form.
func (s Set) checkInvariants() error {
	cmp := base.DefaultComparer.Compare
	for i, r := range s.ranges {
		if r.IsEmpty() {
			return errors.AssertionFailedf("keyranges: empty range %s at index %d", r, i)
		}
		if r.min != nil && len(r.min) == 0 {
			return errors.AssertionFailedf("keyranges: non-canonical min in %s at index %d", r, i)
		}
		if i == 0 {
			continue
		}
		prev := s.ranges[i-1]
		if prev.max == nil || r.min == nil {
			return errors.AssertionFailedf("keyranges: unbounded range in the interior: %s, %s", prev, r)
		}
		if cmp(prev.max, r.min) >= 0 {
			return errors.AssertionFailedf("keyranges: ranges %s and %s overlap, touch or are unsorted", prev, r)
		}
	}
	return nil
}

// KeyRanges returns the minimal list of ranges making up the set, sorted by
// lower bound. The returned slice must not be modified.
func (s Set) KeyRanges() []KeyRange {
	return s.ranges
}

// All returns an iterator over the ranges of the set in ascending order.
func (s Set) All() iter.Seq[KeyRange] {
	return func(yield func(KeyRange) bool) {
		for _, r := range s.ranges {
			if !yield(r) {
				return
			}
		}
	}
}

// Len returns the number of ranges in the minimal representation of the set.
func (s Set) Len() int {
	return len(s.ranges)
}

// IsEmpty returns true if the set contains no keys.
func (s Set) IsEmpty() bool {
	return len(s.ranges) == 0
}

// IsFull returns true if the set contains every key.
func (s Set) IsFull() bool {
	return len(s.ranges) == 1 && s.ranges[0].IsFull()
}

// Min returns the smallest key in the set (inclusive). It returns nil if the
// set is empty or unbounded below.
func (s Set) Min() []byte {
	if len(s.ranges) == 0 {
		return nil
	}
	return s.ranges[0].min
}

// Max returns the upper bound of the set (exclusive). It returns nil if the
// set is empty or unbounded above.
func (s Set) Max() []byte {
	if len(s.ranges) == 0 {
		return nil
	}
	return s.ranges[len(s.ranges)-1].max
}

// Equal returns true if s and other contain the same keys.
func (s Set) Equal(other Set) bool {
	return slices.EqualFunc(s.ranges, other.ranges, KeyRange.Equal)
}
