// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keyranges

import (
	"github.com/RaduBerinde/axisds"
	"github.com/RaduBerinde/axisds/regiontree"
	"github.com/cockroachdb/keyranges/internal/base"
)

// Builder assembles a Set incrementally, for callers that add and carve out
// ranges one at a time (for example adding the spans a transaction may read
// and then removing excluded ones). The set is kept in a region tree, so a
// Builder avoids the full renormalization that chaining Union and Difference
// calls would do on every step.
//
// Builder is not safe for concurrent use. The Sets it returns are immutable
// and independent of the Builder.
type Builder struct {
	// rt maps each region of the key space to whether it is in the set.
	// Adjacent regions with the same value are merged by the tree, so the
	// regions marked true are always the minimal ranges of the set.
	rt regiontree.T[boundary, bool]
}

// boundary is a region endpoint: a key, or -inf/+inf. The kind only matters
// for the infinities.
type boundary struct {
	key  []byte
	kind base.BoundKind
}

var (
	negInf = boundary{kind: base.Lower}
	posInf = boundary{kind: base.Upper}
)

func compareBoundaries(a, b boundary) int {
	return base.CompareBounds(base.DefaultComparer.Compare, a.key, a.kind, b.key, b.kind)
}

// MakeBuilder returns an empty Builder.
func MakeBuilder() Builder {
	var b Builder
	b.Reset()
	return b
}

// Reset empties the builder.
func (b *Builder) Reset() {
	b.rt = regiontree.Make(
		axisds.CompareFn[boundary](compareBoundaries),
		func(x, y bool) bool { return x == y },
	)
}

// Add adds all keys in r.
func (b *Builder) Add(r KeyRange) {
	b.update(r, true)
}

// Remove removes all keys in r.
func (b *Builder) Remove(r KeyRange) {
	b.update(r, false)
}

// AddSet adds all keys in s.
func (b *Builder) AddSet(s Set) {
	for _, r := range s.ranges {
		b.update(r, true)
	}
}

// RemoveSet removes all keys in s.
func (b *Builder) RemoveSet(s Set) {
	for _, r := range s.ranges {
		b.update(r, false)
	}
}

func (b *Builder) update(r KeyRange, in bool) {
	if r.IsEmpty() {
		return
	}
	start, end := negInf, posInf
	if r.min != nil {
		start = boundary{key: r.min, kind: base.Lower}
	}
	if r.max != nil {
		end = boundary{key: r.max, kind: base.Upper}
	}
	b.rt.Update(start, end, func(bool) bool { return in })
}

// Set returns the set of keys added so far and not removed since. The builder
// remains usable.
func (b *Builder) Set() Set {
	var ranges []KeyRange
	for region, in := range b.rt.All() {
		if !in {
			continue
		}
		ranges = append(ranges, KeyRange{min: region.Start.key, max: region.End.key})
	}
	// The regions come out sorted and already merged; the sweep is a single
	// linear pass over them.
	return makeSetFromSorted(ranges)
}
