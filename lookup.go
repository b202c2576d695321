// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keyranges

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/keyranges/internal/invariants"
	"github.com/cockroachdb/redact"
)

// Nearest selects what GetKeyRange returns when the key is not in the set.
type Nearest int8

const (
	// ExactOnly returns nothing when the key is not in the set.
	ExactOnly Nearest = iota
	// Forward returns the first range after the key.
	Forward
	// Backward returns the last range before the key.
	Backward
)

var nearestNames = [...]string{
	ExactOnly: "exact",
	Forward:   "forward",
	Backward:  "backward",
}

// String implements fmt.Stringer.
func (n Nearest) String() string {
	return redact.StringWithoutMarkers(n)
}

// SafeFormat implements redact.SafeFormatter.
func (n Nearest) SafeFormat(w redact.SafePrinter, _ rune) {
	if n >= 0 && int(n) < len(nearestNames) {
		w.SafeString(redact.SafeString(nearestNames[n]))
		return
	}
	w.Printf("Nearest(%d)", redact.SafeInt(n))
}

// ParseNearest parses the string form of a Nearest ("exact", "forward" or
// "backward").
func ParseNearest(s string) (Nearest, error) {
	for i, name := range nearestNames {
		if s == name {
			return Nearest(i), nil
		}
	}
	return 0, invalidArgumentf("unknown nearest policy %q", s)
}

// Contains returns true if key is in the set.
func (s Set) Contains(key []byte) bool {
	_, ok := s.GetKeyRange(key, ExactOnly)
	return ok
}

// GetKeyRange returns the range of the set containing key. If no range
// contains key, the result depends on nearest: with Forward it is the first
// range after key, with Backward the last range before key, and with
// ExactOnly (or if there is no range in that direction) there is no result
// and ok is false.
//
// The search is a binary search over the ranges' lower bounds.
func (s Set) GetKeyRange(key []byte, nearest Nearest) (r KeyRange, ok bool) {
	r, ok = s.getKeyRange(key, nearest)
	if invariants.Sometimes(10) {
		if lr, lok := s.getKeyRangeLinear(key, nearest); lok != ok || !lr.Equal(r) {
			panic(errors.AssertionFailedf("keyranges: GetKeyRange(%q, %s) = %s, %t; linear scan found %s, %t",
				key, nearest, r, ok, lr, lok))
		}
	}
	return r, ok
}

func (s Set) getKeyRange(key []byte, nearest Nearest) (KeyRange, bool) {
	i, found := slices.BinarySearchFunc(s.ranges, key, compareByMin)
	if found {
		return s.ranges[i], true
	}
	// i is the insertion point: s.ranges[i-1] starts before key and
	// s.ranges[i] after it.
	if i > 0 {
		if prev := s.ranges[i-1]; prev.Contains(key) || nearest == Backward {
			return prev, true
		}
	}
	if nearest == Forward && i < len(s.ranges) {
		return s.ranges[i], true
	}
	return KeyRange{}, false
}

// getKeyRangeLinear is a straightforward reimplementation of getKeyRange used
// to cross-check it in invariants builds.
func (s Set) getKeyRangeLinear(key []byte, nearest Nearest) (KeyRange, bool) {
	var before *KeyRange
	for i := range s.ranges {
		r := &s.ranges[i]
		if r.Contains(key) {
			return *r, true
		}
		if compareByMin(*r, key) > 0 {
			switch {
			case nearest == Forward:
				return *r, true
			case nearest == Backward && before != nil:
				return *before, true
			}
			return KeyRange{}, false
		}
		before = r
	}
	if nearest == Backward && before != nil {
		return *before, true
	}
	return KeyRange{}, false
}
