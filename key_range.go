// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keyranges

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/keyranges/internal/base"
	"github.com/cockroachdb/redact"
)

// KeyRange is a half-open interval [min, max) of keys. A nil min means the
// range is unbounded below and a nil max means it is unbounded above; the zero
// value is the range of all keys.
//
// A KeyRange is an immutable value. Its bounds are copied on construction and
// never alias memory owned by the caller.
type KeyRange struct {
	// min is the inclusive lower bound. It is never an empty non-nil slice: the
	// empty key is the smallest key, so [ "", x ) is stored as [-inf, x).
	min []byte
	// max is the exclusive upper bound. A non-nil empty max makes the range
	// empty.
	max []byte
}

// FullKeyRange is the range containing every key.
var FullKeyRange = KeyRange{}

// MakeKeyRange returns the range [min, max). A nil min or max is unbounded in
// that direction. It returns an error marked with ErrInvalidArgument if both
// bounds are present and min sorts after max. A zero-length range (min equal
// to max) is legal and contains no keys.
func MakeKeyRange(min, max []byte) (KeyRange, error) {
	if min != nil && max != nil && base.DefaultComparer.Compare(min, max) > 0 {
		return KeyRange{}, invalidArgumentf("min %s > max %s",
			base.DefaultFormatter(min), base.DefaultFormatter(max))
	}
	return makeKeyRangeUnchecked(min, max), nil
}

// MustMakeKeyRange is like MakeKeyRange but panics if the bounds are invalid.
// It is intended for literals and tests.
func MustMakeKeyRange(min, max []byte) KeyRange {
	r, err := MakeKeyRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// makeKeyRangeUnchecked copies the bounds into a single allocation. The caller
// guarantees min <= max.
func makeKeyRangeUnchecked(min, max []byte) KeyRange {
	if len(min) == 0 {
		min = nil
	}
	if min == nil && max == nil {
		return KeyRange{}
	}
	buf := make([]byte, 0, len(min)+len(max))
	var r KeyRange
	if min != nil {
		buf = append(buf, min...)
		r.min = buf[:len(min):len(min)]
	}
	if max != nil {
		start := len(buf)
		buf = append(buf, max...)
		r.max = buf[start:len(buf):len(buf)]
	}
	return r
}

// KeyRangeForPrefix returns the range of all keys beginning with prefix. The
// upper bound is the prefix with trailing 0xff bytes dropped and its last byte
// incremented; if the prefix is empty or entirely 0xff bytes, the range is
// unbounded above.
func KeyRangeForPrefix(prefix []byte) KeyRange {
	end, ok := base.PrefixEnd(nil, prefix)
	if !ok {
		return makeKeyRangeUnchecked(prefix, nil)
	}
	return makeKeyRangeUnchecked(prefix, end)
}

// Min returns the inclusive lower bound, or nil if the range is unbounded
// below. The returned slice must not be modified.
func (r KeyRange) Min() []byte {
	return r.min
}

// Max returns the exclusive upper bound, or nil if the range is unbounded
// above. The returned slice must not be modified.
func (r KeyRange) Max() []byte {
	return r.max
}

// Contains returns true if key lies within the range.
func (r KeyRange) Contains(key []byte) bool {
	cmp := base.DefaultComparer.Compare
	return (r.min == nil || cmp(r.min, key) <= 0) && (r.max == nil || cmp(key, r.max) < 0)
}

// IsFull returns true if the range is unbounded in both directions.
func (r KeyRange) IsFull() bool {
	return r.min == nil && r.max == nil
}

// IsEmpty returns true if the range contains no keys.
func (r KeyRange) IsEmpty() bool {
	// A nil min compares like the empty key here, which is exactly the point
	// set -inf stands for.
	return r.max != nil && bytes.Compare(r.min, r.max) >= 0
}

// ContainsRange returns true if every key in other is also in r. An empty
// range is contained by every range.
func (r KeyRange) ContainsRange(other KeyRange) bool {
	if other.IsEmpty() {
		return true
	}
	cmp := base.DefaultComparer.Compare
	return base.CompareBounds(cmp, r.min, base.Lower, other.min, base.Lower) <= 0 &&
		base.CompareBounds(cmp, other.max, base.Upper, r.max, base.Upper) <= 0
}

// Overlaps returns true if r and other have at least one key in common.
func (r KeyRange) Overlaps(other KeyRange) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	// There is no overlap iff one range starts at or after the other ends.
	cmp := base.DefaultComparer.Compare
	return base.CompareBounds(cmp, r.min, base.Lower, other.max, base.Upper) < 0 &&
		base.CompareBounds(cmp, other.min, base.Lower, r.max, base.Upper) < 0
}

// Equal returns true if both bounds of r and other are equal.
func (r KeyRange) Equal(other KeyRange) bool {
	return (r.min == nil) == (other.min == nil) && bytes.Equal(r.min, other.min) &&
		(r.max == nil) == (other.max == nil) && bytes.Equal(r.max, other.max)
}

// CompareKeyRanges orders ranges by their lower bound (-inf first), breaking
// ties by their upper bound (+inf last). It is suitable for slices.SortFunc.
func CompareKeyRanges(a, b KeyRange) int {
	cmp := base.DefaultComparer.Compare
	if c := base.CompareBounds(cmp, a.min, base.Lower, b.min, base.Lower); c != 0 {
		return c
	}
	return base.CompareBounds(cmp, a.max, base.Upper, b.max, base.Upper)
}

// compareByMin orders ranges by their lower bound only. Lookups search with it.
func compareByMin(a KeyRange, key []byte) int {
	return base.CompareBounds(base.DefaultComparer.Compare, a.min, base.Lower, key, base.Lower)
}

// String implements fmt.Stringer.
func (r KeyRange) String() string {
	return r.Format(base.DefaultFormatter)
}

// Format converts the range to a string of the form "[foo, bar)", using the
// given key formatter. Unbounded sides print as -inf and +inf.
func (r KeyRange) Format(fmtKey base.FormatKey) string {
	return fmt.Sprintf("[%s, %s)", formatBound(fmtKey, r.min, base.Lower), formatBound(fmtKey, r.max, base.Upper))
}

// SafeFormat implements redact.SafeFormatter. Keys are redactable; the
// brackets and infinities are not.
func (r KeyRange) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('[')
	safeFormatBound(w, r.min, base.Lower)
	w.SafeString(", ")
	safeFormatBound(w, r.max, base.Upper)
	w.SafeRune(')')
}

func formatBound(fmtKey base.FormatKey, b []byte, kind base.BoundKind) string {
	switch {
	case b == nil:
		return kind.Infinity()
	case len(b) == 0:
		return `""`
	default:
		return fmt.Sprint(fmtKey(b))
	}
}

func safeFormatBound(w redact.SafePrinter, b []byte, kind base.BoundKind) {
	switch {
	case b == nil:
		w.SafeString(redact.SafeString(kind.Infinity()))
	case len(b) == 0:
		w.SafeString(`""`)
	default:
		w.Print(base.FormatBytes(b))
	}
}
