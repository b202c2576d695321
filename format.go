// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keyranges

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/keyranges/internal/base"
	"github.com/cockroachdb/keyranges/internal/strparse"
	"github.com/cockroachdb/redact"
)

// String implements fmt.Stringer.
func (s Set) String() string {
	return s.Format(base.DefaultFormatter)
}

// Format converts the set to a string of the form "{[a, b), [c, +inf)}",
// using the given key formatter. The empty set is "{}".
func (s Set) Format(fmtKey base.FormatKey) string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, r := range s.ranges {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(r.Format(fmtKey))
	}
	buf.WriteByte('}')
	return buf.String()
}

// SafeFormat implements redact.SafeFormatter.
func (s Set) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('{')
	for i, r := range s.ranges {
		if i > 0 {
			w.SafeString(", ")
		}
		r.SafeFormat(w, 's')
	}
	w.SafeRune('}')
}

// Hash returns a 64-bit hash of the set. Equal sets have equal hashes.
func (s Set) Hash() uint64 {
	d := xxhash.New()
	var buf [binary.MaxVarintLen64 + 1]byte
	writeBound := func(b []byte) {
		// A leading tag distinguishes an absent bound from the empty key.
		n := 1
		if b == nil {
			buf[0] = 0
		} else {
			buf[0] = 1
			n += binary.PutUvarint(buf[1:], uint64(len(b)))
		}
		_, _ = d.Write(buf[:n])
		_, _ = d.Write(b)
	}
	for _, r := range s.ranges {
		writeBound(r.min)
		writeBound(r.max)
	}
	return d.Sum64()
}

// ParseKey parses the textual form of a key, as printed by the default key
// formatter: printable characters stand for themselves and other bytes are
// written as \xNN escapes. A key may also be given in hex with a 0x prefix,
// and `""` is the empty key. It is intended for tests and debug input.
func ParseKey(s string) ([]byte, error) {
	k, err := strparse.ParseKey(s)
	if err != nil {
		return nil, markInvalidArgument(err)
	}
	return k, nil
}

// ParseKeyRange parses the string form of a range, e.g. "[a, b)",
// "[-inf, 0x10)" or "[a, +inf)", as produced by KeyRange.String. It is
// intended for tests and debug input.
func ParseKeyRange(s string) (KeyRange, error) {
	var r KeyRange
	err := strparse.Catch(func() {
		p := strparse.MakeParser(strparse.RangeSeparators, s)
		r = parseKeyRange(&p)
		p.ExpectDone()
	})
	if err != nil {
		return KeyRange{}, markInvalidArgument(err)
	}
	return r, nil
}

// ParseSet parses the string form of a set, e.g. "{[a, b), [c, +inf)}", as
// produced by Set.String. The ranges need not be sorted or disjoint; the
// result is normalized like MakeSet. The braces are optional. It is intended
// for tests and debug input.
func ParseSet(s string) (Set, error) {
	var ranges []KeyRange
	err := strparse.Catch(func() {
		p := strparse.MakeParser(strparse.RangeSeparators, s)
		braced := p.Peek() == "{"
		if braced {
			p.Next()
		}
		for !p.Done() && p.Peek() != "}" {
			if len(ranges) > 0 && p.Peek() == "," {
				p.Next()
			}
			ranges = append(ranges, parseKeyRange(&p))
		}
		if braced {
			p.Expect("}")
		}
		p.ExpectDone()
	})
	if err != nil {
		return Set{}, markInvalidArgument(err)
	}
	return MakeSet(ranges...), nil
}

func parseKeyRange(p *strparse.Parser) KeyRange {
	min, max := p.Bounds()
	r, err := MakeKeyRange(min, max)
	if err != nil {
		p.Errf("%v", err)
	}
	return r
}
