// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse provides facilities for parsing strings, intended for use in
// tests and debug input.
package strparse

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/keyranges/internal/base"
)

// RangeSeparators are the separators used by the textual form of key ranges
// and sets of key ranges, e.g. `{[a, c), [e, +inf)}`.
const RangeSeparators = "[](),{}"

// Parser is a helper used to implement parsing of strings, like
// keyranges.ParseSet.
//
// It takes a string and splits it into tokens. Tokens are separated by
// whitespace; in addition user-specified separators are also always separate
// tokens. For example, when passed the separators `[](),` the string
// `[a, b)` results in tokens `[`, `a`, `,`, `b`, `)`.
//
// All Parser methods throw panics instead of returning errors. The code
// that uses a Parser can recover them and convert them to errors (see Catch).
type Parser struct {
	original  string
	tokens    []token
	lastToken token
}

type token struct {
	tok    string
	offset int
}

// MakeParser constructs a new Parser that converts any instance of the runes
// contained in [separators] into separate tokens, and consumes the provided
// input string.
func MakeParser(separators string, input string) Parser {
	p := Parser{original: input}

	s := input
	off := 0
	for len(s) > 0 {
		nonWhiteSpacePos := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
		switch nonWhiteSpacePos {
		case -1:
			// Only whitespace.
			off += len(s)
			s = s[len(s):]
		case 0:
			// s is the beginning of a non-whitespace token.
			// It might be a separator, or it might be an arbitrary token
			wsPos := strings.IndexFunc(s, unicode.IsSpace)
			switch pos := strings.IndexAny(s, separators); pos {
			case -1:
				if wsPos == -1 {
					wsPos = len(s)
				}
				p.tokens = append(p.tokens, token{tok: s[:wsPos], offset: off})
				off += wsPos
				s = s[wsPos:]
			case 0:
				p.tokens = append(p.tokens, token{tok: s[:1], offset: off})
				off += 1
				s = s[1:]
			default:
				if wsPos != -1 && wsPos < pos {
					pos = wsPos
				}
				p.tokens = append(p.tokens, token{tok: s[:pos], offset: off})
				off += pos
				s = s[pos:]
			}
		default:
			// Whitespace.
			off += nonWhiteSpacePos
			s = s[nonWhiteSpacePos:]
		}
	}
	return p
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Offset returns the offset of the next token.
func (p *Parser) Offset() int {
	if p.Done() {
		return len(p.original)
	}
	return p.tokens[0].offset
}

// Peek returns the next token, without consuming the token. Returns "" if there
// are no more tokens.
func (p *Parser) Peek() string {
	if p.Done() {
		p.lastToken = token{}
		return ""
	}
	p.lastToken = p.tokens[0]
	return p.tokens[0].tok
}

// Next returns the next token, or "" if there are no more tokens.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// Remaining returns all the remaining tokens, separated by spaces.
func (p *Parser) Remaining() string {
	var buf strings.Builder
	for _, tok := range p.tokens {
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(tok.tok)
	}
	p.tokens = nil
	return buf.String()
}

// Expect consumes the next tokens, verifying that they exactly match the
// arguments.
func (p *Parser) Expect(tokens ...string) {
	for _, tok := range tokens {
		if res := p.Next(); res != tok {
			p.Errf("expected %q, got %q", tok, res)
		}
	}
}

// ExpectDone verifies that all tokens were consumed.
func (p *Parser) ExpectDone() {
	if !p.Done() {
		p.Errf("unexpected trailing input %q", p.Remaining())
	}
}

// Key parses the next token as a key. See ParseKey for the accepted forms.
func (p *Parser) Key() []byte {
	tok := p.Next()
	k, err := ParseKey(tok)
	if err != nil {
		p.Errf("%v", err)
	}
	return k
}

// Bound parses the next token as a range endpoint of the given kind. The
// infinity of that kind ("-inf" for Lower, "+inf" for Upper) parses as a nil
// (absent) endpoint; the opposite infinity is rejected.
func (p *Parser) Bound(kind base.BoundKind) []byte {
	switch tok := p.Peek(); tok {
	case kind.Infinity():
		p.Next()
		return nil
	case "-inf", "+inf":
		p.Errf("%s is not a valid %s bound", tok, kind)
	}
	k := p.Key()
	if k == nil {
		// An explicit empty key is a bound, not an infinity.
		k = []byte{}
	}
	return k
}

// Bounds parses a half-open interval of the form `[min, max)` and returns its
// endpoints; nil stands for an unbounded endpoint.
func (p *Parser) Bounds() (min, max []byte) {
	p.Expect("[")
	min = p.Bound(base.Lower)
	p.Expect(",")
	max = p.Bound(base.Upper)
	p.Expect(")")
	return min, max
}

// ParseKey parses the textual form of a key:
//   - `0x` followed by hex digits is decoded as hex (`0x` alone is the empty
//     key);
//   - `""` is the empty key;
//   - anything else is taken literally, after expanding Go escape sequences
//     such as `\x00` (the form produced by base.FormatBytes).
func ParseKey(s string) ([]byte, error) {
	switch {
	case s == "":
		return nil, errors.New("empty key token")
	case s == `""`:
		return []byte{}, nil
	case strings.HasPrefix(s, "0x"):
		k, err := hex.DecodeString(s[2:])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid hex key %q", s)
		}
		if k == nil {
			k = []byte{}
		}
		return k, nil
	}
	if strings.ContainsRune(s, '\\') {
		unq, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid escaped key %q", s)
		}
		return []byte(unq), nil
	}
	return []byte(s), nil
}

// Errf panics with an error which includes the original string and the last
// token.
func (p *Parser) Errf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(errors.Errorf("error parsing %q at token %q: %s", p.original, p.lastToken.tok, msg))
}

// Catch runs fn, converting a panic raised through Errf into a returned error.
// Panics that do not carry an error are re-raised.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}
