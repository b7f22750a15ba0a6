// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// The marker alphabet is a block of private use runes.
// Private use runes are neither letters, digits, spaces nor punctuation,
// so no rewrite rule matches them.
//
// A token standing for a protected span is tokenOpen, the span's index
// written with the digits tokenDigit..tokenDigit+9, and tokenClose.
// A classification tag is a single rune from tagBase on.
const (
	tokenOpen  = '\uE000'
	tokenClose = '\uE001'
	tokenDigit = '\uE010'
	tagBase    = '\uE100'
	markerLast = '\uE1FF'
)

// Classification tags used while the quote stages decide what a glyph is,
// and placeholders a stage writes where its output would match its own
// pattern again.
const (
	tagLDQ         = "\uE100" // left double quote
	tagRDQ         = "\uE101" // right double quote
	tagLDQUnpaired = "\uE102"
	tagRDQUnpaired = "\uE103"
	tagDoublePrime = "\uE104"
	tagLSQ         = "\uE105" // left single quote
	tagRSQ         = "\uE106" // right single quote
	tagLSQUnpaired = "\uE107"
	tagRSQUnpaired = "\uE108"
	tagSinglePrime = "\uE109"
	tagApostrophe  = "\uE10A"
	tagDash        = "\uE10B" // the locale's dash with its spaces
	tagEnDash      = "\uE10C"
)

// A Kind identifies the category of a protected span.
type Kind int

const (
	Email Kind = iota
	URL
	Filename
	Code
	Reserved // runes of the marker alphabet already present in the input
)

var kindNames = []string{
	Email:    "email",
	URL:      "url",
	Filename: "filename",
	Code:     "code",
	Reserved: "reserved",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// A Span is the byte range text[Start:End] of a protected span.
type Span struct {
	Start int
	End   int
	Kind  Kind
}

// A Matcher finds the spans of one category of protected text.
// The spans it returns must not overlap one another.
type Matcher interface {
	Match(text string) []Span
}

// A Ledger records the spans lifted out of a text by Extract.
type Ledger struct {
	values []string
	kinds  []Kind
}

// Len returns the number of recorded spans.
func (l *Ledger) Len() int { return len(l.values) }

// Value returns the text and kind of the i'th recorded span.
func (l *Ledger) Value(i int) (string, Kind) {
	return l.values[i], l.kinds[i]
}

// Extract replaces the spans found by ms in text with tokens and returns
// the masked text with the ledger needed to restore it.
//
// When spans of different matchers overlap, the span starting first wins,
// and of two spans starting at the same offset the longer one wins.
// Marker runes already present in text are always extracted,
// so that Restore(Extract(text)) == text for every text.
func Extract(text string, ms ...Matcher) (string, *Ledger) {
	l := new(Ledger)
	spans := reservedMatcher{}.Match(text)
	for _, m := range ms {
		spans = append(spans, m.Match(text)...)
	}
	if len(spans) == 0 {
		return text, l
	}
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End-spans[i].Start > spans[j].End-spans[j].Start
	})

	var b strings.Builder
	last := 0
	for _, sp := range spans {
		if sp.Start < last || sp.Start >= sp.End {
			continue
		}
		b.WriteString(text[last:sp.Start])
		b.WriteString(l.add(text[sp.Start:sp.End], sp.Kind))
		last = sp.End
	}
	b.WriteString(text[last:])
	return b.String(), l
}

// add records value and returns its token.
func (l *Ledger) add(value string, k Kind) string {
	tok := token(len(l.values))
	l.values = append(l.values, value)
	l.kinds = append(l.kinds, k)
	return tok
}

// token returns the token for index i.
func token(i int) string {
	b := utf8.AppendRune(nil, tokenOpen)
	for _, c := range strconv.Itoa(i) {
		b = utf8.AppendRune(b, tokenDigit+(c-'0'))
	}
	return string(utf8.AppendRune(b, tokenClose))
}

var tokenRE = regexp.MustCompile(`\x{E000}[\x{E010}-\x{E019}]+\x{E001}`)

// Restore replaces each token in text with the span it stands for.
// Restored text is not scanned again, so a span whose text looks like
// a token is restored literally. Tokens with an index the ledger
// does not hold are left in place.
func (l *Ledger) Restore(text string) string {
	if len(l.values) == 0 {
		return text
	}
	return tokenRE.ReplaceAllStringFunc(text, func(tok string) string {
		i := 0
		for _, c := range tok {
			if c >= tokenDigit && c <= tokenDigit+9 {
				i = i*10 + int(c-tokenDigit)
				if i >= len(l.values) {
					return tok
				}
			}
		}
		return l.values[i]
	})
}

// reservedMatcher matches runs of the marker alphabet.
type reservedMatcher struct{}

var reservedRE = regexp.MustCompile(`[\x{E000}-\x{E1FF}]+`)

func (reservedMatcher) Match(text string) []Span {
	return spansOf(reservedRE, text, Reserved)
}

// spansOf returns the matches of re in text as spans of kind k.
func spansOf(re *regexp.Regexp, text string, k Kind) []Span {
	var spans []Span
	for _, loc := range re.FindAllStringIndex(text, -1) {
		spans = append(spans, Span{loc[0], loc[1], k})
	}
	return spans
}
