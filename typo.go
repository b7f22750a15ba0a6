// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// A Fixer corrects the typography of text.
// The zero Fixer uses the DefaultLocale and no options.
//
// A Fixer may be used by several goroutines at once,
// provided its fields are not changed meanwhile.
type Fixer struct {
	// Locale is the id of the language of the text, such as "en-us" or "cs".
	// See Locales for the supported ids.
	Locale string

	// KeepBlankLines keeps empty lines between paragraphs.
	// By default runs of line breaks are collapsed to one.
	KeepBlankLines bool

	// FixCode lets Fix rewrite Markdown code spans and fenced code blocks.
	// By default they are left as they are.
	FixCode bool

	// KeepListIndent keeps the spaces before Markdown list markers
	// and block quote markers at the start of a line.
	KeepListIndent bool

	// Trace, if non-nil, is called after every stage of Fix
	// that changed the text.
	Trace func(stage, before, after string)
}

// Fix corrects the typography of text written in the given locale,
// using a Fixer with no options set.
func Fix(text, locale string) string {
	f := &Fixer{Locale: locale}
	return f.Fix(text)
}

// A stage is one step of Fix. Stages run in a fixed order,
// and each stage relies on the ones before it.
type stage struct {
	name string
	fix  func(string) string
}

// Fix returns text with its typography corrected.
//
// Email addresses, URLs, file names and (unless FixCode is set)
// Markdown code are left untouched. Fix is idempotent:
// Fix(Fix(t)) == Fix(t).
func (f *Fixer) Fix(text string) string {
	if strings.TrimFunc(text, unicode.IsSpace) == "" {
		return ""
	}
	l := lookup(f.Locale)

	ms := Exceptions()
	if !f.FixCode {
		ms = append(ms, MarkdownCode())
	}
	text, ledger := Extract(text, ms...)

	for _, st := range f.stages(l) {
		out := st.fix(text)
		if f.Trace != nil && out != text {
			f.Trace(st.name, text, out)
		}
		text = out
	}
	return ledger.Restore(text)
}

func (f *Fixer) stages(l *Locale) []stage {
	var stages []stage
	add := func(name string, fix func(string) string) {
		stages = append(stages, stage{name, fix})
	}

	add("nfc", norm.NFC.String)
	if !f.KeepBlankLines {
		add("lines", fixLines)
	}
	add("ellipsis", func(s string) string { return fixEllipsis(s, l) })
	add("spaces", func(s string) string { return fixSpaces(s, l, f.KeepListIndent) })
	add("periods", fixPeriods)
	add("dashes", func(s string) string { return fixDashes(s, l) })
	add("double quotes", func(s string) string { return fixDoubleQuotes(s, l) })
	add("single quotes", func(s string) string { return fixSingleQuotes(s, l) })

	add("multiplication", fixMultiplication)
	add("section signs", func(s string) string { return fixSectionSigns(s, l) })
	add("copyrights", func(s string) string { return fixCopyrights(s, l) })
	add("numero sign", func(s string) string { return fixNumeroSign(s, l) })
	add("plus-minus", fixPlusMinus)
	add("marks", fixMarks)
	add("exponents", fixExponents)
	add("number sign", fixNumberSign)

	add("case", func(s string) string { return fixCase(s, l) })
	add("publication ids", fixPubID)
	add("abbreviations", func(s string) string { return fixAbbreviations(s, l) })

	add("nbsp", func(s string) string { return fixNbsp(s, l) })
	return stages
}
