// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"unicode"
	"unicode/utf8"
)

// Character classes are written as regexp class bodies,
// so that they can be spliced into patterns as "[" + x + "]".
const (
	nonLatinLower = "áäčďéěíĺľňóôöőŕřšťúüűůýŷžабвгґдезіийклмнопрстуфъыьцчжшїщёєюях"
	nonLatinUpper = "ÁÄČĎÉĚÍĹĽŇÓÔÖŐŔŘŠŤÚÜŰŮÝŶŽАБВГҐДЕЗІИЙКЛМНОПРСТУФЪЫЬЦЧЖШЇЩЁЄЮЯХ"

	lowerChars = "a-z" + nonLatinLower
	upperChars = "A-Z" + nonLatinUpper
	allChars   = lowerChars + upperChars

	space      = " "
	nbsp       = "\u00a0"
	hairSpace  = "\u200a"
	narrowNbsp = "\u202f"
	spaces     = space + nbsp + hairSpace + narrowNbsp

	// ws is the class body of Unicode white space.
	// RE2's \s is ASCII only.
	ws = `\s\v\p{Z}\x{85}`

	// wordClass is the class body of \w in its Unicode sense.
	wordClass = `\pL\pN_`

	terminalPunct = `\.\!\?`
	pausePunct    = `\,\:\;`
	sentencePunct = pausePunct + terminalPunct
	openBrackets  = `\(\[\{`
	closeBrackets = `\)\]\}`

	ellipsis = "…"
	hyphen   = "-"
	enDash   = "–"
	emDash   = "—"
	dashes   = `\-` + enDash + emDash

	romanNumerals = "IVXLCDM"

	apostrophe  = "’"
	singlePrime = "′"
	doublePrime = "″"

	degree         = "°"
	multiplication = "×"
	sectionSign    = "§"
	paragraphSign  = "¶"
	copyright      = "©"
	soundCopyright = "℗"
	registered     = "®"
	serviceMark    = "℠"
	trademark      = "™"
	plusMinus      = "±"
	minus          = "−"
	numeroSign     = "№"
	percents       = "%‰‱"
)

// isWord reports whether r is a word character in the Unicode sense.
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// atBoundary reports whether s has a word boundary at byte offset i,
// the way \b does in a Unicode-aware engine.
func atBoundary(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWord(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWord(r)
	}
	return before != after
}

// runeBefore returns the rune ending at byte offset i, or -1 at the start of s.
func runeBefore(s string, i int) rune {
	if i <= 0 {
		return -1
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}

// runeAt returns the rune starting at byte offset i, or -1 at the end of s.
func runeAt(s string, i int) rune {
	if i >= len(s) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}

// class returns the regexp character class matching any of the given runes.
func class(chars string) string {
	return "[" + quoteClass(chars) + "]"
}

// quoteClass escapes chars for use inside a regexp character class.
func quoteClass(chars string) string {
	var b []byte
	for _, r := range chars {
		switch r {
		case '\\', ']', '[', '^', '-':
			b = append(b, '\\')
		}
		b = utf8.AppendRune(b, r)
	}
	return string(b)
}
