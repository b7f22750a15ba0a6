// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import "regexp"

var (
	nbspBetweenWordsRE = regexp.MustCompile(`([` + allChars + `]{2,})[` + nbsp + narrowNbsp + `]([` + allChars + `]{2,})`)
	prepositionRE      = regexp.MustCompile(`(^|[^` + allChars + `\d\+` + minus + `\-])([` + lowerChars + `]) `)
	capitalWordRE      = regexp.MustCompile(`(^|[` + sentencePunct + ellipsis + copyright + registered + soundCopyright + `])` +
		`([` + spaces + `]?)([` + upperChars + `])[` + spaces + `]`)
	pronounIRE   = regexp.MustCompile(`(^|[` + spaces + `])I[` + spaces + `]`)
	ampersandRE  = regexp.MustCompile(`[` + spaces + `]&[` + spaces + `]`)
	cardinalRE   = regexp.MustCompile(`([^` + nbsp + `\d]|^)(\d{1,2})[` + spaces + `]([` + allChars + `])`)
	dateRE       = regexp.MustCompile(`(\d)\.[` + spaces + `]?(\d)\.[` + spaces + `]?(\d)`)
	percentRE    = regexp.MustCompile(`(\d)[` + spaces + `]([` + percents + `])`)
)

type nbspRules struct {
	ordinal      *regexp.Regexp
	roman        *regexp.Regexp // nil if the locale has no roman ordinals
	initialTail  *regexp.Regexp
	regnal       *regexp.Regexp
	singleLetter *regexp.Regexp
}

func newNbspRules(l *Locale) *nbspRules {
	r := &nbspRules{
		ordinal: regexp.MustCompile(`([^` + nbsp + `\d_%\-]|^)(\d{1,2})(` + l.Ordinal + `)[` + spaces + `]?([` + allChars + `])`),
	}
	if l.RomanOrdinal != "" {
		r.roman = regexp.MustCompile(`([` + romanNumerals + `]+)(` + l.RomanOrdinal + `)[` + spaces + `]?([` + allChars + `\d])`)
		r.initialTail = regexp.MustCompile(`(?:^|[^` + wordClass + `])[` + upperChars + `][` + allChars + `]?(?:` +
			l.RomanOrdinal + `)[` + spaces + `]?$`)
		r.regnal = regexp.MustCompile(`([` + upperChars + `][` + lowerChars + `]+?)[` + spaces + `]([` + romanNumerals + `]+)(` +
			l.RomanOrdinal + `)(` + nbsp + `?)`)
	}
	upper := upperChars
	if l.ID == "en-us" {
		// "I" is a pronoun in English.
		upper = "A-HJ-Z" + nonLatinUpper
	}
	r.singleLetter = regexp.MustCompile(`([^` + sentencePunct + ellipsis + closeBrackets +
		quoteClass(l.DoubleClose+l.SingleClose+apostrophe) + multiplication + emDash + enDash + `])` +
		`[` + spaces + `]([` + upper + `])(([` + spaces + `])|\.?$)`)
	return r
}

// fixNbsp places non-breaking spaces where a line must not break:
// after prepositions, short numbers and ordinals, within dates,
// before single letters and around roman numerals. It also removes
// non-breaking spaces between two longer words.
func fixNbsp(text string, l *Locale) string {
	r := l.rules.nbsp
	text = Rewrite(text, nbspBetweenWordsRE, "${1} ${2}")
	text = nbspAfterPreposition(text, l)
	text = ampersandRE.ReplaceAllString(text, " &"+nbsp)
	text = cardinalRE.ReplaceAllString(text, "${1}${2}"+nbsp+"${3}")
	text = r.ordinal.ReplaceAllString(text, "${1}${2}${3}"+nbsp+"${4}")
	text = dateRE.ReplaceAllString(text, "${1}."+l.DateFirstSpace+"${2}."+l.DateSecondSpace+"${3}")
	text = nbspAfterRoman(text, r)
	text = nbspBeforeSingleLetter(text, l)
	text = nbspInRegnalName(text, r)
	return percentRE.ReplaceAllString(text, "${1}"+l.SpaceBeforePercent+"${2}")
}

// nbspAfterPreposition binds a single-letter word to the word after it,
// as in "a house". A capital letter starting a sentence is bound
// the same way, and so is the English pronoun I.
func nbspAfterPreposition(text string, l *Locale) string {
	text = Rewrite(text, prepositionRE, "${1}${2}"+nbsp)
	text = capitalWordRE.ReplaceAllString(text, "${1}${2}${3}"+nbsp)
	if l.ID == "en-us" {
		text = pronounIRE.ReplaceAllString(text, "${1}I"+nbsp)
	}
	return text
}

// nbspAfterRoman binds an ordinal roman numeral to the word after it,
// as in "IV. kapitola". A numeral after an initial, as in "F. X.",
// is an initial too and is left alone.
func nbspAfterRoman(text string, r *nbspRules) string {
	if r.roman == nil {
		return text
	}
	return replaceMatch(r.roman, text, func(s string, loc []int) string {
		if isWord(runeBefore(s, loc[0])) || r.initialTail.MatchString(s[:loc[0]]) {
			return s[loc[0]:loc[1]]
		}
		return group(s, loc, 1) + group(s, loc, 2) + nbsp + group(s, loc, 3)
	})
}

// nbspBeforeSingleLetter binds a single capital letter to the word
// before it, as in "Příloha A".
func nbspBeforeSingleLetter(text string, l *Locale) string {
	return replaceSubmatch(l.rules.nbsp.singleLetter, text, func(m []string) string {
		before, letter, after, space2 := m[1], m[2], m[3], m[4]
		if l.ID != "en-us" && letter == "I" && space2 != "" && space2 != space {
			return before + nbsp + letter + space
		}
		return before + nbsp + letter + after
	})
}

// nbspInRegnalName binds a regnal number to the name before it,
// as in "Karel IV.", and leaves a normal space after it.
// "I." after a name is more often an initial than a number.
func nbspInRegnalName(text string, r *nbspRules) string {
	if r.regnal == nil {
		return text
	}
	return replaceMatch(r.regnal, text, func(s string, loc []int) string {
		if isWord(runeBefore(s, loc[0])) {
			return s[loc[0]:loc[1]]
		}
		name, num, dot, trailing := group(s, loc, 1), group(s, loc, 2), group(s, loc, 3), group(s, loc, 4)
		switch {
		case num == "I":
			return name + space + num + dot + trailing
		case trailing == "":
			return name + nbsp + num + dot
		default:
			return name + nbsp + num + dot + space
		}
	})
}
