// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"regexp"
	"strings"
	"unicode"
)

// doubleQuoteAdepts matches anything that may have been typed as a double quote:
// the straight quote, the typographic double quotes and guillemets,
// a double prime, and doubled commas, low quotes, apostrophes or accents.
const doubleQuoteAdepts = `"|“|”|„|«|»|″|,{2,}|‚{2,}|['‘’‹›′´` + "`" + `]{2,}`

const dqa = `(?:` + doubleQuoteAdepts + `)`

var (
	dqExtraBeforeRE = regexp.MustCompile(`([^` + romanNumerals + `])([` + sentencePunct + `])([` + pausePunct + `])(` + dqa + `)`)
	dqExtraAfterRE  = regexp.MustCompile(`([^` + romanNumerals + `])([` + sentencePunct + `])(` + dqa + `)([` + sentencePunct + `])`)

	// A number ending a quotation is not an inch mark: "He was 12". is
	// rewritten to "He was 12." before primes are identified.
	dqNumberEndRE = regexp.MustCompile(`([^0-9]|^)(` + dqa + `)(.+?)(\d+)(` + dqa + `)([` + terminalPunct + ellipsis + `])`)
	dqPrimeRE     = regexp.MustCompile(`(\d{1,3})([` + spaces + `]?)` + dqa)

	dqNumberPairRE  = regexp.MustCompile(dqa + `(\d+)` + tagDoublePrime)
	dqPairRE        = regexp.MustCompile(dqa + `(.*?)` + dqa)
	dqLeftRE        = regexp.MustCompile(dqa + `([0-9` + allChars + `])`)
	dqRightRE       = regexp.MustCompile(`([` + allChars + sentencePunct + ellipsis + `])` + dqa)
	dqStrayRE       = regexp.MustCompile(`([` + spaces + `])` + dqa + `[` + spaces + `]`)
	dqLeftPrimeRE   = regexp.MustCompile(tagLDQUnpaired + `(.*?)` + tagDoublePrime)
	dqPrimeRightRE  = regexp.MustCompile(tagDoublePrime + `(.*?)` + tagRDQUnpaired)
	dqSpacePrimeRE  = regexp.MustCompile(`[` + spaces + `]` + doublePrime)
	dqSpeechAdepts  = `[` + pausePunct + `]`
	dqSpeechDashes  = `[` + spaces + `]*[` + dashes + `][` + spaces + `]*`
	dqTerminalSpace = `([` + terminalPunct + ellipsis + `])[` + spaces + `]+`
)

type dquoteRules struct {
	finalize *strings.Replacer

	spaceAfterOpen  *regexp.Regexp
	spaceBeforeEnd  *regexp.Regexp
	spaceBeforeOpen *regexp.Regexp
	spaceAfterEnd   *regexp.Regexp

	speechDash      *regexp.Regexp
	speechPunct     *regexp.Regexp
	speechDashAfter *regexp.Regexp
	speechLineStart *regexp.Regexp
	speechSentence  *regexp.Regexp

	wordPunct     *regexp.Regexp
	sentencePunct *regexp.Regexp
	pausePunct    *regexp.Regexp
}

func newDquoteRules(l *Locale) *dquoteRules {
	open, close := regexp.QuoteMeta(l.DoubleOpen), regexp.QuoteMeta(l.DoubleClose)
	oc, cc := quoteClass(l.DoubleOpen), quoteClass(l.DoubleClose)
	quoted := `(` + open + `.+?` + close + `)`
	return &dquoteRules{
		finalize: strings.NewReplacer(
			tagDoublePrime, doublePrime,
			tagLDQ, l.DoubleOpen,
			tagLDQUnpaired, l.DoubleOpen,
			tagRDQ, l.DoubleClose,
			tagRDQUnpaired, l.DoubleClose,
		),

		spaceAfterOpen:  regexp.MustCompile(`(` + open + `)[` + spaces + `]`),
		spaceBeforeEnd:  regexp.MustCompile(`[` + spaces + `](` + close + `)`),
		spaceBeforeOpen: regexp.MustCompile(`([` + sentencePunct + allChars + `])(` + open + `)`),
		spaceAfterEnd:   regexp.MustCompile(`(` + close + `)([` + allChars + `])`),

		speechDash:      regexp.MustCompile(`([` + allChars + `])` + dqSpeechAdepts + `?` + dqSpeechDashes + quoted),
		speechPunct:     regexp.MustCompile(`([` + allChars + `])` + dqSpeechAdepts + `[` + spaces + `]*` + quoted),
		speechDashAfter: regexp.MustCompile(quoted + dqSpeechDashes + `([` + allChars + `])`),
		speechLineStart: regexp.MustCompile(`^` + dqSpeechDashes + quoted),
		speechSentence:  regexp.MustCompile(dqTerminalSpace + `[` + dashes + `][` + spaces + `]*` + quoted),

		wordPunct: regexp.MustCompile(`(` + open + `)([^` + spaces + oc + cc + `]*?)` +
			`([^` + romanNumerals + spaces + oc + cc + `])([\.,;:])(` + close + `)`),
		sentencePunct: regexp.MustCompile(`(` + open + `)([^` + cc + `]*[` + spaces + `][^` + cc + `]*?)` +
			`([^` + romanNumerals + sentencePunct + ellipsis + spaces + cc + `])(` + close + `)([\.,\!\?…])`),
		pausePunct: regexp.MustCompile(`(` + open + `)([^` + cc + `]*[` + spaces + `][^` + cc + `]*?)([:;])(` + close + `)`),
	}
}

// fixDoubleQuotes decides for every double-quote-like glyph whether it
// opens or closes a quotation or marks inches, arcseconds or seconds,
// and replaces it with the locale's quote or a double prime.
// It then fixes the spaces around the quotes, the introduction of
// direct speech and the placement of punctuation at the closing quote.
func fixDoubleQuotes(text string, l *Locale) string {
	r := l.rules.dquote

	text = dqExtraBeforeRE.ReplaceAllString(text, "${1}${2}${4}")
	text = dqExtraAfterRE.ReplaceAllString(text, "${1}${2}${3}")

	text = identifyDoublePrimes(text)
	text = dqNumberPairRE.ReplaceAllString(text, tagLDQ+"${1}"+tagRDQ)
	text = dqPairRE.ReplaceAllString(text, tagLDQ+"${1}"+tagRDQ)
	text = dqLeftRE.ReplaceAllString(text, tagLDQUnpaired+"${1}")
	text = dqRightRE.ReplaceAllString(text, "${1}"+tagRDQUnpaired)
	text = dqStrayRE.ReplaceAllString(text, "${1}")

	// An unpaired quote and a prime around the same span were a pair,
	// as in "Localhost 3000".
	text = dqLeftPrimeRE.ReplaceAllString(text, tagLDQ+"${1}"+tagRDQ)
	text = dqPrimeRightRE.ReplaceAllString(text, tagLDQ+"${1}"+tagRDQ)
	text = r.finalize.Replace(text)

	text = r.spaceAfterOpen.ReplaceAllString(text, "${1}")
	text = r.spaceBeforeEnd.ReplaceAllString(text, "${1}")
	text = dqSpacePrimeRE.ReplaceAllString(text, doublePrime)
	text = r.spaceBeforeOpen.ReplaceAllString(text, "${1} ${2}")
	text = nbspAfterPreposition(text, l)
	text = r.spaceAfterEnd.ReplaceAllString(text, "${1} ${2}")

	text = fixSpeechIntro(text, l)
	return fixQuotedPunctuation(text, r)
}

// identifyDoublePrimes tags a double quote adept after a number of
// one to three digits as a double prime. A longer number is a year,
// and an adept followed by a letter opens a quotation.
func identifyDoublePrimes(text string) string {
	text = dqNumberEndRE.ReplaceAllString(text, "${1}${2}${3}${4}${6}${5}")
	return replaceMatch(dqPrimeRE, text, func(s string, loc []int) string {
		if isWord(runeBefore(s, loc[0])) || unicode.IsLetter(runeAt(s, loc[1])) {
			return s[loc[0]:loc[1]]
		}
		return group(s, loc, 1) + group(s, loc, 2) + tagDoublePrime
	})
}

// fixSpeechIntro replaces the dashes, colons and commas typed before
// a quoted utterance with the locale's speech introduction,
// and removes dashes after it.
func fixSpeechIntro(text string, l *Locale) string {
	r := l.rules.dquote
	text = r.speechDash.ReplaceAllString(text, "${1}"+l.SpeechIntro+" ${2}")
	text = r.speechPunct.ReplaceAllString(text, "${1}"+l.SpeechIntro+" ${2}")
	text = r.speechDashAfter.ReplaceAllString(text, "${1} ${2}")
	text = r.speechLineStart.ReplaceAllString(text, "${1}")
	text = r.speechSentence.ReplaceAllString(text, "${1} ${2}")
	return text
}

// fixQuotedPunctuation moves punctuation across the closing quote.
// A quoted word gives up its period, comma, colon or semicolon.
// A quoted fragment takes in the period, comma, question or exclamation
// mark or ellipsis that follows it, and gives up a colon or semicolon.
// Punctuation after a roman numeral stays put, as in „Karel IV.“.
func fixQuotedPunctuation(text string, r *dquoteRules) string {
	text = r.wordPunct.ReplaceAllString(text, "${1}${2}${3}${5}${4}")
	text = r.sentencePunct.ReplaceAllString(text, "${1}${2}${3}${5}${4}")
	text = r.pausePunct.ReplaceAllString(text, "${1}${2}${4}${3}")
	return text
}
