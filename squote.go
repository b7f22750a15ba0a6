// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"regexp"
	"strings"
	"unicode"
)

// singleQuoteAdepts is the class of glyphs that may have been typed
// as a single quote or an apostrophe.
const singleQuoteAdepts = `[‚'‘’ʼ‛´` + "`" + `′‹›]`

// Word pairs joined by a contracted "and", as in "rock 'n' roll".
var contractedAnd = [][2]string{
	{"dead", "buried"},
	{"drill", "bass"},
	{"drum", "bass"},
	{"rock", "roll"},
	{"pick", "mix"},
	{"fish", "chips"},
	{"salt", "shake"},
	{"mac", "cheese"},
	{"pork", "beans"},
	{"drag", "drop"},
	{"rake", "scrape"},
	{"hook", "kill"},
}

// Words that start with an apostrophe, as in 'tis or 'twas.
// Where one word is a prefix of another, the longer comes first.
const contractedWords = `cause|em|midst|mid|mongst|prentice|round|sblood|sdeath|sfoot|sheart|` +
	`shun|slid|slife|slight|snails|strewth|til|tis|twas|tween|twere|twill|twixt|twould`

var (
	sqAndREs = func() []*regexp.Regexp {
		var res []*regexp.Regexp
		for _, p := range contractedAnd {
			res = append(res, regexp.MustCompile(`(?i)(`+p[0]+`)[`+spaces+`]?`+singleQuoteAdepts+`(n)`+singleQuoteAdepts+`[`+spaces+`]?(`+p[1]+`)`))
		}
		return res
	}()
	sqBeginningRE = regexp.MustCompile(`(?i)` + singleQuoteAdepts + `(` + contractedWords + `)`)
	sqInWordRE    = regexp.MustCompile(`([\d` + allChars + `])` + singleQuoteAdepts + `+([` + allChars + `])`)
	sqYearRE      = regexp.MustCompile(`([^0-9]|[A-Z][0-9])([` + spaces + `])` + singleQuoteAdepts + `(\d{2})`)
	sqEndRE       = regexp.MustCompile(`(?i)([` + wordClass + `])(in)` + singleQuoteAdepts)
	sqFeetRE      = regexp.MustCompile(`(\d{1,3})([` + spaces + `]?)['‘’‛′]`)
	sqWordPairRE  = regexp.MustCompile(`(^|[^` + wordClass + `])` + singleQuoteAdepts + `([` + allChars + `]+)` + singleQuoteAdepts)

	sqDoubleQuotedRE = regexp.MustCompile(`("|“|”|„|«|»)(.*?)("|“|”|„|«|»)`)
	sqLeftRE         = regexp.MustCompile(`(^|[` + spaces + emDash + enDash + `])(?:` + singleQuoteAdepts + `|,)([` + allChars + ellipsis + `])`)
	sqRightRE        = regexp.MustCompile(`([` + allChars + `\d])([` + sentencePunct + ellipsis + `])?` + singleQuoteAdepts + `([ ` + sentencePunct + `])?`)
	sqPairRE         = regexp.MustCompile(tagLSQUnpaired + `(.*)` + tagRSQUnpaired)

	sqLeftPrimeRE  = regexp.MustCompile(tagLSQUnpaired + `(.*?)` + tagSinglePrime)
	sqPrimeRightRE = regexp.MustCompile(tagSinglePrime + `(.*?)` + tagRSQUnpaired)
	sqResidualRE   = regexp.MustCompile(singleQuoteAdepts)
	sqSpacePrimeRE = regexp.MustCompile(`[` + spaces + `]` + singlePrime)
)

type squoteRules struct {
	finalize *strings.Replacer

	// Terminal punctuation at the closing quote.
	partOut      *regexp.Regexp
	sentenceIn   *regexp.Regexp
	paragraphIn  *regexp.Regexp
	afterStopIn  *regexp.Regexp
	afterQuoteIn *regexp.Regexp
}

func newSquoteRules(l *Locale) *squoteRules {
	open, close := regexp.QuoteMeta(l.SingleOpen), regexp.QuoteMeta(l.SingleClose)
	cc := quoteClass(l.SingleClose)
	terminal := `([` + terminalPunct + ellipsis + `])`
	return &squoteRules{
		finalize: strings.NewReplacer(
			tagSinglePrime, singlePrime,
			tagApostrophe, apostrophe,
			tagLSQUnpaired, apostrophe,
			tagRSQUnpaired, apostrophe,
			tagLSQ, l.SingleOpen,
			tagRSQ, l.SingleClose,
		),
		partOut: regexp.MustCompile(`([^` + sentencePunct + `])([` + spaces + `])(` + open + `)([^` + cc + `]+?)` +
			`([^` + romanNumerals + `])` + terminal + `(` + close + `)`),
		sentenceIn: regexp.MustCompile(`([^` + sentencePunct + `])([` + spaces + `])(` + open + `)(.+?)` +
			`([^` + romanNumerals + `])(` + close + `)` + terminal + `([` + spaces + `])([` + lowerChars + `])`),
		paragraphIn: regexp.MustCompile(`(?m)(^` + open + `[^` + cc + `]+?[^` + romanNumerals + `])(` + close + `)` + terminal),
		afterStopIn: regexp.MustCompile(`([` + sentencePunct + `][` + spaces + `]` + open + `[^` + cc + `]+?[^` + romanNumerals + `])(` +
			close + `)` + terminal),
		afterQuoteIn: regexp.MustCompile(`([` + sentencePunct + `]` + close + `[` + spaces + `]` + open + `[^` + cc + `]+?[^` +
			romanNumerals + `])(` + close + `)` + terminal),
	}
}

// fixSingleQuotes decides for every single-quote-like glyph whether it
// is an apostrophe, a prime (feet, arcminutes, minutes) or one of
// a pair of quotes, and replaces it with the matching glyph.
// Apostrophes are recognized first, so that contractions such as
// 'tis or rock 'n' roll are never taken for quotes.
func fixSingleQuotes(text string, l *Locale) string {
	r := l.rules.squote

	for _, re := range sqAndREs {
		text = re.ReplaceAllString(text, "${1}"+nbsp+tagApostrophe+"${2}"+tagApostrophe+nbsp+"${3}")
	}
	text = replaceMatch(sqBeginningRE, text, func(s string, loc []int) string {
		if unicode.IsLetter(runeAt(s, loc[1])) {
			return s[loc[0]:loc[1]]
		}
		return tagApostrophe + group(s, loc, 1)
	})
	text = Rewrite(text, sqInWordRE, "${1}"+tagApostrophe+"${2}")
	text = sqYearRE.ReplaceAllString(text, "${1}${2}"+tagApostrophe+"${3}")
	text = sqEndRE.ReplaceAllString(text, "${1}${2}"+tagApostrophe)

	text = replaceMatch(sqFeetRE, text, func(s string, loc []int) string {
		if isWord(runeBefore(s, loc[0])) || unicode.IsLetter(runeAt(s, loc[1])) {
			return s[loc[0]:loc[1]]
		}
		return group(s, loc, 1) + group(s, loc, 2) + tagSinglePrime
	})

	text = replaceMatch(sqWordPairRE, text, func(s string, loc []int) string {
		if isWord(runeAt(s, loc[1])) {
			return s[loc[0]:loc[1]]
		}
		return group(s, loc, 1) + tagLSQ + group(s, loc, 2) + tagRSQ
	})
	text = replaceSubmatch(sqDoubleQuotedRE, text, func(m []string) string {
		return m[1] + identifyInnerSingleQuotes(m[2]) + m[3]
	})

	text = sqLeftPrimeRE.ReplaceAllString(text, tagLSQ+"${1}"+tagRSQ)
	text = sqPrimeRightRE.ReplaceAllString(text, tagLSQ+"${1}"+tagRSQ)
	text = sqResidualRE.ReplaceAllString(text, tagApostrophe)
	text = r.finalize.Replace(text)

	text = swapSingleQuotePunctuation(text, r)
	return sqSpacePrimeRE.ReplaceAllString(text, singlePrime)
}

// identifyInnerSingleQuotes tags the single quotes within the text
// of a double quotation. A quote after a number too long for feet
// may close a pair, as in 'Localhost 3000'; without a partner it
// ends up an apostrophe.
func identifyInnerSingleQuotes(text string) string {
	text = sqLeftRE.ReplaceAllString(text, "${1}"+tagLSQUnpaired+"${2}")
	text = sqRightRE.ReplaceAllString(text, "${1}${2}"+tagRSQUnpaired+"${3}")
	return sqPairRE.ReplaceAllString(text, tagLSQ+"${1}"+tagRSQ)
}

// swapSingleQuotePunctuation puts terminal punctuation on the right side
// of the closing quote: outside a quoted part of a sentence, inside
// a quoted sentence.
func swapSingleQuotePunctuation(text string, r *squoteRules) string {
	text = r.partOut.ReplaceAllString(text, "${1}${2}${3}${4}${5}${7}${6}")
	text = r.sentenceIn.ReplaceAllString(text, "${1}${2}${3}${4}${5}${7}${6}${8}${9}")
	for _, re := range []*regexp.Regexp{r.paragraphIn, r.afterStopIn, r.afterQuoteIn} {
		text = replaceMatch(re, text, func(s string, loc []int) string {
			// The punctuation must not be followed by a word.
			if isWord(runeAt(s, loc[1])) {
				return s[loc[0]:loc[1]]
			}
			return group(s, loc, 1) + group(s, loc, 3) + group(s, loc, 2)
		})
	}
	return text
}
