// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	threeDotsRE       = regexp.MustCompile(`[…\.]{3,}`)
	twoDotsRE         = regexp.MustCompile(`\.…|…{2,}|…\.`)
	spacedTwoDotsRE   = regexp.MustCompile(`[` + spaces + `]\.{2}[` + spaces + `]`)
	commaEllipsisRE   = regexp.MustCompile(`,[` + spaces + `]?…[` + spaces + `]?,`)
	lastItemRE        = regexp.MustCompile(`,[` + spaces + `]?…[` + spaces + `]?([^` + wordClass + `,]|$)`)
	paragraphStartRE  = regexp.MustCompile(`(?m)^…[` + spaces + `]([` + allChars + `])`)
	betweenSentRE     = regexp.MustCompile(`([` + lowerChars + `])[` + spaces + `]…[` + spaces + `]?([` + upperChars + `])`)
	betweenWordsRE    = regexp.MustCompile(`([` + allChars + `])…([` + allChars + `])`)
)

type ellipsisRules struct {
	startSentence *regexp.Regexp
	afterSentence *regexp.Regexp
	endParagraph  *regexp.Regexp
}

func newEllipsisRules(l *Locale) *ellipsisRules {
	terminalQuotes := quoteClass(l.DoubleClose + l.SingleClose)
	return &ellipsisRules{
		startSentence: regexp.MustCompile(`([^` + terminalQuotes + `])([` + sentencePunct + `])[` + spaces + `]?…[` + spaces + `]?([` + lowerChars + `])`),
		afterSentence: regexp.MustCompile(`([` + sentencePunct + terminalQuotes + `])[` + spaces + `]?…[` + spaces + `]?([` + upperChars + `])`),
		endParagraph:  regexp.MustCompile(`(?m)([` + lowerChars + `])[` + spaces + `]+(…[` + terminalQuotes + `]?$)`),
	}
}

// fixEllipsis turns runs of periods into an ellipsis and fixes the spaces
// around it: in lists ("a, …, z"), as a last list item ("a, b,…"),
// and for aposiopesis at the start or end of a paragraph or sentence
// and between words.
func fixEllipsis(text string, l *Locale) string {
	r := l.rules.ellipsis
	text = threeDotsRE.ReplaceAllString(text, "…")
	text = commaEllipsisRE.ReplaceAllString(text, ", …,")
	text = lastItemRE.ReplaceAllString(text, ",…${1}")
	text = paragraphStartRE.ReplaceAllString(text, "…${1}")
	text = r.startSentence.ReplaceAllString(text, "${1}${2} …${3}")
	text = betweenSentRE.ReplaceAllString(text, "${1}… ${2}")
	text = Rewrite(text, betweenWordsRE, "${1}… ${2}")
	text = replaceMatch(r.afterSentence, text, func(s string, loc []int) string {
		// A quote after a space opens a quotation or is an apostrophe.
		if p := group(s, loc, 1); strings.Contains(l.DoubleClose+l.SingleClose, p) {
			if b := runeBefore(s, loc[0]); b < 0 || unicode.IsSpace(b) {
				return s[loc[0]:loc[1]]
			}
		}
		return group(s, loc, 1) + " … " + group(s, loc, 2)
	})
	text = r.endParagraph.ReplaceAllString(text, "${1}${2}")
	text = twoDotsRE.ReplaceAllString(text, "…")
	text = spacedTwoDotsRE.ReplaceAllString(text, " … ")
	return text
}
