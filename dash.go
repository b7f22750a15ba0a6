// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"regexp"
	"strings"
)

// A dash is a run of one to three hyphens or dashes.
// Longer runs are rules or dividers and are left alone.
const dashRun = `[` + dashes + `]{1,3}`

var (
	dashInBracketsRE   = regexp.MustCompile(`([` + openBrackets + `])[` + spaces + `]*([` + dashes + `]+)[` + spaces + `]*([` + closeBrackets + `])`)
	dashWordOpenRE     = regexp.MustCompile(`([` + allChars + `])[` + spaces + `]*` + dashRun + `[` + spaces + `]*([` + openBrackets + `])`)
	dashCloseWordRE    = regexp.MustCompile(`([` + closeBrackets + `])[` + spaces + `]*` + dashRun + `[` + spaces + `]*([` + allChars + `])`)
	dashWordCloseRE    = regexp.MustCompile(`([` + allChars + `])[` + spaces + `]*` + dashRun + `[` + spaces + `]*([` + closeBrackets + `])`)
	dashOpenWordRE     = regexp.MustCompile(`([` + openBrackets + `])[` + spaces + `]*` + dashRun + `[` + spaces + `]*([` + allChars + `])`)
	dashCloseOpenRE    = regexp.MustCompile(`([` + closeBrackets + `])[` + spaces + `]*[` + dashes + `][` + spaces + `]*([` + openBrackets + `])`)
	dashNumbersRE      = regexp.MustCompile(`(\d)[` + spaces + `]?` + dashRun + `[` + spaces + `]?(\d)`)
	dashPercentRE      = regexp.MustCompile(`([` + percents + `])[` + spaces + `]?` + dashRun + `[` + spaces + `]?(\d)`)
	dashBetweenWordsRE = regexp.MustCompile(`([` + allChars + `\d])` +
		`(?:[` + spaces + `]*[` + enDash + emDash + `]{1,3}[` + spaces + `]*|[` + spaces + `]+-{1,3}[` + spaces + `]+)` +
		`([` + allChars + `\d])`)
	dashBeforePunctRE = regexp.MustCompile(`([` + allChars + `])[` + spaces + `]?` + dashRun + `[` + spaces + `]?([` + sentencePunct + `]|\n|\r)`)
)

type dashRules struct {
	ordinals *regexp.Regexp
}

func newDashRules(l *Locale) *dashRules {
	return &dashRules{
		ordinals: regexp.MustCompile(`(?i)(\d)(` + l.Ordinal + `)[` + spaces + `]?` + dashRun + `[` + spaces + `]?(\d)(` + l.Ordinal + `)`),
	}
}

// fixDashes replaces hyphens and dashes used as punctuation
// with the locale's dash, and ranges of numbers with an en dash.
// A hyphen counts as punctuation only with spaces on both sides,
// so compounds such as "e-shop" or "Ein- und Ausgang" are kept.
func fixDashes(text string, l *Locale) string {
	dash := l.DashSpaceBefore + l.Dash + l.DashSpaceAfter
	// The dash is written as a tag until the rewrite is done:
	// the pattern accepts dashes, so in "a - b - c" the finished "a—b"
	// would match again and hide "b - c" on every pass.
	text = Rewrite(text, dashBetweenWordsRE, "${1}"+tagDash+"${2}")
	text = strings.ReplaceAll(text, tagDash, dash)
	text = dashBeforePunctRE.ReplaceAllString(text, "${1}"+l.DashSpaceBefore+l.Dash+"${2}")

	// Around brackets. Within a bracket pair the dash glyph is kept,
	// only the spaces go.
	text = dashInBracketsRE.ReplaceAllString(text, "${1}${2}${3}")
	text = dashWordOpenRE.ReplaceAllString(text, "${1}"+dash+"${2}")
	text = dashCloseWordRE.ReplaceAllString(text, "${1}"+dash+"${2}")
	text = dashWordCloseRE.ReplaceAllString(text, "${1}"+dash+"${2}")
	text = dashOpenWordRE.ReplaceAllString(text, "${1}"+dash+"${2}")
	text = dashCloseOpenRE.ReplaceAllString(text, "${1}"+dash+"${2}")

	// Ranges take an en dash in every language.
	text = Rewrite(text, dashNumbersRE, "${1}"+tagEnDash+"${2}")
	text = strings.ReplaceAll(text, tagEnDash, enDash)
	text = dashPercentRE.ReplaceAllString(text, "${1}"+enDash+"${2}")
	text = l.rules.dash.ordinals.ReplaceAllString(text, "${1}${2}"+enDash+"${3}${4}")
	return text
}
