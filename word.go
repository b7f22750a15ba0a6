// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

var (
	doubleCapsRE  = regexp.MustCompile(`([^` + allChars + `]|^)([` + upperChars + `]{2})([` + lowerChars + `]{2,})`)
	swappedCaseRE = regexp.MustCompile(`([` + lowerChars + `])([` + upperChars + `]{2,})`)
)

// fixCase repairs words typed with caps lock or a held shift key:
// "JEnnifer" becomes "Jennifer" and "jENNIFER" becomes "Jennifer".
// Abbreviations such as "iOS" are kept.
func fixCase(text string, l *Locale) string {
	lower, upper := cases.Lower(l.Tag), cases.Upper(l.Tag)
	text = replaceSubmatch(doubleCapsRE, text, func(m []string) string {
		_, n := utf8.DecodeRuneInString(m[2])
		return m[1] + m[2][:n] + lower.String(m[2][n:]) + m[3]
	})
	return replaceMatch(swappedCaseRE, text, func(s string, loc []int) string {
		if isWord(runeBefore(s, loc[0])) || strings.HasPrefix(s[loc[0]:], "iOS") {
			return s[loc[0]:loc[1]]
		}
		return upper.String(group(s, loc, 1)) + lower.String(group(s, loc, 2))
	})
}

const dashedSpace = `[` + spaces + `]?[` + dashes + `][` + spaces + `]?`

var (
	issnRE   = regexp.MustCompile(`(?i)(issn)(:?)[` + spaces + `]?(\d{4})` + dashedSpace + `(\d{4})`)
	isbn10RE = regexp.MustCompile(`(?i)(isbn)(:?)[` + spaces + `]?(\d+)` + dashedSpace + `(\d+)` + dashedSpace + `(\d+)` + dashedSpace + `(X|\d+)`)
	isbn13RE = regexp.MustCompile(`(?i)(isbn)(:?)[` + spaces + `]?(\d+)` + dashedSpace + `(\d+)` + dashedSpace + `(\d+)` + dashedSpace +
		`(\d+)` + dashedSpace + `(X|\d+)`)
	isbnNumberRE = regexp.MustCompile(`(\d+)` + dashedSpace + `(\d+)` + dashedSpace + `(\d+)` + dashedSpace + `(\d+)` + dashedSpace + `(X|\d+?)`)
)

// fixPubID formats ISSN and ISBN numbers: "ISSN 0000 - 0000"
// becomes "ISSN 0000-0000".
func fixPubID(text string) string {
	text = issnRE.ReplaceAllString(text, "ISSN${2}"+nbsp+"${3}-${4}")
	text = isbn13RE.ReplaceAllString(text, "ISBN${2}"+nbsp+"${3}-${4}-${5}-${6}-${7}")
	text = isbn10RE.ReplaceAllString(text, "ISBN${2}"+nbsp+"${3}-${4}-${5}-${6}")
	return isbnNumberRE.ReplaceAllString(text, "${1}-${2}-${3}-${4}-${5}")
}

// Abbreviations of every locale are recognized in every locale,
// since a text in one language often quotes another.
var (
	singleWordAbbreviations = [][]string{
		{"p", "pp", "no", "vol"},
		{"Bhf", "ca", "Di", "Do", "Fr", "geb", "gest", "Hbf", "Mi", "Mo", "Nr", "S", "Sa", "So", "St", "Stk", "u", "usw", "z"},
		{"č", "fol", "např", "odst", "par", "r", "s", "str", "sv", "tj", "tzv"},
		{"č", "fol", "napr", "odst", "par", "r", "s", "str", "sv", "tj", "tzv"},
		{"ч", "с", "стр"},
	}
	multiWordAbbreviations = [][]string{
		{"U S", "e g", "i e", "a m", "p m"},
		{"b w", "d h", "d i", "e V", "Ges m b H", "n Chr", "n u Z", "s a", "s o", "s u", "u a m", "u a", "u ä", "u Ä",
			"u dgl", "u U", "u z", "u zw", "v a", "v Chr", "v u Z", "z B", "z T", "z Zt"},
		{"hl m", "n l", "p n l", "př n l"},
		{"hl m", "n l", "p n l", "pr n l", "s a", "s l", "t č", "t j", "zodp red"},
		{"т зн"},
	}
)

// union returns the distinct words of lists, in order of first appearance.
func union(lists [][]string) []string {
	var all []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, w := range list {
			if !seen[w] {
				seen[w] = true
				all = append(all, w)
			}
		}
	}
	return all
}

// A multiAbbr is a multi-word abbreviation such as "e.g."
// with its patterns before a word and elsewhere.
type multiAbbr struct {
	parts      int
	beforeWord *regexp.Regexp
	elsewhere  *regexp.Regexp
}

type wordRules struct {
	initials     [3]*regexp.Regexp
	multi        []multiAbbr
	singleBefore []*regexp.Regexp
	singleAfter  []*regexp.Regexp
}

func newWordRules(l *Locale) *wordRules {
	r := new(wordRules)

	initial := `([` + upperChars + `][` + allChars + `]?\.)([` + spaces + `]?)`
	fullName := `([` + allChars + `]{2,}[^\.])`
	for i := range r.initials {
		r.initials[i] = regexp.MustCompile(strings.Repeat(initial, i+1) + fullName)
	}

	preceding := `([^` + allChars + enDash + emDash + `]|^)`
	following := `([^` + allChars + `\d` + quoteClass(l.DoubleOpen+l.SingleOpen) + "`" + `\p{So}]|$)`
	for _, abbr := range union(multiWordAbbreviations) {
		var pat string
		parts := strings.Fields(abbr)
		for _, p := range parts {
			pat += `(` + regexp.QuoteMeta(p) + `)(\.)([` + spaces + `]?)`
		}
		r.multi = append(r.multi, multiAbbr{
			parts:      len(parts),
			beforeWord: regexp.MustCompile(`(?i)` + preceding + pat + `([` + allChars + `\d])`),
			elsewhere:  regexp.MustCompile(`(?i)` + preceding + pat + following),
		})
	}

	single := union(singleWordAbbreviations)
	sort.SliceStable(single, func(i, j int) bool {
		return utf8.RuneCountInString(single[i]) > utf8.RuneCountInString(single[j])
	})
	for _, abbr := range single {
		pat := `(` + regexp.QuoteMeta(abbr) + `)(\.)([` + spaces + `]?)`
		r.singleBefore = append(r.singleBefore, regexp.MustCompile(`(?i)([^`+allChars+enDash+emDash+nbsp+`\.]|^)`+pat+`([`+allChars+`\d]+)([^\.]|$)`))
		r.singleAfter = append(r.singleAfter, regexp.MustCompile(`(?i)([`+allChars+`\d])([`+spaces+`])`+pat+`([^`+spaces+allChars+`\d]|$)`))
	}
	return r
}

// fixAbbreviations fixes the spaces in and after abbreviations:
// initials ("F. X. Šalda"), multi-word abbreviations ("e.g.")
// and single-word abbreviations ("p. 5").
func fixAbbreviations(text string, l *Locale) string {
	r := l.rules.word
	space := l.AbbreviationSpace

	text = r.initials[0].ReplaceAllString(text, "${1}"+nbsp+"${3}")
	text = r.initials[1].ReplaceAllString(text, "${1}"+space+"${3} ${5}")
	text = r.initials[2].ReplaceAllString(text, "${1}"+space+"${3}"+space+"${5} ${7}")

	for _, a := range r.multi {
		text = replaceSubmatch(a.beforeWord, text, func(m []string) string {
			return joinAbbr(m, a.parts, space) + " " + m[2+3*a.parts]
		})
	}
	for _, a := range r.multi {
		text = replaceSubmatch(a.elsewhere, text, func(m []string) string {
			return joinAbbr(m, a.parts, space) + m[2+3*a.parts]
		})
	}

	for _, re := range r.singleBefore {
		text = re.ReplaceAllString(text, "${1}${2}${3}"+nbsp+"${5}${6}")
	}
	for _, re := range r.singleAfter {
		text = re.ReplaceAllString(text, "${1}"+nbsp+"${3}${4}${5}${6}")
	}
	return text
}

// joinAbbr joins the parts of a matched multi-word abbreviation,
// each followed by a period, with space between them. m[1] is the
// text before the abbreviation and each part takes three groups.
func joinAbbr(m []string, parts int, space string) string {
	s := m[1]
	for i := 0; i < parts; i++ {
		if i > 0 {
			s += space
		}
		s += m[2+3*i] + "."
	}
	return s
}
