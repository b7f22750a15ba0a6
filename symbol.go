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
	mulTightRE   = regexp.MustCompile(`(\d+)([` + singlePrime + doublePrime + `])?[xX×](\d+)([` + singlePrime + doublePrime + `])?`)
	mulNumbersRE = regexp.MustCompile(`(\d+)([` + spaces + `]?[\p{Ll}` + singlePrime + doublePrime + `]*)[` + spaces + `][xX][` + spaces + `]` +
		`(\d+)([` + spaces + `]?[\p{Ll}` + singlePrime + doublePrime + `]*)`)
	mulWordsRE      = regexp.MustCompile(`(\pL+)([` + spaces + `][xX][` + spaces + `])(\pL+)`)
	mulNumberWordRE = regexp.MustCompile(`(\d)([` + spaces + `]?)[xX×][` + spaces + `](\p{Ll}+)`)

	copyrightRE      = regexp.MustCompile(`(?i)\(c\)([` + spaces + `]*)(\d)`)
	soundCopyrightRE = regexp.MustCompile(`(?i)\(p\)([` + spaces + `]*)(\d)`)
	plusMinusRE      = regexp.MustCompile(`\+-|-\+`)

	registeredRE  = markRE(`r`, registered)
	trademarkRE   = markRE(`tm`, trademark)
	serviceMarkRE = markRE(`sm`, serviceMark)

	exponentRE   = regexp.MustCompile(`([` + spaces + `/])(m|dam|hm|km|Mm|Gm|Tm|Pm|Em|Zm|Ym|dm|cm|mm|µm|nm|pm|fm|am|zm|ym)([23])`)
	numberSignRE = regexp.MustCompile(`([` + spaces + `]+)#[` + spaces + `]+(\d)`)
)

// markRE returns the pattern of a mark typed as "(letters)" or as its
// symbol, with the spaces before it. A mark after a digit is a reference,
// as in "Section 7(r)".
func markRE(letters, symbol string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)([^0-9]|^)[` + spaces + `]*(?:\(` + letters + `\)|` + regexp.QuoteMeta(symbol) + `)`)
}

// A symbolSpacing fixes the spaces around a symbol that
// precedes what it refers to, such as § or ©.
type symbolSpacing struct {
	before *regexp.Regexp
	after  *regexp.Regexp
	word   *regexp.Regexp
	space  string
}

func newSymbolSpacing(symbol, space string) symbolSpacing {
	q := regexp.QuoteMeta(symbol)
	return symbolSpacing{
		before: regexp.MustCompile(`([^` + ws + openBrackets + q + `])(` + q + `+)`),
		after:  regexp.MustCompile(`(` + q + `+)[` + spaces + `]+`),
		word:   regexp.MustCompile(`(` + q + `+)([` + wordClass + `])`),
		space:  space,
	}
}

func (sp symbolSpacing) fix(text string) string {
	text = sp.before.ReplaceAllString(text, "${1} ${2}")
	text = sp.after.ReplaceAllString(text, "${1}"+sp.space)
	return sp.word.ReplaceAllString(text, "${1}"+sp.space+"${2}")
}

type symbolRules struct {
	section        symbolSpacing
	paragraph      symbolSpacing
	copyright      symbolSpacing
	soundCopyright symbolSpacing
	numero         symbolSpacing
}

func newSymbolRules(l *Locale) *symbolRules {
	return &symbolRules{
		section:        newSymbolSpacing(sectionSign, l.SpaceAfterSection),
		paragraph:      newSymbolSpacing(paragraphSign, l.SpaceAfterParagraph),
		copyright:      newSymbolSpacing(copyright, l.SpaceAfterCopyright),
		soundCopyright: newSymbolSpacing(soundCopyright, l.SpaceAfterSoundCopyright),
		numero:         newSymbolSpacing(numeroSign, l.SpaceAfterNumero),
	}
}

// fixMultiplication replaces an x between dimensions or words
// with a multiplication sign, as in "5 × 4 cm" or "Ford × Kia".
func fixMultiplication(text string) string {
	text = mulTightRE.ReplaceAllString(text, "${1}${2} "+multiplication+" ${3}${4}")
	text = Rewrite(text, mulNumbersRE, "${1}${2} "+multiplication+" ${3}${4}")
	text = RewriteFunc(text, mulWordsRE, func(m []string) string {
		// "Jan X Novák" is a middle initial.
		if strings.Contains(m[2], "X") && startsUpper(m[1]) && startsUpper(m[3]) {
			return m[0]
		}
		return m[1] + " " + multiplication + " " + m[3]
	})
	return replaceSubmatch(mulNumberWordRE, text, func(m []string) string {
		if m[2] != "" {
			return m[1] + " " + multiplication + " " + m[3]
		}
		return m[1] + multiplication + " " + m[3]
	})
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// fixSectionSigns fixes the spaces around § and ¶.
func fixSectionSigns(text string, l *Locale) string {
	r := l.rules.symbol
	text = r.section.fix(text)
	return r.paragraph.fix(text)
}

// fixCopyrights replaces (c) and (p) before a year with © and ℗.
// Without a year, as in "Section 7(c)", they are left alone.
func fixCopyrights(text string, l *Locale) string {
	r := l.rules.symbol
	text = copyrightRE.ReplaceAllString(text, copyright+"${1}${2}")
	text = r.copyright.fix(text)
	text = soundCopyrightRE.ReplaceAllString(text, soundCopyright+"${1}${2}")
	return r.soundCopyright.fix(text)
}

func fixNumeroSign(text string, l *Locale) string {
	return l.rules.symbol.numero.fix(text)
}

func fixPlusMinus(text string) string {
	return plusMinusRE.ReplaceAllString(text, plusMinus)
}

// fixMarks replaces (r), (tm) and (sm) with ®, ™ and ℠
// and removes the spaces before them.
func fixMarks(text string) string {
	text = registeredRE.ReplaceAllString(text, "${1}"+registered)
	text = trademarkRE.ReplaceAllString(text, "${1}"+trademark)
	return serviceMarkRE.ReplaceAllString(text, "${1}"+serviceMark)
}

// fixExponents writes the 2 and 3 of square and cubic metres as
// superscripts, as in "10 m2" → "10 m²".
func fixExponents(text string) string {
	return replaceMatch(exponentRE, text, func(s string, loc []int) string {
		if isWord(runeAt(s, loc[1])) {
			return s[loc[0]:loc[1]]
		}
		exp := "²"
		if group(s, loc, 3) == "3" {
			exp = "³"
		}
		return group(s, loc, 1) + group(s, loc, 2) + exp
	})
}

// fixNumberSign removes the spaces between # and a number.
// A # at the start of a line is a Markdown heading and is kept.
func fixNumberSign(text string) string {
	return numberSignRE.ReplaceAllString(text, "${1}#${2}")
}
