// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is the id of the locale used for empty or unknown ids.
const DefaultLocale = "en-us"

// A Locale holds the glyphs and spacing conventions of one language.
// Locales are fixed at init; LookupLocale returns copies.
type Locale struct {
	ID  string       // lower-case id, such as "en-us" or "cs"
	Tag language.Tag // BCP 47 tag of the language

	DoubleOpen  string
	DoubleClose string
	SingleOpen  string
	SingleClose string

	// Ordinal matches the ordinal suffix after a number: "st|nd|rd|th" or `\.`.
	Ordinal string
	// RomanOrdinal matches the indicator after an ordinal roman numeral,
	// or is empty if the language does not mark them.
	RomanOrdinal string

	DateFirstSpace     string // after the day in 12. 1. 2017
	DateSecondSpace    string // after the month
	SpaceBeforePercent string

	DashSpaceBefore string
	Dash            string
	DashSpaceAfter  string

	// AbbreviationSpace separates the parts of a multi-word
	// abbreviation, as in "e.g." or "F. X. Šalda".
	AbbreviationSpace string

	SpaceAfterCopyright      string
	SpaceAfterSoundCopyright string
	SpaceAfterNumero         string
	SpaceAfterSection        string
	SpaceAfterParagraph      string

	// SpeechIntro is the punctuation introducing direct speech.
	SpeechIntro string

	rules *rules
}

// rules are the regular expressions that depend on the locale,
// compiled once per locale.
type rules struct {
	ellipsis *ellipsisRules
	space    *spaceRules
	dash     *dashRules
	dquote   *dquoteRules
	squote   *squoteRules
	symbol   *symbolRules
	word     *wordRules
	nbsp     *nbspRules
}

var locales = []*Locale{
	{
		ID:                       "en-us",
		Tag:                      language.AmericanEnglish,
		DoubleOpen:               "“",
		DoubleClose:              "”",
		SingleOpen:               "‘",
		SingleClose:              "’",
		Ordinal:                  "st|nd|rd|th",
		DateFirstSpace:           nbsp,
		DateSecondSpace:          nbsp,
		Dash:                     emDash,
		SpaceAfterCopyright:      nbsp,
		SpaceAfterSoundCopyright: nbsp,
		SpaceAfterNumero:         nbsp,
		SpaceAfterSection:        nbsp,
		SpaceAfterParagraph:      nbsp,
		SpeechIntro:              ",",
	},
	{
		ID:                       "de-de",
		Tag:                      language.MustParse("de-DE"),
		DoubleOpen:               "„",
		DoubleClose:              "“",
		SingleOpen:               "‚",
		SingleClose:              "‘",
		Ordinal:                  `\.`,
		RomanOrdinal:             `\.`,
		DateFirstSpace:           nbsp,
		DateSecondSpace:          space,
		SpaceBeforePercent:       narrowNbsp,
		DashSpaceBefore:          hairSpace,
		Dash:                     enDash,
		DashSpaceAfter:           hairSpace,
		AbbreviationSpace:        nbsp,
		SpaceAfterCopyright:      nbsp,
		SpaceAfterSoundCopyright: nbsp,
		SpaceAfterNumero:         nbsp,
		SpaceAfterSection:        nbsp,
		SpaceAfterParagraph:      nbsp,
		SpeechIntro:              ":",
	},
	{
		ID:                       "cs",
		Tag:                      language.Czech,
		DoubleOpen:               "„",
		DoubleClose:              "“",
		SingleOpen:               "‚",
		SingleClose:              "‘",
		Ordinal:                  `\.`,
		RomanOrdinal:             `\.`,
		DateFirstSpace:           nbsp,
		DateSecondSpace:          nbsp,
		SpaceBeforePercent:       nbsp,
		DashSpaceBefore:          nbsp,
		Dash:                     enDash,
		DashSpaceAfter:           space,
		AbbreviationSpace:        nbsp,
		SpaceAfterCopyright:      space,
		SpaceAfterSoundCopyright: space,
		SpaceAfterNumero:         nbsp,
		SpaceAfterSection:        nbsp,
		SpaceAfterParagraph:      nbsp,
		SpeechIntro:              ":",
	},
	{
		ID:                       "sk",
		Tag:                      language.Slovak,
		DoubleOpen:               "„",
		DoubleClose:              "“",
		SingleOpen:               "‚",
		SingleClose:              "‘",
		Ordinal:                  `\.`,
		RomanOrdinal:             `\.`,
		DateFirstSpace:           nbsp,
		DateSecondSpace:          nbsp,
		SpaceBeforePercent:       nbsp,
		DashSpaceBefore:          hairSpace,
		Dash:                     emDash,
		DashSpaceAfter:           hairSpace,
		AbbreviationSpace:        nbsp,
		SpaceAfterCopyright:      nbsp,
		SpaceAfterSoundCopyright: nbsp,
		SpaceAfterNumero:         nbsp,
		SpaceAfterSection:        narrowNbsp,
		SpaceAfterParagraph:      narrowNbsp,
		SpeechIntro:              ":",
	},
	{
		ID:                       "rue",
		Tag:                      language.Make("rue"),
		DoubleOpen:               "«",
		DoubleClose:              "»",
		SingleOpen:               "‹",
		SingleClose:              "›",
		Ordinal:                  `\.`,
		RomanOrdinal:             `\.`,
		DateFirstSpace:           nbsp,
		DateSecondSpace:          nbsp,
		SpaceBeforePercent:       nbsp,
		DashSpaceBefore:          hairSpace,
		Dash:                     emDash,
		DashSpaceAfter:           hairSpace,
		AbbreviationSpace:        nbsp,
		SpaceAfterCopyright:      nbsp,
		SpaceAfterSoundCopyright: nbsp,
		SpaceAfterNumero:         nbsp,
		SpaceAfterSection:        narrowNbsp,
		SpaceAfterParagraph:      narrowNbsp,
		SpeechIntro:              ":",
	},
}

var localeMatcher language.Matcher

func init() {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag
		l.rules = &rules{
			ellipsis: newEllipsisRules(l),
			space:    newSpaceRules(l),
			dash:     newDashRules(l),
			dquote:   newDquoteRules(l),
			squote:   newSquoteRules(l),
			symbol:   newSymbolRules(l),
			word:     newWordRules(l),
			nbsp:     newNbspRules(l),
		}
	}
	localeMatcher = language.NewMatcher(tags)
}

// lookup returns the locale for id, falling back to DefaultLocale.
func lookup(id string) *Locale {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, l := range locales {
		if l.ID == id {
			return l
		}
	}
	return locales[0]
}

// LookupLocale returns the locale with the given id, compared without
// regard to case. Empty and unknown ids return the DefaultLocale.
func LookupLocale(id string) Locale {
	return *lookup(id)
}

// Locales returns the ids of the supported locales, DefaultLocale first.
func Locales() []string {
	ids := make([]string, len(locales))
	for i, l := range locales {
		ids[i] = l.ID
	}
	return ids
}

// MatchLocale returns the id of the supported locale that best matches
// a BCP 47 tag or a POSIX locale name such as "cs_CZ.UTF-8".
// It returns DefaultLocale when nothing matches well.
func MatchLocale(tag string) string {
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	t, err := language.Parse(tag)
	if err != nil {
		return DefaultLocale
	}
	_, i, conf := localeMatcher.Match(t)
	if conf < language.High {
		return DefaultLocale
	}
	return locales[i].ID
}
