// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"regexp"
	"strings"
)

var blankLinesRE = regexp.MustCompile(`[\n\r]{2,}`)

// fixLines collapses runs of line breaks, removing empty lines.
func fixLines(text string) string {
	return blankLinesRE.ReplaceAllString(text, "\n")
}

type spaceRules struct {
	ordinal *regexp.Regexp
}

func newSpaceRules(l *Locale) *spaceRules {
	return &spaceRules{
		ordinal: regexp.MustCompile(`(\d)[` + spaces + `]?(` + l.Ordinal + `)`),
	}
}

var (
	multiSpaceRE     = regexp.MustCompile(`([^` + ws + `])[` + spaces + `]{2,}([^` + ws + `])`)
	lineStartRE      = regexp.MustCompile(`^[` + ws + `]+([-*+>]*)`)
	lineEndRE        = regexp.MustCompile(`[` + ws + `]+$`)
	spacePauseRE     = regexp.MustCompile(`[` + spaces + `]([` + pausePunct + `])([^\-\)]|$)`)
	spaceTerminalRE  = regexp.MustCompile(`([^` + openBrackets + `])[` + spaces + `]([` + terminalPunct + closeBrackets + degree + `])`)
	spaceOpenRE      = regexp.MustCompile(`([` + openBrackets + `])[` + spaces + `]([^` + closeBrackets + `])`)
	beforeOpenRE     = regexp.MustCompile(`([` + allChars + `])([` + openBrackets + `])([` + allChars + ellipsis + `])([` + allChars + ellipsis + closeBrackets + `])`)
	afterTerminalRE  = regexp.MustCompile(`([` + allChars + `]{2,}|` + ellipsis + `)([` + terminalPunct + `])([` + upperChars + `])`)
	afterCloseRE     = regexp.MustCompile(`([` + closeBrackets + `])([` + allChars + `])`)
	afterPauseRE     = regexp.MustCompile(`([` + allChars + `]{2,}|` + ellipsis + `)([` + pausePunct + `])([` + allChars + `])`)
)

// fixSpaces normalizes the spaces between words and around punctuation.
// If keepListIndent is set, indentation before a Markdown list marker
// or block quote marker is kept.
func fixSpaces(text string, l *Locale, keepListIndent bool) string {
	r := l.rules.space
	text = Rewrite(text, multiSpaceRE, "${1} ${2}")
	text = trimLines(text, keepListIndent)
	text = spacePauseRE.ReplaceAllString(text, "${1}${2}")
	text = spaceTerminalRE.ReplaceAllString(text, "${1}${2}")
	text = replaceMatch(r.ordinal, text, func(s string, loc []int) string {
		// The suffix must end the word: "1 st" but not "1 stop".
		end := loc[1]
		if !strings.ContainsRune(spaces, runeAt(s, end)) && !atBoundary(s, end) {
			return s[loc[0]:loc[1]]
		}
		return group(s, loc, 1) + group(s, loc, 2)
	})
	text = spaceOpenRE.ReplaceAllString(text, "${1}${2}")
	text = replaceSubmatch(beforeOpenRE, text, func(m []string) string {
		// Plurals such as name(s) and mass(es) keep the bracket attached.
		if m[3] == "s" || m[3] == "S" || m[3]+m[4] == "es" || m[3]+m[4] == "ES" {
			return m[0]
		}
		return m[1] + space + m[2] + m[3] + m[4]
	})
	text = afterTerminalRE.ReplaceAllString(text, "${1}${2} ${3}")
	text = afterCloseRE.ReplaceAllString(text, "${1} ${2}")
	text = afterPauseRE.ReplaceAllString(text, "${1}${2} ${3}")
	return text
}

// trimLines removes white space at the start and end of every line.
func trimLines(text string, keepListIndent bool) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = replaceSubmatch(lineStartRE, line, func(m []string) string {
			if keepListIndent && m[1] != "" {
				return m[0]
			}
			return m[1]
		})
		lines[i] = lineEndRE.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}
