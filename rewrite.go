// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"regexp"
	"strings"
)

// MaxRewrites is the number of passes after which Rewrite and RewriteFunc
// stop even if the text is still changing.
const MaxRewrites = 50

// Rewrite replaces matches of re in text with repl, as in
// re.ReplaceAllString, and repeats until the text stops changing.
//
// A single pass misses matches that share characters with the previous one:
// in "1-2-3" the digit 2 is consumed by the first match of a
// digit-dash-digit pattern, so "2-3" is only seen by the second pass.
func Rewrite(text string, re *regexp.Regexp, repl string) string {
	return fixpoint(text, func(s string) string {
		return re.ReplaceAllString(s, repl)
	})
}

// RewriteFunc is like Rewrite but computes each replacement by calling fn
// with the submatches of the match, m[0] being the whole match.
func RewriteFunc(text string, re *regexp.Regexp, fn func(m []string) string) string {
	return fixpoint(text, func(s string) string {
		return replaceSubmatch(re, s, fn)
	})
}

// fixpoint applies f to s until s stops changing or MaxRewrites passes ran.
func fixpoint(s string, f func(string) string) string {
	for i := 0; i < MaxRewrites; i++ {
		t := f(s)
		if t == s {
			break
		}
		s = t
	}
	return s
}

// replaceSubmatch replaces every match of re in s with fn(submatches).
// Unmatched optional groups are passed as "".
func replaceSubmatch(re *regexp.Regexp, s string, fn func(m []string) string) string {
	return replaceMatch(re, s, func(s string, loc []int) string {
		m := make([]string, len(loc)/2)
		for i := range m {
			if loc[2*i] >= 0 {
				m[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		return fn(m)
	})
}

// replaceMatch replaces every match of re in s with fn(s, loc), where loc
// holds the submatch indexes of the match in s. Giving fn the whole text
// lets it look at the characters around the match, standing in for the
// lookaround assertions RE2 does not have.
func replaceMatch(re *regexp.Regexp, s string, fn func(s string, loc []int) string) string {
	locs := re.FindAllStringSubmatchIndex(s, -1)
	if locs == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(s[last:loc[0]])
		b.WriteString(fn(s, loc))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// group returns submatch i of the match described by loc, or "".
func group(s string, loc []int, i int) string {
	if loc[2*i] < 0 {
		return ""
	}
	return s[loc[2*i]:loc[2*i+1]]
}
