// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteOverlap(t *testing.T) {
	re := regexp.MustCompile(`(\d)-(\d)`)
	assert.Equal(t, "1–2-3", re.ReplaceAllString("1-2-3", "${1}–${2}"))
	assert.Equal(t, "1–2–3", Rewrite("1-2-3", re, "${1}–${2}"))
	assert.Equal(t, "1–2–3–4–5", Rewrite("1-2-3-4-5", re, "${1}–${2}"))
}

func TestRewriteNoMatch(t *testing.T) {
	re := regexp.MustCompile(`(\d)-(\d)`)
	assert.Equal(t, "no digits", Rewrite("no digits", re, "${1}–${2}"))
	assert.Equal(t, "", Rewrite("", re, "${1}–${2}"))
}

func TestRewriteFuncCycle(t *testing.T) {
	calls := 0
	out := RewriteFunc("a", regexp.MustCompile(`a|b`), func(m []string) string {
		calls++
		if m[0] == "a" {
			return "b"
		}
		return "a"
	})
	assert.Equal(t, MaxRewrites, calls)
	assert.Equal(t, "a", out)
}

func TestRewriteFuncGrowth(t *testing.T) {
	out := RewriteFunc("x", regexp.MustCompile(`x$`), func(m []string) string {
		return "xx"
	})
	assert.Len(t, out, 1+MaxRewrites)
}

func TestReplaceMatchLookaround(t *testing.T) {
	// Replace "ab" only when not preceded by a word character.
	re := regexp.MustCompile(`ab`)
	out := replaceMatch(re, "ab xab _ab (ab", func(s string, loc []int) string {
		if isWord(runeBefore(s, loc[0])) {
			return s[loc[0]:loc[1]]
		}
		return "AB"
	})
	assert.Equal(t, "AB xab _ab (AB", out)
}

func TestGroupUnmatched(t *testing.T) {
	re := regexp.MustCompile(`(a)|(b)`)
	loc := re.FindStringSubmatchIndex("b")
	assert.Equal(t, "", group("b", loc, 1))
	assert.Equal(t, "b", group("b", loc, 2))
}

// Every rule applied with Rewrite reaches a fixed point on realistic text
// well before MaxRewrites: one more pass changes nothing.
func TestRewriteConverges(t *testing.T) {
	var nums []string
	for i := 1; i <= 40; i++ {
		nums = append(nums, strconv.Itoa(i))
	}
	words := strings.Repeat("word ", 40)

	tests := []struct {
		name string
		re   *regexp.Regexp
		repl string
		in   string
		want string
	}{
		{"numbers", dashNumbersRE, "${1}" + tagEnDash + "${2}",
			strings.Join(nums, "-"), strings.Join(nums, tagEnDash)},
		{"dashes", dashBetweenWordsRE, "${1}" + tagDash + "${2}",
			strings.Join(strings.Fields(words), " - "), strings.Join(strings.Fields(words), tagDash)},
		{"spaces", multiSpaceRE, "${1} ${2}",
			strings.ReplaceAll(words, " ", "   "), strings.TrimSpace(words) + "   "},
		{"ellipsis", betweenWordsRE, "${1}… ${2}",
			strings.Join(strings.Fields(words), "…"), strings.Join(strings.Fields(words), "… ")},
		{"apostrophes", sqInWordRE, "${1}" + tagApostrophe + "${2}",
			strings.Repeat("a'", 40) + "a", strings.Repeat("a"+tagApostrophe, 40) + "a"},
		{"nbsp", nbspBetweenWordsRE, "${1} ${2}",
			strings.Join(strings.Fields(words), nbsp), strings.Join(strings.Fields(words), " ")},
	}
	for _, tt := range tests {
		out := Rewrite(tt.in, tt.re, tt.repl)
		assert.Equal(t, tt.want, out, tt.name)
		assert.Equal(t, out, tt.re.ReplaceAllString(out, tt.repl), "%s: not a fixed point", tt.name)
	}
}
