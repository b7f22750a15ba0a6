// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"fmt"
	"strings"
	"testing"
)

var rep = strings.Repeat

func repf(f func(int) string, n int) string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = f(i)
	}
	return strings.Join(out, "")
}

// An empty out only checks that Fix returns.
var bigTests = []struct {
	name string
	in   string
	out  string
}{
	{
		"many single-letter words",
		rep("a ", 10000),
		"a" + rep(nbsp+"a", 9999),
	},
	{
		"many words",
		rep("word ", 10000),
		strings.TrimSuffix(rep("word ", 10000), " "),
	},
	{
		"many periods",
		rep("...", 10000),
		"…",
	},
	{
		"many emails",
		repf(func(i int) string { return fmt.Sprintf("u%d@example.com ", i) }, 1000),
		strings.TrimSuffix(repf(func(i int) string { return fmt.Sprintf("u%d@example.com ", i) }, 1000), " "),
	},
	{
		"many double quotes",
		rep(`"`, 10000),
		"",
	},
	{
		"many apostrophes",
		rep("'", 10000),
		"",
	},
	{
		"many quoted words",
		rep(`"a" 'b' `, 5000),
		"",
	},
	{
		"nested brackets",
		rep("(", 10000) + "a" + rep(")", 10000),
		"",
	},
	{
		"many dashed numbers",
		repf(func(i int) string { return fmt.Sprintf("%d - ", i%10) }, 5000),
		"",
	},
	{
		"many backticks",
		rep("`a", 10000),
		"",
	},
}

func compress(s string) string {
	var out []byte
	start := 0
S:
	for i := 0; i+4 < len(s); i++ {
		c := s[i]
		for j := i + 1; j < i+100 && j < len(s); j++ {
			if s[j] == c {
				n := 1
				w := j - i
				for j+w <= len(s) && s[i:i+w] == s[j:j+w] {
					j += w
					n++
				}
				if n > 2 {
					out = append(out, s[start:i]...)
					out = fmt.Appendf(out, "«%d:%s»", n, s[i:i+w])
					start = j
					i = start - 1
					continue S
				}
			}
		}
	}
	out = append(out, s[start:]...)
	return string(out)
}

func TestBig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in -short mode")
	}
	for _, tt := range bigTests {
		t.Run(tt.name, func(t *testing.T) {
			out := Fix(tt.in, DefaultLocale)
			if out == "" {
				t.Fatalf("%s: Fix(%q) is empty", tt.name, compress(tt.in))
			}
			if tt.out != "" && out != tt.out {
				t.Fatalf("%s: Fix(%q):\nhave %q\nwant %q", tt.name, compress(tt.in), compress(out), compress(tt.out))
			}
		})
	}
}

func bench(b *testing.B, locale, text string) {
	for i := 0; i < b.N; i++ {
		_ = Fix(text, locale)
	}
	b.SetBytes(int64(len(text)))
}

const paragraph = `He said - "It's 5x4 m, isn't it?" - and left... ` +
	`See §5, e. g. p. 12 or http://example.com/a--b. Company(c) 2017. `

func BenchmarkParagraph(b *testing.B) {
	bench(b, "en-us", rep(paragraph, 10))
}

func BenchmarkParagraphCzech(b *testing.B) {
	bench(b, "cs", rep(paragraph, 10))
}

func BenchmarkQuotes(b *testing.B) {
	bench(b, "en-us", rep(`"a" 'b' `, 1000))
}
