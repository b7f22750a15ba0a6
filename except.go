// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import "regexp"

// Exceptions returns the matchers for text that Fix never rewrites:
// email addresses, URLs and file names.
func Exceptions() []Matcher {
	return []Matcher{emailMatcher{}, urlMatcher{}, filenameMatcher{}}
}

// MarkdownCode returns the matcher for Markdown code:
// fenced blocks, double-backtick spans and single-backtick spans.
func MarkdownCode() Matcher { return codeMatcher{} }

type emailMatcher struct{}

var emailRE = regexp.MustCompile(`(?i)[a-z0-9\+\._%\-]{1,256}@[a-z0-9][a-z0-9\-]{0,64}(?:\.[a-z0-9][a-z0-9\-]{0,25})+`)

func (emailMatcher) Match(text string) []Span {
	return spansOf(emailRE, text, Email)
}

// Top-level domains, longer names first so that the leftmost-first
// alternation prefers "company" over "com".
const tlds = `agency|aero|arpa|asia|a[cdefgilmnoqrstuwxz]|` +
	`biz|b[abdefghijmnorstvwyz]|` +
	`company|cloud|coop|cat|com|c[acdfghiklmnoruvxyz]|` +
	`dev|d[ejkmoz]|` +
	`edu|e[cegrstu]|` +
	`f[ijkmor]|` +
	`guide|gov|g[abdefghilmnpqrstuwy]|` +
	`h[kmnrtu]|` +
	`info|int|i[delmnoqrst]|` +
	`jobs|j[emop]|` +
	`k[eghimnrwyz]|` +
	`l[abcikrstuvy]|` +
	`museum|mobi|mil|m[acdghklmnopqrstuvwxyz]|` +
	`name|net|n[acefgilopruz]|` +
	`org|one|om|` +
	`pro|p[aefghklmnrstwy]|` +
	`qa|r[eouw]|` +
	`store|shop|s[abcdeghijklmnortuvyz]|` +
	`travel|team|tel|t[cdfghjklmnoprtvwz]|` +
	`u[agkmsyz]|` +
	`v[aceginu]|` +
	`work|w[fs]|` +
	`xyz|` +
	`y[etu]|` +
	`z[amw]`

const (
	ipv4Part = `(?:25[0-5]|2[0-4][0-9]|[0-1]?[0-9]{1,2})`
	urlChar  = `(?:[a-z0-9\$\-_\.\+\!\*'\(\)\,\;\?\&\=]|%[a-f0-9]{2})`
)

var urlRE = regexp.MustCompile(`(?i)` +
	`(?:(?:https?|rtsp)://(?:` + urlChar + `{1,64}(?::` + urlChar + `{1,25})?@)?)?` +
	`(?:(?:[a-z0-9][a-z0-9\-]{0,64}\.)+(?:` + tlds + `)|` +
	ipv4Part + `\.` + ipv4Part + `\.` + ipv4Part + `\.` + ipv4Part + `)` +
	`(?::\d{1,5})?` +
	`(/(?:[a-z0-9\;\\/\?\:@\&\=#~\-\.\+\!\*'\(\)\,_]|%[a-f0-9]{2})*)?`)

type urlMatcher struct{}

// Match returns the URLs in text. A URL must end at a word boundary or at
// the end of the text; a path that does not is shortened until it does,
// so "see http://x.org/a." keeps the period out of the URL.
func (urlMatcher) Match(text string) []Span {
	var spans []Span
	for _, loc := range urlRE.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[0], loc[1]
		floor := end
		if loc[2] >= 0 {
			floor = loc[2]
		}
		for end > floor && !urlEnd(text, end) {
			end--
		}
		if !urlEnd(text, end) {
			continue
		}
		spans = append(spans, Span{start, end, URL})
	}
	return spans
}

func urlEnd(text string, i int) bool {
	return i == len(text) || atBoundary(text, i)
}

const fileExtensions = `ai|asm|bat|bmp|c|cpp|cs|css|csv|dart|doc|docx|exe|gif|go|html|ics|` +
	`java|jpeg|jpg|js|json|key|kt|less|lua|log|md|mp4|odp|ods|odt|pdf|php|pl|png|ppt|pptx|psd|` +
	`py|r|rar|rb|rs|scala|scss|sh|svg|sql|swift|tar\.gz|tar|tex|tiff|ts|txt|vbs|xml|xls|xlsx|` +
	`yaml|yml|zip`

// The last group stands in for \b after the extension.
var filenameRE = regexp.MustCompile(`(?i)([a-z0-9_%\-]+)\.(?:` + fileExtensions + `)([^\pL\pN_]|$)`)

type filenameMatcher struct{}

func (filenameMatcher) Match(text string) []Span {
	var spans []Span
	for _, loc := range filenameRE.FindAllStringSubmatchIndex(text, -1) {
		start, name, end := loc[0], loc[3], loc[4]
		// The name must start at a word boundary. A name starting
		// with '-' or '%' may start later, past those characters.
		for start < name && !atBoundary(text, start) {
			start++
		}
		if start == name {
			continue
		}
		spans = append(spans, Span{start, end, Filename})
	}
	return spans
}

type codeMatcher struct{}

var (
	fencedCodeRE = regexp.MustCompile("(?s)```.*?```")
	doubleCodeRE = regexp.MustCompile("(?s)``.*?``")
	singleCodeRE = regexp.MustCompile("`[^`\n]+`")
)

// Match returns fenced blocks first, then the double- and single-backtick
// spans outside them.
func (codeMatcher) Match(text string) []Span {
	var spans []Span
	masked := text
	for _, re := range []*regexp.Regexp{fencedCodeRE, doubleCodeRE, singleCodeRE} {
		n := len(spans)
		for _, loc := range re.FindAllStringIndex(masked, -1) {
			if !overlaps(spans[:n], loc[0], loc[1]) {
				spans = append(spans, Span{loc[0], loc[1], Code})
			}
		}
		masked = blank(masked, spans[n:])
	}
	return spans
}

func overlaps(spans []Span, start, end int) bool {
	for _, sp := range spans {
		if start < sp.End && end > sp.Start {
			return true
		}
	}
	return false
}

// blank returns text with the spans replaced by NUL bytes,
// so that later patterns cannot match inside them
// while offsets stay valid.
func blank(text string, spans []Span) string {
	if len(spans) == 0 {
		return text
	}
	b := []byte(text)
	for _, sp := range spans {
		for i := sp.Start; i < sp.End; i++ {
			b[i] = 0
		}
	}
	return string(b)
}
