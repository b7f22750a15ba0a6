// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var caseTests = []struct {
	in  string
	out string
}{
	{"JEnnifer", "Jennifer"},
	{"HEllo world", "Hello world"},
	{"jENNIFER", "Jennifer"},
	{"iOS", "iOS"},
	{"macOS", "macOS"},
	{"NASA", "NASA"},
	{"ČEský", "Český"},
}

func TestFixCase(t *testing.T) {
	l := lookup("en-us")
	for _, tt := range caseTests {
		if out := fixCase(tt.in, l); out != tt.out {
			t.Errorf("fixCase(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

var pubIDTests = []struct {
	in  string
	out string
}{
	{"ISSN 0000 - 0000", "ISSN" + nbsp + "0000-0000"},
	{"issn:0000-0000", "ISSN:" + nbsp + "0000-0000"},
	{"ISBN 978-80-86920-24-6", "ISBN" + nbsp + "978-80-86920-24-6"},
	{"ISBN 80-902734-1-6", "ISBN" + nbsp + "80-902734-1-6"},
	{"ISBN 80 – 902734 – 1 – 6", "ISBN" + nbsp + "80-902734-1-6"},
}

func TestFixPubID(t *testing.T) {
	for _, tt := range pubIDTests {
		if out := fixPubID(tt.in); out != tt.out {
			t.Errorf("fixPubID(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

var abbreviationTests = []struct {
	locale string
	in     string
	out    string
}{
	{"en-us", "e. g. something", "e.g. something"},
	{"en-us", "e.g. something", "e.g. something"},
	{"cs", "e. g. something", "e." + nbsp + "g. something"},
	{"en-us", "J. Novák", "J." + nbsp + "Novák"},
	{"cs", "např. auto", "např." + nbsp + "auto"},
	{"en-us", "see p. 5", "see p." + nbsp + "5"},
}

func TestFixAbbreviations(t *testing.T) {
	for _, tt := range abbreviationTests {
		if out := fixAbbreviations(tt.in, lookup(tt.locale)); out != tt.out {
			t.Errorf("fixAbbreviations(%q, %s) = %q, want %q", tt.in, tt.locale, out, tt.out)
		}
	}
}

func TestUnion(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, union([][]string{{"a", "b"}, {"b", "c", "a"}}))
}
