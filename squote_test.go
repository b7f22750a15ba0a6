// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var singleQuoteTests = []struct {
	locale string
	in     string
	out    string
}{
	{"en-us", "rock 'n' roll", "rock" + nbsp + "’n’" + nbsp + "roll"},
	{"cs", "rock 'n' roll", "rock" + nbsp + "’n’" + nbsp + "roll"},
	{"en-us", "fish 'n' chips", "fish" + nbsp + "’n’" + nbsp + "chips"},
	{"en-us", "Press 'N' to get started", "Press ‘N’ to get started"},
	{"cs", "Press 'N' to get started", "Press ‚N‘ to get started"},
	{"en-us", "'word' 'word'", "‘word’ ‘word’"},
	{"en-us", "Hers'", "Hers’"},
	{"en-us", "in '89", "in ’89"},
	{"en-us", "'tis", "’tis"},
	{"en-us", "'til", "’til"},
	{"en-us", "'tissue", "’tissue"},
	{"en-us", "nothin'", "nothin’"},
	{"en-us", "It's", "It’s"},
	{"en-us", "12'", "12′"},
	{"en-us", "He's 6' tall", "He’s 6′ tall"},
	{"en-us", `"a 'quoted material' here"`, `"a ‘quoted material’ here"`},
	{"cs", `"a 'quoted material' here"`, `"a ‚quoted material‘ here"`},
	{"en-us", `"Go to 'Room 101' now"`, `"Go to ‘Room 101’ now"`},
	{"en-us", `"about 'Localhost 3000', is that good?"`, `"about ‘Localhost 3000’, is that good?"`},
	{"en-us", `"the 1990' lead"`, `"the 1990’ lead"`},
}

func TestFixSingleQuotes(t *testing.T) {
	for _, tt := range singleQuoteTests {
		if out := fixSingleQuotes(tt.in, lookup(tt.locale)); out != tt.out {
			t.Errorf("fixSingleQuotes(%q, %s) = %q, want %q", tt.in, tt.locale, out, tt.out)
		}
	}
}

var swapTests = []struct {
	locale string
	in     string
	out    string
}{
	{"en-us", "He was ok. ‘He was ok’.", "He was ok. ‘He was ok.’"},
	{"cs", "He was ok. ‚He was ok‘.", "He was ok. ‚He was ok.‘"},
	{"en-us", "Ask ‘What’s going on in here’? so you can dig deeper.", "Ask ‘What’s going on in here?’ so you can dig deeper."},
	{"en-us", "Look for ‘Anguanga’.", "Look for ‘Anguanga’."},
	{"en-us", "a ‘quoted part.’ A ‘quoted part.’", "a ‘quoted part’. A ‘quoted part’."},
	{"en-us", "Only a ‘quoted part.’ ‘A whole sentence.’", "Only a ‘quoted part’. ‘A whole sentence.’"},
}

func TestSwapSingleQuotePunctuation(t *testing.T) {
	for _, tt := range swapTests {
		if out := swapSingleQuotePunctuation(tt.in, lookup(tt.locale).rules.squote); out != tt.out {
			t.Errorf("swapSingleQuotePunctuation(%q, %s) = %q, want %q", tt.in, tt.locale, out, tt.out)
		}
	}
}

func TestFixSingleQuotesNestedNumber(t *testing.T) {
	in := `"What about 'Localhost 3000', is that good?"`
	for _, id := range Locales() {
		l := lookup(id)
		want := `"What about ` + l.SingleOpen + `Localhost 3000` + l.SingleClose + `, is that good?"`
		assert.Equal(t, want, fixSingleQuotes(in, l), "locale %s", id)
		// The fixed quotes are recognized again.
		assert.Equal(t, want, fixSingleQuotes(want, l), "locale %s, second pass", id)
	}
}
