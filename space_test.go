// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import "testing"

var spaceTests = []struct {
	in         string
	out        string
	listIndent bool
}{
	{"Hello  world", "Hello world", false},
	{"Hello   big" + nbsp + nbsp + "world", "Hello big world", false},
	{"  Hello", "Hello", false},
	{"Hello  \nworld ", "Hello\nworld", false},
	{"Hello , world", "Hello, world", false},
	{"Hello .", "Hello.", false},
	{"Hello.World", "Hello. World", false},
	{"in(brackets)", "in (brackets)", false},
	{"word(s)", "word(s)", false},
	{"( word)", "(word)", false},
	{"(word)next", "(word) next", false},
	{"one,two", "one, two", false},
	{"1 st", "1st", false},
	{"1 stop", "1 stop", false},
	{"  - item", "- item", false},
	{"  - item", "  - item", true},
	{"  text", "text", true},
}

func TestFixSpaces(t *testing.T) {
	l := lookup("en-us")
	for _, tt := range spaceTests {
		if out := fixSpaces(tt.in, l, tt.listIndent); out != tt.out {
			t.Errorf("fixSpaces(%q, %v) = %q, want %q", tt.in, tt.listIndent, out, tt.out)
		}
	}
}

func TestFixLines(t *testing.T) {
	if out := fixLines("a\n\n\nb\r\n\r\nc"); out != "a\nb\nc" {
		t.Errorf("fixLines = %q, want %q", out, "a\nb\nc")
	}
}
