// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import "testing"

var periodTests = []struct {
	in  string
	out string
}{
	{"Hello.. World", "Hello. World"},
	{"a....b", "a.b"},
	{"../path", "../path"},
	{`..\dir`, `..\dir`},
	{"one. two", "one. two"},
}

func TestFixPeriods(t *testing.T) {
	for _, tt := range periodTests {
		if out := fixPeriods(tt.in); out != tt.out {
			t.Errorf("fixPeriods(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}
