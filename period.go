// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typo

import "regexp"

var periodsRE = regexp.MustCompile(`\.{2,}`)

// fixPeriods collapses runs of periods into one.
// A run before a path separator is relative path notation
// and is reduced to "..", as in "../" and "..\".
func fixPeriods(text string) string {
	return replaceMatch(periodsRE, text, func(s string, loc []int) string {
		if r := runeAt(s, loc[1]); r == '/' || r == '\\' {
			return ".."
		}
		return "."
	})
}
