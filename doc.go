// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package typo corrects the microtypography of plain text and Markdown prose.
//
// Fix rewrites straight quotes as the curly quotes of the text's language,
// turns hyphens into dashes and dots into ellipses, repairs spacing around
// punctuation, replaces typed symbols such as (c) and 5x4 with ©
// and 5 × 4, and places no-break spaces where a line must not break:
//
//	typo.Fix(`He said - "Hello" - and left.`, "en-us")
//	// He said, “Hello” and left.
//
//	typo.Fix(`He said - "Hello" - and left.`, "cs")
//	// He said: „Hello“ and left.
//
// The supported locales are listed by Locales. MatchLocale maps
// a BCP 47 tag or a POSIX locale name such as "cs_CZ.UTF-8" to one of them.
//
// Email addresses, URLs, file names and Markdown code are lifted out of the
// text before any rule runs and put back afterwards, so they come out
// byte for byte as they went in. Extract and Restore expose that mechanism:
// Extract takes any Matcher, so callers can protect spans of their own,
// and the returned Ledger reports what it set aside through Len and Value.
// Exceptions and MarkdownCode return the matchers Fix uses.
//
// A Fixer carries options: keeping blank lines, rewriting code,
// keeping list indentation, and tracing the stages of a Fix.
//
// Fix is idempotent and safe for concurrent use.
package typo
