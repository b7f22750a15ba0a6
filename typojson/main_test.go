// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"rsc.io/typo"
)

const doc = `{
	"title": "He said - \"Hello\" - and left.",
	"count": 3,
	"ok": true,
	"items": [
		{"body": "Sentence...What"},
		{"body": "rock 'n' roll", "n": null}
	],
	"a.b": "Company(c) 2017",
	"code": "Run x -- y now"
}`

func TestFixJSON(t *testing.T) {
	f := &typo.Fixer{Locale: "en-us"}
	out, err := fixJSON(f, []byte(doc), nil)
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(out))

	assert.Equal(t, "He said, “Hello” and left.", gjson.GetBytes(out, "title").Str)
	assert.Equal(t, f.Fix("Sentence...What"), gjson.GetBytes(out, "items.0.body").Str)
	assert.Equal(t, f.Fix("rock 'n' roll"), gjson.GetBytes(out, "items.1.body").Str)
	assert.Equal(t, f.Fix("Company(c) 2017"), gjson.GetBytes(out, `a\.b`).Str)
	assert.Equal(t, f.Fix("Run x -- y now"), gjson.GetBytes(out, "code").Str)

	assert.Equal(t, int64(3), gjson.GetBytes(out, "count").Int())
	assert.True(t, gjson.GetBytes(out, "ok").Bool())
	assert.Equal(t, gjson.Null, gjson.GetBytes(out, "items.1.n").Type)

	// No keys were added or removed.
	var keys []string
	gjson.ParseBytes(out).ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.Str)
		return true
	})
	assert.Equal(t, []string{"title", "count", "ok", "items", "a.b", "code"}, keys)
}

func TestFixJSONPaths(t *testing.T) {
	f := &typo.Fixer{Locale: "en-us"}
	out, err := fixJSON(f, []byte(doc), []string{"title", "items", "missing"})
	require.NoError(t, err)

	assert.Equal(t, "He said, “Hello” and left.", gjson.GetBytes(out, "title").Str)
	assert.Equal(t, f.Fix("Sentence...What"), gjson.GetBytes(out, "items.0.body").Str)
	assert.Equal(t, "Company(c) 2017", gjson.GetBytes(out, `a\.b`).Str)
	assert.Equal(t, "Run x -- y now", gjson.GetBytes(out, "code").Str)
}

func TestFixJSONString(t *testing.T) {
	f := &typo.Fixer{Locale: "en-us"}
	out, err := fixJSON(f, []byte(`"He said - \"Hello\" - and left."`), nil)
	require.NoError(t, err)
	assert.Equal(t, "He said, “Hello” and left.", gjson.ParseBytes(out).Str)
}

func TestFixJSONInvalid(t *testing.T) {
	_, err := fixJSON(&typo.Fixer{}, []byte(`{"title": `), nil)
	assert.ErrorIs(t, err, errInvalid)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "plain", escape("plain"))
	assert.Equal(t, `a\.b\*c`, escape("a.b*c"))
}
