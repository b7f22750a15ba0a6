// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rsc.io/typo"
)

const speech = "He said - \"Hello\" - and left.\n"

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0777))
	require.NoError(t, os.WriteFile(name, []byte(data), 0666))
	return name
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, filepath.Join(dir, "typofix.yaml"), `
locale: cs
keep-lines: true
list-indent: true
`)
	c, err := loadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, &config{
		Locale:         "cs",
		KeepBlankLines: true,
		KeepListIndent: true,
		Include:        "*.md",
	}, c)

	f := c.fixer(file)
	assert.Equal(t, "cs", f.Locale)
	assert.True(t, f.KeepBlankLines)
	assert.False(t, f.FixCode)
	assert.True(t, f.KeepListIndent)
	assert.Nil(t, f.Trace)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := loadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, filepath.Join(dir, "bad.yaml"), "locale: [cs\n")
	_, err = loadConfig(bad)
	assert.Error(t, err)
}

func TestConfigSet(t *testing.T) {
	c := &config{Locale: "cs", Include: "*.md"}
	require.NoError(t, c.set("l", "de-de"))
	require.NoError(t, c.set("code", "true"))
	require.NoError(t, c.set("include", "*.txt"))
	require.NoError(t, c.set("w", "true"))
	assert.Equal(t, &config{Locale: "de-de", FixCode: true, Include: "*.txt"}, c)

	assert.Error(t, c.set("keep-lines", "maybe"))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.md"), speech)
	b := writeFile(t, filepath.Join(dir, "sub", "b.md"), speech)
	txt := writeFile(t, filepath.Join(dir, "c.txt"), speech)

	c := &config{Include: "*.md"}
	files, err := c.files(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)

	// A file named on the command line is fixed whatever its name.
	files, err = c.files(txt)
	require.NoError(t, err)
	assert.Equal(t, []string{txt}, files)

	c.Include = "*.txt"
	files, err = c.files(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{txt}, files)

	_, err = c.files(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestFixFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, filepath.Join(dir, "a.md"), speech)
	f := &typo.Fixer{Locale: "en-us"}
	want := f.Fix(speech)
	require.NotEqual(t, speech, want)

	var out strings.Builder
	require.NoError(t, fixFile(f, file, false, &out))
	assert.Equal(t, want, out.String())
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, speech, string(data), "file changed without -w")

	out.Reset()
	require.NoError(t, fixFile(f, file, true, &out))
	assert.Empty(t, out.String())
	data, err = os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))

	assert.Error(t, fixFile(f, filepath.Join(dir, "missing.md"), false, &out))
}
