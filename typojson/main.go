// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Typojson corrects the typography of the strings in JSON documents.
//
// Usage:
//
//	typojson [-l locale] [-path paths] [-pretty] [file...]
//
// Typojson reads the named files, or else standard input, as JSON documents
// and prints them to standard output with every string value fixed.
// Object keys are left alone.
//
// The -path flag limits the fix to the values at a comma-separated
// list of paths, such as "title,items.0.body". A path naming an object
// or array fixes every string inside it.
//
// The -pretty flag indents the output.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"rsc.io/typo"
)

var (
	lflag      = flag.String("l", "", "`locale` of the text (default from $LANG)")
	pathFlag   = flag.String("path", "", "fix only the values at the comma-separated `paths`")
	prettyFlag = flag.Bool("pretty", false, "indent the output")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: typojson [-l locale] [-path paths] [-pretty] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("typojson: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	f := &typo.Fixer{Locale: *lflag}
	if f.Locale == "" {
		f.Locale = typo.MatchLocale(os.Getenv("LANG"))
	}
	var paths []string
	if *pathFlag != "" {
		paths = strings.Split(*pathFlag, ",")
	}

	args := flag.Args()
	if len(args) == 0 {
		if err := do(f, os.Stdin, paths); err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, arg := range args {
		file, err := os.Open(arg)
		if err != nil {
			log.Fatal(err)
		}
		err = do(f, file, paths)
		file.Close()
		if err != nil {
			log.Fatalf("%s: %v", arg, err)
		}
	}
}

func do(f *typo.Fixer, r io.Reader, paths []string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := fixJSON(f, data, paths)
	if err != nil {
		return err
	}
	if *prettyFlag {
		out = pretty.Pretty(out)
	}
	_, err = os.Stdout.Write(out)
	return err
}

var errInvalid = errors.New("invalid JSON")

// fixJSON fixes the string values of the JSON document data that lie
// at or below paths, or all of its string values if paths is empty.
// Paths that name no value are ignored.
func fixJSON(f *typo.Fixer, data []byte, paths []string) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalid
	}
	var fields []field
	if len(paths) == 0 {
		root := gjson.ParseBytes(data)
		if root.Type == gjson.String {
			return json.Marshal(f.Fix(root.Str))
		}
		fields = collect(fields, "", root)
	}
	for _, path := range paths {
		fields = collect(fields, path, gjson.GetBytes(data, path))
	}

	var err error
	for _, fd := range fields {
		out := f.Fix(fd.value)
		if out == fd.value {
			continue
		}
		data, err = sjson.SetBytes(data, fd.path, out)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", fd.path, err)
		}
	}
	return data, nil
}

// A field is a string value in a JSON document and its path.
type field struct {
	path  string
	value string
}

// collect appends to fields the string values at or below r,
// which is found at path.
func collect(fields []field, path string, r gjson.Result) []field {
	switch {
	case r.Type == gjson.String:
		if path != "" {
			fields = append(fields, field{path, r.Str})
		}
	case r.IsArray():
		i := 0
		r.ForEach(func(_, v gjson.Result) bool {
			fields = collect(fields, join(path, strconv.Itoa(i)), v)
			i++
			return true
		})
	case r.IsObject():
		r.ForEach(func(k, v gjson.Result) bool {
			fields = collect(fields, join(path, escape(k.Str)), v)
			return true
		})
	}
	return fields
}

func join(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "." + elem
}

// escape escapes the characters of an object key
// that have a meaning in a path.
func escape(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '!', '\\', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
