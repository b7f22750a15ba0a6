// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Typofix corrects the typography of text files.
//
// Usage:
//
//	typofix [-l locale] [-w] [-keep-lines] [-code] [-list-indent] [-include glob] [-config file] [-v] [file...]
//
// Typofix reads the named files, or else standard input, fixes their
// typography and prints the result to standard output.
// A directory argument is walked for files whose names match
// the -include glob, "*.md" by default.
//
// The -w flag specifies to rewrite the files in place.
//
// The -l flag sets the locale of the text; the default is derived from $LANG.
// The -keep-lines, -code and -list-indent flags set the Fixer options
// of the same meaning.
//
// The -config flag names a YAML file holding the same settings:
//
//	locale: cs
//	keep-lines: true
//	code: false
//	list-indent: true
//	include: "*.txt"
//
// Flags given on the command line override the file.
//
// The -v flag logs every stage that changed a file.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tidwall/match"
	"gopkg.in/yaml.v3"
	"rsc.io/typo"
)

var (
	wflag      = flag.Bool("w", false, "write fixed text to files")
	vflag      = flag.Bool("v", false, "log the stages that changed the text")
	configFlag = flag.String("config", "", "read settings from the YAML `file`")
	exit       = 0
)

func init() {
	flag.String("l", "", "`locale` of the text (default from $LANG)")
	flag.Bool("keep-lines", false, "keep blank lines between paragraphs")
	flag.Bool("code", false, "fix Markdown code too")
	flag.Bool("list-indent", false, "keep the indentation of list markers")
	flag.String("include", "*.md", "fix files matching `glob` in directories")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: typofix [flags] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("typofix: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	c := &config{Include: "*.md"}
	if *configFlag != "" {
		var err error
		c, err = loadConfig(*configFlag)
		if err != nil {
			log.Fatal(err)
		}
	}
	var setErr error
	flag.Visit(func(f *flag.Flag) {
		if err := c.set(f.Name, f.Value.String()); err != nil && setErr == nil {
			setErr = err
		}
	})
	if setErr != nil {
		log.Fatal(setErr)
	}
	if c.Locale == "" {
		c.Locale = typo.MatchLocale(os.Getenv("LANG"))
	}

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.WriteString(c.fixer("<stdin>").Fix(string(data)))
		os.Exit(exit)
	}

	for _, arg := range flag.Args() {
		files, err := c.files(arg)
		if err != nil {
			log.Print(err)
			exit = 1
		}
		for _, file := range files {
			if err := fixFile(c.fixer(file), file, *wflag, os.Stdout); err != nil {
				log.Print(err)
				exit = 1
			}
		}
	}
	os.Exit(exit)
}

// A config holds the settings of a typofix run.
type config struct {
	Locale         string `yaml:"locale"`
	KeepBlankLines bool   `yaml:"keep-lines"`
	FixCode        bool   `yaml:"code"`
	KeepListIndent bool   `yaml:"list-indent"`
	Include        string `yaml:"include"`
}

// loadConfig reads a config from a YAML file.
// Settings missing from the file keep their defaults.
func loadConfig(file string) (*config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	c := &config{Include: "*.md"}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", file, err)
	}
	return c, nil
}

// set sets the setting named by a command-line flag.
// Flags that are not settings are ignored.
func (c *config) set(name, value string) error {
	var b *bool
	switch name {
	case "l":
		c.Locale = value
		return nil
	case "include":
		c.Include = value
		return nil
	case "keep-lines":
		b = &c.KeepBlankLines
	case "code":
		b = &c.FixCode
	case "list-indent":
		b = &c.KeepListIndent
	default:
		return nil
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("-%s: %w", name, err)
	}
	*b = v
	return nil
}

// fixer returns a Fixer for the named file.
func (c *config) fixer(file string) *typo.Fixer {
	f := &typo.Fixer{
		Locale:         c.Locale,
		KeepBlankLines: c.KeepBlankLines,
		FixCode:        c.FixCode,
		KeepListIndent: c.KeepListIndent,
	}
	if *vflag {
		f.Trace = func(stage, before, after string) {
			log.Printf("%s: %s", file, stage)
		}
	}
	return f
}

// files returns the files to fix for a command-line argument:
// the argument itself if it is a file, or the files below it
// whose names match c.Include if it is a directory.
func (c *config) files(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}
	var files []string
	err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && match.Match(d.Name(), c.Include) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return files, fmt.Errorf("walking %s: %w", arg, err)
	}
	return files, nil
}

// fixFile fixes the typography of file. If write is set,
// it rewrites the file when the text changed; otherwise it
// prints the fixed text to w.
func fixFile(f *typo.Fixer, file string, write bool, w io.Writer) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	out := f.Fix(string(data))
	if !write {
		_, err := io.WriteString(w, out)
		return err
	}
	if out == string(data) {
		return nil
	}
	if err := os.WriteFile(file, []byte(out), 0666); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return nil
}
