// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

var cmdFetchFlags = flag.NewFlagSet(os.Args[0]+" fetch", flag.ExitOnError)

var fetch struct {
	out     string
	renames renameFlag
}

func init() {
	f := cmdFetchFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s fetch [flags] <chart>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&fetch.out, "o", "", "write CSV to `file` (default <chart>.csv)")
	f.Var(&fetch.renames, "rename", "rename a value column, `old=new` (may be repeated)")
	registerSubcommand("fetch", "[flags] <chart> - download a chart's data as CSV", cmdFetch, f)
}

func cmdFetch() {
	if cmdFetchFlags.NArg() != 1 {
		cmdFetchFlags.Usage()
		os.Exit(2)
	}
	slug := cmdFetchFlags.Arg(0)
	d := fetchDataset(slug)
	if len(fetch.renames) > 0 {
		if err := d.Rename(fetch.renames); err != nil {
			log.Fatal(err)
		}
	}

	out := fetch.out
	if out == "" {
		out = slug + ".csv"
	}
	f, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	if err := d.WriteCSV(f); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %d rows to %s\n", d.Len(), out)
}

// renameFlag accumulates a column rename mapping from repeated
// old=new flags.
type renameFlag map[string]string

func (f *renameFlag) String() string {
	var parts []string
	for from, to := range *f {
		parts = append(parts, from+"="+to)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (f *renameFlag) Set(x string) error {
	from, to, ok := strings.Cut(x, "=")
	if !ok || from == "" {
		return fmt.Errorf("expected old=new")
	}
	if *f == nil {
		*f = make(map[string]string)
	}
	(*f)[from] = to
	return nil
}
