// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Owidplot searches, downloads, and plots Our World in Data charts.
//
// Usage:
//
//	owidplot <command> [flags] <args>
//
// The commands are:
//
//	search <keyword>   print charts matching a keyword
//	fetch <chart>      download a chart's data as CSV
//	info <chart>       print a chart's source and citation
//	plot <chart>       draw a chart as an SVG line chart
//	map <chart>        draw a chart as an SVG world choropleth
//
// Charts are named by their grapher slug, the last path element of a
// chart's URL on ourworldindata.org. The search command prints slugs.
// Run "owidplot <command> -h" for each command's flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/aclements/go-gg/gg"
	"github.com/owidtools/go-owid/owid"
)

var client = new(owid.Client)

type subcommand struct {
	usage string
	f     func()
	flags *flag.FlagSet
}

var subcommands = make(map[string]subcommand)

// registerSubcommand registers a subcommand so main can dispatch to
// it. usage is the subcommand's argument syntax and one line
// description, separated by " - ".
func registerSubcommand(name, usage string, f func(), flags *flag.FlagSet) {
	subcommands[name] = subcommand{usage, f, flags}
}

func main() {
	log.SetPrefix("owidplot: ")
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, ok := subcommands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	cmd.flags.Parse(os.Args[2:])
	cmd.f()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] <args>\n\nCommands:\n", os.Args[0])
	names := make([]string, 0, len(subcommands))
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].usage)
	}
}

// fetchDataset downloads a chart, reporting download progress on the
// terminal. It exits on failure.
func fetchDataset(slug string) *owid.Dataset {
	sr := NewStatusReporter()
	client.Progress = sr.Download
	d, err := client.Fetch(context.Background(), slug)
	client.Progress = nil
	sr.Stop()
	if err != nil {
		log.Fatal(err)
	}
	return d
}

// writeSVG renders plot to an SVG file with a w by h canvas.
func writeSVG(plot *gg.Plot, out string, w, h int) {
	f, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	if err := plot.WriteSVG(f, w, h); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", out)
}
