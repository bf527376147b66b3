// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/owidtools/go-owid/chart"
)

var cmdPlotFlags = flag.NewFlagSet(os.Args[0]+" plot", flag.ExitOnError)

var plotCmd struct {
	entities string
	mean     bool
	value    string
	title    string
	out      string
	open     bool
}

func init() {
	f := cmdPlotFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s plot [flags] <chart>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&plotCmd.entities, "entities", "", "draw only this comma-separated `list` of entities")
	f.BoolVar(&plotCmd.mean, "mean", false, "draw the mean across entities instead of one line per entity")
	f.StringVar(&plotCmd.value, "value", "", "value `column` to draw (default the first)")
	f.StringVar(&plotCmd.title, "title", "", "chart `title` (default from chart metadata)")
	f.StringVar(&plotCmd.out, "o", "", "write SVG to `file` (default <chart>.svg)")
	f.BoolVar(&plotCmd.open, "open", false, "open the chart in a browser")
	registerSubcommand("plot", "[flags] <chart> - draw a line chart as SVG", cmdPlot, f)
}

func cmdPlot() {
	if cmdPlotFlags.NArg() != 1 {
		cmdPlotFlags.Usage()
		os.Exit(2)
	}
	slug := cmdPlotFlags.Arg(0)
	d := fetchDataset(slug)

	o := chart.LineOptions{
		Mean:  plotCmd.mean,
		Value: plotCmd.value,
		Title: plotCmd.title,
	}
	if plotCmd.entities != "" {
		o.Entities = strings.Split(plotCmd.entities, ",")
	}
	p, err := chart.Line(d, o)
	if err != nil {
		log.Fatal(err)
	}

	out := plotCmd.out
	if out == "" {
		out = slug + ".svg"
	}
	writeSVG(p, out, 800, 500)
	if plotCmd.open {
		openBrowser(out)
	}
}
