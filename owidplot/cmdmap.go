// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/owidtools/go-owid/chart"
	"github.com/owidtools/go-owid/worldgeo"
)

var cmdMapFlags = flag.NewFlagSet(os.Args[0]+" map", flag.ExitOnError)

var mapCmd struct {
	year  int
	value string
	title string
	world string
	out   string
	open  bool
}

func init() {
	f := cmdMapFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s map [flags] <chart>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.IntVar(&mapCmd.year, "year", 0, "map this `year` (default the latest with data)")
	f.StringVar(&mapCmd.value, "value", "", "value `column` to map (default the first)")
	f.StringVar(&mapCmd.title, "title", "", "chart `title` (default from chart metadata)")
	f.StringVar(&mapCmd.world, "world", "", "country boundary GeoJSON `url` (default world.geo.json)")
	f.StringVar(&mapCmd.out, "o", "", "write SVG to `file` (default <chart>.svg)")
	f.BoolVar(&mapCmd.open, "open", false, "open the chart in a browser")
	registerSubcommand("map", "[flags] <chart> - draw a world choropleth as SVG", cmdMap, f)
}

func cmdMap() {
	if cmdMapFlags.NArg() != 1 {
		cmdMapFlags.Usage()
		os.Exit(2)
	}
	slug := cmdMapFlags.Arg(0)
	d := fetchDataset(slug)
	w, err := worldgeo.Fetch(context.Background(), client.HTTPClient, mapCmd.world)
	if err != nil {
		log.Fatal(err)
	}

	p, err := chart.Map(d, w, chart.MapOptions{
		Year:  mapCmd.year,
		Value: mapCmd.value,
		Title: mapCmd.title,
	})
	if err != nil {
		log.Fatal(err)
	}

	out := mapCmd.out
	if out == "" {
		out = slug + ".svg"
	}
	writeSVG(p, out, 960, 540)
	if mapCmd.open {
		openBrowser(out)
	}
}
