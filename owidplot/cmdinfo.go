// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

var cmdInfoFlags = flag.NewFlagSet(os.Args[0]+" info", flag.ExitOnError)

func init() {
	f := cmdInfoFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s info <chart>\n", os.Args[0])
		f.PrintDefaults()
	}
	registerSubcommand("info", "<chart> - print a chart's source and citation", cmdInfo, f)
}

func cmdInfo() {
	if cmdInfoFlags.NArg() != 1 {
		cmdInfoFlags.Usage()
		os.Exit(2)
	}

	d := fetchDataset(cmdInfoFlags.Arg(0))
	info := d.SourceInfo()
	if info == "" {
		log.Fatal("chart has no source information")
	}
	fmt.Print(info)
}
