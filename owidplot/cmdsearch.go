// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/table"
)

var cmdSearchFlags = flag.NewFlagSet(os.Args[0]+" search", flag.ExitOnError)

func init() {
	f := cmdSearchFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search <keyword>...\n", os.Args[0])
		f.PrintDefaults()
	}
	registerSubcommand("search", "<keyword>... - print charts matching keywords", cmdSearch, f)
}

func cmdSearch() {
	if cmdSearchFlags.NArg() < 1 {
		cmdSearchFlags.Usage()
		os.Exit(2)
	}

	results, err := client.Search(context.Background(), strings.Join(cmdSearchFlags.Args(), " "))
	if err != nil {
		log.Fatal(err)
	}
	if len(results) == 0 {
		log.Fatal("no matching charts")
	}
	table.Fprint(os.Stdout, results.Table())
}
