// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rugsafe/paperfig/catalog"
)

var cmdTableFlags = flag.NewFlagSet(os.Args[0]+" table", flag.ExitOnError)

func init() {
	f := cmdTableFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s table [flags] figure\n", os.Args[0])
		f.PrintDefaults()
	}
	addCatalogFlag(f)
	registerSubcommand("table", "[flags] figure - print the sampled points of a figure", cmdTable, f)
}

func cmdTable() {
	if cmdTableFlags.NArg() != 1 {
		cmdTableFlags.Usage()
		os.Exit(2)
	}
	spec, err := loadCatalog().Spec(cmdTableFlags.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if err := catalog.Fprint(os.Stdout, spec); err != nil {
		log.Fatal(err)
	}
}
