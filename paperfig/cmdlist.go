// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rugsafe/paperfig/catalog"
)

var cmdListFlags = flag.NewFlagSet(os.Args[0]+" list", flag.ExitOnError)

var list struct {
	verbose bool
}

func init() {
	f := cmdListFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	addCatalogFlag(f)
	f.BoolVar(&list.verbose, "v", false, "also list formula families")
	registerSubcommand("list", "[flags] - list figures", cmdList, f)
}

func cmdList() {
	if cmdListFlags.NArg() != 0 {
		cmdListFlags.Usage()
		os.Exit(2)
	}
	printList(os.Stdout, loadCatalog(), list.verbose)
}

func printList(w io.Writer, c *catalog.Catalog, verbose bool) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, f := range c.Figures() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, f.Output, f.Title())
	}
	tw.Flush()

	if !verbose {
		return
	}
	fmt.Fprintf(w, "\nformula families:\n")
	for _, name := range catalog.FormulaNames() {
		fam := catalog.Formulas[name]
		fmt.Fprintf(tw, "  %s\t%s\t(%s)\n", name, fam.Doc, strings.Join(fam.Params, ", "))
	}
	tw.Flush()
}
