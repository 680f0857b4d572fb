// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command paperfig renders the whitepaper figures.
//
// Usage:
//
//	paperfig list [-f catalog.yaml] [-v]
//	paperfig render [-f catalog.yaml] [-o dir] [-thumb n] [-view cmd] [figure...]
//	paperfig table [-f catalog.yaml] figure
//
// The figures are described by a built-in catalog of (domain,
// formula, style) records; -f replaces it with another catalog in
// the same YAML format. "render" writes every named figure (or all of
// them) to its output file in dir. With -view, each rendered file is
// opened with the given viewer command, for example -view "feh -F",
// and paperfig waits for the viewer to exit before continuing.
// "table" prints the sampled points of a figure instead of drawing
// it.
//
// Wherever a formula is undefined, such as 1/ln(x) at x = 1, the
// point is plotted at 0.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/rugsafe/paperfig/catalog"
)

type subcommand struct {
	name, desc string
	cmd        func()
	flags      *flag.FlagSet
}

var subcommands = map[string]*subcommand{}

func registerSubcommand(name, desc string, cmd func(), flags *flag.FlagSet) {
	subcommands[name] = &subcommand{name, desc, cmd, flags}
}

var catalogFile string

func main() {
	log.SetPrefix("paperfig: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags]\n\nSubcommands:\n", os.Args[0])
		var names []string
		for name := range subcommands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
		}
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	sub, ok := subcommands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	sub.flags.Parse(flag.Args()[1:])
	sub.cmd()
}

// addCatalogFlag registers the -f flag on f.
func addCatalogFlag(f *flag.FlagSet) {
	f.StringVar(&catalogFile, "f", "", "read figures from catalog `file` instead of the built-in catalog")
}

// loadCatalog returns the catalog selected by -f. It exits on error.
func loadCatalog() *catalog.Catalog {
	if catalogFile == "" {
		return catalog.Default()
	}
	f, err := os.Open(catalogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	c, err := catalog.Load(f)
	if err != nil {
		log.Fatalf("%s: %s", catalogFile, err)
	}
	return c
}

// selectFigures returns the named figures of c, or all of them if
// names is empty. It exits if a name is unknown.
func selectFigures(c *catalog.Catalog, names []string) []*catalog.Figure {
	if len(names) == 0 {
		return c.Figures()
	}
	var figs []*catalog.Figure
	for _, name := range names {
		f, err := c.Lookup(name)
		if err != nil {
			log.Fatalf("%s (have %s)", err, strings.Join(c.Names(), ", "))
		}
		figs = append(figs, f)
	}
	return figs
}
