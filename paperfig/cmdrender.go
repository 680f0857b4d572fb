// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rugsafe/paperfig/catalog"
	"github.com/rugsafe/paperfig/render"
)

var cmdRenderFlags = flag.NewFlagSet(os.Args[0]+" render", flag.ExitOnError)

var renderOpts struct {
	outDir  string
	thumb   int
	view    string
	verbose bool
}

func init() {
	f := cmdRenderFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s render [flags] [figure...]\n", os.Args[0])
		f.PrintDefaults()
	}
	addCatalogFlag(f)
	f.StringVar(&renderOpts.outDir, "o", ".", "write images to `directory`")
	f.IntVar(&renderOpts.thumb, "thumb", 0, "also write thumbnails scaled down by `factor`")
	f.StringVar(&renderOpts.view, "view", "", "open each image with viewer `command`")
	f.BoolVar(&renderOpts.verbose, "v", false, "print each file written")
	registerSubcommand("render", "[flags] [figure...] - render figures to image files", cmdRender, f)
}

func cmdRender() {
	c := loadCatalog()
	figs := selectFigures(c, cmdRenderFlags.Args())
	if err := os.MkdirAll(renderOpts.outDir, 0777); err != nil {
		log.Fatal(err)
	}
	for _, f := range figs {
		path, err := renderFigure(f, renderOpts.outDir, renderOpts.thumb)
		if err != nil {
			log.Fatal(err)
		}
		if renderOpts.view != "" {
			if err := render.View(renderOpts.view, path); err != nil {
				log.Fatal(err)
			}
		}
	}
}

// renderFigure writes f to its output file in dir and, if thumb > 1,
// a thumbnail next to it. It returns the path of the full-size image.
func renderFigure(f *catalog.Figure, dir string, thumb int) (string, error) {
	spec, err := f.Spec()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, f.Output)
	if err := render.RenderFile(path, spec); err != nil {
		return "", err
	}
	if renderOpts.verbose {
		log.Printf("wrote %s (%d panels, %d series)", path, len(spec.Panels), spec.NumSeries())
	}

	if thumb > 1 {
		if render.FormatOf(path) != "png" {
			return "", fmt.Errorf("%s: thumbnails require png output", f.Name)
		}
		tpath := thumbPath(path)
		if err := render.ThumbnailFile(tpath, path, thumb); err != nil {
			return "", err
		}
		if renderOpts.verbose {
			log.Printf("wrote %s", tpath)
		}
	}
	return path, nil
}

// thumbPath returns the thumbnail file name for image path.
func thumbPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb.png"
}
