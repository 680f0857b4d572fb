// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog holds the table of whitepaper figures.
//
// Each figure is a record of panels, and each panel a list of series
// given as (domain, formula, style). The built-in table is
// figures.yaml; Load reads a replacement in the same format:
//
//	figures:
//	  - name: supply
//	    output: supply.png
//	    theme: dark
//	    panels:
//	      - title: Theoretical Supply
//	        xlabel: Sum of Rugged Token Values
//	        grid: true
//	        series:
//	          - label: Supply
//	            color: cyan
//	            domain: {start: 1, stop: 1000, count: 500}
//	            formula: {family: log}
//
// Series may set reverse to plot the formula over the reversed domain
// and anchor to shift the curve so that it starts at the given value.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/rugsafe/paperfig/curve"
	"github.com/rugsafe/paperfig/figure"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFigure is returned by Lookup and Spec for a name that is
// not in the catalog.
var ErrUnknownFigure = errors.New("unknown figure")

//go:embed figures.yaml
var builtin []byte

type catalogDoc struct {
	Figures []figureDoc `yaml:"figures"`
}

type figureDoc struct {
	Name   string     `yaml:"name"`
	Output string     `yaml:"output"`
	Theme  string     `yaml:"theme"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Panels []panelDoc `yaml:"panels"`
}

type panelDoc struct {
	Title      string      `yaml:"title"`
	XLabel     string      `yaml:"xlabel"`
	YLabel     string      `yaml:"ylabel"`
	Grid       bool        `yaml:"grid"`
	GridDashed bool        `yaml:"grid_dashed"`
	Series     []seriesDoc `yaml:"series"`
}

type seriesDoc struct {
	Label   string     `yaml:"label"`
	Color   string     `yaml:"color"`
	Domain  domainDoc  `yaml:"domain"`
	Formula formulaDoc `yaml:"formula"`
	Reverse bool       `yaml:"reverse"`
	Anchor  *float64   `yaml:"anchor"`
}

type domainDoc struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Count int     `yaml:"count"`
}

type formulaDoc struct {
	Family string `yaml:"family"`
	Params Params `yaml:"params"`
}

// Catalog is a set of figure records.
type Catalog struct {
	figs   []*Figure
	byName map[string]*Figure
}

// Figure is one catalog record.
type Figure struct {
	Name string

	// Output is the file name the figure is rendered to. Its
	// extension selects the image format.
	Output string

	doc figureDoc
}

// Title returns the title of the figure's first panel.
func (f *Figure) Title() string {
	if len(f.doc.Panels) == 0 {
		return ""
	}
	return f.doc.Panels[0].Title
}

// NumPanels returns the number of panels in f.
func (f *Figure) NumPanels() int {
	return len(f.doc.Panels)
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(builtin))
	if err != nil {
		panic("built-in catalog: " + err.Error())
	}
	return c
}

// Load reads a catalog in YAML form from r.
func Load(r io.Reader) (*Catalog, error) {
	var doc catalogDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{byName: make(map[string]*Figure)}
	for i, fd := range doc.Figures {
		if fd.Name == "" {
			return nil, fmt.Errorf("figure %d has no name", i)
		}
		if _, ok := c.byName[fd.Name]; ok {
			return nil, fmt.Errorf("duplicate figure %q", fd.Name)
		}
		out := fd.Output
		if out == "" {
			out = fd.Name + ".png"
		}
		f := &Figure{Name: fd.Name, Output: out, doc: fd}
		// Catch bad records at load time rather than at render
		// time.
		if _, err := f.Spec(); err != nil {
			return nil, err
		}
		c.figs = append(c.figs, f)
		c.byName[f.Name] = f
	}
	return c, nil
}

// Figures returns the figures of c in catalog order.
func (c *Catalog) Figures() []*Figure {
	return append([]*Figure(nil), c.figs...)
}

// Names returns the figure names of c in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.figs))
	for _, f := range c.figs {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named figure.
func (c *Catalog) Lookup(name string) (*Figure, error) {
	f, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFigure, name)
	}
	return f, nil
}

// Spec returns the figure spec for the named figure.
func (c *Catalog) Spec(name string) (*figure.Spec, error) {
	f, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Spec()
}

// Spec generates the curves of f and returns a new, validated spec.
func (f *Figure) Spec() (*figure.Spec, error) {
	theme, err := figure.ParseTheme(f.doc.Theme)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	spec := &figure.Spec{
		Name:   f.Name,
		Theme:  theme,
		Width:  f.doc.Width,
		Height: f.doc.Height,
	}
	for i, pd := range f.doc.Panels {
		panel := figure.Panel{
			Title:      pd.Title,
			XLabel:     pd.XLabel,
			YLabel:     pd.YLabel,
			Grid:       pd.Grid,
			GridDashed: pd.GridDashed,
		}
		for j, sd := range pd.Series {
			s, err := sd.series()
			if err != nil {
				return nil, fmt.Errorf("%s: panel %d: series %d: %w", f.Name, i, j, err)
			}
			panel.Series = append(panel.Series, s)
		}
		spec.Panels = append(spec.Panels, panel)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func (sd *seriesDoc) series() (figure.Series, error) {
	col, err := parseColor(sd.Color)
	if err != nil {
		return figure.Series{}, err
	}
	fn, err := NewFormula(sd.Formula.Family, sd.Formula.Params)
	if err != nil {
		return figure.Series{}, err
	}
	c, err := curve.Generate(sd.Domain.Start, sd.Domain.Stop, sd.Domain.Count, fn)
	if err != nil {
		return figure.Series{}, err
	}
	if sd.Reverse {
		c = c.Reversed()
	}
	if sd.Anchor != nil {
		c = c.Anchored(*sd.Anchor)
	}
	return figure.Series{Label: sd.Label, Color: col, Curve: c}, nil
}
