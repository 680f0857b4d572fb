// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws figure.Specs with gonum/plot.
//
// Panels are laid out in a single row. The output format is chosen by
// name ("png", "svg", "pdf", ...) or, for RenderFile, by extension.
// Nothing is written unless the whole figure was laid out and drawn
// successfully.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rugsafe/paperfig/figure"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultFormat is used when a file name has no extension.
const DefaultFormat = "png"

// LineWidth is the stroke width of every series.
var LineWidth = vg.Points(1.5)

// A Drawing is a laid-out figure, ready to be drawn on a canvas.
type Drawing struct {
	Spec   *figure.Spec
	Panels []Panel
}

// Panel is one laid-out set of axes.
type Panel struct {
	Plot *plot.Plot

	// Grid is the grid added to Plot, or nil if the panel has none.
	Grid *plotter.Grid

	// Legend lists the legend entries added to Plot, one per
	// series, in order.
	Legend []LegendEntry
}

// LegendEntry is one label in a panel's legend.
type LegendEntry struct {
	Label string
	Color color.Color
}

// Layout validates spec and builds a plot for each of its panels.
func Layout(spec *figure.Spec) (*Drawing, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	th := themeOf(spec.Theme)

	d := &Drawing{Spec: spec}
	for i := range spec.Panels {
		p, err := layoutPanel(&spec.Panels[i], th)
		if err != nil {
			return nil, fmt.Errorf("%s: panel %d: %w", spec.Name, i, err)
		}
		d.Panels = append(d.Panels, p)
	}
	return d, nil
}

func layoutPanel(fp *figure.Panel, th *theme) (Panel, error) {
	p := plot.New()
	p.Title.Text = fp.Title
	p.X.Label.Text = fp.XLabel
	p.Y.Label.Text = fp.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	th.apply(p)

	panel := Panel{Plot: p}
	if fp.Grid {
		panel.Grid = plotter.NewGrid()
		th.styleGrid(panel.Grid, fp.GridDashed)
		p.Add(panel.Grid)
	}

	for i, s := range fp.Series {
		line, err := plotter.NewLine(s.Curve)
		if err != nil {
			return Panel{}, fmt.Errorf("series %d (%s): %w", i, s.Label, err)
		}
		c := s.Color
		if c == nil {
			c = plotutil.Color(i)
		}
		line.LineStyle.Color = c
		line.LineStyle.Width = LineWidth
		p.Add(line)
		p.Legend.Add(s.Label, line)
		panel.Legend = append(panel.Legend, LegendEntry{s.Label, c})
	}
	return panel, nil
}

// Size returns the canvas size of d.
func (d *Drawing) Size() (w, h vg.Length) {
	wi, hi := d.Spec.Size()
	return vg.Length(wi) * vg.Inch, vg.Length(hi) * vg.Inch
}

// Draw draws d onto dc, one panel per column.
func (d *Drawing) Draw(dc draw.Canvas) {
	th := themeOf(d.Spec.Theme)
	if th.background != nil {
		r := dc.Rectangle
		dc.FillPolygon(th.background, []vg.Point{
			r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y},
		})
	}

	row := make([]*plot.Plot, len(d.Panels))
	for i, p := range d.Panels {
		row[i] = p.Plot
	}
	tiles := draw.Tiles{
		Rows: 1, Cols: len(row),
		PadX:   vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 4,
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for i, p := range row {
		p.Draw(canvases[0][i])
	}
}

// Render lays out spec and writes it to w in the given format.
func Render(w io.Writer, spec *figure.Spec, format string) error {
	d, err := Layout(spec)
	if err != nil {
		return err
	}
	width, height := d.Size()
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return fmt.Errorf("%s: %w", spec.Name, err)
	}
	d.Draw(draw.New(c))
	_, err = c.WriteTo(w)
	return err
}

// FormatOf returns the output format implied by path's extension.
func FormatOf(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return DefaultFormat
	}
	return strings.ToLower(ext)
}

// RenderFile renders spec to path. The file is only created once the
// figure has been fully rendered.
func RenderFile(path string, spec *figure.Spec) error {
	var buf bytes.Buffer
	if err := Render(&buf, spec, FormatOf(path)); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}
