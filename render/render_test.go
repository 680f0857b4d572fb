// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rugsafe/paperfig/curve"
	"github.com/rugsafe/paperfig/figure"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func gen(t *testing.T, start, stop float64, count int, f curve.Func) curve.Curve {
	t.Helper()
	c, err := curve.Generate(start, stop, count, f)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

var purple = color.RGBA{0x80, 0x00, 0x80, 0xff}
var blue = color.RGBA{0x00, 0x00, 0xff, 0xff}

// anticoinSpec is the two-panel rugged token / anticoin figure.
func anticoinSpec(t *testing.T) *figure.Spec {
	id := func(x float64) float64 { return x }
	logRatio := func(x float64) float64 { return math.Log(10 / x) }
	cr := gen(t, 0.1, 10, 100, id)
	ca := gen(t, 0.1, 10, 100, logRatio)
	panel := func(title string, cr, ca curve.Curve) figure.Panel {
		return figure.Panel{
			Title:  title,
			XLabel: "Price of Rugged Token (Cr)",
			YLabel: "Price",
			Grid:   true,
			Series: []figure.Series{
				{Label: "Rugged Token Price (Cr)", Color: purple, Curve: cr},
				{Label: "Anticoin Price (Ca)", Color: blue, Curve: ca},
			},
		}
	}
	return &figure.Spec{
		Name:   "anticoin",
		Width:  12,
		Height: 6,
		Panels: []figure.Panel{
			panel("Cr Up, Ca Log Down", cr, ca),
			panel("Cr Down, Ca Log Up", cr.Reversed(), ca.Reversed()),
		},
	}
}

func TestLayoutLegend(t *testing.T) {
	spec := anticoinSpec(t)
	d, err := Layout(spec)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Panels) != 2 {
		t.Fatalf("want 2 panels, got %d", len(d.Panels))
	}
	want := []LegendEntry{
		{"Rugged Token Price (Cr)", purple},
		{"Anticoin Price (Ca)", blue},
	}
	for i, p := range d.Panels {
		if !reflect.DeepEqual(p.Legend, want) {
			t.Errorf("panel %d legend: want %v, got %v", i, want, p.Legend)
		}
		if got := p.Plot.Title.Text; got != spec.Panels[i].Title {
			t.Errorf("panel %d title: want %q, got %q", i, spec.Panels[i].Title, got)
		}
		if got := p.Plot.X.Label.Text; got != "Price of Rugged Token (Cr)" {
			t.Errorf("panel %d x label: got %q", i, got)
		}
	}
}

func TestLayoutPalette(t *testing.T) {
	var series []figure.Series
	for i, p := range []float64{1.5, 2, 2.5} {
		p := p
		series = append(series, figure.Series{
			Label: []string{"a", "b", "c"}[i],
			Curve: gen(t, 1, 1000, 500, func(x float64) float64 { return math.Pow(x, p) }),
		})
	}
	d, err := Layout(&figure.Spec{Theme: figure.Dark, Panels: []figure.Panel{{Series: series}}})
	if err != nil {
		t.Fatal(err)
	}
	legend := d.Panels[0].Legend
	if len(legend) != 3 {
		t.Fatalf("want 3 legend entries, got %d", len(legend))
	}
	for i := range legend {
		if legend[i].Color == nil {
			t.Errorf("entry %d has no color", i)
		}
		for j := 0; j < i; j++ {
			if legend[i].Color == legend[j].Color {
				t.Errorf("entries %d and %d share color %v", i, j, legend[i].Color)
			}
		}
	}
}

func TestLayoutUnlabeled(t *testing.T) {
	c := gen(t, 0, 1, 2, func(x float64) float64 { return x })
	spec := &figure.Spec{Panels: []figure.Panel{{Series: []figure.Series{
		{Curve: c}, {Curve: c}, {Label: "z", Curve: c},
	}}}}
	if _, err := Layout(spec); !errors.Is(err, figure.ErrNoLabel) {
		t.Errorf("want ErrNoLabel, got %v", err)
	}
}

func TestLegendPerSeries(t *testing.T) {
	spec := anticoinSpec(t)
	spec.Panels[1].Series = append(spec.Panels[1].Series, figure.Series{
		Label: "Floor",
		Curve: gen(t, 0.1, 10, 100, func(float64) float64 { return 1 }),
	})
	d, err := Layout(spec)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for i, p := range d.Panels {
		if got, want := len(p.Legend), len(spec.Panels[i].Series); got != want {
			t.Errorf("panel %d: %d series but %d legend entries", i, want, got)
		}
		n += len(p.Legend)
	}
	if n != spec.NumSeries() {
		t.Errorf("%d series but %d legend entries", spec.NumSeries(), n)
	}
}

func TestPanelIsolation(t *testing.T) {
	small := gen(t, 0, 1, 10, func(x float64) float64 { return x })
	large := gen(t, 100, 200, 10, func(x float64) float64 { return -x })
	d, err := Layout(&figure.Spec{Panels: []figure.Panel{
		{Series: []figure.Series{{Label: "small", Curve: small}}},
		{Series: []figure.Series{{Label: "large", Curve: large}}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range [][4]float64{{0, 1, 0, 1}, {100, 200, -200, -100}} {
		p := d.Panels[i].Plot
		got := [4]float64{p.X.Min, p.X.Max, p.Y.Min, p.Y.Max}
		if got != want {
			t.Errorf("panel %d range: want %v, got %v", i, want, got)
		}
	}
}

func TestTheme(t *testing.T) {
	spec := anticoinSpec(t)
	spec.Theme = figure.Dark
	d, err := Layout(spec)
	if err != nil {
		t.Fatal(err)
	}
	p := d.Panels[0].Plot
	if p.BackgroundColor != color.Black {
		t.Errorf("dark background: got %v", p.BackgroundColor)
	}
	for name, c := range map[string]color.Color{
		"title":   p.Title.TextStyle.Color,
		"x label": p.X.Label.TextStyle.Color,
		"y ticks": p.Y.Tick.Label.Color,
		"legend":  p.Legend.TextStyle.Color,
	} {
		if c != color.White {
			t.Errorf("dark %s color: got %v", name, c)
		}
	}

	g := d.Panels[0].Grid
	if g == nil {
		t.Fatal("panel has no grid")
	}
	for name, ls := range map[string]draw.LineStyle{"vertical": g.Vertical, "horizontal": g.Horizontal} {
		if ls.Color != gray {
			t.Errorf("dark %s grid color: got %v", name, ls.Color)
		}
		if len(ls.Dashes) != 0 {
			t.Errorf("solid %s grid has dashes %v", name, ls.Dashes)
		}
	}

	spec.Panels[0].GridDashed = true
	d, err = Layout(spec)
	if err != nil {
		t.Fatal(err)
	}
	g = d.Panels[0].Grid
	wantDashes := []vg.Length{vg.Points(4), vg.Points(2)}
	for name, ls := range map[string]draw.LineStyle{"vertical": g.Vertical, "horizontal": g.Horizontal} {
		if !reflect.DeepEqual(ls.Dashes, wantDashes) {
			t.Errorf("dashed %s grid: want dashes %v, got %v", name, wantDashes, ls.Dashes)
		}
		if ls.Width != vg.Points(0.5) {
			t.Errorf("dashed %s grid: want width %v, got %v", name, vg.Points(0.5), ls.Width)
		}
	}

	spec.Panels[0].Grid = false
	d, err = Layout(spec)
	if err != nil {
		t.Fatal(err)
	}
	if d.Panels[0].Grid != nil {
		t.Errorf("panel without grid has a grid")
	}
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestRenderPNG(t *testing.T) {
	for _, theme := range []figure.Theme{figure.Light, figure.Dark} {
		spec := anticoinSpec(t)
		spec.Theme = theme
		var buf bytes.Buffer
		if err := Render(&buf, spec, "png"); err != nil {
			t.Fatalf("%v: %v", theme, err)
		}
		img := decode(t, buf.Bytes())
		if b := img.Bounds(); b.Dx() != 12*96 || b.Dy() != 6*96 {
			t.Errorf("%v: want %dx%d image, got %v", theme, 12*96, 6*96, b)
		}
		r, g, b, _ := img.At(0, 0).RGBA()
		dark := r < 0x1000 && g < 0x1000 && b < 0x1000
		if dark != (theme == figure.Dark) {
			t.Errorf("%v: corner pixel is %v", theme, img.At(0, 0))
		}
	}
}

func TestRenderInvalid(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, &figure.Spec{Name: "empty"}, "png")
	if !errors.Is(err, figure.ErrNoPanels) {
		t.Errorf("want ErrNoPanels, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("invalid spec wrote %d bytes", buf.Len())
	}

	if err := Render(&buf, anticoinSpec(t), "bmp"); err == nil {
		t.Errorf("unsupported format rendered")
	}
	if buf.Len() != 0 {
		t.Errorf("unsupported format wrote %d bytes", buf.Len())
	}
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "anticoin.png")
	if err := RenderFile(path, anticoinSpec(t)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	decode(t, data)

	bad := filepath.Join(dir, "bad.png")
	if err := RenderFile(bad, &figure.Spec{}); err == nil {
		t.Fatal("empty spec rendered")
	}
	if _, err := os.Stat(bad); !os.IsNotExist(err) {
		t.Errorf("failed render left %s behind", bad)
	}
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]string{
		"a.png":     "png",
		"dir/b.SVG": "svg",
		"c.pdf":     "pdf",
		"noext":     DefaultFormat,
	} {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestThumbnail(t *testing.T) {
	var full, thumb bytes.Buffer
	if err := Render(&full, anticoinSpec(t), "png"); err != nil {
		t.Fatal(err)
	}
	if err := Thumbnail(&thumb, bytes.NewReader(full.Bytes()), 2); err != nil {
		t.Fatal(err)
	}
	if b := decode(t, thumb.Bytes()).Bounds(); b.Dx() != 6*96 || b.Dy() != 3*96 {
		t.Errorf("want %dx%d thumbnail, got %v", 6*96, 3*96, b)
	}
	if err := Thumbnail(&thumb, bytes.NewReader(full.Bytes()), 0); err == nil {
		t.Errorf("scale factor 0 accepted")
	}
}

func TestViewCommand(t *testing.T) {
	cmd, err := ViewCommand(`feh -F --title 'paper figure'`, "out/a b.png")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"feh", "-F", "--title", "paper figure", "out/a b.png"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("want %q, got %q", want, cmd.Args)
	}
	if _, err := ViewCommand("  ", "x.png"); err == nil {
		t.Errorf("empty viewer accepted")
	}
	if _, err := ViewCommand(`feh "unterminated`, "x.png"); err == nil {
		t.Errorf("unterminated quote accepted")
	}
}
