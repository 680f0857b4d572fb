// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"

	"github.com/rugsafe/paperfig/figure"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// theme holds the colors a figure.Theme overrides. Nil fields keep
// gonum's defaults.
type theme struct {
	background color.Color
	foreground color.Color
	grid       color.Color
}

var (
	black = color.Black
	white = color.White
	gray  = color.Gray{0x80}
)

var themes = map[figure.Theme]*theme{
	figure.Light: {},
	figure.Dark:  {background: black, foreground: white, grid: gray},
}

func themeOf(t figure.Theme) *theme {
	if th, ok := themes[t]; ok {
		return th
	}
	return themes[figure.Light]
}

func (th *theme) apply(p *plot.Plot) {
	if th.background != nil {
		p.BackgroundColor = th.background
	}
	if fg := th.foreground; fg != nil {
		p.Title.TextStyle.Color = fg
		p.Legend.TextStyle.Color = fg
		for _, ax := range []*plot.Axis{&p.X, &p.Y} {
			ax.LineStyle.Color = fg
			ax.Label.TextStyle.Color = fg
			ax.Tick.Label.Color = fg
			ax.Tick.LineStyle.Color = fg
		}
	}
}

func (th *theme) styleGrid(g *plotter.Grid, dashed bool) {
	if th.grid != nil {
		g.Vertical.Color = th.grid
		g.Horizontal.Color = th.grid
	}
	if dashed {
		dashes := []vg.Length{vg.Points(4), vg.Points(2)}
		g.Vertical.Dashes, g.Horizontal.Dashes = dashes, dashes
		g.Vertical.Width, g.Horizontal.Width = vg.Points(0.5), vg.Points(0.5)
	}
}
