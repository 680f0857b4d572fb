// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/rugsafe/paperfig/figure"
)

// Table returns the sampled points of spec in long form, one row per
// point, with columns "panel", "series", "x", "y" and "fallback". The
// fallback column marks points whose y value was substituted for an
// undefined formula result.
func Table(spec *figure.Spec) *table.Table {
	var (
		panels   []int
		series   []string
		xs, ys   []float64
		fallback []bool
	)
	for pi, p := range spec.Panels {
		for _, s := range p.Series {
			subst := make(map[int]bool)
			for _, i := range s.Curve.Substituted() {
				subst[i] = true
			}
			for i := 0; i < s.Curve.Len(); i++ {
				x, y := s.Curve.XY(i)
				panels = append(panels, pi)
				series = append(series, s.Label)
				xs = append(xs, x)
				ys = append(ys, y)
				fallback = append(fallback, subst[i])
			}
		}
	}
	return new(table.Builder).
		Add("panel", panels).
		Add("series", series).
		Add("x", xs).
		Add("y", ys).
		Add("fallback", fallback).
		Done()
}

// Fprint writes the sampled points of spec to w as a text table.
func Fprint(w io.Writer, spec *figure.Spec) error {
	return table.Fprint(w, Table(spec), "%d", "%s", "%.6g", "%.6g", "%v")
}
