// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure describes what to draw: panels of labeled curves
// and how to style them.
//
// A Spec is built right before rendering and is not meant to be
// reused or stored.
package figure

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/rugsafe/paperfig/curve"
)

// Errors returned by Spec.Validate.
var (
	// ErrNoPanels is returned for a figure without panels.
	ErrNoPanels = errors.New("figure has no panels")

	// ErrEmptyPanel is returned for a panel without series.
	ErrEmptyPanel = errors.New("panel has no series")

	// ErrEmptyCurve is returned for a series whose curve has no
	// points.
	ErrEmptyCurve = errors.New("series has no points")

	// ErrNonFinite is returned for a series with a NaN or infinite
	// coordinate.
	ErrNonFinite = errors.New("series has non-finite points")

	// ErrNoLabel is returned for a series without a legend label.
	ErrNoLabel = errors.New("series has no label")

	// ErrSize is returned for a negative figure width or height.
	ErrSize = errors.New("figure size must be positive")

	// ErrTheme is returned for a Theme other than Light or Dark,
	// and by ParseTheme for an unknown name.
	ErrTheme = errors.New("unknown theme")

	// ErrDuplicateID is returned when two series in one panel share
	// a label.
	ErrDuplicateID = errors.New("duplicate series label in panel")
)

// Theme selects the color palette of a figure.
type Theme int

const (
	// Light uses the renderer's default colors.
	Light Theme = iota
	// Dark draws light text and ticks on a black background.
	Dark
)

func (t Theme) String() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}

// ParseTheme returns the Theme named s. The empty string is Light.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(s) {
	case "", "light", "default":
		return Light, nil
	case "dark", "dark_background":
		return Dark, nil
	}
	return 0, fmt.Errorf("%w %q", ErrTheme, s)
}

// Default figure dimensions, in inches.
const (
	DefaultWidth  = 10
	DefaultHeight = 6
)

// Spec is a complete figure: one or more panels laid out side by side.
type Spec struct {
	// Name identifies the figure in diagnostics. It is not drawn.
	Name string

	Theme Theme

	// Width and Height give the figure size in inches. Zero means
	// DefaultWidth or DefaultHeight.
	Width, Height float64

	Panels []Panel
}

// Panel is one set of axes.
type Panel struct {
	Title          string
	XLabel, YLabel string

	// Grid enables grid lines. GridDashed draws them as thin
	// dashed lines instead of solid ones.
	Grid       bool
	GridDashed bool

	Series []Series
}

// Series is one curve in a panel, with its legend entry.
type Series struct {
	// Label is the legend text. It must be non-empty and unique
	// within the panel.
	Label string

	// Color is the line color. If nil, the renderer picks the
	// next color from its palette.
	Color color.Color

	Curve curve.Curve
}

// Size returns the figure dimensions in inches, applying defaults.
func (s *Spec) Size() (w, h float64) {
	w, h = s.Width, s.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return
}

// Validate checks that s can be rendered without producing partial
// output.
func (s *Spec) Validate() error {
	if w, h := s.Size(); w < 0 || h < 0 {
		return fmt.Errorf("%s: %w: %vx%v", s.Name, ErrSize, w, h)
	}
	if s.Theme != Light && s.Theme != Dark {
		return fmt.Errorf("%s: %w %v", s.Name, ErrTheme, s.Theme)
	}
	if len(s.Panels) == 0 {
		return fmt.Errorf("%s: %w", s.Name, ErrNoPanels)
	}
	for i := range s.Panels {
		if err := s.Panels[i].validate(); err != nil {
			return fmt.Errorf("%s: panel %d: %w", s.Name, i, err)
		}
	}
	return nil
}

func (p *Panel) validate() error {
	if len(p.Series) == 0 {
		return ErrEmptyPanel
	}
	seen := make(map[string]bool)
	for i, s := range p.Series {
		switch {
		case s.Curve.Len() == 0:
			return fmt.Errorf("series %d (%s): %w", i, s.Label, ErrEmptyCurve)
		case !s.Curve.Finite():
			return fmt.Errorf("series %d (%s): %w", i, s.Label, ErrNonFinite)
		case s.Label == "":
			return fmt.Errorf("series %d: %w", i, ErrNoLabel)
		case seen[s.Label]:
			return fmt.Errorf("series %d: %w: %q", i, ErrDuplicateID, s.Label)
		}
		seen[s.Label] = true
	}
	return nil
}

// NumSeries returns the total number of series across all panels,
// which is also the number of legend entries drawn.
func (s *Spec) NumSeries() int {
	n := 0
	for _, p := range s.Panels {
		n += len(p.Series)
	}
	return n
}
