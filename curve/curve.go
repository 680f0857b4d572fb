// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve samples closed-form functions over evenly spaced
// domains.
//
// A Curve is an immutable sequence of (x, y) points. Curves produced
// by Generate never contain non-finite values: wherever the formula is
// undefined (division by zero, logarithm of a non-positive value, and
// so on) the result is replaced by Fallback. This keeps renderers
// total at the cost of hiding singularities, so callers that care can
// consult Curve.Substituted.
package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
)

// Fallback is the value substituted for non-finite formula results.
const Fallback = 0

var (
	// ErrCount is returned for domains with fewer than one sample.
	ErrCount = errors.New("sample count must be at least 1")

	// ErrBounds is returned for domains with a NaN or infinite
	// bound.
	ErrBounds = errors.New("domain bounds must be finite")

	// ErrLength is returned when X and Y have different lengths.
	ErrLength = errors.New("x and y lengths differ")
)

// Func is a formula y = f(x). It need not be defined everywhere.
type Func func(x float64) float64

// Domain is Count evenly spaced samples from Start to Stop, inclusive
// of both ends. Start may be greater than Stop, in which case the
// samples decrease.
type Domain struct {
	Start, Stop float64
	Count       int
}

// NewDomain returns the domain [start, stop] with count samples.
func NewDomain(start, stop float64, count int) (Domain, error) {
	d := Domain{start, stop, count}
	if err := d.Validate(); err != nil {
		return Domain{}, err
	}
	return d, nil
}

// Validate checks that d describes at least one finite sample.
func (d Domain) Validate() error {
	if d.Count < 1 {
		return fmt.Errorf("%w: got %d", ErrCount, d.Count)
	}
	if !isFinite(d.Start) || !isFinite(d.Stop) {
		return fmt.Errorf("%w: [%v, %v]", ErrBounds, d.Start, d.Stop)
	}
	return nil
}

// Points returns the sample positions of d. The first point is
// exactly Start and the last is exactly Stop. Points returns nil if d
// has no samples.
func (d Domain) Points() []float64 {
	switch {
	case d.Count < 1:
		return nil
	case d.Count == 1:
		return []float64{d.Start}
	}
	xs := vec.Linspace(d.Start, d.Stop, d.Count)
	// Linspace accumulates rounding error at the far end.
	xs[0], xs[len(xs)-1] = d.Start, d.Stop
	return xs
}

// Eval samples f over d, replacing non-finite results of f by
// Fallback.
func (d Domain) Eval(f Func) (Curve, error) {
	if err := d.Validate(); err != nil {
		return Curve{}, err
	}
	xs := d.Points()
	ys := vec.Map(f, xs)
	var subst []int
	for i, y := range ys {
		if !isFinite(y) {
			ys[i] = Fallback
			subst = append(subst, i)
		}
	}
	return Curve{xs, ys, subst}, nil
}

// Generate samples f at count evenly spaced points from start to
// stop. Non-finite results of f are replaced by Fallback.
func Generate(start, stop float64, count int, f Func) (Curve, error) {
	return Domain{start, stop, count}.Eval(f)
}

// Curve is an ordered sequence of (x, y) points.
//
// Curve implements gonum's plotter.XYer.
type Curve struct {
	x, y  []float64
	subst []int
}

// FromXY returns a curve with the given points. Unlike Generate, it
// does not substitute non-finite values.
func FromXY(x, y []float64) (Curve, error) {
	if len(x) != len(y) {
		return Curve{}, fmt.Errorf("%w: %d x values, %d y values", ErrLength, len(x), len(y))
	}
	return Curve{copyOf(x), copyOf(y), nil}, nil
}

// Len returns the number of points in c.
func (c Curve) Len() int {
	return len(c.x)
}

// XY returns the i'th point of c.
func (c Curve) XY(i int) (x, y float64) {
	return c.x[i], c.y[i]
}

// X returns a copy of the x values of c.
func (c Curve) X() []float64 {
	return copyOf(c.x)
}

// Y returns a copy of the y values of c.
func (c Curve) Y() []float64 {
	return copyOf(c.y)
}

// Substituted returns the indexes of the points whose y value was
// replaced by Fallback.
func (c Curve) Substituted() []int {
	return append([]int(nil), c.subst...)
}

// Finite reports whether every point of c is finite.
func (c Curve) Finite() bool {
	for i := range c.x {
		if !isFinite(c.x[i]) || !isFinite(c.y[i]) {
			return false
		}
	}
	return true
}

// Reversed returns c with its y values in reverse order. For a curve
// generated over [a, b], this is the formula evaluated over [b, a]
// but plotted against the original x values.
func (c Curve) Reversed() Curve {
	n := len(c.y)
	ys := make([]float64, n)
	for i, y := range c.y {
		ys[n-1-i] = y
	}
	var subst []int
	for i := len(c.subst) - 1; i >= 0; i-- {
		subst = append(subst, n-1-c.subst[i])
	}
	return Curve{copyOf(c.x), ys, subst}
}

// Anchored returns c shifted vertically so that its first y value is
// v. An empty curve is returned unchanged.
func (c Curve) Anchored(v float64) Curve {
	if len(c.y) == 0 {
		return c
	}
	delta := v - c.y[0]
	ys := make([]float64, len(c.y))
	for i, y := range c.y {
		ys[i] = y + delta
	}
	ys[0] = v
	return Curve{copyOf(c.x), ys, append([]int(nil), c.subst...)}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func copyOf(xs []float64) []float64 {
	return append([]float64(nil), xs...)
}
