// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rugsafe/paperfig/curve"
)

var (
	// ErrUnknownFormula is returned for a family not in Formulas.
	ErrUnknownFormula = errors.New("unknown formula family")

	// ErrParam is returned when a required parameter is missing or
	// a parameter is not used by the family.
	ErrParam = errors.New("bad formula parameter")
)

// Params are the named coefficients of a formula family.
type Params map[string]float64

func (p Params) get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

func (p Params) require(name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrParam, name)
	}
	return v, nil
}

// A Family constructs a formula from its parameters.
type Family struct {
	// Doc is a one-line description shown by "paperfig list -v".
	Doc string

	// Params lists the parameter names Family accepts.
	Params []string

	New func(p Params) (curve.Func, error)
}

// Formulas is the registry of formula families, by name.
var Formulas = map[string]Family{
	"linear": {
		Doc:    "a*x + b",
		Params: []string{"a", "b"},
		New: func(p Params) (curve.Func, error) {
			a, b := p.get("a", 1), p.get("b", 0)
			return func(x float64) float64 { return a*x + b }, nil
		},
	},
	"power": {
		Doc:    "a * x^p",
		Params: []string{"a", "p"},
		New: func(p Params) (curve.Func, error) {
			e, err := p.require("p")
			if err != nil {
				return nil, err
			}
			a := p.get("a", 1)
			return func(x float64) float64 { return a * math.Pow(x, e) }, nil
		},
	},
	"log": {
		Doc:    "a * ln(b*x + c)",
		Params: []string{"a", "b", "c"},
		New: func(p Params) (curve.Func, error) {
			a, b, c := p.get("a", 1), p.get("b", 1), p.get("c", 0)
			return func(x float64) float64 { return a * math.Log(b*x+c) }, nil
		},
	},
	"inv_log": {
		Doc:    "a / ln(b*x)",
		Params: []string{"a", "b"},
		New: func(p Params) (curve.Func, error) {
			a, b := p.get("a", 1), p.get("b", 1)
			return func(x float64) float64 { return a / math.Log(b*x) }, nil
		},
	},
	"log_ratio": {
		Doc:    "a * ln(k/x)",
		Params: []string{"a", "k"},
		New: func(p Params) (curve.Func, error) {
			k, err := p.require("k")
			if err != nil {
				return nil, err
			}
			a := p.get("a", 1)
			return func(x float64) float64 { return a * math.Log(k/x) }, nil
		},
	},
	"emission_burn": {
		Doc:    "e*x - b*ln(x + 1)",
		Params: []string{"e", "b"},
		New: func(p Params) (curve.Func, error) {
			e, err := p.require("e")
			if err != nil {
				return nil, err
			}
			b, err := p.require("b")
			if err != nil {
				return nil, err
			}
			return func(x float64) float64 { return e*x - b*math.Log(x+1) }, nil
		},
	},
}

// FormulaNames returns the registered family names in sorted order.
func FormulaNames() []string {
	names := make([]string, 0, len(Formulas))
	for name := range Formulas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewFormula returns the formula of the named family with params.
// Parameters the family does not accept are an error.
func NewFormula(family string, params Params) (curve.Func, error) {
	fam, ok := Formulas[family]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormula, family)
	}
	for name := range params {
		known := false
		for _, p := range fam.Params {
			known = known || p == name
		}
		if !known {
			return nil, fmt.Errorf("%s: %w: unknown parameter %q", family, ErrParam, name)
		}
	}
	f, err := fam.New(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", family, err)
	}
	return f, nil
}
