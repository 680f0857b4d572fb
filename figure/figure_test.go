// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"errors"
	"math"
	"testing"

	"github.com/rugsafe/paperfig/curve"
)

func mustCurve(t *testing.T, x, y []float64) curve.Curve {
	t.Helper()
	c, err := curve.FromXY(x, y)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestValidate(t *testing.T) {
	good := mustCurve(t, []float64{0, 1}, []float64{0, 1})
	bad := mustCurve(t, []float64{0, 1}, []float64{math.Inf(1), 1})
	empty := mustCurve(t, nil, nil)

	for _, test := range []struct {
		name string
		spec Spec
		want error
	}{
		{"ok", Spec{Panels: []Panel{{Series: []Series{{Label: "a", Curve: good}}}}}, nil},
		{"two panels", Spec{Theme: Dark, Panels: []Panel{
			{Series: []Series{{Label: "a", Curve: good}, {Label: "b", Curve: good}}},
			{Series: []Series{{Label: "a", Curve: good}}},
		}}, nil},
		{"no panels", Spec{}, ErrNoPanels},
		{"empty panel", Spec{Panels: []Panel{{}}}, ErrEmptyPanel},
		{"empty curve", Spec{Panels: []Panel{{Series: []Series{{Label: "a", Curve: empty}}}}}, ErrEmptyCurve},
		{"non-finite", Spec{Panels: []Panel{{Series: []Series{{Label: "a", Curve: bad}}}}}, ErrNonFinite},
		{"unlabeled", Spec{Panels: []Panel{{Series: []Series{{Curve: good}, {Label: "b", Curve: good}}}}}, ErrNoLabel},
		{"duplicate", Spec{Panels: []Panel{{Series: []Series{{Label: "a", Curve: good}, {Label: "a", Curve: good}}}}}, ErrDuplicateID},
		{"size", Spec{Width: -1, Panels: []Panel{{Series: []Series{{Label: "a", Curve: good}}}}}, ErrSize},
		{"theme", Spec{Theme: 7, Panels: []Panel{{Series: []Series{{Label: "a", Curve: good}}}}}, ErrTheme},
	} {
		err := test.spec.Validate()
		if test.want == nil {
			if err != nil {
				t.Errorf("%s: unexpected error %v", test.name, err)
			}
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("%s: want %v, got %v", test.name, test.want, err)
		}
	}
}

func TestParseTheme(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Theme
		ok   bool
	}{
		{"", Light, true},
		{"light", Light, true},
		{"Dark", Dark, true},
		{"dark_background", Dark, true},
		{"neon", 0, false},
	} {
		got, err := ParseTheme(test.in)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("ParseTheme(%q) = %v, %v", test.in, got, err)
		}
	}
}

func TestNumSeries(t *testing.T) {
	c := mustCurve(t, []float64{0}, []float64{0})
	s := &Spec{Panels: []Panel{
		{Series: []Series{{Label: "a", Curve: c}, {Label: "b", Curve: c}}},
		{Series: []Series{{Label: "a", Curve: c}}},
	}}
	if n := s.NumSeries(); n != 3 {
		t.Errorf("want 3 series, got %d", n)
	}
}

func TestSize(t *testing.T) {
	s := &Spec{Height: 4}
	if w, h := s.Size(); w != DefaultWidth || h != 4 {
		t.Errorf("want %vx4, got %vx%v", DefaultWidth, w, h)
	}
}
