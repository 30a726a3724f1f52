// seehuhn.de/go/prepress - colour and separation analysis of PDF page content
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package color

import (
	"math"
	"testing"
)

func TestDeltaEProperties(t *testing.T) {
	values := []CMYKValues{
		{},
		{1, 0, 0, 0},
		{0, 0.91, 0.76, 0},
		{0.2, 0.3, 0.7, 0.15},
		{0, 0, 0, 1},
	}
	for _, a := range values {
		if d := DeltaE(a, a); d != 0 {
			t.Errorf("DeltaE(%v, %v) = %g", a, a, d)
		}
		for _, b := range values {
			if math.Abs(DeltaE(a, b)-DeltaE(b, a)) > 1e-12 {
				t.Errorf("DeltaE not symmetric for %v, %v", a, b)
			}
		}
	}
}

func TestMatchByName(t *testing.T) {
	lib := PantoneSolidCoated()

	m := lib.Match("PANTONE Reflex Blue C", CMYKValues{1, 0.77, 0, 0.02}, nil)
	if m == nil || m.Name != "PANTONE Reflex Blue C" || !m.Exact || m.DeltaE != 0 {
		t.Fatalf("unexpected match %+v", m)
	}
	if m.Library != "PANTONE Solid Coated" {
		t.Errorf("wrong library %q", m.Library)
	}

	// A name match is reported even when the colours differ a lot.
	m = lib.Match("PANTONE Reflex Blue C", CMYKValues{}, nil)
	if m == nil || m.Exact {
		t.Errorf("unexpected match %+v", m)
	}
}

func TestMatchByColor(t *testing.T) {
	lib := PantoneSolidCoated()

	m := lib.Match("Mystery Ink", CMYKValues{0, 0, 0, 0.4}, nil)
	if m == nil || m.Name != "PANTONE 877 C" || m.Exact || m.DeltaE != 0 {
		t.Errorf("unexpected match %+v", m)
	}

	if m := lib.Match("Paper", CMYKValues{}, nil); m != nil {
		t.Errorf("unexpected match %+v", m)
	}
	if m := lib.Match("Paper", CMYKValues{}, &MatchOptions{MaxDeltaE: 1000, ExactDeltaE: 1}); m == nil {
		t.Error("missing match with relaxed threshold")
	}

	var noLib *Library
	if m := noLib.Match("PANTONE 185 C", CMYKValues{}, nil); m != nil {
		t.Errorf("nil library matched %+v", m)
	}
}

func TestLibraryLookup(t *testing.T) {
	lib := PantoneSolidCoated()
	cases := []struct {
		name  string
		found string
	}{
		{"PANTONE 186 C", "PANTONE 186 C"},
		{"pantone  warm red c", "PANTONE Warm Red C"},
		{"Reflex Blue", "PANTONE Reflex Blue C"},
		{"PANTONE Orange 021 C 2X", "PANTONE Orange 021 C"},
		{"ab", ""},
		{"", ""},
	}
	for _, c := range cases {
		e, ok := lib.Lookup(c.name)
		if ok != (c.found != "") || e.Name != c.found {
			t.Errorf("Lookup(%q) = %q, %t", c.name, e.Name, ok)
		}
	}
}
