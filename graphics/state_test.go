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

package graphics

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/prepress/graphics/blend"
	"seehuhn.de/go/prepress/graphics/color"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	stack := NewStack()
	stack.Current.SetFillCMYK(0.1, 0.2, 0.3, 0.4)
	stack.Current.DashPattern = []float64{3, 1}
	before := stack.Current.Clone()

	stack.Save()
	cur := stack.Current
	cur.Concat(matrix.Matrix{2, 0, 0, 2, 10, 20})
	cur.SetFillRGB(1, 0, 0)
	cur.SetStrokeGray(0.5)
	cur.DashPattern[0] = 99
	cur.LineWidth = 7
	cur.OverprintFill = true
	cur.BlendMode = blend.ModeMultiply
	cur.FillAlpha = 0.3

	stack.Save()
	stack.Current.SetFillGray(1)
	if !stack.Restore() {
		t.Fatal("inner restore failed")
	}
	if !stack.Restore() {
		t.Fatal("outer restore failed")
	}

	if d := cmp.Diff(before, stack.Current); d != "" {
		t.Error(d)
	}
	if stack.Depth() != 0 {
		t.Errorf("depth %d", stack.Depth())
	}
}

func TestRestoreEmpty(t *testing.T) {
	stack := NewStack()
	stack.Current.LineWidth = 3
	if stack.Restore() {
		t.Error("restore on empty stack reported success")
	}
	if stack.Current.LineWidth != 3 {
		t.Error("restore on empty stack changed the state")
	}
}

func TestConcatComposition(t *testing.T) {
	A := matrix.Matrix{2, 0.5, -1, 3, 4, -2}
	B := matrix.Matrix{0, 1, -1, 0, 10, 5}

	s := NewState()
	s.Concat(A)
	s.Concat(B)

	points := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {-3.5, 2.25}}
	for _, p := range points {
		x, y := Apply(A, p[0], p[1])
		x, y = Apply(B, x, y)
		gx, gy := Apply(s.CTM, p[0], p[1])
		if math.Abs(x-gx) > 1e-9 || math.Abs(y-gy) > 1e-9 {
			t.Errorf("%v: got (%g, %g), want (%g, %g)", p, gx, gy, x, y)
		}
	}
}

func TestConcatFormula(t *testing.T) {
	ctm := matrix.Matrix{1, 2, 3, 4, 5, 6}
	m := matrix.Matrix{7, 8, 9, 10, 11, 12}
	a, b, c, d, e, f := m[0], m[1], m[2], m[3], m[4], m[5]
	a0, b0, c0, d0, e0, f0 := ctm[0], ctm[1], ctm[2], ctm[3], ctm[4], ctm[5]
	want := matrix.Matrix{
		a*a0 + c*b0,
		b*a0 + d*b0,
		a*c0 + c*d0,
		b*c0 + d*d0,
		a*e0 + c*f0 + e,
		b*e0 + d*f0 + f,
	}
	if d := cmp.Diff(want, Concat(ctm, m)); d != "" {
		t.Error(d)
	}
}

func TestTranslationAndScale(t *testing.T) {
	M := matrix.Matrix{-20, 0, 0, 30, 100, 200}
	e, f := Translation(M)
	sx, sy := ScaleFactors(M)
	if e != 100 || f != 200 || sx != 20 || sy != 30 {
		t.Errorf("got %g %g %g %g", e, f, sx, sy)
	}
}

func TestSetColorUsesAlpha(t *testing.T) {
	s := NewState()
	s.FillAlpha = 0.25
	s.StrokeAlpha = 0.5
	s.SetFillCMYK(1, 0, 0, 0)
	s.SetStrokeRGB(0, 1, 0)

	if d := cmp.Diff(color.CMYK(1, 0, 0, 0, 0.25), s.FillColor); d != "" {
		t.Error(d)
	}
	if s.StrokeColor.Alpha != 0.5 || s.StrokeColor.Tint != 1 {
		t.Errorf("unexpected stroke colour %+v", s.StrokeColor)
	}
	if s.FillSpace.Family != color.FamilyDeviceCMYK || s.StrokeSpace.Family != color.FamilyDeviceRGB {
		t.Error("colour spaces not updated")
	}

	s.SetFillSpace(color.SpaceDeviceCMYK)
	if d := cmp.Diff(color.CMYK(0, 0, 0, 1, 0.25), s.FillColor, cmpopts.EquateEmpty()); d != "" {
		t.Error(d)
	}
}

func TestTextRenderingMode(t *testing.T) {
	cases := []struct {
		mode           TextRenderingMode
		fills, strokes bool
	}{
		{TextRenderingModeFill, true, false},
		{TextRenderingModeStroke, false, true},
		{TextRenderingModeFillStroke, true, true},
		{TextRenderingModeInvisible, false, false},
		{TextRenderingModeFillStrokeClip, true, true},
		{TextRenderingModeClip, false, false},
	}
	for _, c := range cases {
		if c.mode.Fills() != c.fills || c.mode.Strokes() != c.strokes {
			t.Errorf("mode %d: wrong flags", c.mode)
		}
	}
}
