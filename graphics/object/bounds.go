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

package object

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/prepress/graphics"
)

// Bounds is an axis-aligned bounding box.  X and Y give the minimum corner,
// and Width and Height are never negative.
type Bounds struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the box or on its
// boundary.
func (b Bounds) Contains(p vec.Vec2) bool {
	return p.X >= b.X && p.X <= b.X+b.Width && p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// BoundsOf returns the smallest box containing all given points.
// The second return value is false if there are no points.
func BoundsOf(points []vec.Vec2) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	r := rect.Rect{LLx: points[0].X, LLy: points[0].Y, URx: points[0].X, URy: points[0].Y}
	for _, p := range points[1:] {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return FromRect(r), true
}

// FromRect converts a rectangle into a bounding box.  The corners of the
// rectangle may be given in any order.
func FromRect(r rect.Rect) Bounds {
	return Bounds{
		X:      min(r.LLx, r.URx),
		Y:      min(r.LLy, r.URy),
		Width:  max(r.LLx, r.URx) - min(r.LLx, r.URx),
		Height: max(r.LLy, r.URy) - min(r.LLy, r.URy),
	}
}

// unitSquare returns the bounding box of the unit square after applying M.
func unitSquare(M matrix.Matrix) Bounds {
	corners := make([]vec.Vec2, 4)
	for i, c := range [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		x, y := graphics.Apply(M, c[0], c[1])
		corners[i] = vec.Vec2{X: x, Y: y}
	}
	b, _ := BoundsOf(corners)
	return b
}
