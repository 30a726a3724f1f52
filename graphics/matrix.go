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

	"seehuhn.de/go/geom/matrix"
)

// Concat returns the transformation obtained by applying ctm first and m
// second.
//
// Concatenating A and then B to the identity matrix gives a matrix which
// maps a point in the same way as applying A and then B.
func Concat(ctm, m matrix.Matrix) matrix.Matrix {
	return ctm.Mul(m)
}

// Apply applies the transformation matrix to the point (x, y).
//
// If M = [a b c d e f], the point is mapped to (a*x+c*y+e, b*x+d*y+f).
func Apply(M matrix.Matrix, x, y float64) (float64, float64) {
	return M[0]*x + M[2]*y + M[4], M[1]*x + M[3]*y + M[5]
}

// Translation returns the translation component of M.
func Translation(M matrix.Matrix) (e, f float64) {
	return M[4], M[5]
}

// ScaleFactors returns the absolute values of the diagonal entries of M.
// For matrices without rotation or shear these are the scale factors in
// x and y direction.
func ScaleFactors(M matrix.Matrix) (sx, sy float64) {
	return math.Abs(M[0]), math.Abs(M[3])
}
