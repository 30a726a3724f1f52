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

// Package graphics tracks the graphics state while a page is analysed.
//
// This package defines the graphics state type ([State]), the graphics
// state stack ([Stack]) used by the q and Q operators, and rendering
// constants ([LineCapStyle], [LineJoinStyle], [TextRenderingMode]).
//
// Transformation matrices use the [matrix.Matrix] type.  The helper
// functions in this package compose matrices in the order in which
// successive "cm" operators are recorded on a page.
package graphics
