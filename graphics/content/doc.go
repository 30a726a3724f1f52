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

// Package content interprets the operators of a PDF content stream.
//
// The [Interpreter] consumes a page which has already been tokenized into a
// sequence of [Operator] values.  It maintains the graphics state, builds
// paths, and emits one page object for every painting operator.  Colour
// space operators register the spot colours of the page in a
// [color.Catalog], and marked-content operators associate objects with
// optional content groups.
//
// Malformed operators are skipped.  The error is returned by
// [Interpreter.Apply] and recorded as a [Diagnostic], and the graphics state
// is left unchanged.
package content
