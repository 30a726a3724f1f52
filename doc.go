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

// Package prepress analyses the drawing instructions of PDF pages for
// print production.
//
// The analysis consumes pages which have already been tokenized into a
// sequence of operators (see [seehuhn.de/go/prepress/graphics/content]) and
// produces a colour-aware model of the page: the painted objects with their
// resolved fill and stroke colours, the spot colours used on the page, the
// optional content groups (layers) and the list of ink separations.
//
// This package defines the operand types which the tokenizer hands to the
// interpreter:
//
//	Array
//	Bool
//	Dict
//	Integer
//	Name
//	Real
//	Stream
//	String
//
// All of these implement the [Object] interface.  The document-level entry
// point is [seehuhn.de/go/prepress/document.Session].
package prepress
