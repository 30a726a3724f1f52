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

// Package color resolves the colours used on a PDF page.
//
// Process colours are represented directly by an [ExtendedColor] of kind
// [KindGray], [KindRGB] or [KindCMYK].  Named inks, declared through
// Separation and DeviceN colour spaces, are registered in a [Catalog] as
// [SpotColorInfo] entries: the catalog classifies each ink by name, estimates
// a CMYK fallback, and matches the ink against a reference [Library] using
// the CIE76 colour difference.
//
// Colour space operands are turned into a [Space] by [Resolve].  A Space
// knows how to convert the operands of the colour setting operators into an
// ExtendedColor.
package color
