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

package content

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/prepress"
	"seehuhn.de/go/prepress/graphics"
	"seehuhn.de/go/prepress/graphics/object"
)

// nextLine moves to the start of the next text line, as for "T*".
func nextLine(g *graphics.State) {
	g.Tlm = matrix.Translate(0, -g.Tl).Mul(g.Tlm)
	g.Tm = g.Tlm
}

// textArray concatenates the strings in the operand of "TJ".
// Position adjustments are skipped.
func textArray(arr prepress.Array) (string, error) {
	var b strings.Builder
	for _, frag := range arr {
		switch frag := frag.(type) {
		case prepress.String:
			b.WriteString(frag.AsTextString())
		case prepress.Integer, prepress.Real:
			// kerning
		default:
			return "", fmt.Errorf("unexpected text array element %s", prepress.Format(frag))
		}
	}
	return b.String(), nil
}

// showText emits a text object and advances the text matrix.
func (ip *Interpreter) showText(content string) {
	g := ip.stack.Current
	if txt := object.NewText(ip.peekID(), g, content); txt != nil {
		ip.emit(txt)
	}
	tx := object.TextAdvance(g, content)
	g.Tm = matrix.Translate(tx, 0).Mul(g.Tm)
}
