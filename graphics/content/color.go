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

	"seehuhn.de/go/prepress"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/object"
)

// colorSpace resolves a colour space name used with the "CS" and "cs"
// operators.  Names of the device spaces and of the pattern space may be
// used directly, all other names are looked up in the resources.
func (ip *Interpreter) colorSpace(name prepress.Name) (color.Space, error) {
	if desc, ok := ip.res.ColorSpace[name]; ok {
		return color.Resolve(desc, ip.spots)
	}
	switch color.Family(name) {
	case color.FamilyDeviceGray, color.FamilyDeviceRGB, color.FamilyDeviceCMYK, color.FamilyPattern:
		return color.Resolve(name, ip.spots)
	}
	return color.Space{}, fmt.Errorf("%w: colour space %q", errUnknownResource, name)
}

// spaceColor reads the operands of the "SC", "SCN", "sc" and "scn"
// operators.  For pattern spaces, the final operand is the pattern name.
func spaceColor(p *argParser, space color.Space, alpha float64) (*color.ExtendedColor, error) {
	if space.Family == color.FamilyPattern && len(p.args) > 0 {
		if _, isName := p.args[len(p.args)-1].(prepress.Name); isName {
			p.args = p.args[:len(p.args)-1]
		}
	}
	comps := p.GetFloats()
	if err := p.Check(); err != nil {
		return nil, err
	}
	return space.Color(comps, alpha)
}

// spotFill returns the colour used for objects painted in a spot colour
// space without explicit colour values, or nil for other spaces.
func spotFill(space color.Space, alpha float64) *color.ExtendedColor {
	switch space.Family {
	case color.FamilySeparation, color.FamilyDeviceN:
		col := space.Initial(alpha)
		if col != nil && col.Kind == color.KindSpot {
			return col
		}
	}
	return nil
}

// shading paints the shading resource with the given name.
func (ip *Interpreter) shading(name prepress.Name) error {
	dict, ok := ip.res.Shading[name]
	if !ok {
		return fmt.Errorf("%w: shading %q", errUnknownResource, name)
	}
	shadingType, ok := dict["ShadingType"].(prepress.Integer)
	if !ok {
		return fmt.Errorf("shading %q: missing shading type", name)
	}
	space, err := ip.resolveSpace(dict["ColorSpace"])
	if err != nil {
		return fmt.Errorf("shading %q: %w", name, err)
	}

	g := ip.stack.Current
	fill := spotFill(space, g.FillAlpha)
	ip.emit(object.NewShading(ip.peekID(), g, name, int(shadingType), space, fill))
	return nil
}

// resolveSpace resolves a colour space given in a resource dictionary.
// Names may refer to the colour space resources of the page.
func (ip *Interpreter) resolveSpace(desc prepress.Object) (color.Space, error) {
	if name, ok := desc.(prepress.Name); ok {
		if res, ok := ip.res.ColorSpace[name]; ok {
			desc = res
		}
	}
	return color.Resolve(desc, ip.spots)
}
