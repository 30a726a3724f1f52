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

package oc

import (
	"errors"

	"seehuhn.de/go/prepress"
)

// PDF 2.0 sections: 8.11.2

// Membership represents an optional content membership dictionary.
type Membership struct {
	// OCGs lists the optional content groups whose states determine the
	// visibility of the content.  If the dictionary only has a visibility
	// expression, the groups mentioned in the expression are listed here.
	OCGs []*Group

	// Policy specifies the visibility policy for content belonging to
	// this membership dictionary.
	Policy Policy
}

// DecodeMembership decodes an optional content membership dictionary.
func DecodeMembership(dict prepress.Dict) (*Membership, error) {
	m := &Membership{}

	switch ocgs := dict["OCGs"].(type) {
	case prepress.Array:
		for _, item := range ocgs {
			if g, ok := optionalGroup(item); ok {
				m.OCGs = append(m.OCGs, g)
			}
		}
	case prepress.Dict:
		if g, ok := optionalGroup(ocgs); ok {
			m.OCGs = []*Group{g}
		}
	}
	if len(m.OCGs) == 0 {
		m.OCGs = groupsInExpression(dict["VE"], 0)
	}
	if len(m.OCGs) == 0 {
		return nil, errors.New("membership dictionary without groups")
	}

	m.Policy = PolicyAnyOn
	if p, ok := dict["P"].(prepress.Name); ok {
		switch Policy(p) {
		case PolicyAllOn, PolicyAnyOn, PolicyAnyOff, PolicyAllOff:
			m.Policy = Policy(p)
		}
	}

	return m, nil
}

// IsVisible reports whether content controlled by m is visible, given the
// visibility of the individual groups.
func (m *Membership) IsVisible(visible func(*Group) bool) bool {
	on := 0
	for _, g := range m.OCGs {
		if visible(g) {
			on++
		}
	}
	switch m.Policy {
	case PolicyAllOn:
		return on == len(m.OCGs)
	case PolicyAnyOff:
		return on < len(m.OCGs)
	case PolicyAllOff:
		return on == 0
	default:
		return on > 0
	}
}

func optionalGroup(obj prepress.Object) (*Group, bool) {
	dict, ok := obj.(prepress.Dict)
	if !ok {
		return nil, false
	}
	g, err := DecodeGroup(dict)
	return g, err == nil
}

// maxExpressionDepth limits the nesting of visibility expressions.
const maxExpressionDepth = 16

// groupsInExpression collects the groups of a visibility expression, in
// the order they appear.
func groupsInExpression(obj prepress.Object, depth int) []*Group {
	arr, ok := obj.(prepress.Array)
	if !ok || depth > maxExpressionDepth {
		return nil
	}
	var res []*Group
	for _, item := range arr {
		if g, ok := optionalGroup(item); ok {
			res = append(res, g)
		} else {
			res = append(res, groupsInExpression(item, depth+1)...)
		}
	}
	return res
}

// Policy represents the visibility policy for an optional content
// membership dictionary.
type Policy prepress.Name

const (
	// PolicyAllOn means visible only if all OCGs are ON.
	PolicyAllOn Policy = "AllOn"

	// PolicyAnyOn means visible if any of the OCGs are ON (default).
	PolicyAnyOn Policy = "AnyOn"

	// PolicyAnyOff means visible if any of the OCGs are OFF.
	PolicyAnyOff Policy = "AnyOff"

	// PolicyAllOff means visible only if all OCGs are OFF.
	PolicyAllOff Policy = "AllOff"
)
