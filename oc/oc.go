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

// Package oc implements optional content groups (layers) for page analysis.
//
// Optional content groups and membership dictionaries are decoded from the
// property lists of marked content ([DecodeProperties]).  The layers found
// on a page are collected in a [Catalog], which also classifies each layer
// by its name and links layers to the spot colours they are named after.
package oc

import (
	"errors"

	"seehuhn.de/go/prepress"
)

// PDF 2.0 sections: 8.11

var errNotOC = errors.New("not an optional content dictionary")

// DecodeProperties decodes the property list of a "BDC /OC" operator.
// The property list must be either an optional content group or an
// optional content membership dictionary.  A single group is returned
// as a membership dictionary with only this group.
func DecodeProperties(dict prepress.Dict) (*Membership, error) {
	switch dict["Type"] {
	case prepress.Name("OCG"):
		return singleGroup(dict)
	case prepress.Name("OCMD"):
		return DecodeMembership(dict)
	}

	// Some producers omit /Type.
	if _, ok := dict["Name"]; ok {
		return singleGroup(dict)
	}
	if _, ok := dict["OCGs"]; ok {
		return DecodeMembership(dict)
	}
	return nil, errNotOC
}

func singleGroup(dict prepress.Dict) (*Membership, error) {
	g, err := DecodeGroup(dict)
	if err != nil {
		return nil, err
	}
	return &Membership{OCGs: []*Group{g}, Policy: PolicyAnyOn}, nil
}

// textString returns the value of a text string, or a name.
func textString(obj prepress.Object) (string, bool) {
	switch obj := obj.(type) {
	case prepress.String:
		return obj.AsTextString(), true
	case prepress.Name:
		return string(obj), true
	default:
		return "", false
	}
}
