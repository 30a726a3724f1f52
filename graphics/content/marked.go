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
	"seehuhn.de/go/prepress/oc"
)

// beginMarkedContent handles the "BDC" operator.  Optional content
// sequences put the enclosed objects into a layer.
func (ip *Interpreter) beginMarkedContent(tag prepress.Name, props prepress.Object) error {
	if tag != "OC" {
		ip.marks = append(ip.marks, "")
		return nil
	}

	var dict prepress.Dict
	switch props := props.(type) {
	case prepress.Dict:
		dict = props
	case prepress.Name:
		dict = ip.res.Properties[props]
	}
	if dict == nil {
		// The sequence must still be closed by the matching "EMC".
		ip.marks = append(ip.marks, "")
		return fmt.Errorf("%w: properties %s", errUnknownResource, prepress.Format(props))
	}

	ip.marks = append(ip.marks, ip.enterLayer(dict))
	return nil
}

// enterLayer returns the layer ID for an optional content property list,
// or "" if the property list is malformed.
//
// For membership dictionaries all groups are added to the layer catalog,
// and the content is assigned to the first group.
func (ip *Interpreter) enterLayer(props prepress.Dict) string {
	m, err := oc.DecodeProperties(props)
	if err != nil {
		return ""
	}
	var id string
	for i, group := range m.OCGs {
		l := ip.layers.EnsureGroup(group)
		if i == 0 {
			id = l.ID
		}
	}
	return id
}

// currentLayer returns the innermost layer, or "" outside of optional
// content.
func (ip *Interpreter) currentLayer() string {
	for i := len(ip.marks) - 1; i >= 0; i-- {
		if ip.marks[i] != "" {
			return ip.marks[i]
		}
	}
	return ""
}
