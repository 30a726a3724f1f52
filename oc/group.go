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

// Group represents an optional content group.
type Group struct {
	// ID identifies the group within the document.  This is taken from
	// the /ID entry which the tokenizer adds to the group dictionary
	// to record the object number.  If there is no such entry, the name
	// is used.
	ID string

	// Name is the name of the group, as shown in a viewer's user
	// interface.
	Name string

	// Intent represents the intended use of the graphics in the group.
	// Common values include "View" and "Design". Default is ["View"].
	Intent []prepress.Name

	// Usage (optional) describes the nature of the content controlled by
	// the group.
	Usage *Usage
}

// DecodeGroup decodes an optional content group dictionary.
func DecodeGroup(dict prepress.Dict) (*Group, error) {
	group := &Group{}

	name, ok := textString(dict["Name"])
	if !ok {
		return nil, errors.New("optional content group without name")
	}
	group.Name = name

	group.ID = name
	if id, ok := textString(dict["ID"]); ok && id != "" {
		group.ID = id
	}

	switch intent := dict["Intent"].(type) {
	case prepress.Name:
		group.Intent = []prepress.Name{intent}
	case prepress.Array:
		for _, item := range intent {
			if name, ok := item.(prepress.Name); ok {
				group.Intent = append(group.Intent, name)
			}
		}
	}
	if len(group.Intent) == 0 {
		group.Intent = []prepress.Name{"View"}
	}

	if usage, ok := dict["Usage"].(prepress.Dict); ok {
		group.Usage = decodeUsage(usage)
	}

	return group, nil
}
