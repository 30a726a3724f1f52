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

import "seehuhn.de/go/prepress"

// Resources represents a PDF resource dictionary.
//
// A resource dictionary enumerates the named resources needed by operators
// in a content stream and the names by which they can be referred to.
// The scope of resource names is local to a particular content stream.
// Individual maps may be nil if not needed for the content stream.
type Resources struct {
	// ColorSpace maps names to colour space descriptions, as accepted
	// by [color.Resolve].
	ColorSpace map[prepress.Name]prepress.Object

	ExtGState map[prepress.Name]prepress.Dict
	Pattern   map[prepress.Name]prepress.Dict
	Shading   map[prepress.Name]prepress.Dict
	XObject   map[prepress.Name]*XObject

	// Properties holds property lists for marked content, including
	// optional content groups and membership dictionaries.
	Properties map[prepress.Name]prepress.Dict
}

// XObject is an external object referenced by the "Do" operator.
type XObject struct {
	// Dict is the stream dictionary.  The /Subtype entry distinguishes
	// images from forms.
	Dict prepress.Dict

	// Content holds the tokenized content stream of a form XObject.
	Content []Operator

	// Resources is the resource dictionary of a form XObject.  If this is
	// nil, the resources of the page are used.
	Resources *Resources
}

// IsForm reports whether x is a form XObject.
func (x *XObject) IsForm() bool {
	return x.Dict["Subtype"] == prepress.Name("Form")
}

// IsImage reports whether x is an image XObject.
func (x *XObject) IsImage() bool {
	return x.Dict["Subtype"] == prepress.Name("Image")
}
