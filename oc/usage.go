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
	"golang.org/x/text/language"

	"seehuhn.de/go/prepress"
)

// PDF 2.0 sections: 8.11.4

// Usage represents the parts of an optional content usage dictionary which
// are relevant for print production.
type Usage struct {
	// Creator (optional) contains application-specific data associated
	// with this group.
	Creator *UsageCreator

	// Language (optional) specifies the language of the content
	// controlled by this group.
	Language *UsageLanguage

	// Print (optional) specifies content to be used when printing.
	Print *UsagePrint

	// View (optional) contains view state information.
	View *UsageView
}

// UsageCreator contains information about the application that created an
// optional content group.
type UsageCreator struct {
	Creator string

	// Subtype defines the type of content controlled by the group.
	// Suggested values include "Artwork" and "Technical".
	Subtype prepress.Name
}

// UsageLanguage specifies the language of the content controlled by an
// optional content group.
type UsageLanguage struct {
	Lang      language.Tag
	Preferred bool
}

// PrintSubtype represents the kind of content controlled by a print usage
// dictionary.
type PrintSubtype prepress.Name

// These are the print subtypes defined by PDF.
const (
	PrintSubtypeTrapping      PrintSubtype = "Trapping"
	PrintSubtypePrintersMarks PrintSubtype = "PrintersMarks"
	PrintSubtypeWatermark     PrintSubtype = "Watermark"
)

// UsagePrint specifies content to be used when printing.
type UsagePrint struct {
	Subtype PrintSubtype

	// PrintState indicates whether the group shall be ON or OFF when
	// printing.
	PrintState bool
}

// UsageView contains view state information.
type UsageView struct {
	// ViewState indicates the state of the group when the document is
	// first opened.
	ViewState bool
}

// decodeUsage reads a usage dictionary.  Malformed sub-dictionaries are
// ignored.
func decodeUsage(dict prepress.Dict) *Usage {
	u := &Usage{}

	if d, ok := dict["CreatorInfo"].(prepress.Dict); ok {
		c := &UsageCreator{}
		c.Creator, _ = textString(d["Creator"])
		c.Subtype, _ = d["Subtype"].(prepress.Name)
		u.Creator = c
	}

	if d, ok := dict["Language"].(prepress.Dict); ok {
		if lang, ok := textString(d["Lang"]); ok {
			if tag, err := language.Parse(lang); err == nil {
				u.Language = &UsageLanguage{
					Lang:      tag,
					Preferred: d["Preferred"] == prepress.Name("ON"),
				}
			}
		}
	}

	if d, ok := dict["Print"].(prepress.Dict); ok {
		if state, ok := onOff(d["PrintState"]); ok {
			p := &UsagePrint{PrintState: state}
			if sub, ok := d["Subtype"].(prepress.Name); ok {
				p.Subtype = PrintSubtype(sub)
			}
			u.Print = p
		}
	}

	if d, ok := dict["View"].(prepress.Dict); ok {
		if state, ok := onOff(d["ViewState"]); ok {
			u.View = &UsageView{ViewState: state}
		}
	}

	return u
}

func onOff(obj prepress.Object) (bool, bool) {
	switch obj {
	case prepress.Name("ON"):
		return true, true
	case prepress.Name("OFF"):
		return false, true
	default:
		return false, false
	}
}
