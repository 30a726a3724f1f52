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

package color

import "fmt"

// SpotColorType classifies a named ink by its role in the print job.
type SpotColorType int

// These are the spot colour classifications.
const (
	SpotStandard SpotColorType = iota
	SpotWhite
	SpotVarnish
	SpotMetallic
	SpotFluorescent
	SpotDieline
	SpotTechnical
	SpotOpaque
	SpotTransparent
)

func (t SpotColorType) String() string {
	switch t {
	case SpotStandard:
		return "Standard"
	case SpotWhite:
		return "White"
	case SpotVarnish:
		return "Varnish"
	case SpotMetallic:
		return "Metallic"
	case SpotFluorescent:
		return "Fluorescent"
	case SpotDieline:
		return "Dieline"
	case SpotTechnical:
		return "Technical"
	case SpotOpaque:
		return "Opaque"
	case SpotTransparent:
		return "Transparent"
	default:
		return fmt.Sprintf("SpotColorType(%d)", int(t))
	}
}

// IsOpaque reports whether inks of this type hide the inks printed below.
func (t SpotColorType) IsOpaque() bool {
	return t == SpotWhite || t == SpotOpaque
}

// LibraryMatch describes the closest entry of a reference library.
type LibraryMatch struct {
	Library string
	Name    string

	// DeltaE is the CIE76 colour difference between the ink's fallback
	// and the library entry.
	DeltaE float64

	Exact bool
}

// SpotColorInfo describes a named ink found on a page.
//
// Entries are created by [Catalog.Register].  UsageCount and References
// only grow while a page is analysed.
type SpotColorInfo struct {
	// Name is the normalised ink name, used as the catalog key.
	Name string

	// RawName is the ink name as it appeared in the first colour space
	// which used it.
	RawName string

	// Alternate is the family of the alternate colour space.
	Alternate Family

	Fallback CMYKValues
	Match    *LibraryMatch

	UsageCount int

	// References lists the IDs of the page objects and layers which use
	// the ink, in order of first use.
	References []string

	Type SpotColorType

	// PrintOrder is the ink sequence index.  Indices 0 to 3 are used by
	// the process colours.
	PrintOrder int
}

// Clone returns a deep copy of s.
func (s *SpotColorInfo) Clone() *SpotColorInfo {
	res := *s
	if s.Match != nil {
		m := *s.Match
		res.Match = &m
	}
	res.References = append([]string(nil), s.References...)
	return &res
}
