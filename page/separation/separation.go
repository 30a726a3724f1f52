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

// Package separation builds the list of ink separations for a page.
//
// Every page prints on the four process separations Cyan, Magenta, Yellow
// and Black.  These are followed by one separation per spot colour, in the
// order the spot colours were discovered.
package separation

import (
	"slices"

	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/object"
)

// Kind distinguishes process separations from spot colour separations.
type Kind uint8

// These are the supported separation kinds.
const (
	Process Kind = iota
	Spot
)

func (k Kind) String() string {
	if k == Spot {
		return "Spot"
	}
	return "Process"
}

// Channel identifies the process colorant of a separation.
type Channel int

// The process channels, in print order.  Spot separations use
// ChannelNone.
const (
	ChannelNone Channel = iota - 1
	ChannelCyan
	ChannelMagenta
	ChannelYellow
	ChannelBlack
)

var processColorants = [...]struct {
	name    string
	density float64
}{
	ChannelCyan:    {"Cyan", 1},
	ChannelMagenta: {"Magenta", 1},
	ChannelYellow:  {"Yellow", 1},
	ChannelBlack:   {"Black", 1.8},
}

// Info describes one separation.
type Info struct {
	// Name is the device colorant, e.g. "Cyan" or "PANTONE 185 C".
	Name string

	Kind    Kind
	Channel Channel

	// Density is the default ink density of process separations.
	// Spot separations use 1.
	Density float64

	// Spot is the catalog entry of a spot separation, and nil for process
	// separations.
	Spot *color.SpotColorInfo

	// Sequence is the position of the separation in print order.
	Sequence int

	IsOpaque bool

	ObjectCount int
	ObjectIDs   []string

	// Coverage holds ink coverage statistics.  These are computed by
	// raster-based tools and are left at zero here.
	Coverage Coverage
}

// Coverage holds ink coverage statistics, as fractions of the page area.
type Coverage struct {
	Total   float64
	Max     float64
	Average float64
}

// Build returns the separations used by a page.
//
// The four process separations always come first.  For these, ObjectIDs
// lists the objects whose process colours use the channel.  Spot
// separations follow, in the order of spots, and take their object counts
// and IDs from the catalog entries.
func Build(spots []*color.SpotColorInfo, objects []object.Object) []*Info {
	res := make([]*Info, 0, len(processColorants)+len(spots))

	for ch, p := range processColorants {
		res = append(res, &Info{
			Name:     p.name,
			Kind:     Process,
			Channel:  Channel(ch),
			Density:  p.density,
			Sequence: ch,
		})
	}
	for _, obj := range objects {
		c := obj.Base()
		var used [4]bool
		for _, col := range c.Colors() {
			if col.Kind == color.KindSpot {
				continue
			}
			for ch, v := range col.CMYKEquivalent().Array() {
				if v > 0 {
					used[ch] = true
				}
			}
		}
		for ch, ok := range used {
			if ok {
				res[ch].ObjectIDs = append(res[ch].ObjectIDs, c.ID)
			}
		}
	}
	for _, info := range res {
		info.ObjectCount = len(info.ObjectIDs)
	}

	for i, spot := range spots {
		res = append(res, &Info{
			Name:        spot.Name,
			Kind:        Spot,
			Channel:     ChannelNone,
			Density:     1,
			Spot:        spot,
			Sequence:    len(processColorants) + i,
			IsOpaque:    spot.Type.IsOpaque(),
			ObjectCount: spot.UsageCount,
			ObjectIDs:   slices.Clone(spot.References),
		})
	}

	return res
}
