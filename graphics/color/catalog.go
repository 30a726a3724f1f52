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

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Catalog collects the spot colours used on a page or in a document.
//
// A Catalog is not safe for concurrent use.
type Catalog struct {
	// Library is the reference library used to estimate fallback colours
	// and to match new inks.  If this is nil, no library matching is done.
	Library *Library

	// Options holds the matching thresholds.
	Options MatchOptions

	spots  []*SpotColorInfo
	byName map[string]*SpotColorInfo
	refs   map[spotRef]struct{}
}

type spotRef struct {
	name, id string
}

// NewCatalog returns an empty catalog.
// If opt is nil, the default thresholds are used.
func NewCatalog(lib *Library, opt *MatchOptions) *Catalog {
	if opt == nil {
		opt = &defaultMatchOptions
	}
	return &Catalog{
		Library: lib,
		Options: *opt,
		byName:  make(map[string]*SpotColorInfo),
		refs:    make(map[spotRef]struct{}),
	}
}

// Register records one use of the ink with the given name.
//
// If an ink with the same normalised name is already in the catalog, its
// usage count is incremented and the existing entry is returned.
// Otherwise a new entry is classified, given a fallback colour and a
// library match, and assigned the next print order index.
func (c *Catalog) Register(rawName string, alternate Family) *SpotColorInfo {
	name := NormalizeName(rawName)
	if info, ok := c.byName[name]; ok {
		info.UsageCount++
		return info
	}

	fallback := EstimateFallback(name, c.Library)
	info := &SpotColorInfo{
		Name:       name,
		RawName:    rawName,
		Alternate:  alternate,
		Fallback:   fallback,
		Match:      c.Library.Match(name, fallback, &c.Options),
		UsageCount: 1,
		Type:       ClassifySpot(name),
		PrintOrder: len(c.spots) + 4,
	}
	c.spots = append(c.spots, info)
	c.byName[name] = info
	return info
}

// Lookup returns the catalog entry for an ink name, or nil if the ink has
// not been registered.
func (c *Catalog) Lookup(name string) *SpotColorInfo {
	return c.byName[NormalizeName(name)]
}

// Len returns the number of inks in the catalog.
func (c *Catalog) Len() int {
	return len(c.spots)
}

// Spots returns the catalog entries in the order of first discovery.
func (c *Catalog) Spots() []*SpotColorInfo {
	return slices.Clone(c.spots)
}

// Names returns the normalised ink names in alphabetical order.
func (c *Catalog) Names() []string {
	keys := maps.Keys(c.byName)
	slices.Sort(keys)
	return keys
}

// AddReference records that the page object or layer with the given ID
// uses the ink.  Each ID is recorded at most once per ink.  The return
// value indicates whether the ink is in the catalog.
func (c *Catalog) AddReference(name, id string) bool {
	info := c.Lookup(name)
	if info == nil {
		return false
	}
	c.addRef(info, id)
	return true
}

func (c *Catalog) addRef(info *SpotColorInfo, id string) {
	key := spotRef{name: info.Name, id: id}
	if _, seen := c.refs[key]; seen {
		return
	}
	c.refs[key] = struct{}{}
	info.References = append(info.References, id)
}

// Merge adds the entries of other to c.
//
// Inks which are already present have their usage counts added and their
// references combined.  New inks are appended in the order of other, and
// receive print order indices following the existing entries.
// The entries of other are not modified.
func (c *Catalog) Merge(other *Catalog) {
	for _, o := range other.spots {
		info, ok := c.byName[o.Name]
		if !ok {
			info = o.Clone()
			info.UsageCount = 0
			info.References = nil
			info.PrintOrder = len(c.spots) + 4
			c.spots = append(c.spots, info)
			c.byName[info.Name] = info
		}
		info.UsageCount += o.UsageCount
		for _, id := range o.References {
			c.addRef(info, id)
		}
	}
}
