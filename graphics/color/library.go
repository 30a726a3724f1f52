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
	"strings"

	"golang.org/x/text/cases"
)

// LibraryEntry is a named reference ink.
type LibraryEntry struct {
	Name string
	CMYK CMYKValues
}

// Library is a collection of reference inks.
type Library struct {
	Name    string
	Entries []LibraryEntry

	keys []string
}

// NewLibrary returns a library with the given entries.
// The order of entries determines the result of ambiguous lookups.
func NewLibrary(name string, entries []LibraryEntry) *Library {
	lib := &Library{
		Name:    name,
		Entries: entries,
		keys:    make([]string, len(entries)),
	}
	for i, e := range entries {
		lib.keys[i] = libraryKey(e.Name)
	}
	return lib
}

// minSubstring is the shortest key which is used for substring matches.
const minSubstring = 3

// Lookup finds the library entry for an ink name.
//
// Names are compared without regard to case and without a "PANTONE" prefix.
// An entry with an equal key is preferred.  Otherwise the first entry
// whose key contains the name, or is contained in the name, is returned.
func (lib *Library) Lookup(name string) (LibraryEntry, bool) {
	if lib == nil {
		return LibraryEntry{}, false
	}
	key := libraryKey(name)
	if key == "" {
		return LibraryEntry{}, false
	}
	for i, k := range lib.keys {
		if k == key {
			return lib.Entries[i], true
		}
	}
	for i, k := range lib.keys {
		if len(key) >= minSubstring && strings.Contains(k, key) ||
			len(k) >= minSubstring && strings.Contains(key, k) {
			return lib.Entries[i], true
		}
	}
	return LibraryEntry{}, false
}

func libraryKey(name string) string {
	s := strings.Join(strings.Fields(name), " ")
	s = cases.Fold().String(s)
	s = strings.TrimPrefix(s, "pantone ")
	return s
}

// PantoneSolidCoated returns a small reference library of PANTONE solid
// coated inks with their published CMYK approximations.
func PantoneSolidCoated() *Library {
	return NewLibrary("PANTONE Solid Coated", []LibraryEntry{
		{"PANTONE Reflex Blue C", CMYKValues{1, 0.77, 0, 0.02}},
		{"PANTONE Process Blue C", CMYKValues{1, 0.13, 0, 0.02}},
		{"PANTONE 185 C", CMYKValues{0, 0.91, 0.76, 0}},
		{"PANTONE 186 C", CMYKValues{0, 1, 0.81, 0.04}},
		{"PANTONE 286 C", CMYKValues{1, 0.66, 0, 0.02}},
		{"PANTONE 300 C", CMYKValues{1, 0.44, 0, 0}},
		{"PANTONE 354 C", CMYKValues{0.80, 0, 0.90, 0}},
		{"PANTONE Green C", CMYKValues{1, 0, 0.59, 0}},
		{"PANTONE Yellow C", CMYKValues{0, 0.01, 1, 0}},
		{"PANTONE Orange 021 C", CMYKValues{0, 0.65, 1, 0}},
		{"PANTONE Warm Red C", CMYKValues{0, 0.75, 0.90, 0}},
		{"PANTONE Rubine Red C", CMYKValues{0, 1, 0.15, 0.04}},
		{"PANTONE Purple C", CMYKValues{0.38, 0.88, 0, 0}},
		{"PANTONE Violet C", CMYKValues{0.89, 1, 0, 0}},
		{"PANTONE Black C", CMYKValues{0.63, 0.62, 0.59, 0.94}},
		{"PANTONE 877 C", CMYKValues{0, 0, 0, 0.4}},
		{"PANTONE 871 C", CMYKValues{0.2, 0.3, 0.7, 0.15}},
	})
}
