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

import "seehuhn.de/go/prepress/internal/colconv"

// MatchOptions controls how inks are matched against a reference library.
type MatchOptions struct {
	// MaxDeltaE is the largest colour difference for which a library
	// entry is reported as a match.  Matches by name are always reported.
	MaxDeltaE float64

	// ExactDeltaE is the colour difference below which a match by name
	// is considered exact.
	ExactDeltaE float64
}

// These are the thresholds used when no MatchOptions are given.
const (
	DefaultMaxDeltaE   = 10
	DefaultExactDeltaE = 1
)

var defaultMatchOptions = MatchOptions{
	MaxDeltaE:   DefaultMaxDeltaE,
	ExactDeltaE: DefaultExactDeltaE,
}

// DeltaE returns the CIE76 colour difference between two process colours.
func DeltaE(p, q CMYKValues) float64 {
	return colconv.DeltaECMYK(p.Array(), q.Array())
}

// Match finds the library entry which best describes an ink.
//
// If the library contains the ink name, this entry is returned and the
// match is exact if the colour difference is below opt.ExactDeltaE.
// Otherwise the entry with the smallest colour difference is returned,
// provided the difference is below opt.MaxDeltaE.  The result is nil if no
// entry qualifies.
func (lib *Library) Match(name string, fallback CMYKValues, opt *MatchOptions) *LibraryMatch {
	if lib == nil || len(lib.Entries) == 0 {
		return nil
	}
	if opt == nil {
		opt = &defaultMatchOptions
	}

	if e, ok := lib.Lookup(name); ok {
		dE := DeltaE(fallback, e.CMYK)
		return &LibraryMatch{
			Library: lib.Name,
			Name:    e.Name,
			DeltaE:  dE,
			Exact:   dE < opt.ExactDeltaE,
		}
	}

	best := -1
	bestDE := 0.0
	for i, e := range lib.Entries {
		dE := DeltaE(fallback, e.CMYK)
		if best < 0 || dE < bestDE {
			best = i
			bestDE = dE
		}
	}
	if bestDE >= opt.MaxDeltaE {
		return nil
	}
	return &LibraryMatch{
		Library: lib.Name,
		Name:    lib.Entries[best].Name,
		DeltaE:  bestDE,
	}
}
