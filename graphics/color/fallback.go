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

import "strings"

var commonColors = []struct {
	token string
	cmyk  CMYKValues
}{
	{"red", CMYKValues{0, 1, 1, 0}},
	{"blue", CMYKValues{1, 1, 0, 0}},
	{"green", CMYKValues{1, 0, 1, 0}},
	{"yellow", CMYKValues{0, 0, 1, 0}},
	{"orange", CMYKValues{0, 0.5, 1, 0}},
	{"purple", CMYKValues{0.5, 1, 0, 0}},
	{"gold", CMYKValues{0, 0.2, 0.6, 0.2}},
	{"silver", CMYKValues{0, 0, 0, 0.3}},
	{"white", CMYKValues{0, 0, 0, 0}},
	{"black", CMYKValues{0, 0, 0, 1}},
}

// defaultFallback is used for inks where nothing is known about the colour.
var defaultFallback = CMYKValues{K: 0.5}

// EstimateFallback guesses a process colour approximation for an ink.
//
// The reference library is consulted first.  If the library does not know
// the ink, common colour words in the name are used.  Unknown inks are
// approximated as 50% black.
func EstimateFallback(name string, lib *Library) CMYKValues {
	if e, ok := lib.Lookup(name); ok {
		return e.CMYK
	}
	lower := strings.ToLower(name)
	for _, c := range commonColors {
		if strings.Contains(lower, c.token) {
			return c.cmyk
		}
	}
	return defaultFallback
}
