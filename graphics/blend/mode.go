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

package blend

import (
	"errors"
	"fmt"

	"seehuhn.de/go/prepress"
)

// PDF 2.0 sections: 8.4.5, 11.3.5, 11.6.3

// Mode represents a PDF blend mode.
type Mode uint8

// The standard blend modes (section 11.3.5).
const (
	ModeNormal Mode = iota
	ModeMultiply
	ModeScreen
	ModeOverlay
	ModeDarken
	ModeLighten
	ModeColorDodge
	ModeColorBurn
	ModeHardLight
	ModeSoftLight
	ModeDifference
	ModeExclusion
	ModeHue
	ModeSaturation
	ModeColor
	ModeLuminosity
)

var modeNames = [...]prepress.Name{
	ModeNormal:     "Normal",
	ModeMultiply:   "Multiply",
	ModeScreen:     "Screen",
	ModeOverlay:    "Overlay",
	ModeDarken:     "Darken",
	ModeLighten:    "Lighten",
	ModeColorDodge: "ColorDodge",
	ModeColorBurn:  "ColorBurn",
	ModeHardLight:  "HardLight",
	ModeSoftLight:  "SoftLight",
	ModeDifference: "Difference",
	ModeExclusion:  "Exclusion",
	ModeHue:        "Hue",
	ModeSaturation: "Saturation",
	ModeColor:      "Color",
	ModeLuminosity: "Luminosity",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return string(modeNames[m])
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// IsSeparable reports whether the mode acts on each colour component
// independently.
func (m Mode) IsSeparable() bool {
	return m < ModeHue
}

// ParseName returns the blend mode with the given name.
// The deprecated name "Compatible" is treated as "Normal".
func ParseName(name prepress.Name) (Mode, bool) {
	if name == "Compatible" {
		return ModeNormal, true
	}
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return ModeNormal, false
}

// ErrInvalid is returned by [Parse] for unrecognised blend modes.
var ErrInvalid = errors.New("invalid blend mode")

// Parse interprets the value of a /BM entry.
//
// This handles both the name form and the deprecated array form.  For
// arrays, the first recognised name is used.
func Parse(obj prepress.Object) (Mode, error) {
	switch v := obj.(type) {
	case prepress.Name:
		if m, ok := ParseName(v); ok {
			return m, nil
		}
	case prepress.Array:
		for _, elem := range v {
			name, ok := elem.(prepress.Name)
			if !ok {
				continue // skip malformed entries
			}
			if m, ok := ParseName(name); ok {
				return m, nil
			}
		}
	}
	return ModeNormal, fmt.Errorf("%w: %s", ErrInvalid, prepress.Format(obj))
}
