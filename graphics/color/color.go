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
	"fmt"
	"slices"

	"seehuhn.de/go/prepress/internal/colconv"
)

// Kind identifies the variant of an [ExtendedColor].
type Kind int

// These are the supported colour kinds.
const (
	KindGray Kind = iota
	KindRGB
	KindCMYK
	KindSpot
)

func (k Kind) String() string {
	switch k {
	case KindGray:
		return "Gray"
	case KindRGB:
		return "RGB"
	case KindCMYK:
		return "CMYK"
	case KindSpot:
		return "Spot"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ExtendedColor is a resolved process or spot colour.
type ExtendedColor struct {
	Kind Kind

	// Values holds the colour components: one value for KindGray,
	// three for KindRGB and four for KindCMYK.  Unused entries are zero.
	Values [4]float64

	// Tint is the tint of a spot colour, and 1 for process colours.
	Tint float64

	// Alpha is the opacity in effect when the colour was set.
	Alpha float64

	// Spot is the catalog entry for KindSpot colours.
	Spot *SpotColorInfo

	// Others lists the remaining spot inks of a DeviceN colour which have
	// a non-zero component.  Spot is the dominant ink.
	Others []*SpotColorInfo
}

// Gray returns a DeviceGray colour.
func Gray(g, alpha float64) *ExtendedColor {
	return &ExtendedColor{
		Kind:   KindGray,
		Values: [4]float64{unit(g)},
		Tint:   1,
		Alpha:  unit(alpha),
	}
}

// RGB returns a DeviceRGB colour.
func RGB(r, g, b, alpha float64) *ExtendedColor {
	return &ExtendedColor{
		Kind:   KindRGB,
		Values: [4]float64{unit(r), unit(g), unit(b)},
		Tint:   1,
		Alpha:  unit(alpha),
	}
}

// CMYK returns a DeviceCMYK colour.
func CMYK(c, m, y, k, alpha float64) *ExtendedColor {
	return &ExtendedColor{
		Kind:   KindCMYK,
		Values: [4]float64{unit(c), unit(m), unit(y), unit(k)},
		Tint:   1,
		Alpha:  unit(alpha),
	}
}

// SpotTint returns a spot colour with the given tint.
func SpotTint(spot *SpotColorInfo, tint, alpha float64) *ExtendedColor {
	return &ExtendedColor{
		Kind:  KindSpot,
		Tint:  unit(tint),
		Alpha: unit(alpha),
		Spot:  spot,
	}
}

// Clone returns a copy of c.  The catalog entry of a spot colour is shared.
func (c *ExtendedColor) Clone() *ExtendedColor {
	if c == nil {
		return nil
	}
	res := *c
	res.Others = slices.Clone(c.Others)
	return &res
}

// CMYKEquivalent returns an approximation of the colour in DeviceCMYK.
// Spot colours use the fallback of their catalog entry, scaled by the tint.
func (c *ExtendedColor) CMYKEquivalent() CMYKValues {
	switch c.Kind {
	case KindGray:
		return CMYKValues{K: 1 - c.Values[0]}
	case KindRGB:
		cc, m, y, k := colconv.RGBToCMYK(c.Values[0], c.Values[1], c.Values[2])
		return CMYKValues{C: cc, M: m, Y: y, K: k}
	case KindCMYK:
		return CMYKValues{C: c.Values[0], M: c.Values[1], Y: c.Values[2], K: c.Values[3]}
	case KindSpot:
		if c.Spot == nil {
			return CMYKValues{}
		}
		f := c.Spot.Fallback
		return CMYKValues{C: f.C * c.Tint, M: f.M * c.Tint, Y: f.Y * c.Tint, K: f.K * c.Tint}
	default:
		return CMYKValues{}
	}
}

// IsRichBlack reports whether c is a DeviceCMYK black built with additional
// cyan, magenta or yellow ink.
func (c *ExtendedColor) IsRichBlack() bool {
	if c.Kind != KindCMYK {
		return false
	}
	v := c.Values
	return v[3] >= 0.9 && v[0]+v[1]+v[2] > 0
}

// IsRegistration reports whether c prints on all separations, as used for
// registration marks.
func (c *ExtendedColor) IsRegistration() bool {
	switch c.Kind {
	case KindCMYK:
		v := c.Values
		return v[0] >= 0.99 && v[1] >= 0.99 && v[2] >= 0.99 && v[3] >= 0.99
	case KindSpot:
		return c.Spot != nil && c.Spot.Type == SpotTechnical
	default:
		return false
	}
}

func (c *ExtendedColor) String() string {
	switch c.Kind {
	case KindGray:
		return fmt.Sprintf("Gray(%g)", c.Values[0])
	case KindRGB:
		return fmt.Sprintf("RGB(%g %g %g)", c.Values[0], c.Values[1], c.Values[2])
	case KindCMYK:
		return fmt.Sprintf("CMYK(%g %g %g %g)", c.Values[0], c.Values[1], c.Values[2], c.Values[3])
	case KindSpot:
		name := "?"
		if c.Spot != nil {
			name = c.Spot.Name
		}
		return fmt.Sprintf("Spot(%q %g)", name, c.Tint)
	default:
		return c.Kind.String()
	}
}

// CMYKValues holds the four components of a process colour.
type CMYKValues struct {
	C, M, Y, K float64
}

// Array returns the components as an array.
func (v CMYKValues) Array() [4]float64 {
	return [4]float64{v.C, v.M, v.Y, v.K}
}

// unit clips x to the range [0, 1].
func unit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
