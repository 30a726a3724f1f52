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
	"errors"
	"fmt"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/prepress"
	"seehuhn.de/go/prepress/internal/colconv"
)

// Family is the name of a PDF colour space family.
type Family string

// Color space families supported by PDF.
const (
	FamilyDeviceGray Family = "DeviceGray"
	FamilyDeviceRGB  Family = "DeviceRGB"
	FamilyDeviceCMYK Family = "DeviceCMYK"
	FamilyCalGray    Family = "CalGray"
	FamilyCalRGB     Family = "CalRGB"
	FamilyLab        Family = "Lab"
	FamilyICCBased   Family = "ICCBased"
	FamilyPattern    Family = "Pattern"
	FamilyIndexed    Family = "Indexed"
	FamilySeparation Family = "Separation"
	FamilyDeviceN    Family = "DeviceN"
)

// IsSpecial reports whether the family is a special color space.
// The special color spaces are Pattern, Indexed, Separation, and DeviceN.
func (f Family) IsSpecial() bool {
	switch f {
	case FamilyPattern, FamilyIndexed, FamilySeparation, FamilyDeviceN:
		return true
	default:
		return false
	}
}

// ErrInvalidSpace is returned by [Resolve] for colour space descriptions
// which cannot be interpreted.
var ErrInvalidSpace = errors.New("invalid colour space")

// Space is a resolved colour space.
type Space struct {
	Family Family

	// N is the number of colour components.  This is 0 for colored
	// patterns.
	N int

	// Colorants holds the ink names of Separation and DeviceN spaces, as
	// given in the colour space description.
	Colorants []string

	// Inks holds the catalog entries for the colorants.  Entries for
	// process colorants are nil.
	Inks []*SpotColorInfo

	// Base is the alternate space of Separation and DeviceN spaces, the
	// base space of Indexed and uncolored Pattern spaces, and the device
	// space used for ICCBased and CIE-based spaces.
	Base *Space

	// Lookup and HiVal describe the colour table of an Indexed space.
	Lookup []byte
	HiVal  int
}

// Device spaces which have no parameters.
var (
	SpaceDeviceGray = Space{Family: FamilyDeviceGray, N: 1}
	SpaceDeviceRGB  = Space{Family: FamilyDeviceRGB, N: 3}
	SpaceDeviceCMYK = Space{Family: FamilyDeviceCMYK, N: 4}
)

// IsProcess reports whether s is one of the device colour spaces.
func (s Space) IsProcess() bool {
	switch s.Family {
	case FamilyDeviceGray, FamilyDeviceRGB, FamilyDeviceCMYK:
		return true
	default:
		return false
	}
}

// Resolve interprets a colour space description.
//
// The description is either a family name or an array starting with the
// family name.  Named colour spaces must be looked up in the resource
// dictionary by the caller.  If cat is not nil, the non-process colorants
// of Separation and DeviceN spaces are registered in the catalog.
func Resolve(desc prepress.Object, cat *Catalog) (Space, error) {
	return resolve(desc, cat, 0)
}

// maxSpaceDepth limits the nesting of colour spaces.
const maxSpaceDepth = 8

func resolve(desc prepress.Object, cat *Catalog, depth int) (Space, error) {
	if depth > maxSpaceDepth {
		return Space{}, fmt.Errorf("%w: nested too deeply", ErrInvalidSpace)
	}

	var family prepress.Name
	var args prepress.Array
	switch desc := desc.(type) {
	case prepress.Name:
		family = desc
	case prepress.Array:
		if len(desc) == 0 {
			return Space{}, fmt.Errorf("%w: empty array", ErrInvalidSpace)
		}
		name, ok := desc[0].(prepress.Name)
		if !ok {
			return Space{}, fmt.Errorf("%w: missing family name", ErrInvalidSpace)
		}
		family = name
		args = desc[1:]
	default:
		return Space{}, fmt.Errorf("%w: unexpected %s", ErrInvalidSpace, prepress.Format(desc))
	}

	switch family {
	case "DeviceGray", "G":
		return SpaceDeviceGray, nil
	case "DeviceRGB", "RGB":
		return SpaceDeviceRGB, nil
	case "DeviceCMYK", "CMYK":
		return SpaceDeviceCMYK, nil

	case "CalGray":
		return Space{Family: FamilyCalGray, N: 1, Base: &SpaceDeviceGray}, nil
	case "CalRGB":
		return Space{Family: FamilyCalRGB, N: 3, Base: &SpaceDeviceRGB}, nil
	case "Lab":
		return Space{Family: FamilyLab, N: 3, Base: &SpaceDeviceRGB}, nil

	case "ICCBased":
		if len(args) < 1 {
			return Space{}, fmt.Errorf("%w: ICCBased without profile", ErrInvalidSpace)
		}
		return resolveICC(args[0], cat, depth)

	case "Pattern":
		if len(args) == 0 {
			return Space{Family: FamilyPattern}, nil
		}
		base, err := resolve(args[0], cat, depth+1)
		if err != nil {
			return Space{}, err
		}
		return Space{Family: FamilyPattern, N: base.N, Base: &base}, nil

	case "Indexed", "I":
		return resolveIndexed(args, cat, depth)

	case "Separation":
		if len(args) < 2 {
			return Space{}, fmt.Errorf("%w: Separation needs 3 arguments", ErrInvalidSpace)
		}
		name, ok := prepress.GetName(args[0])
		if !ok {
			return Space{}, fmt.Errorf("%w: Separation colorant %s", ErrInvalidSpace, prepress.Format(args[0]))
		}
		alt, err := resolve(args[1], nil, depth+1)
		if err != nil {
			return Space{}, err
		}
		if alt.Family.IsSpecial() {
			return Space{}, fmt.Errorf("%w: Separation alternate %s", ErrInvalidSpace, alt.Family)
		}
		res := Space{
			Family:    FamilySeparation,
			N:         1,
			Colorants: []string{string(name)},
			Base:      &alt,
		}
		res.Inks = registerInks(res.Colorants, alt.Family, cat)
		return res, nil

	case "DeviceN":
		if len(args) < 2 {
			return Space{}, fmt.Errorf("%w: DeviceN needs 3 arguments", ErrInvalidSpace)
		}
		names, ok := args[0].(prepress.Array)
		if !ok || len(names) == 0 {
			return Space{}, fmt.Errorf("%w: DeviceN colorants %s", ErrInvalidSpace, prepress.Format(args[0]))
		}
		colorants := make([]string, len(names))
		for i, obj := range names {
			name, ok := prepress.GetName(obj)
			if !ok {
				return Space{}, fmt.Errorf("%w: DeviceN colorant %s", ErrInvalidSpace, prepress.Format(obj))
			}
			colorants[i] = string(name)
		}
		alt, err := resolve(args[1], nil, depth+1)
		if err != nil {
			return Space{}, err
		}
		if alt.Family.IsSpecial() {
			return Space{}, fmt.Errorf("%w: DeviceN alternate %s", ErrInvalidSpace, alt.Family)
		}
		res := Space{
			Family:    FamilyDeviceN,
			N:         len(colorants),
			Colorants: colorants,
			Base:      &alt,
		}
		res.Inks = registerInks(colorants, alt.Family, cat)
		return res, nil

	default:
		return Space{}, fmt.Errorf("%w: unknown family %q", ErrInvalidSpace, string(family))
	}
}

func registerInks(colorants []string, alt Family, cat *Catalog) []*SpotColorInfo {
	inks := make([]*SpotColorInfo, len(colorants))
	if cat == nil {
		return inks
	}
	for i, name := range colorants {
		if IsProcessColorant(name) {
			continue
		}
		inks[i] = cat.Register(name, alt)
	}
	return inks
}

func resolveICC(obj prepress.Object, cat *Catalog, depth int) (Space, error) {
	stm, _ := obj.(*prepress.Stream)
	if stm == nil {
		return Space{}, fmt.Errorf("%w: ICCBased profile is not a stream", ErrInvalidSpace)
	}

	var base Space
	if p, err := icc.Decode(stm.Data); err == nil {
		switch p.ColorSpace {
		case icc.GraySpace:
			base = SpaceDeviceGray
		case icc.RGBSpace:
			base = SpaceDeviceRGB
		case icc.CMYKSpace:
			base = SpaceDeviceCMYK
		case icc.CIELabSpace:
			base = Space{Family: FamilyLab, N: 3, Base: &SpaceDeviceRGB}
		}
	}
	if base.Family == "" {
		if alt, ok := stm.Dict["Alternate"]; ok {
			if s, err := resolve(alt, cat, depth+1); err == nil && s.N > 0 {
				base = s
			}
		}
	}
	if base.Family == "" {
		n, _ := prepress.GetNumber(stm.Dict["N"])
		switch n {
		case 1:
			base = SpaceDeviceGray
		case 3:
			base = SpaceDeviceRGB
		case 4:
			base = SpaceDeviceCMYK
		default:
			return Space{}, fmt.Errorf("%w: ICCBased with %g components", ErrInvalidSpace, n)
		}
	}
	return Space{Family: FamilyICCBased, N: base.N, Base: &base}, nil
}

func resolveIndexed(args prepress.Array, cat *Catalog, depth int) (Space, error) {
	if len(args) < 3 {
		return Space{}, fmt.Errorf("%w: Indexed needs 3 arguments", ErrInvalidSpace)
	}
	base, err := resolve(args[0], cat, depth+1)
	if err != nil {
		return Space{}, err
	}
	if base.N == 0 || base.Family == FamilyIndexed {
		return Space{}, fmt.Errorf("%w: invalid Indexed base %s", ErrInvalidSpace, base.Family)
	}
	hiVal, ok := prepress.GetNumber(args[1])
	if !ok || hiVal < 0 || hiVal > 255 {
		return Space{}, fmt.Errorf("%w: Indexed hival %s", ErrInvalidSpace, prepress.Format(args[1]))
	}

	var lookup []byte
	switch x := args[2].(type) {
	case prepress.String:
		lookup = []byte(x)
	case *prepress.Stream:
		lookup = x.Data
	default:
		return Space{}, fmt.Errorf("%w: Indexed lookup %s", ErrInvalidSpace, prepress.Format(args[2]))
	}
	if len(lookup) < (int(hiVal)+1)*base.N {
		return Space{}, fmt.Errorf("%w: Indexed lookup table too short", ErrInvalidSpace)
	}

	return Space{
		Family: FamilyIndexed,
		N:      1,
		Base:   &base,
		Lookup: lookup,
		HiVal:  int(hiVal),
	}, nil
}

// Initial returns the initial colour which is set when s becomes the
// current colour space.  The result is nil for colored patterns and for
// spaces which do not produce any ink.
func (s Space) Initial(alpha float64) *ExtendedColor {
	switch s.Family {
	case FamilyDeviceCMYK:
		return CMYK(0, 0, 0, 1, alpha)
	case FamilySeparation, FamilyDeviceN:
		comps := make([]float64, s.N)
		for i := range comps {
			comps[i] = 1
		}
		col, _ := s.Color(comps, alpha)
		return col
	case FamilyICCBased:
		if s.Base.Family == FamilyDeviceCMYK {
			return CMYK(0, 0, 0, 1, alpha)
		}
	case FamilyPattern:
		return nil
	}
	col, _ := s.Color(make([]float64, s.N), alpha)
	return col
}

// Color converts the operands of a colour setting operator into a colour.
//
// The result is nil, without an error, for the colorant None, for colored
// patterns, and for spot inks which were resolved without a catalog.
func (s Space) Color(comps []float64, alpha float64) (*ExtendedColor, error) {
	if len(comps) != s.N {
		return nil, fmt.Errorf("%s colour needs %d components, got %d",
			s.Family, s.N, len(comps))
	}

	switch s.Family {
	case FamilyDeviceGray:
		return Gray(comps[0], alpha), nil
	case FamilyDeviceRGB:
		return RGB(comps[0], comps[1], comps[2], alpha), nil
	case FamilyDeviceCMYK:
		return CMYK(comps[0], comps[1], comps[2], comps[3], alpha), nil

	case FamilyLab:
		r, g, b := colconv.LabToDeviceRGB(comps[0], comps[1], comps[2])
		return RGB(r, g, b, alpha), nil

	case FamilyCalGray, FamilyCalRGB, FamilyICCBased:
		return s.Base.Color(comps, alpha)

	case FamilyIndexed:
		idx := int(comps[0] + 0.5)
		idx = max(0, min(idx, s.HiVal))
		n := s.Base.N
		entry := s.Lookup[idx*n : (idx+1)*n]
		baseComps := make([]float64, n)
		for i, b := range entry {
			baseComps[i] = float64(b) / 255
		}
		if s.Base.Family == FamilyLab {
			baseComps[0] *= 100
			baseComps[1] = float64(entry[1]) - 128
			baseComps[2] = float64(entry[2]) - 128
		}
		return s.Base.Color(baseComps, alpha)

	case FamilySeparation:
		if ink := s.Inks[0]; ink != nil {
			return SpotTint(ink, comps[0], alpha), nil
		}
		return processColorant(s.Colorants[0], comps[0], alpha), nil

	case FamilyDeviceN:
		best := -1
		for i, ink := range s.Inks {
			if ink != nil && (best < 0 || comps[i] > comps[best]) {
				best = i
			}
		}
		if best >= 0 {
			col := SpotTint(s.Inks[best], comps[best], alpha)
			for i, ink := range s.Inks {
				if ink != nil && i != best && comps[i] > 0 {
					col.Others = append(col.Others, ink)
				}
			}
			return col, nil
		}
		var v [4]float64
		for i, name := range s.Colorants {
			switch name {
			case "Cyan":
				v[0] = max(v[0], comps[i])
			case "Magenta":
				v[1] = max(v[1], comps[i])
			case "Yellow":
				v[2] = max(v[2], comps[i])
			case "Black":
				v[3] = max(v[3], comps[i])
			case "All":
				for j := range v {
					v[j] = max(v[j], comps[i])
				}
			}
		}
		return CMYK(v[0], v[1], v[2], v[3], alpha), nil

	case FamilyPattern:
		if s.Base != nil {
			return s.Base.Color(comps, alpha)
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: unknown family %q", ErrInvalidSpace, string(s.Family))
	}
}

// processColorant returns the colour for a Separation space which uses
// one of the reserved colorant names.
func processColorant(name string, t, alpha float64) *ExtendedColor {
	switch name {
	case "Cyan":
		return CMYK(t, 0, 0, 0, alpha)
	case "Magenta":
		return CMYK(0, t, 0, 0, alpha)
	case "Yellow":
		return CMYK(0, 0, t, 0, alpha)
	case "Black":
		return CMYK(0, 0, 0, t, alpha)
	case "All":
		return CMYK(t, t, t, t, alpha)
	default:
		return nil
	}
}
