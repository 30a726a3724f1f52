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

// Package extgstate decodes PDF extended graphics state dictionaries.
package extgstate

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/prepress"
	"seehuhn.de/go/prepress/graphics"
	"seehuhn.de/go/prepress/graphics/blend"
)

// PDF 2.0 sections: 8.4.5

// Bits is a bit mask for the fields of an ExtGState.
type Bits uint32

// Possible values for Bits.
const (
	LineWidth Bits = 1 << iota
	LineCap
	LineJoin
	MiterLimit
	LineDash
	FontSize
	BlendMode
	StrokeAlpha
	FillAlpha
	OverprintStroke
	OverprintFill
	OverprintMode
)

// ExtGState represents the subset of an extended graphics state dictionary
// which affects the analysis of a page.
// Parameters not present in the ExtGState struct, for example colors,
// cannot be controlled using an extended graphics state.
type ExtGState struct {
	// Set indicates which parameters in this ExtGState are active.
	Set Bits

	LineWidth   float64
	LineCap     graphics.LineCapStyle
	LineJoin    graphics.LineJoinStyle
	MiterLimit  float64
	DashPattern []float64
	DashPhase   float64

	// FontSize is taken from the /Font entry.  The font itself is an
	// indirect reference and is not tracked.
	FontSize float64

	BlendMode   blend.Mode
	StrokeAlpha float64
	FillAlpha   float64

	OverprintStroke bool
	OverprintFill   bool
	OverprintMode   int
}

var errMalformed = errors.New("malformed ExtGState")

// Decode reads an extended graphics state dictionary.
//
// Unknown entries are ignored.  If an entry has an invalid value, an error
// is returned and the dictionary should not be applied.
func Decode(dict prepress.Dict) (*ExtGState, error) {
	e := &ExtGState{}

	number := func(key prepress.Name) (float64, bool, error) {
		obj, ok := dict[key]
		if !ok {
			return 0, false, nil
		}
		x, ok := prepress.GetNumber(obj)
		if !ok {
			return 0, false, fmt.Errorf("%w: /%s %s", errMalformed, key, prepress.Format(obj))
		}
		return x, true, nil
	}
	boolean := func(key prepress.Name) (bool, bool, error) {
		obj, ok := dict[key]
		if !ok {
			return false, false, nil
		}
		b, ok := obj.(prepress.Bool)
		if !ok {
			return false, false, fmt.Errorf("%w: /%s %s", errMalformed, key, prepress.Format(obj))
		}
		return bool(b), true, nil
	}

	if x, ok, err := number("LW"); err != nil {
		return nil, err
	} else if ok {
		if x < 0 {
			return nil, fmt.Errorf("%w: negative line width", errMalformed)
		}
		e.LineWidth = x
		e.Set |= LineWidth
	}
	if x, ok, err := number("LC"); err != nil {
		return nil, err
	} else if ok {
		if x < 0 || x > 2 {
			return nil, fmt.Errorf("%w: line cap %g", errMalformed, x)
		}
		e.LineCap = graphics.LineCapStyle(x)
		e.Set |= LineCap
	}
	if x, ok, err := number("LJ"); err != nil {
		return nil, err
	} else if ok {
		if x < 0 || x > 2 {
			return nil, fmt.Errorf("%w: line join %g", errMalformed, x)
		}
		e.LineJoin = graphics.LineJoinStyle(x)
		e.Set |= LineJoin
	}
	if x, ok, err := number("ML"); err != nil {
		return nil, err
	} else if ok {
		e.MiterLimit = x
		e.Set |= MiterLimit
	}
	if obj, ok := dict["D"]; ok {
		arr, _ := obj.(prepress.Array)
		if len(arr) != 2 {
			return nil, fmt.Errorf("%w: /D %s", errMalformed, prepress.Format(obj))
		}
		pattern, ok := numbers(arr[0])
		phase, ok2 := prepress.GetNumber(arr[1])
		if !ok || !ok2 {
			return nil, fmt.Errorf("%w: /D %s", errMalformed, prepress.Format(obj))
		}
		e.DashPattern = pattern
		e.DashPhase = phase
		e.Set |= LineDash
	}
	if obj, ok := dict["Font"]; ok {
		arr, _ := obj.(prepress.Array)
		if len(arr) != 2 {
			return nil, fmt.Errorf("%w: /Font %s", errMalformed, prepress.Format(obj))
		}
		size, ok := prepress.GetNumber(arr[1])
		if !ok {
			return nil, fmt.Errorf("%w: /Font %s", errMalformed, prepress.Format(obj))
		}
		e.FontSize = size
		e.Set |= FontSize
	}
	if obj, ok := dict["BM"]; ok {
		mode, err := blend.Parse(obj)
		if err != nil {
			return nil, err
		}
		e.BlendMode = mode
		e.Set |= BlendMode
	}
	if x, ok, err := number("CA"); err != nil {
		return nil, err
	} else if ok {
		e.StrokeAlpha = clip01(x)
		e.Set |= StrokeAlpha
	}
	if x, ok, err := number("ca"); err != nil {
		return nil, err
	} else if ok {
		e.FillAlpha = clip01(x)
		e.Set |= FillAlpha
	}

	// /OP sets both overprint flags, unless /op is also present.
	if b, ok, err := boolean("OP"); err != nil {
		return nil, err
	} else if ok {
		e.OverprintStroke = b
		e.OverprintFill = b
		e.Set |= OverprintStroke | OverprintFill
	}
	if b, ok, err := boolean("op"); err != nil {
		return nil, err
	} else if ok {
		e.OverprintFill = b
		e.Set |= OverprintFill
	}
	if x, ok, err := number("OPM"); err != nil {
		return nil, err
	} else if ok {
		if x != 0 && x != 1 {
			return nil, fmt.Errorf("%w: overprint mode %g", errMalformed, x)
		}
		e.OverprintMode = int(x)
		e.Set |= OverprintMode
	}

	return e, nil
}

// ApplyTo modifies the given graphics state according to the parameters in
// the extended graphics state.
func (e *ExtGState) ApplyTo(s *graphics.State) {
	set := e.Set

	if set&LineWidth != 0 {
		s.LineWidth = e.LineWidth
	}
	if set&LineCap != 0 {
		s.LineCap = e.LineCap
	}
	if set&LineJoin != 0 {
		s.LineJoin = e.LineJoin
	}
	if set&MiterLimit != 0 {
		s.MiterLimit = e.MiterLimit
	}
	if set&LineDash != 0 {
		s.DashPattern = slices.Clone(e.DashPattern)
		s.DashPhase = e.DashPhase
	}
	if set&FontSize != 0 {
		s.FontSize = e.FontSize
	}
	if set&BlendMode != 0 {
		s.BlendMode = e.BlendMode
	}
	if set&StrokeAlpha != 0 {
		s.StrokeAlpha = e.StrokeAlpha
	}
	if set&FillAlpha != 0 {
		s.FillAlpha = e.FillAlpha
	}
	if set&OverprintStroke != 0 {
		s.OverprintStroke = e.OverprintStroke
	}
	if set&OverprintFill != 0 {
		s.OverprintFill = e.OverprintFill
	}
	if set&OverprintMode != 0 {
		s.OverprintMode = e.OverprintMode
	}
}

func numbers(obj prepress.Object) ([]float64, bool) {
	arr, ok := obj.(prepress.Array)
	if !ok {
		return nil, false
	}
	res := make([]float64, len(arr))
	for i, elem := range arr {
		x, ok := prepress.GetNumber(elem)
		if !ok || x < 0 {
			return nil, false
		}
		res[i] = x
	}
	return res, true
}

func clip01(x float64) float64 {
	return max(0, min(1, x))
}
