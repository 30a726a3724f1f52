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

package graphics

import (
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/prepress"
	"seehuhn.de/go/prepress/graphics/blend"
	"seehuhn.de/go/prepress/graphics/color"
)

// State collects the graphics parameters which are relevant for colour
// and separation analysis.
//
// See section 8.4 of PDF 32000-1:2008.
type State struct {
	// CTM is the "current transformation matrix", which maps positions from
	// user coordinates to page coordinates.
	CTM matrix.Matrix

	// FillColor and StrokeColor are the current colours.  A nil value
	// means that painting produces no ink, for example after selecting
	// the colorant None or a colored pattern.
	FillColor   *color.ExtendedColor
	StrokeColor *color.ExtendedColor

	FillSpace   color.Space
	StrokeSpace color.Space

	LineWidth   float64
	LineCap     LineCapStyle
	LineJoin    LineJoinStyle
	MiterLimit  float64
	DashPattern []float64
	DashPhase   float64

	OverprintFill   bool
	OverprintStroke bool
	OverprintMode   int

	BlendMode   blend.Mode
	FillAlpha   float64
	StrokeAlpha float64

	// Text State parameters:
	Font          prepress.Name
	FontSize      float64
	Tc            float64 // character spacing
	Tw            float64 // word spacing
	Th            float64 // horizonal scaling
	Tl            float64 // leading
	TextRise      float64
	TextRendering TextRenderingMode
	Tm            matrix.Matrix // reset at the start of each text object
	Tlm           matrix.Matrix // reset at the start of each text object
}

// NewState returns a new graphics state with default values.
func NewState() *State {
	return &State{
		CTM:         matrix.Identity,
		FillColor:   color.Gray(0, 1),
		StrokeColor: color.Gray(0, 1),
		FillSpace:   color.SpaceDeviceGray,
		StrokeSpace: color.SpaceDeviceGray,
		LineWidth:   1,
		LineCap:     LineCapButt,
		LineJoin:    LineJoinMiter,
		MiterLimit:  10,
		BlendMode:   blend.ModeNormal,
		FillAlpha:   1,
		StrokeAlpha: 1,
		Th:          1,
		Tm:          matrix.Identity,
		Tlm:         matrix.Identity,
	}
}

// Clone returns a copy of the graphics state.  The copy shares no mutable
// data with s.
func (s *State) Clone() *State {
	res := *s
	res.FillColor = s.FillColor.Clone()
	res.StrokeColor = s.StrokeColor.Clone()
	res.DashPattern = slices.Clone(s.DashPattern)
	return &res
}

// Concat applies the transformation m in the current user coordinate
// system.
func (s *State) Concat(m matrix.Matrix) {
	s.CTM = Concat(s.CTM, m)
}

// SetFillGray selects DeviceGray as the fill colour space and sets the
// fill colour.
func (s *State) SetFillGray(g float64) {
	s.FillSpace = color.SpaceDeviceGray
	s.FillColor = color.Gray(g, s.FillAlpha)
}

// SetStrokeGray selects DeviceGray as the stroke colour space and sets
// the stroke colour.
func (s *State) SetStrokeGray(g float64) {
	s.StrokeSpace = color.SpaceDeviceGray
	s.StrokeColor = color.Gray(g, s.StrokeAlpha)
}

// SetFillRGB selects DeviceRGB as the fill colour space and sets the fill
// colour.
func (s *State) SetFillRGB(r, g, b float64) {
	s.FillSpace = color.SpaceDeviceRGB
	s.FillColor = color.RGB(r, g, b, s.FillAlpha)
}

// SetStrokeRGB selects DeviceRGB as the stroke colour space and sets the
// stroke colour.
func (s *State) SetStrokeRGB(r, g, b float64) {
	s.StrokeSpace = color.SpaceDeviceRGB
	s.StrokeColor = color.RGB(r, g, b, s.StrokeAlpha)
}

// SetFillCMYK selects DeviceCMYK as the fill colour space and sets the
// fill colour.
func (s *State) SetFillCMYK(c, m, y, k float64) {
	s.FillSpace = color.SpaceDeviceCMYK
	s.FillColor = color.CMYK(c, m, y, k, s.FillAlpha)
}

// SetStrokeCMYK selects DeviceCMYK as the stroke colour space and sets
// the stroke colour.
func (s *State) SetStrokeCMYK(c, m, y, k float64) {
	s.StrokeSpace = color.SpaceDeviceCMYK
	s.StrokeColor = color.CMYK(c, m, y, k, s.StrokeAlpha)
}

// SetFillSpace selects a new fill colour space and resets the fill colour
// to the initial colour of the space.
func (s *State) SetFillSpace(space color.Space) {
	s.FillSpace = space
	s.FillColor = space.Initial(s.FillAlpha)
}

// SetStrokeSpace selects a new stroke colour space and resets the stroke
// colour to the initial colour of the space.
func (s *State) SetStrokeSpace(space color.Space) {
	s.StrokeSpace = space
	s.StrokeColor = space.Initial(s.StrokeAlpha)
}

// LineCapStyle is the style of the end of a line.
type LineCapStyle uint8

// Possible values for LineCapStyle.
// See section 8.4.3.3 of PDF 32000-1:2008.
const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// LineJoinStyle is the style of the corner of a line.
type LineJoinStyle uint8

// Possible values for LineJoinStyle.
const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

// TextRenderingMode determines whether text is filled, stroked, or used
// as a clipping path.
type TextRenderingMode uint8

// Possible values for TextRenderingMode.
// See section 9.3.6 of ISO 32000-2:2020.
const (
	TextRenderingModeFill TextRenderingMode = iota
	TextRenderingModeStroke
	TextRenderingModeFillStroke
	TextRenderingModeInvisible
	TextRenderingModeFillClip
	TextRenderingModeStrokeClip
	TextRenderingModeFillStrokeClip
	TextRenderingModeClip
)

// Fills reports whether glyphs are filled in this mode.
func (m TextRenderingMode) Fills() bool {
	switch m {
	case TextRenderingModeFill, TextRenderingModeFillStroke,
		TextRenderingModeFillClip, TextRenderingModeFillStrokeClip:
		return true
	}
	return false
}

// Strokes reports whether glyph outlines are stroked in this mode.
func (m TextRenderingMode) Strokes() bool {
	switch m {
	case TextRenderingModeStroke, TextRenderingModeFillStroke,
		TextRenderingModeStrokeClip, TextRenderingModeFillStrokeClip:
		return true
	}
	return false
}
