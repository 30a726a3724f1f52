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

package object

import (
	"unicode/utf8"

	"seehuhn.de/go/prepress"
	"seehuhn.de/go/prepress/graphics"
	"seehuhn.de/go/prepress/graphics/color"
)

// Text is a run of text shown by a single text showing operator.
type Text struct {
	Common

	Content       string
	Font          prepress.Name
	FontSize      float64
	RenderingMode graphics.TextRenderingMode
}

// Kind implements the [Object] interface.
func (t *Text) Kind() Kind { return KindText }

// glyphWidth is the assumed average advance width of a glyph, as a
// fraction of the font size.
const glyphWidth = 0.5

// NewText returns a text object for the given content.
//
// Glyph metrics are not available, so the bounding box is estimated: every
// character is assumed to be half an em wide, and the box is one em high.
// The box starts at the origin of the text space mapped to the page, that
// is at the translation of the text matrix composed with the CTM, and not at
// the CTM translation alone.  After "100 700 Td" the box starts at
// (100, 700).  The result is nil if content is empty.
func NewText(id string, s *graphics.State, content string) *Text {
	if content == "" {
		return nil
	}
	mode := s.TextRendering
	t := &Text{
		Common:        Stamp(id, s, mode.Fills(), mode.Strokes()),
		Content:       content,
		Font:          s.Font,
		FontSize:      s.FontSize,
		RenderingMode: mode,
	}
	x, y := graphics.Apply(s.CTM, s.Tm[4], s.Tm[5])
	size := max(s.FontSize, 0)
	t.Bounds = Bounds{
		X:      x,
		Y:      y,
		Width:  float64(utf8.RuneCountInString(content)) * size * glyphWidth,
		Height: size,
	}
	return t
}

// TextAdvance returns the estimated horizontal displacement, in text space
// units, after showing content with the text state of s.  Character and
// word spacing are included.
func TextAdvance(s *graphics.State, content string) float64 {
	var w float64
	for _, r := range content {
		w += s.FontSize*glyphWidth + s.Tc
		if r == ' ' {
			w += s.Tw
		}
	}
	return w * s.Th
}

// Image is a painted image XObject or inline image.
type Image struct {
	Common

	ImageInfo
}

// Kind implements the [Object] interface.
func (im *Image) Kind() Kind { return KindImage }

// ImageInfo describes the image data, as far as it is known from the
// image dictionary.
type ImageInfo struct {
	// Name is the resource name of an image XObject, and empty for inline
	// images.
	Name prepress.Name

	PixelWidth, PixelHeight int
	BitsPerComponent        int
	ColorSpace              color.Family

	// IsMask is set for stencil masks, which are painted using the
	// current fill colour.
	IsMask bool

	Inline bool
}

// NewImage returns an image object.
//
// The image occupies the unit square in user space, so the bounding box
// starts at the translation of the CTM and its size is given by the scale
// factors of the CTM.  Stencil masks carry the current fill colour.  If
// spot is not nil, the image was painted in a spot colour space and spot
// is used as the fill colour.
func NewImage(id string, s *graphics.State, info ImageInfo, spot *color.ExtendedColor) *Image {
	im := &Image{
		Common:    Stamp(id, s, info.IsMask, false),
		ImageInfo: info,
	}
	if !info.IsMask && spot != nil {
		im.FillColor = spot
		im.Overprint = s.OverprintFill
		im.Knockout = !im.Overprint
		im.Opacity = s.FillAlpha
	}
	im.Bounds = unitSquare(s.CTM)
	return im
}

// Shading is an area painted by the "sh" operator.
type Shading struct {
	Common

	Name        prepress.Name
	ShadingType int
	ColorSpace  color.Family
}

// Kind implements the [Object] interface.
func (sh *Shading) Kind() Kind { return KindShading }

// shadingBounds is used for all shadings, since the shading geometry is
// not decoded.
var shadingBounds = Bounds{Width: 100, Height: 100}

// NewShading returns a shading object.  If the shading uses a spot colour,
// fill should be that colour at full tint, and nil otherwise.
func NewShading(id string, s *graphics.State, name prepress.Name, shadingType int, space color.Space, fill *color.ExtendedColor) *Shading {
	sh := &Shading{
		Common:      Stamp(id, s, false, false),
		Name:        name,
		ShadingType: shadingType,
		ColorSpace:  space.Family,
	}
	sh.Overprint = s.OverprintFill
	sh.Knockout = !sh.Overprint
	sh.Opacity = s.FillAlpha
	sh.FillColor = fill
	sh.Bounds = shadingBounds
	return sh
}
