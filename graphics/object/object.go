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

// Package object defines the page objects produced by content stream
// analysis.
//
// Every painting operator produces at most one [Object]: a [Path], a
// [Text], an [Image] or a [Shading].  Each object carries a snapshot of the
// relevant graphics state in its [Common] fields.  Objects are not modified
// after they have been created.
package object

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/prepress/graphics"
	"seehuhn.de/go/prepress/graphics/blend"
	"seehuhn.de/go/prepress/graphics/color"
)

// Kind identifies the variant of a page object.
type Kind uint8

// These are the page object variants.
const (
	KindPath Kind = iota + 1
	KindText
	KindImage
	KindShading
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindShading:
		return "shading"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Object is a page object.
type Object interface {
	Kind() Kind
	Base() *Common
}

// Common holds the fields shared by all page objects.
type Common struct {
	// ID is unique within the page.
	ID string

	Bounds Bounds

	// Transform is the CTM in effect when the object was painted.
	Transform matrix.Matrix

	// FillColor and StrokeColor are nil if the object is not filled or
	// not stroked.
	FillColor   *color.ExtendedColor
	StrokeColor *color.ExtendedColor

	Overprint     bool
	OverprintMode int
	Knockout      bool
	BlendMode     blend.Mode
	Opacity       float64

	// LayerID is the optional content group which contains the object,
	// or the empty string.
	LayerID string
}

// Base returns the common fields of the object.
func (c *Common) Base() *Common {
	return c
}

// Colors returns the colours used by the object, fill colour first.
func (c *Common) Colors() []*color.ExtendedColor {
	var res []*color.ExtendedColor
	if c.FillColor != nil {
		res = append(res, c.FillColor)
	}
	if c.StrokeColor != nil {
		res = append(res, c.StrokeColor)
	}
	return res
}

// Stamp returns the common fields of an object painted with the given
// graphics state.  The overprint flag and opacity are taken from the fill
// parameters if the object is filled, and from the stroke parameters
// otherwise.
func Stamp(id string, s *graphics.State, fill, stroke bool) Common {
	c := Common{
		ID:            id,
		Transform:     s.CTM,
		OverprintMode: s.OverprintMode,
		BlendMode:     s.BlendMode,
	}
	if fill {
		c.FillColor = s.FillColor.Clone()
		c.Overprint = s.OverprintFill
		c.Opacity = s.FillAlpha
	} else {
		c.Overprint = s.OverprintStroke
		c.Opacity = s.StrokeAlpha
	}
	if stroke {
		c.StrokeColor = s.StrokeColor.Clone()
	}
	c.Knockout = !c.Overprint
	return c
}
