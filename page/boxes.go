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

// Package page describes the geometry of a PDF page.
package page

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/prepress"
)

// PDF 2.0 sections: 14.11.2

// Boxes holds the page boundaries.  Only MediaBox is required, the other
// boxes are zero if they are not given for the page.
type Boxes struct {
	// MediaBox defines the boundaries of the physical medium on which the
	// page is printed.
	MediaBox rect.Rect

	// CropBox defines the visible region of the page.
	// Default: MediaBox.
	CropBox rect.Rect

	// BleedBox defines the clipping region for production output.
	// Default: CropBox.
	BleedBox rect.Rect

	// TrimBox defines the intended dimensions after trimming.
	// Default: CropBox.
	TrimBox rect.Rect

	// ArtBox defines the extent of the page's meaningful content.
	// Default: CropBox.
	ArtBox rect.Rect
}

// EffectiveCropBox returns the crop box, or the media box if no crop box
// is set.
func (b *Boxes) EffectiveCropBox() rect.Rect {
	if isZero(b.CropBox) {
		return b.MediaBox
	}
	return b.CropBox
}

// EffectiveBleedBox returns the bleed box, falling back to the crop box.
func (b *Boxes) EffectiveBleedBox() rect.Rect {
	return b.orCrop(b.BleedBox)
}

// EffectiveTrimBox returns the trim box, falling back to the crop box.
func (b *Boxes) EffectiveTrimBox() rect.Rect {
	return b.orCrop(b.TrimBox)
}

// EffectiveArtBox returns the art box, falling back to the crop box.
func (b *Boxes) EffectiveArtBox() rect.Rect {
	return b.orCrop(b.ArtBox)
}

func (b *Boxes) orCrop(r rect.Rect) rect.Rect {
	if isZero(r) {
		return b.EffectiveCropBox()
	}
	return r
}

// Normalize orders the corners of all boxes, so that the lower-left corner
// comes first.
func (b *Boxes) Normalize() {
	for _, r := range []*rect.Rect{&b.MediaBox, &b.CropBox, &b.BleedBox, &b.TrimBox, &b.ArtBox} {
		*r = normalize(*r)
	}
}

// Bleed returns the distance by which the bleed box extends beyond the
// trim box on each side: left, bottom, right, top.
func (b *Boxes) Bleed() [4]float64 {
	bleed := normalize(b.EffectiveBleedBox())
	trim := normalize(b.EffectiveTrimBox())
	return [4]float64{
		trim.LLx - bleed.LLx,
		trim.LLy - bleed.LLy,
		bleed.URx - trim.URx,
		bleed.URy - trim.URy,
	}
}

func normalize(r rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(r.LLx, r.URx),
		LLy: min(r.LLy, r.URy),
		URx: max(r.LLx, r.URx),
		URy: max(r.LLy, r.URy),
	}
}

func isZero(r rect.Rect) bool {
	return r == rect.Rect{}
}

var errMediaBox = errors.New("missing or invalid MediaBox")

// DecodeBoxes reads the page boundaries from a page dictionary.
// Malformed optional boxes are ignored.
func DecodeBoxes(dict prepress.Dict) (*Boxes, error) {
	b := &Boxes{}
	var ok bool
	b.MediaBox, ok = decodeRect(dict["MediaBox"])
	if !ok {
		return nil, errMediaBox
	}
	b.CropBox, _ = decodeRect(dict["CropBox"])
	b.BleedBox, _ = decodeRect(dict["BleedBox"])
	b.TrimBox, _ = decodeRect(dict["TrimBox"])
	b.ArtBox, _ = decodeRect(dict["ArtBox"])
	b.Normalize()
	return b, nil
}

func decodeRect(obj prepress.Object) (rect.Rect, bool) {
	arr, ok := obj.(prepress.Array)
	if !ok || len(arr) != 4 {
		return rect.Rect{}, false
	}
	var v [4]float64
	for i, item := range arr {
		v[i], ok = prepress.GetNumber(item)
		if !ok {
			return rect.Rect{}, false
		}
	}
	return rect.Rect{LLx: v[0], LLy: v[1], URx: v[2], URy: v[3]}, true
}

func (b *Boxes) String() string {
	r := b.EffectiveTrimBox()
	return fmt.Sprintf("trim [%g %g %g %g]", r.LLx, r.LLy, r.URx, r.URy)
}
