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

package content

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/prepress"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/object"
)

// xObject paints the XObject with the given name.
func (ip *Interpreter) xObject(name prepress.Name) error {
	x, ok := ip.res.XObject[name]
	if !ok || x == nil {
		return fmt.Errorf("%w: XObject %q", errUnknownResource, name)
	}

	switch {
	case x.IsImage():
		info := ip.imageInfo(x.Dict, false)
		info.Name = name
		ip.paintImage(info, x.Dict["ColorSpace"])
		return nil
	case x.IsForm():
		return ip.form(x)
	default:
		return fmt.Errorf("XObject %q: unsupported subtype %s",
			name, prepress.Format(x.Dict["Subtype"]))
	}
}

// form interprets the content of a form XObject.
func (ip *Interpreter) form(x *XObject) error {
	if ip.formDepth >= maxFormDepth {
		return errNesting
	}

	var m matrix.Matrix
	if arr, ok := x.Dict["Matrix"].(prepress.Array); ok && len(arr) == 6 {
		for i, obj := range arr {
			v, ok := prepress.GetNumber(obj)
			if !ok {
				return fmt.Errorf("invalid form matrix %s", prepress.Format(arr))
			}
			m[i] = v
		}
	} else {
		m = matrix.Identity
	}

	ip.stack.Save()
	ip.stack.Current.Concat(m)
	savedFloor := ip.floor
	ip.floor = ip.stack.Depth()

	savedRes := ip.res
	if x.Resources != nil {
		ip.res = x.Resources
	}

	savedMarks := len(ip.marks)
	if props, ok := x.Dict["OC"].(prepress.Dict); ok {
		// A broken /OC entry leaves the form outside of any layer.
		ip.marks = append(ip.marks, ip.enterLayer(props))
	}

	ip.formDepth++
	for _, op := range x.Content {
		ip.apply(op)
	}
	ip.formDepth--

	ip.marks = ip.marks[:savedMarks]
	ip.res = savedRes
	for ip.stack.Depth() > ip.floor {
		ip.stack.Restore()
	}
	ip.floor = savedFloor
	ip.stack.Restore()
	return nil
}

// inlineImage paints an inline image.  Abbreviated keys and colour space
// names are accepted.
func (ip *Interpreter) inlineImage(dict prepress.Dict) error {
	info := ip.imageInfo(dict, true)
	info.Inline = true
	desc := dict["ColorSpace"]
	if desc == nil {
		desc = dict["CS"]
	}
	ip.paintImage(info, desc)
	return nil
}

// imageInfo extracts the image description from an image dictionary.
func (ip *Interpreter) imageInfo(dict prepress.Dict, inline bool) object.ImageInfo {
	get := func(long, short string) prepress.Object {
		if obj, ok := dict[prepress.Name(long)]; ok {
			return obj
		}
		if inline {
			return dict[prepress.Name(short)]
		}
		return nil
	}

	var info object.ImageInfo
	if w, ok := get("Width", "W").(prepress.Integer); ok {
		info.PixelWidth = int(w)
	}
	if h, ok := get("Height", "H").(prepress.Integer); ok {
		info.PixelHeight = int(h)
	}
	if bpc, ok := get("BitsPerComponent", "BPC").(prepress.Integer); ok {
		info.BitsPerComponent = int(bpc)
	}
	if mask, ok := get("ImageMask", "IM").(prepress.Bool); ok {
		info.IsMask = bool(mask)
	}
	if info.IsMask && info.BitsPerComponent == 0 {
		info.BitsPerComponent = 1
	}
	return info
}

// paintImage emits an image object.  Images in a spot colour space are
// given the spot colour at full tint as their fill colour.
func (ip *Interpreter) paintImage(info object.ImageInfo, csDesc prepress.Object) {
	g := ip.stack.Current

	var fill *color.ExtendedColor
	if !info.IsMask && csDesc != nil {
		if space, err := ip.resolveSpace(csDesc); err == nil {
			info.ColorSpace = space.Family
			fill = spotFill(space, g.FillAlpha)
		} else if name, ok := csDesc.(prepress.Name); ok {
			info.ColorSpace = color.Family(name)
		}
	}

	ip.emit(object.NewImage(ip.peekID(), g, info, fill))
}
