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
	"errors"
	"fmt"
	"slices"
	"strconv"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/prepress"
	"seehuhn.de/go/prepress/graphics"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/extgstate"
	"seehuhn.de/go/prepress/graphics/object"
	"seehuhn.de/go/prepress/oc"
)

// Options configures an [Interpreter].
type Options struct {
	// Resources holds the named resources of the page.
	Resources *Resources

	// Spots collects the spot colours found on the page.  If this is nil,
	// a new catalog using the built-in ink library is allocated.
	Spots *color.Catalog

	// Layers collects the optional content groups found on the page.
	// If this is nil, a new catalog is allocated.
	Layers *oc.Catalog

	// IDPrefix is prepended to the IDs of the page objects.
	// The default is "obj".
	IDPrefix string
}

// Interpreter turns a sequence of content stream operators into page
// objects.
//
// Each page needs its own Interpreter.  An Interpreter is not safe for
// concurrent use.
type Interpreter struct {
	stack *graphics.Stack
	path  object.PathBuilder
	res   *Resources

	spots  *color.Catalog
	layers *oc.Catalog

	prefix  string
	lastID  int
	objects []object.Object
	diags   []Diagnostic

	// marks holds one entry per open marked-content sequence: the ID of
	// the layer, or "" for sequences which are not optional content.
	marks []string

	formDepth int
	index     int

	// floor is the stack depth at the start of the innermost form.  Q
	// does not restore states saved outside of the form.
	floor int
}

// maxFormDepth limits the nesting of form XObjects.
const maxFormDepth = 32

// New allocates a new interpreter.  If opt is nil, default options are
// used.
func New(opt *Options) *Interpreter {
	if opt == nil {
		opt = &Options{}
	}
	ip := &Interpreter{
		stack:  graphics.NewStack(),
		res:    opt.Resources,
		spots:  opt.Spots,
		layers: opt.Layers,
		prefix: opt.IDPrefix,
	}
	if ip.res == nil {
		ip.res = &Resources{}
	}
	if ip.spots == nil {
		ip.spots = color.NewCatalog(color.PantoneSolidCoated(), nil)
	}
	if ip.layers == nil {
		ip.layers = oc.NewCatalog()
	}
	if ip.prefix == "" {
		ip.prefix = "obj"
	}
	return ip
}

// Run applies all operators in order.  Malformed operators are skipped and
// recorded in the diagnostics.
func (ip *Interpreter) Run(ops []Operator) {
	for _, op := range ops {
		ip.Apply(op)
	}
}

// Apply applies a single operator.
//
// If the operands are malformed, a [*prepress.OperatorError] is returned
// and recorded in the diagnostics.  In this case the graphics state is
// left unchanged.
func (ip *Interpreter) Apply(op Operator) error {
	err := ip.apply(op)
	ip.index++
	return err
}

func (ip *Interpreter) apply(op Operator) error {
	err := ip.do(op)
	if err == nil {
		return nil
	}
	opErr := &prepress.OperatorError{Op: op.Code.String(), Err: err}
	ip.diags = append(ip.diags, Diagnostic{Index: ip.index, Op: op.Code, Err: opErr})
	return opErr
}

// Objects returns the page objects emitted so far, in painting order.
func (ip *Interpreter) Objects() []object.Object {
	return slices.Clone(ip.objects)
}

// Diagnostics returns the operators which could not be applied.
func (ip *Interpreter) Diagnostics() []Diagnostic {
	return slices.Clone(ip.diags)
}

// State returns the current graphics state.
func (ip *Interpreter) State() *graphics.State {
	return ip.stack.Current
}

// Spots returns the spot colour catalog used by the interpreter.
func (ip *Interpreter) Spots() *color.Catalog {
	return ip.spots
}

// Layers returns the layer catalog used by the interpreter.
func (ip *Interpreter) Layers() *oc.Catalog {
	return ip.layers
}

var (
	errUnknownResource = errors.New("unknown resource")
	errNesting         = errors.New("form XObjects nested too deeply")
)

func (ip *Interpreter) do(op Operator) error {
	g := ip.stack.Current
	p := argParser{args: op.Args}

	switch op.Code {

	// == General graphics state =========================================

	case OpPushGraphicsState:
		if err := p.Check(); err != nil {
			return err
		}
		ip.stack.Save()

	case OpPopGraphicsState:
		if err := p.Check(); err != nil {
			return err
		}
		if ip.stack.Depth() > ip.floor {
			ip.stack.Restore()
		}

	case OpTransform:
		var m matrix.Matrix
		for i := range m {
			m[i] = p.GetFloat()
		}
		if err := p.Check(); err != nil {
			return err
		}
		g.Concat(m)

	case OpSetLineWidth:
		w := p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		if w < 0 {
			return fmt.Errorf("invalid line width %g", w)
		}
		g.LineWidth = w

	case OpSetLineCap:
		lineCap := p.GetInt()
		if err := p.Check(); err != nil {
			return err
		}
		if lineCap < 0 || lineCap > 2 {
			return fmt.Errorf("invalid line cap %d", lineCap)
		}
		g.LineCap = graphics.LineCapStyle(lineCap)

	case OpSetLineJoin:
		join := p.GetInt()
		if err := p.Check(); err != nil {
			return err
		}
		if join < 0 || join > 2 {
			return fmt.Errorf("invalid line join %d", join)
		}
		g.LineJoin = graphics.LineJoinStyle(join)

	case OpSetMiterLimit:
		limit := p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.MiterLimit = limit

	case OpSetLineDash:
		arr := p.GetArray()
		phase := p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		pattern := make([]float64, 0, len(arr))
		for _, obj := range arr {
			x, ok := prepress.GetNumber(obj)
			if !ok || x < 0 {
				return fmt.Errorf("invalid dash array %s", prepress.Format(arr))
			}
			pattern = append(pattern, x)
		}
		g.DashPattern = pattern
		g.DashPhase = phase

	case OpSetRenderingIntent:
		p.GetName()
		return p.Check()

	case OpSetFlatnessTolerance:
		p.GetFloat()
		return p.Check()

	case OpSetExtGState:
		name := p.GetName()
		if err := p.Check(); err != nil {
			return err
		}
		dict, ok := ip.res.ExtGState[name]
		if !ok {
			return fmt.Errorf("%w: ExtGState %q", errUnknownResource, name)
		}
		gs, err := extgstate.Decode(dict)
		if err != nil {
			return err
		}
		gs.ApplyTo(g)

	// == Path construction ==============================================

	case OpMoveTo:
		x, y := p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		ip.path.MoveTo(x, y)

	case OpLineTo:
		x, y := p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		ip.path.LineTo(x, y)

	case OpCurveTo:
		x1, y1 := p.GetFloat(), p.GetFloat()
		x2, y2 := p.GetFloat(), p.GetFloat()
		x3, y3 := p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		ip.path.CurveTo(x1, y1, x2, y2, x3, y3)

	case OpCurveToV:
		x2, y2 := p.GetFloat(), p.GetFloat()
		x3, y3 := p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		ip.path.CurveToV(x2, y2, x3, y3)

	case OpCurveToY:
		x1, y1 := p.GetFloat(), p.GetFloat()
		x3, y3 := p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		ip.path.CurveToY(x1, y1, x3, y3)

	case OpClosePath:
		if err := p.Check(); err != nil {
			return err
		}
		ip.path.ClosePath()

	case OpRectangle:
		x, y := p.GetFloat(), p.GetFloat()
		w, h := p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		ip.path.Rectangle(x, y, w, h)

	// == Path painting ==================================================

	case OpStroke:
		return ip.paint(&p, object.PaintStroke, false, false)
	case OpCloseAndStroke:
		return ip.paint(&p, object.PaintStroke, true, false)
	case OpFill, OpFillCompat:
		return ip.paint(&p, object.PaintFill, false, false)
	case OpFillEvenOdd:
		return ip.paint(&p, object.PaintFill, false, true)
	case OpFillAndStroke:
		return ip.paint(&p, object.PaintFillStroke, false, false)
	case OpFillAndStrokeEvenOdd:
		return ip.paint(&p, object.PaintFillStroke, false, true)
	case OpCloseFillAndStroke:
		return ip.paint(&p, object.PaintFillStroke, true, false)
	case OpCloseFillAndStrokeEvenOdd:
		return ip.paint(&p, object.PaintFillStroke, true, true)

	case OpEndPath:
		if err := p.Check(); err != nil {
			return err
		}
		ip.path.Reset()

	// == Clipping paths =================================================

	case OpClipNonZero, OpClipEvenOdd:
		// The clipping path does not change the inks used on the page.
		return p.Check()

	// == Text objects ===================================================

	case OpTextBegin:
		if err := p.Check(); err != nil {
			return err
		}
		g.Tm = matrix.Identity
		g.Tlm = matrix.Identity

	case OpTextEnd:
		return p.Check()

	// == Text state =====================================================

	case OpTextSetCharacterSpacing:
		tc := p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.Tc = tc

	case OpTextSetWordSpacing:
		tw := p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.Tw = tw

	case OpTextSetHorizontalScaling:
		scale := p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.Th = scale / 100

	case OpTextSetLeading:
		tl := p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.Tl = tl

	case OpTextSetFont:
		font := p.GetName()
		size := p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.Font = font
		g.FontSize = size

	case OpTextSetRenderingMode:
		mode := p.GetInt()
		if err := p.Check(); err != nil {
			return err
		}
		if mode < 0 || mode > 7 {
			return fmt.Errorf("invalid text rendering mode %d", mode)
		}
		g.TextRendering = graphics.TextRenderingMode(mode)

	case OpTextSetRise:
		rise := p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.TextRise = rise

	// == Text positioning ===============================================

	case OpTextMoveOffset:
		tx, ty := p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.Tlm = matrix.Translate(tx, ty).Mul(g.Tlm)
		g.Tm = g.Tlm

	case OpTextMoveOffsetSetLeading:
		tx, ty := p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.Tl = -ty
		g.Tlm = matrix.Translate(tx, ty).Mul(g.Tlm)
		g.Tm = g.Tlm

	case OpTextSetMatrix:
		var m matrix.Matrix
		for i := range m {
			m[i] = p.GetFloat()
		}
		if err := p.Check(); err != nil {
			return err
		}
		g.Tm = m
		g.Tlm = m

	case OpTextNextLine:
		if err := p.Check(); err != nil {
			return err
		}
		nextLine(g)

	// == Text showing ===================================================

	case OpTextShow:
		s := p.GetString()
		if err := p.Check(); err != nil {
			return err
		}
		ip.showText(s.AsTextString())

	case OpTextShowArray:
		arr := p.GetArray()
		if err := p.Check(); err != nil {
			return err
		}
		text, err := textArray(arr)
		if err != nil {
			return err
		}
		ip.showText(text)

	case OpTextShowMoveNextLine:
		s := p.GetString()
		if err := p.Check(); err != nil {
			return err
		}
		nextLine(g)
		ip.showText(s.AsTextString())

	case OpTextShowMoveNextLineSetSpacing:
		tw := p.GetFloat()
		tc := p.GetFloat()
		s := p.GetString()
		if err := p.Check(); err != nil {
			return err
		}
		g.Tw = tw
		g.Tc = tc
		nextLine(g)
		ip.showText(s.AsTextString())

	// == Type 3 fonts ===================================================

	case OpType3SetWidthOnly, OpType3SetWidthAndBoundingBox:
		// Glyph metrics are not used.

	// == Colour =========================================================

	case OpSetStrokeColorSpace, OpSetFillColorSpace:
		name := p.GetName()
		if err := p.Check(); err != nil {
			return err
		}
		space, err := ip.colorSpace(name)
		if err != nil {
			return err
		}
		if op.Code == OpSetStrokeColorSpace {
			g.SetStrokeSpace(space)
		} else {
			g.SetFillSpace(space)
		}

	case OpSetStrokeColor, OpSetStrokeColorN:
		space := g.StrokeSpace
		col, err := spaceColor(&p, space, g.StrokeAlpha)
		if err != nil {
			return err
		}
		g.StrokeColor = col

	case OpSetFillColor, OpSetFillColorN:
		space := g.FillSpace
		col, err := spaceColor(&p, space, g.FillAlpha)
		if err != nil {
			return err
		}
		g.FillColor = col

	case OpSetStrokeGray:
		gray := p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.SetStrokeGray(gray)

	case OpSetFillGray:
		gray := p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.SetFillGray(gray)

	case OpSetStrokeRGB:
		r, gr, b := p.GetFloat(), p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.SetStrokeRGB(r, gr, b)

	case OpSetFillRGB:
		r, gr, b := p.GetFloat(), p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.SetFillRGB(r, gr, b)

	case OpSetStrokeCMYK:
		c, m, y, k := p.GetFloat(), p.GetFloat(), p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.SetStrokeCMYK(c, m, y, k)

	case OpSetFillCMYK:
		c, m, y, k := p.GetFloat(), p.GetFloat(), p.GetFloat(), p.GetFloat()
		if err := p.Check(); err != nil {
			return err
		}
		g.SetFillCMYK(c, m, y, k)

	// == Shading ========================================================

	case OpShading:
		name := p.GetName()
		if err := p.Check(); err != nil {
			return err
		}
		return ip.shading(name)

	// == XObjects and inline images =====================================

	case OpXObject:
		name := p.GetName()
		if err := p.Check(); err != nil {
			return err
		}
		return ip.xObject(name)

	case OpInlineImage:
		dict := p.GetDict()
		if len(p.args) > 0 {
			p.GetObject() // image data
		}
		if err := p.Check(); err != nil {
			return err
		}
		return ip.inlineImage(dict)

	// == Marked content =================================================

	case OpBeginMarkedContent:
		p.GetName()
		if err := p.Check(); err != nil {
			return err
		}
		ip.marks = append(ip.marks, "")

	case OpBeginMarkedContentWithProperties:
		tag := p.GetName()
		props := p.GetObject()
		if err := p.Check(); err != nil {
			return err
		}
		return ip.beginMarkedContent(tag, props)

	case OpEndMarkedContent:
		if err := p.Check(); err != nil {
			return err
		}
		if n := len(ip.marks); n > 0 {
			ip.marks = ip.marks[:n-1]
		}

	case OpMarkedContentPoint:
		p.GetName()
		return p.Check()

	case OpMarkedContentPointWithProperties:
		p.GetName()
		p.GetObject()
		return p.Check()

	// == Compatibility ==================================================

	case OpBeginCompatibility, OpEndCompatibility:
		return p.Check()
	}

	return nil
}

// paint finishes the current path.
func (ip *Interpreter) paint(p *argParser, mode object.PaintMode, close, evenOdd bool) error {
	if err := p.Check(); err != nil {
		return err
	}
	path := ip.path.Finish(ip.peekID(), ip.stack.Current, mode, close, evenOdd)
	if path != nil {
		ip.emit(path)
	}
	return nil
}

// peekID returns the ID the next emitted object will receive.
func (ip *Interpreter) peekID() string {
	return ip.prefix + "-" + strconv.Itoa(ip.lastID+1)
}

// emit adds a new object to the page.  The object must have been created
// using the ID returned by peekID.
func (ip *Interpreter) emit(obj object.Object) {
	ip.lastID++
	c := obj.Base()
	c.LayerID = ip.currentLayer()

	for _, col := range c.Colors() {
		if col.Kind == color.KindSpot && col.Spot != nil {
			ip.spots.AddReference(col.Spot.Name, c.ID)
		}
		for _, ink := range col.Others {
			ip.spots.AddReference(ink.Name, c.ID)
		}
	}
	if c.LayerID != "" {
		ip.layers.AddObject(c.LayerID, c.ID)
	}

	ip.objects = append(ip.objects, obj)
}
