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
	"fmt"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/prepress/graphics"
)

// CommandType identifies a path construction command.
type CommandType uint8

// These are the path construction commands.
const (
	CmdMoveTo CommandType = iota
	CmdLineTo
	CmdCurveTo
	CmdClosePath
)

func (c CommandType) String() string {
	switch c {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdCurveTo:
		return "CurveTo"
	case CmdClosePath:
		return "ClosePath"
	default:
		return fmt.Sprintf("CommandType(%d)", int(c))
	}
}

// PathCommand is one segment of a path, in user space coordinates.
// CurveTo commands have three points (two control points and the end
// point), ClosePath has none, and the other commands have one.
type PathCommand struct {
	Type   CommandType
	Points []vec.Vec2
}

// FillRule determines which points are inside a filled path.
type FillRule uint8

// These are the fill rules supported by PDF.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// PaintMode describes how a path is painted.
type PaintMode uint8

// Possible values for PaintMode.
const (
	PaintStroke PaintMode = 1 << iota
	PaintFill

	PaintFillStroke = PaintFill | PaintStroke
)

// Path is a painted path.
type Path struct {
	Common

	Commands  []PathCommand
	PaintMode PaintMode
	FillRule  FillRule

	// The stroke parameters are only set for stroked paths.
	StrokeWidth float64
	LineCap     graphics.LineCapStyle
	LineJoin    graphics.LineJoinStyle
	MiterLimit  float64
	DashPattern []float64
	DashPhase   float64
}

// Kind implements the [Object] interface.
func (p *Path) Kind() Kind { return KindPath }

// PathBuilder accumulates the commands of the current path.
//
// The zero value is an empty path, ready to use.
type PathBuilder struct {
	cmds    []PathCommand
	current vec.Vec2
	start   vec.Vec2
}

// Empty reports whether no commands have been added since the path was
// last painted or discarded.
func (b *PathBuilder) Empty() bool {
	return len(b.cmds) == 0
}

// Reset discards the current path.
func (b *PathBuilder) Reset() {
	b.cmds = nil
}

// MoveTo starts a new subpath.
func (b *PathBuilder) MoveTo(x, y float64) {
	p := vec.Vec2{X: x, Y: y}
	b.cmds = append(b.cmds, PathCommand{Type: CmdMoveTo, Points: []vec.Vec2{p}})
	b.current = p
	b.start = p
}

// LineTo appends a straight line segment.
// On an empty path, this starts a new subpath instead.
func (b *PathBuilder) LineTo(x, y float64) {
	if b.Empty() {
		b.MoveTo(x, y)
		return
	}
	p := vec.Vec2{X: x, Y: y}
	b.cmds = append(b.cmds, PathCommand{Type: CmdLineTo, Points: []vec.Vec2{p}})
	b.current = p
}

// CurveTo appends a cubic Bézier curve.
func (b *PathBuilder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if b.Empty() {
		b.MoveTo(x1, y1)
	}
	p3 := vec.Vec2{X: x3, Y: y3}
	b.cmds = append(b.cmds, PathCommand{
		Type:   CmdCurveTo,
		Points: []vec.Vec2{{X: x1, Y: y1}, {X: x2, Y: y2}, p3},
	})
	b.current = p3
}

// CurveToV appends a cubic Bézier curve whose first control point
// coincides with the current point.
//
// This corresponds to the PDF operator "v".
func (b *PathBuilder) CurveToV(x2, y2, x3, y3 float64) {
	x1, y1 := b.current.X, b.current.Y
	if b.Empty() {
		x1, y1 = x2, y2
	}
	b.CurveTo(x1, y1, x2, y2, x3, y3)
}

// CurveToY appends a cubic Bézier curve whose second control point
// coincides with the end point.
//
// This corresponds to the PDF operator "y".
func (b *PathBuilder) CurveToY(x1, y1, x3, y3 float64) {
	b.CurveTo(x1, y1, x3, y3, x3, y3)
}

// ClosePath closes the current subpath.
// This has no effect on an empty path.
func (b *PathBuilder) ClosePath() {
	if b.Empty() {
		return
	}
	b.cmds = append(b.cmds, PathCommand{Type: CmdClosePath})
	b.current = b.start
}

// Rectangle appends a closed rectangular subpath.  The corners are visited
// counter-clockwise, starting at (x, y).
func (b *PathBuilder) Rectangle(x, y, w, h float64) {
	b.MoveTo(x, y)
	b.LineTo(x+w, y)
	b.LineTo(x+w, y+h)
	b.LineTo(x, y+h)
	b.ClosePath()
}

// Finish paints the current path and clears the builder.
//
// If close is set, the last subpath is closed first.  The result is nil if
// the path contains no points.
func (b *PathBuilder) Finish(id string, s *graphics.State, mode PaintMode, close, evenOdd bool) *Path {
	cmds := b.cmds
	b.cmds = nil

	if close && len(cmds) > 0 && cmds[len(cmds)-1].Type != CmdClosePath {
		cmds = append(cmds, PathCommand{Type: CmdClosePath})
	}

	var points []vec.Vec2
	for _, c := range cmds {
		points = append(points, c.Points...)
	}
	bounds, ok := BoundsOf(points)
	if !ok {
		return nil
	}

	fill := mode&PaintFill != 0
	stroke := mode&PaintStroke != 0
	p := &Path{
		Common:    Stamp(id, s, fill, stroke),
		Commands:  cmds,
		PaintMode: mode,
	}
	p.Bounds = bounds
	if evenOdd {
		p.FillRule = EvenOdd
	}
	if stroke {
		p.StrokeWidth = s.LineWidth
		p.LineCap = s.LineCap
		p.LineJoin = s.LineJoin
		p.MiterLimit = s.MiterLimit
		p.DashPattern = slices.Clone(s.DashPattern)
		p.DashPhase = s.DashPhase
	}
	return p
}
