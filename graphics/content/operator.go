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
	"strings"

	"seehuhn.de/go/prepress"
)

// OpCode identifies a content stream operator.
type OpCode uint8

// The content stream operators, see table 50 of ISO 32000-2:2020.
const (
	OpUnknown OpCode = iota

	// General Graphics State
	OpPushGraphicsState
	OpPopGraphicsState
	OpTransform
	OpSetLineWidth
	OpSetLineCap
	OpSetLineJoin
	OpSetMiterLimit
	OpSetLineDash
	OpSetRenderingIntent
	OpSetFlatnessTolerance
	OpSetExtGState

	// Path Construction
	OpMoveTo
	OpLineTo
	OpCurveTo
	OpCurveToV
	OpCurveToY
	OpClosePath
	OpRectangle

	// Path Painting
	OpStroke
	OpCloseAndStroke
	OpFill
	OpFillCompat
	OpFillEvenOdd
	OpFillAndStroke
	OpFillAndStrokeEvenOdd
	OpCloseFillAndStroke
	OpCloseFillAndStrokeEvenOdd
	OpEndPath

	// Clipping Paths
	OpClipNonZero
	OpClipEvenOdd

	// Text Objects
	OpTextBegin
	OpTextEnd

	// Text State
	OpTextSetCharacterSpacing
	OpTextSetWordSpacing
	OpTextSetHorizontalScaling
	OpTextSetLeading
	OpTextSetFont
	OpTextSetRenderingMode
	OpTextSetRise

	// Text Positioning
	OpTextMoveOffset
	OpTextMoveOffsetSetLeading
	OpTextSetMatrix
	OpTextNextLine

	// Text Showing
	OpTextShow
	OpTextShowArray
	OpTextShowMoveNextLine
	OpTextShowMoveNextLineSetSpacing

	// Type 3 Fonts
	OpType3SetWidthOnly
	OpType3SetWidthAndBoundingBox

	// Color Spaces
	OpSetStrokeColorSpace
	OpSetFillColorSpace

	// Generic Color
	OpSetStrokeColor
	OpSetStrokeColorN
	OpSetFillColor
	OpSetFillColorN

	// Device Colors
	OpSetStrokeGray
	OpSetFillGray
	OpSetStrokeRGB
	OpSetFillRGB
	OpSetStrokeCMYK
	OpSetFillCMYK

	// Shading Patterns
	OpShading

	// XObjects
	OpXObject

	// Inline images.  BI, ID and EI are tokenized as a unit, with the
	// image dictionary and the image data as arguments.
	OpInlineImage

	// Marked Content
	OpMarkedContentPoint
	OpMarkedContentPointWithProperties
	OpBeginMarkedContent
	OpBeginMarkedContentWithProperties
	OpEndMarkedContent

	// Compatibility
	OpBeginCompatibility
	OpEndCompatibility

	opFirstUnused
)

var opNames = [opFirstUnused]string{
	OpUnknown:                          "",
	OpPushGraphicsState:                "q",
	OpPopGraphicsState:                 "Q",
	OpTransform:                        "cm",
	OpSetLineWidth:                     "w",
	OpSetLineCap:                       "J",
	OpSetLineJoin:                      "j",
	OpSetMiterLimit:                    "M",
	OpSetLineDash:                      "d",
	OpSetRenderingIntent:               "ri",
	OpSetFlatnessTolerance:             "i",
	OpSetExtGState:                     "gs",
	OpMoveTo:                           "m",
	OpLineTo:                           "l",
	OpCurveTo:                          "c",
	OpCurveToV:                         "v",
	OpCurveToY:                         "y",
	OpClosePath:                        "h",
	OpRectangle:                        "re",
	OpStroke:                           "S",
	OpCloseAndStroke:                   "s",
	OpFill:                             "f",
	OpFillCompat:                       "F",
	OpFillEvenOdd:                      "f*",
	OpFillAndStroke:                    "B",
	OpFillAndStrokeEvenOdd:             "B*",
	OpCloseFillAndStroke:               "b",
	OpCloseFillAndStrokeEvenOdd:        "b*",
	OpEndPath:                          "n",
	OpClipNonZero:                      "W",
	OpClipEvenOdd:                      "W*",
	OpTextBegin:                        "BT",
	OpTextEnd:                          "ET",
	OpTextSetCharacterSpacing:          "Tc",
	OpTextSetWordSpacing:               "Tw",
	OpTextSetHorizontalScaling:         "Tz",
	OpTextSetLeading:                   "TL",
	OpTextSetFont:                      "Tf",
	OpTextSetRenderingMode:             "Tr",
	OpTextSetRise:                      "Ts",
	OpTextMoveOffset:                   "Td",
	OpTextMoveOffsetSetLeading:         "TD",
	OpTextSetMatrix:                    "Tm",
	OpTextNextLine:                     "T*",
	OpTextShow:                         "Tj",
	OpTextShowArray:                    "TJ",
	OpTextShowMoveNextLine:             "'",
	OpTextShowMoveNextLineSetSpacing:   "\"",
	OpType3SetWidthOnly:                "d0",
	OpType3SetWidthAndBoundingBox:      "d1",
	OpSetStrokeColorSpace:              "CS",
	OpSetFillColorSpace:                "cs",
	OpSetStrokeColor:                   "SC",
	OpSetStrokeColorN:                  "SCN",
	OpSetFillColor:                     "sc",
	OpSetFillColorN:                    "scn",
	OpSetStrokeGray:                    "G",
	OpSetFillGray:                      "g",
	OpSetStrokeRGB:                     "RG",
	OpSetFillRGB:                       "rg",
	OpSetStrokeCMYK:                    "K",
	OpSetFillCMYK:                      "k",
	OpShading:                          "sh",
	OpXObject:                          "Do",
	OpInlineImage:                      "BI",
	OpMarkedContentPoint:               "MP",
	OpMarkedContentPointWithProperties: "DP",
	OpBeginMarkedContent:               "BMC",
	OpBeginMarkedContentWithProperties: "BDC",
	OpEndMarkedContent:                 "EMC",
	OpBeginCompatibility:               "BX",
	OpEndCompatibility:                 "EX",
}

var opCodes map[string]OpCode

func init() {
	opCodes = make(map[string]OpCode, len(opNames))
	for code, name := range opNames {
		if name != "" {
			opCodes[name] = OpCode(code)
		}
	}
}

// String returns the name of the operator as it appears in a content
// stream.
func (op OpCode) String() string {
	if op > OpUnknown && op < opFirstUnused {
		return opNames[op]
	}
	return fmt.Sprintf("OpCode(%d)", int(op))
}

// Lookup returns the operator code for an operator name.
// Unrecognized names map to OpUnknown.
func Lookup(name string) OpCode {
	return opCodes[name]
}

// Operator represents a content stream operator with its arguments.
type Operator struct {
	Code OpCode
	Args []prepress.Object
}

// Op is a convenience function to construct an Operator from an operator
// name.
func Op(name string, args ...prepress.Object) Operator {
	return Operator{Code: Lookup(name), Args: args}
}

func (o Operator) String() string {
	parts := make([]string, 0, len(o.Args)+1)
	for _, arg := range o.Args {
		parts = append(parts, prepress.Format(arg))
	}
	parts = append(parts, o.Code.String())
	return strings.Join(parts, " ")
}

// Diagnostic records an operator which could not be applied.
type Diagnostic struct {
	// Index is the position of the operator in the sequence of operators
	// applied to the interpreter, starting at 0.  Operators inside form
	// XObjects share the index of the "Do" operator.
	Index int

	Op  OpCode
	Err error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("operator %d (%s): %v", d.Index, d.Op, d.Err)
}
