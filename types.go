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

package prepress

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Object represents an operand of a content stream operator.  The concrete
// types are [Array], [Bool], [Dict], [Integer], [Name], [Real], [*Stream] and
// [String].
type Object interface {
	// PDF writes the PDF representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean operand.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatBool(bool(x)))
	return err
}

// Integer represents an integer operand.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real represents a real number operand.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	_, err := io.WriteString(w, s)
	return err
}

// String represents a string operand, as a sequence of raw bytes.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('(')
	for _, c := range x {
		switch c {
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			if c < 0x20 || c >= 0x7f {
				fmt.Fprintf(buf, "\\%03o", c)
			} else {
				buf.WriteByte(c)
			}
		}
	}
	buf.WriteByte(')')
	_, err := w.Write(buf.Bytes())
	return err
}

// Name represents a name operand, without the leading slash.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for _, c := range []byte(x) {
		if c < 0x21 || c > 0x7e || c == '#' || strings.IndexByte("()<>[]{}/%", c) >= 0 {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Array represents an array operand.
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := writeObject(w, val); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// Dict represents a dictionary operand.
type Dict map[Name]Object

// PDF implements the [Object] interface.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := io.WriteString(w, "null")
		return err
	}

	keys := make([]Name, 0, len(x))
	for key, val := range x {
		if val != nil {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	if _, err := io.WriteString(w, "<<"); err != nil {
		return err
	}
	for _, key := range keys {
		if err := key.PDF(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := x[key].PDF(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">>")
	return err
}

// Stream represents a stream operand, for example an embedded ICC profile
// inside a colour space array.  Data holds the decoded stream contents.
type Stream struct {
	Dict
	Data []byte
}

// PDF implements the [Object] interface.
// Only the stream dictionary is written; the data is summarised.
func (x *Stream) PDF(w io.Writer) error {
	if err := x.Dict.PDF(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, " stream[%d bytes]", len(x.Data))
	return err
}

func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}

// Format formats an operand as a string, in the way it would appear in a
// content stream.
func Format(obj Object) string {
	buf := &bytes.Buffer{}
	if err := writeObject(buf, obj); err != nil {
		return fmt.Sprintf("<%T>", obj)
	}
	return buf.String()
}

// GetNumber returns the numeric value of an Integer or Real operand.
// The second return value is false for all other objects, and for values
// which are not finite.
func GetNumber(obj Object) (float64, bool) {
	var x float64
	switch obj := obj.(type) {
	case Integer:
		x = float64(obj)
	case Real:
		x = float64(obj)
	default:
		return 0, false
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}

// GetName returns the value of a Name operand.
// Strings are accepted as well, since producers use them interchangeably for
// ink and layer names.
func GetName(obj Object) (Name, bool) {
	switch obj := obj.(type) {
	case Name:
		return obj, true
	case String:
		return Name(obj.AsTextString()), true
	default:
		return "", false
	}
}

// GetDict returns the dictionary of a Dict or *Stream operand.
func GetDict(obj Object) (Dict, bool) {
	switch obj := obj.(type) {
	case Dict:
		return obj, true
	case *Stream:
		if obj == nil {
			return nil, false
		}
		return obj.Dict, true
	default:
		return nil, false
	}
}
