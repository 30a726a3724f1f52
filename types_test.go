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
	"errors"
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		obj  Object
		want string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Integer(-7), "-7"},
		{Real(3), "3.0"},
		{Real(0.25), "0.25"},
		{String("a(b)"), `(a\(b\))`},
		{Name("PANTONE 185 C"), "/PANTONE#20185#20C"},
		{Array{Integer(1), Real(2.5), Name("DeviceCMYK")}, "[1 2.5 /DeviceCMYK]"},
		{Dict{"B": Name("x"), "A": Integer(1)}, "<</A 1 /B /x >>"},
		{&Stream{Dict: Dict{"N": Integer(4)}, Data: make([]byte, 10)}, "<</N 4 >> stream[10 bytes]"},
	}
	for _, c := range cases {
		if got := Format(c.obj); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestGetNumber(t *testing.T) {
	cases := []struct {
		obj  Object
		want float64
		ok   bool
	}{
		{Integer(3), 3, true},
		{Real(0.5), 0.5, true},
		{Real(math.NaN()), 0, false},
		{Real(math.Inf(1)), 0, false},
		{Name("1"), 0, false},
		{nil, 0, false},
	}
	for _, c := range cases {
		got, ok := GetNumber(c.obj)
		if got != c.want || ok != c.ok {
			t.Errorf("GetNumber(%s) = %g, %t", Format(c.obj), got, ok)
		}
	}
}

func TestAsTextString(t *testing.T) {
	cases := []struct {
		in   String
		want string
	}{
		{String("Hello"), "Hello"},
		{String{0x43, 0x61, 0x66, 0xE9}, "Café"},
		{String{0xFE, 0xFF, 0x00, 0x41, 0x00, 0xE9}, "Aé"},
		{String{}, ""},
	}
	for _, c := range cases {
		if got := c.in.AsTextString(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}

	name, ok := GetName(String("Spot 1"))
	if !ok || name != "Spot 1" {
		t.Errorf("GetName = %q, %t", name, ok)
	}
}

func TestOperatorError(t *testing.T) {
	err := error(&OperatorError{Op: "cm", Err: ErrNotEnoughArgs})
	if !errors.Is(err, ErrNotEnoughArgs) {
		t.Error("cause not unwrapped")
	}
	if got := err.Error(); got != "malformed operator cm: not enough arguments" {
		t.Errorf("got %q", got)
	}
}
