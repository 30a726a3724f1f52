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

package blend

import (
	"errors"
	"testing"

	"seehuhn.de/go/prepress"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   prepress.Object
		want Mode
	}{
		{prepress.Name("Normal"), ModeNormal},
		{prepress.Name("Compatible"), ModeNormal},
		{prepress.Name("Multiply"), ModeMultiply},
		{prepress.Array{prepress.Name("Foo"), prepress.Integer(1), prepress.Name("Screen")}, ModeScreen},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("%s: %v", prepress.Format(c.in), err)
		} else if got != c.want {
			t.Errorf("%s: got %s, want %s", prepress.Format(c.in), got, c.want)
		}
	}

	for _, in := range []prepress.Object{prepress.Name("Foo"), prepress.Array{}, prepress.Integer(1)} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: got %v", prepress.Format(in), err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for m := ModeNormal; m <= ModeLuminosity; m++ {
		got, ok := ParseName(prepress.Name(m.String()))
		if !ok || got != m {
			t.Errorf("%s: got %s", m, got)
		}
	}
	if !ModeDarken.IsSeparable() || ModeLuminosity.IsSeparable() {
		t.Error("wrong separability")
	}
}
