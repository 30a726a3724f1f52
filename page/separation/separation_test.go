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

package separation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/prepress"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content"
)

func TestProcessAndSpot(t *testing.T) {
	spots := color.NewCatalog(color.PantoneSolidCoated(), nil)
	ip := content.New(&content.Options{
		Resources: &content.Resources{
			ColorSpace: map[prepress.Name]prepress.Object{
				"CS0": prepress.Array{
					prepress.Name("Separation"),
					prepress.Name("PANTONE 185 C"),
					prepress.Name("DeviceCMYK"),
					prepress.Dict{},
				},
			},
		},
		Spots:    spots,
		IDPrefix: "p1",
	})
	rect := content.Op("re", prepress.Integer(0), prepress.Integer(0), prepress.Integer(10), prepress.Integer(10))
	ip.Run([]content.Operator{
		content.Op("k", prepress.Real(0.5), prepress.Integer(0), prepress.Integer(0), prepress.Integer(0)),
		rect,
		content.Op("f"),
		content.Op("k", prepress.Integer(0), prepress.Integer(0), prepress.Real(0.2), prepress.Integer(1)),
		rect,
		content.Op("f"),
		content.Op("cs", prepress.Name("CS0")),
		content.Op("scn", prepress.Integer(1)),
		rect,
		content.Op("f"),
	})

	seps := Build(spots.Spots(), ip.Objects())
	if len(seps) != 5 {
		t.Fatalf("got %d separations, want 5", len(seps))
	}

	type row struct {
		Name      string
		Kind      Kind
		Channel   Channel
		Density   float64
		Sequence  int
		IsOpaque  bool
		Count     int
		ObjectIDs []string
	}
	var got []row
	for _, s := range seps {
		got = append(got, row{s.Name, s.Kind, s.Channel, s.Density, s.Sequence, s.IsOpaque, s.ObjectCount, s.ObjectIDs})
	}
	want := []row{
		{"Cyan", Process, ChannelCyan, 1, 0, false, 1, []string{"p1-1"}},
		{"Magenta", Process, ChannelMagenta, 1, 1, false, 0, nil},
		{"Yellow", Process, ChannelYellow, 1, 2, false, 1, []string{"p1-2"}},
		{"Black", Process, ChannelBlack, 1.8, 3, false, 1, []string{"p1-2"}},
		{"PANTONE 185 C", Spot, ChannelNone, 1, 4, false, 1, []string{"p1-3"}},
	}
	if d := cmp.Diff(want, got, cmpopts.EquateEmpty()); d != "" {
		t.Error(d)
	}
	if seps[4].Spot != spots.Lookup("PANTONE 185 C") {
		t.Error("spot separation does not refer to the catalog entry")
	}
	if seps[4].Coverage != (Coverage{}) {
		t.Errorf("coverage = %+v", seps[4].Coverage)
	}
}

func TestOpaqueSpots(t *testing.T) {
	spots := []*color.SpotColorInfo{
		{Name: "White", Type: color.SpotWhite},
		{Name: "Varnish", Type: color.SpotVarnish},
		{Name: "Opaque Silver", Type: color.SpotOpaque},
	}
	seps := Build(spots, nil)

	var got []bool
	for _, s := range seps[4:] {
		got = append(got, s.IsOpaque)
	}
	if d := cmp.Diff([]bool{true, false, true}, got); d != "" {
		t.Error(d)
	}
	for i, s := range seps {
		if s.Sequence != i {
			t.Errorf("%s: sequence %d, want %d", s.Name, s.Sequence, i)
		}
	}
}

func TestEmptyPage(t *testing.T) {
	seps := Build(nil, nil)
	var names []string
	for _, s := range seps {
		names = append(names, s.Name)
		if s.ObjectCount != 0 {
			t.Errorf("%s: %d objects", s.Name, s.ObjectCount)
		}
	}
	if d := cmp.Diff([]string{"Cyan", "Magenta", "Yellow", "Black"}, names); d != "" {
		t.Error(d)
	}
}
