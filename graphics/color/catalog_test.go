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

package color

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRegisterReflexBlue(t *testing.T) {
	cat := NewCatalog(PantoneSolidCoated(), nil)
	info := cat.Register("PANTONE Reflex Blue C", FamilyDeviceCMYK)

	want := &SpotColorInfo{
		Name:      "PANTONE Reflex Blue C",
		RawName:   "PANTONE Reflex Blue C",
		Alternate: FamilyDeviceCMYK,
		Fallback:  CMYKValues{1, 0.77, 0, 0.02},
		Match: &LibraryMatch{
			Library: "PANTONE Solid Coated",
			Name:    "PANTONE Reflex Blue C",
			Exact:   true,
		},
		UsageCount: 1,
		Type:       SpotStandard,
		PrintOrder: 4,
	}
	if d := cmp.Diff(want, info); d != "" {
		t.Error(d)
	}
}

func TestRegisterIdempotent(t *testing.T) {
	cat := NewCatalog(PantoneSolidCoated(), nil)
	first := cat.Register("Varnish", FamilyDeviceGray)

	const n = 7
	var last *SpotColorInfo
	for i := 0; i < n; i++ {
		raw := "PANTONE 185 C"
		if i%2 == 1 {
			raw = "/pantone#20185c"
		}
		last = cat.Register(raw, FamilyDeviceCMYK)
	}

	if cat.Len() != 2 {
		t.Fatalf("catalog has %d entries, want 2", cat.Len())
	}
	if last.UsageCount != n {
		t.Errorf("usage count %d, want %d", last.UsageCount, n)
	}
	if last.PrintOrder != 5 || first.PrintOrder != 4 {
		t.Errorf("print order %d, %d", first.PrintOrder, last.PrintOrder)
	}
	if last.RawName != "PANTONE 185 C" {
		t.Errorf("raw name %q", last.RawName)
	}
	if first.Type != SpotVarnish {
		t.Errorf("varnish classified as %s", first.Type)
	}
	if cat.Lookup("pantone 185c") != last {
		t.Error("lookup failed")
	}
	if d := cmp.Diff([]string{"PANTONE 185 C", "Varnish"}, cat.Names()); d != "" {
		t.Error(d)
	}
}

func TestAddReference(t *testing.T) {
	cat := NewCatalog(nil, nil)
	cat.Register("Silver", FamilyDeviceCMYK)

	if cat.AddReference("Gold", "p1-1") {
		t.Error("reference added to unknown ink")
	}
	for _, id := range []string{"p1-1", "p1-2", "p1-1", "layer-3"} {
		if !cat.AddReference("Silver", id) {
			t.Errorf("AddReference(%q) failed", id)
		}
	}
	got := cat.Lookup("Silver").References
	if d := cmp.Diff([]string{"p1-1", "p1-2", "layer-3"}, got); d != "" {
		t.Error(d)
	}
}

type spotSummary struct {
	Name       string
	UsageCount int
	PrintOrder int
	References []string
}

func summarize(cat *Catalog) []spotSummary {
	var res []spotSummary
	for _, s := range cat.Spots() {
		res = append(res, spotSummary{s.Name, s.UsageCount, s.PrintOrder, s.References})
	}
	return res
}

func TestMerge(t *testing.T) {
	a := NewCatalog(nil, nil)
	a.Register("Spot A", FamilyDeviceCMYK)
	a.AddReference("Spot A", "1-1")
	a.Register("Spot B", FamilyDeviceCMYK)
	a.AddReference("Spot B", "1-2")

	b := NewCatalog(nil, nil)
	b.Register("Spot C", FamilyDeviceCMYK)
	b.AddReference("Spot C", "2-1")
	b.Register("Spot B", FamilyDeviceCMYK)
	b.Register("Spot B", FamilyDeviceCMYK)
	b.AddReference("Spot B", "2-2")
	b.AddReference("Spot B", "1-2")

	a.Merge(b)

	want := []spotSummary{
		{"Spot A", 1, 4, []string{"1-1"}},
		{"Spot B", 3, 5, []string{"1-2", "2-2"}},
		{"Spot C", 1, 6, []string{"2-1"}},
	}
	if d := cmp.Diff(want, summarize(a), cmpopts.EquateEmpty()); d != "" {
		t.Error(d)
	}

	// the merged catalog must not alias the entries of b
	if b.Lookup("Spot C").PrintOrder != 4 || b.Lookup("Spot B").UsageCount != 2 {
		t.Error("merge modified its argument")
	}
}
