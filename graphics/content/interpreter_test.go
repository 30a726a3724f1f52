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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/prepress"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/object"
)

type (
	A = prepress.Array
	D = prepress.Dict
	I = prepress.Integer
	N = prepress.Name
	R = prepress.Real
	S = prepress.String
)

var reflexBlue = A{N("Separation"), N("PANTONE Reflex Blue C"), N("DeviceCMYK"), D{"FunctionType": I(2)}}

func TestRectangleFill(t *testing.T) {
	ip := New(nil)
	ip.Run([]Operator{
		Op("re", I(10), I(10), I(50), I(30)),
		Op("f"),
	})

	objs := ip.Objects()
	if len(objs) != 1 {
		t.Fatalf("got %d objects, want 1", len(objs))
	}
	path, ok := objs[0].(*object.Path)
	if !ok {
		t.Fatalf("got %T, want *object.Path", objs[0])
	}
	if path.ID != "obj-1" {
		t.Errorf("ID = %q", path.ID)
	}
	if path.FillRule.String() != "nonzero" {
		t.Errorf("fill rule = %s", path.FillRule)
	}
	if d := cmp.Diff(object.Bounds{X: 10, Y: 10, Width: 50, Height: 30}, path.Bounds); d != "" {
		t.Error(d)
	}
	if path.StrokeColor != nil {
		t.Errorf("unexpected stroke colour %s", path.StrokeColor)
	}
	if path.FillColor == nil || path.FillColor.Kind != color.KindGray {
		t.Errorf("fill colour = %s", path.FillColor)
	}
	if len(ip.Diagnostics()) != 0 {
		t.Errorf("unexpected diagnostics %v", ip.Diagnostics())
	}
}

func TestCMYKAndSpotFills(t *testing.T) {
	spots := color.NewCatalog(color.PantoneSolidCoated(), nil)
	ip := New(&Options{
		Resources: &Resources{
			ColorSpace: map[N]prepress.Object{"CS0": reflexBlue},
		},
		Spots:    spots,
		IDPrefix: "p1",
	})
	ip.Run([]Operator{
		Op("k", R(0.1), R(0.2), R(0.3), R(0.4)),
		Op("re", I(0), I(0), I(10), I(10)),
		Op("f"),
		Op("k", I(1), I(0), I(0), I(0)),
		Op("re", I(0), I(0), I(5), I(5)),
		Op("f"),
		Op("cs", N("CS0")),
		Op("scn", R(0.8)),
		Op("re", I(0), I(0), I(1), I(1)),
		Op("f"),
	})

	objs := ip.Objects()
	if len(objs) != 3 {
		t.Fatalf("got %d objects, want 3", len(objs))
	}
	want := []*color.ExtendedColor{
		color.CMYK(0.1, 0.2, 0.3, 0.4, 1),
		color.CMYK(1, 0, 0, 0, 1),
	}
	for i, w := range want {
		if d := cmp.Diff(w, objs[i].Base().FillColor, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("object %d: %s", i, d)
		}
	}

	fill := objs[2].Base().FillColor
	if fill.Kind != color.KindSpot || fill.Spot == nil {
		t.Fatalf("fill colour = %s", fill)
	}
	if fill.Spot.Name != "PANTONE Reflex Blue C" || fill.Tint != 0.8 {
		t.Errorf("got %s at tint %g", fill.Spot.Name, fill.Tint)
	}

	info := spots.Lookup("PANTONE Reflex Blue C")
	if info == nil {
		t.Fatal("spot colour not registered")
	}
	if d := cmp.Diff([]string{"p1-3"}, info.References); d != "" {
		t.Error(d)
	}
	if spots.Len() != 1 {
		t.Errorf("got %d spot colours, want 1", spots.Len())
	}
}

func TestDeviceNReferences(t *testing.T) {
	spots := color.NewCatalog(color.PantoneSolidCoated(), nil)
	ip := New(&Options{
		Resources: &Resources{
			ColorSpace: map[N]prepress.Object{
				"CS0": A{N("DeviceN"), A{N("Gold"), N("Cyan"), N("Varnish")}, N("DeviceCMYK"), D{}},
			},
		},
		Spots:    spots,
		IDPrefix: "p1",
	})
	ip.Run([]Operator{
		Op("cs", N("CS0")),
		Op("scn", R(0.4), I(1), R(0.6)),
		Op("re", I(0), I(0), I(1), I(1)),
		Op("f"),
		Op("scn", I(1), I(0), I(0)),
		Op("re", I(0), I(0), I(1), I(1)),
		Op("f"),
	})

	got := map[string][]string{}
	for _, info := range spots.Spots() {
		got[info.Name] = info.References
	}
	want := map[string][]string{
		"Gold":    {"p1-1", "p1-2"},
		"Varnish": {"p1-1"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestMalformedOperators(t *testing.T) {
	ip := New(nil)

	err := ip.Apply(Op("cm", I(2), I(0), I(0)))
	var opErr *prepress.OperatorError
	if !errors.As(err, &opErr) || opErr.Op != "cm" {
		t.Fatalf("got %v, want operator error for cm", err)
	}
	if !errors.Is(err, prepress.ErrNotEnoughArgs) {
		t.Errorf("got %v, want %v", err, prepress.ErrNotEnoughArgs)
	}
	if ip.State().CTM != matrix.Identity {
		t.Errorf("CTM changed to %v", ip.State().CTM)
	}

	ip.Run([]Operator{
		Op("re", I(0), N("x"), I(5), I(5)),
		Op("w", I(1), I(2)),
		Op("J", I(7)),
		Op("Q"),
		Op("re", I(0), I(0), I(5), I(5)),
		Op("S"),
	})

	diags := ip.Diagnostics()
	var got []int
	for _, d := range diags {
		got = append(got, d.Index)
	}
	if d := cmp.Diff([]int{0, 1, 2, 3}, got); d != "" {
		t.Error(d)
	}
	if !errors.Is(diags[2].Err, prepress.ErrTooManyArgs) {
		t.Errorf("diagnostic 2: %v", diags[2].Err)
	}
	if diags[3].Op != OpSetLineCap {
		t.Errorf("diagnostic 3: %s", diags[3].Op)
	}

	// Only the last path is painted.
	objs := ip.Objects()
	if len(objs) != 1 {
		t.Fatalf("got %d objects, want 1", len(objs))
	}
	if objs[0].Base().StrokeColor == nil {
		t.Error("missing stroke colour")
	}
}

func TestUnresolvableColorSpace(t *testing.T) {
	ip := New(nil)
	ip.Apply(Op("k", I(0), I(0), I(0), I(1)))
	err := ip.Apply(Op("cs", N("Missing")))
	if !errors.Is(err, errUnknownResource) {
		t.Errorf("got %v", err)
	}
	if ip.State().FillSpace.Family != color.FamilyDeviceCMYK {
		t.Errorf("fill space = %s", ip.State().FillSpace.Family)
	}
}

func TestSaveRestore(t *testing.T) {
	ip := New(nil)
	ip.Run([]Operator{
		Op("q"),
		Op("cm", I(1), I(0), I(0), I(1), I(100), I(100)),
		Op("rg", I(1), I(0), I(0)),
		Op("Q"),
		Op("Q"),
	})
	if len(ip.Diagnostics()) != 0 {
		t.Errorf("unexpected diagnostics %v", ip.Diagnostics())
	}
	s := ip.State()
	if s.CTM != matrix.Identity {
		t.Errorf("CTM = %v", s.CTM)
	}
	if s.FillColor.Kind != color.KindGray {
		t.Errorf("fill colour = %s", s.FillColor)
	}
}

func TestExtGState(t *testing.T) {
	ip := New(&Options{
		Resources: &Resources{
			ExtGState: map[N]D{
				"GS0": {"CA": R(0.5), "ca": R(0.25), "OP": prepress.Bool(true), "BM": N("Multiply")},
				"GS1": {"LW": I(-1)},
			},
		},
	})
	ip.Run([]Operator{
		Op("gs", N("GS0")),
		Op("gs", N("GS1")),
		Op("gs", N("GS2")),
		Op("re", I(0), I(0), I(5), I(5)),
		Op("B"),
	})
	if n := len(ip.Diagnostics()); n != 2 {
		t.Errorf("got %d diagnostics, want 2", n)
	}
	c := ip.Objects()[0].Base()
	if !c.Overprint || c.Knockout || c.Opacity != 0.25 {
		t.Errorf("got overprint=%t knockout=%t opacity=%g", c.Overprint, c.Knockout, c.Opacity)
	}
	if c.BlendMode.String() != "Multiply" {
		t.Errorf("blend mode = %s", c.BlendMode)
	}
	if ip.State().LineWidth != 1 {
		t.Errorf("line width = %g", ip.State().LineWidth)
	}
}

func TestText(t *testing.T) {
	ip := New(nil)
	ip.Run([]Operator{
		Op("BT"),
		Op("Tf", N("F1"), I(12)),
		Op("Td", I(72), I(700)),
		Op("Tj", S("Hello")),
		Op("Tj", S("")),
		Op("Tr", I(3)),
		Op("TJ", A{S("Hid"), I(-120), S("den")}),
		Op("ET"),
	})

	objs := ip.Objects()
	if len(objs) != 2 {
		t.Fatalf("got %d objects, want 2", len(objs))
	}
	txt := objs[0].(*object.Text)
	if txt.Content != "Hello" || txt.Font != "F1" {
		t.Errorf("got %q in font %s", txt.Content, txt.Font)
	}
	if d := cmp.Diff(object.Bounds{X: 72, Y: 700, Width: 30, Height: 12}, txt.Bounds); d != "" {
		t.Error(d)
	}

	hidden := objs[1].(*object.Text)
	if hidden.Content != "Hidden" {
		t.Errorf("got %q", hidden.Content)
	}
	if hidden.Bounds.X != 102 {
		t.Errorf("text position not advanced: %g", hidden.Bounds.X)
	}
	if hidden.FillColor != nil || hidden.StrokeColor != nil {
		t.Error("invisible text has colours")
	}
}

func TestTextPositioning(t *testing.T) {
	ip := New(nil)
	ip.Run([]Operator{
		Op("BT"),
		Op("Tm", I(1), I(0), I(0), I(1), I(10), I(20)),
		Op("TD", I(5), I(-14)),
		Op("T*"),
	})
	s := ip.State()
	if s.Tl != 14 {
		t.Errorf("leading = %g", s.Tl)
	}
	want := matrix.Matrix{1, 0, 0, 1, 15, -8}
	if s.Tm != want || s.Tlm != want {
		t.Errorf("Tm = %v, Tlm = %v", s.Tm, s.Tlm)
	}
}

func TestForm(t *testing.T) {
	form := &XObject{
		Dict: D{"Subtype": N("Form"), "Matrix": A{I(1), I(0), I(0), I(1), I(100), I(200)}},
		Content: []Operator{
			Op("g", R(0.5)),
			Op("re", I(0), I(0), I(10), I(10)),
			Op("f"),
		},
	}
	ip := New(&Options{
		Resources: &Resources{XObject: map[N]*XObject{"Fm1": form}},
	})
	ip.Run([]Operator{
		Op("Do", N("Fm1")),
		Op("re", I(0), I(0), I(1), I(1)),
		Op("f"),
	})

	objs := ip.Objects()
	if len(objs) != 2 {
		t.Fatalf("got %d objects, want 2", len(objs))
	}
	if got := objs[0].Base().Transform; got != (matrix.Matrix{1, 0, 0, 1, 100, 200}) {
		t.Errorf("form transform = %v", got)
	}
	if got := objs[1].Base(); got.Transform != matrix.Identity || got.FillColor.Values[0] != 0 {
		t.Error("form changed the page graphics state")
	}
}

func TestFormUnbalancedSave(t *testing.T) {
	form := &XObject{
		Dict:    D{"Subtype": N("Form"), "Matrix": A{I(2), I(0), I(0), I(2), I(100), I(100)}},
		Content: []Operator{Op("q"), Op("q"), Op("g", R(0.5))},
	}
	ip := New(&Options{
		Resources: &Resources{XObject: map[N]*XObject{"Fm": form}},
	})
	ip.Run([]Operator{Op("Do", N("Fm"))})

	s := ip.State()
	if d := ip.stack.Depth(); d != 0 || s.CTM != matrix.Identity {
		t.Errorf("CTM = %v, depth = %d", s.CTM, d)
	}
	if v := s.FillColor.Values[0]; v != 0 {
		t.Errorf("fill colour leaked out of form: %g", v)
	}
}

func TestFormExtraRestore(t *testing.T) {
	form := &XObject{
		Dict: D{"Subtype": N("Form")},
		Content: []Operator{
			Op("Q"),
			Op("Q"),
			Op("re", I(0), I(0), I(1), I(1)),
			Op("f"),
		},
	}
	ip := New(&Options{
		Resources: &Resources{XObject: map[N]*XObject{"Fm": form}},
	})
	ip.Run([]Operator{
		Op("cm", I(3), I(0), I(0), I(3), I(0), I(0)),
		Op("q"),
		Op("cm", I(5), I(0), I(0), I(5), I(0), I(0)),
		Op("Do", N("Fm")),
	})

	want := matrix.Matrix{15, 0, 0, 15, 0, 0}
	if got := ip.Objects()[0].Base().Transform; got != want {
		t.Errorf("form transform = %v, want %v", got, want)
	}
	if d, ctm := ip.stack.Depth(), ip.State().CTM; d != 1 || ctm != want {
		t.Errorf("CTM = %v, depth = %d", ctm, d)
	}

	ip.Apply(Op("Q"))
	if got := ip.State().CTM; got != (matrix.Matrix{3, 0, 0, 3, 0, 0}) {
		t.Errorf("CTM after Q = %v", got)
	}
}

func TestFormRecursion(t *testing.T) {
	loop := &XObject{
		Dict: D{"Subtype": N("Form")},
		Content: []Operator{
			Op("re", I(0), I(0), I(1), I(1)),
			Op("f"),
			Op("Do", N("Loop")),
		},
	}
	ip := New(&Options{
		Resources: &Resources{XObject: map[N]*XObject{"Loop": loop}},
	})
	err := ip.Apply(Op("Do", N("Loop")))
	if err != nil {
		t.Fatal(err)
	}

	if n := len(ip.Objects()); n != maxFormDepth {
		t.Errorf("got %d objects, want %d", n, maxFormDepth)
	}
	diags := ip.Diagnostics()
	if len(diags) != 1 || !errors.Is(diags[0].Err, errNesting) || diags[0].Index != 0 {
		t.Errorf("unexpected diagnostics %v", diags)
	}
}

func TestLayers(t *testing.T) {
	ip := New(&Options{
		Resources: &Resources{
			Properties: map[N]D{
				"MC0": {"Type": N("OCG"), "Name": S("Varnish UV Gloss")},
			},
		},
	})
	ip.Run([]Operator{
		Op("BDC", N("OC"), N("MC0")),
		Op("BMC", N("Artifact")),
		Op("re", I(0), I(0), I(1), I(1)),
		Op("f"),
		Op("EMC"),
		Op("re", I(0), I(0), I(1), I(1)),
		Op("f"),
		Op("EMC"),
		Op("re", I(0), I(0), I(1), I(1)),
		Op("f"),
		Op("EMC"),
		Op("BDC", N("OC"), N("MC9")),
		Op("EMC"),
	})

	var got []string
	for _, obj := range ip.Objects() {
		got = append(got, obj.Base().LayerID)
	}
	if d := cmp.Diff([]string{"Varnish UV Gloss", "Varnish UV Gloss", ""}, got); d != "" {
		t.Error(d)
	}

	l := ip.Layers().Lookup("Varnish UV Gloss")
	if l == nil {
		t.Fatal("layer missing")
	}
	if d := cmp.Diff([]string{"obj-1", "obj-2"}, l.ObjectIDs); d != "" {
		t.Error(d)
	}

	diags := ip.Diagnostics()
	if len(diags) != 1 || diags[0].Index != 11 {
		t.Errorf("unexpected diagnostics %v", diags)
	}
}

func TestFormLayer(t *testing.T) {
	form := &XObject{
		Dict: D{
			"Subtype": N("Form"),
			"OC":      D{"Type": N("OCG"), "Name": S("Die Line"), "ID": N("12")},
		},
		Content: []Operator{
			Op("re", I(0), I(0), I(1), I(1)),
			Op("S"),
		},
	}
	ip := New(&Options{
		Resources: &Resources{XObject: map[N]*XObject{"Fm0": form}},
	})
	ip.Apply(Op("Do", N("Fm0")))

	if id := ip.Objects()[0].Base().LayerID; id != "12" {
		t.Errorf("layer = %q", id)
	}
	if l := ip.Layers().Lookup("12"); l == nil || l.Name != "Die Line" {
		t.Errorf("layer = %+v", l)
	}
}

func TestShading(t *testing.T) {
	spots := color.NewCatalog(color.PantoneSolidCoated(), nil)
	ip := New(&Options{
		Resources: &Resources{
			ColorSpace: map[N]prepress.Object{"CS0": reflexBlue},
			Shading: map[N]D{
				"Sh0": {"ShadingType": I(2), "ColorSpace": N("CS0")},
				"Sh1": {"ShadingType": I(3), "ColorSpace": N("DeviceRGB")},
			},
		},
		Spots: spots,
	})
	ip.Run([]Operator{
		Op("sh", N("Sh0")),
		Op("sh", N("Sh1")),
		Op("sh", N("Sh2")),
	})

	objs := ip.Objects()
	if len(objs) != 2 {
		t.Fatalf("got %d objects, want 2", len(objs))
	}
	sh := objs[0].(*object.Shading)
	if sh.ShadingType != 2 || sh.ColorSpace != color.FamilySeparation {
		t.Errorf("got type %d in %s", sh.ShadingType, sh.ColorSpace)
	}
	if sh.FillColor == nil || sh.FillColor.Kind != color.KindSpot || sh.FillColor.Tint != 1 {
		t.Errorf("fill colour = %s", sh.FillColor)
	}
	if objs[1].Base().FillColor != nil {
		t.Error("process shading has a fill colour")
	}
	if d := cmp.Diff([]string{"obj-1"}, spots.Lookup("PANTONE Reflex Blue C").References); d != "" {
		t.Error(d)
	}
	if len(ip.Diagnostics()) != 1 {
		t.Errorf("unexpected diagnostics %v", ip.Diagnostics())
	}
}

func TestImages(t *testing.T) {
	img := &XObject{
		Dict: D{
			"Subtype":          N("Image"),
			"Width":            I(100),
			"Height":           I(50),
			"BitsPerComponent": I(8),
			"ColorSpace":       N("DeviceRGB"),
		},
	}
	ip := New(&Options{
		Resources: &Resources{XObject: map[N]*XObject{"Im0": img}},
	})
	ip.Run([]Operator{
		Op("cm", I(200), I(0), I(0), I(100), I(50), I(60)),
		Op("Do", N("Im0")),
		Op("rg", I(1), I(0), I(0)),
		Op("BI", D{"W": I(8), "H": I(8), "IM": prepress.Bool(true)}, S("data")),
		Op("BI", D{"W": I(2), "H": I(2), "BPC": I(8), "CS": N("G")}, S("data")),
	})

	objs := ip.Objects()
	if len(objs) != 3 {
		t.Fatalf("got %d objects, want 3", len(objs))
	}

	im := objs[0].(*object.Image)
	wantInfo := object.ImageInfo{
		Name:             "Im0",
		PixelWidth:       100,
		PixelHeight:      50,
		BitsPerComponent: 8,
		ColorSpace:       color.FamilyDeviceRGB,
	}
	if d := cmp.Diff(wantInfo, im.ImageInfo); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(object.Bounds{X: 50, Y: 60, Width: 200, Height: 100}, im.Bounds); d != "" {
		t.Error(d)
	}

	mask := objs[1].(*object.Image)
	if !mask.IsMask || !mask.Inline || mask.BitsPerComponent != 1 {
		t.Errorf("mask = %+v", mask.ImageInfo)
	}
	if mask.FillColor == nil || mask.FillColor.Kind != color.KindRGB {
		t.Errorf("mask colour = %s", mask.FillColor)
	}

	gray := objs[2].(*object.Image)
	if gray.ColorSpace != color.FamilyDeviceGray || gray.FillColor != nil {
		t.Errorf("inline image = %+v", gray.ImageInfo)
	}
}

func TestOperatorNames(t *testing.T) {
	for code := OpUnknown + 1; code < opFirstUnused; code++ {
		name := code.String()
		if Lookup(name) != code {
			t.Errorf("%d: %q does not round-trip", code, name)
		}
	}
	if Lookup("XYZ") != OpUnknown {
		t.Error("unknown operator name accepted")
	}

	// Unknown operators are ignored.
	ip := New(nil)
	if err := ip.Apply(Op("XYZ", I(1))); err != nil {
		t.Error(err)
	}
}
