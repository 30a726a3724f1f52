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

package oc

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// LayerType describes the function of a layer in print production.
type LayerType int

// These are the supported layer types.
const (
	LayerArtwork LayerType = iota
	LayerWhite
	LayerVarnish
	LayerDieline
	LayerFoil
	LayerEmboss
	LayerBraille
	LayerTechnical
	LayerAnnotation
)

var layerTypeNames = [...]string{
	LayerArtwork:    "Artwork",
	LayerWhite:      "White",
	LayerVarnish:    "Varnish",
	LayerDieline:    "Dieline",
	LayerFoil:       "Foil",
	LayerEmboss:     "Emboss",
	LayerBraille:    "Braille",
	LayerTechnical:  "Technical",
	LayerAnnotation: "Annotation",
}

func (t LayerType) String() string {
	if t >= 0 && int(t) < len(layerTypeNames) {
		return layerTypeNames[t]
	}
	return "LayerType(" + strconv.Itoa(int(t)) + ")"
}

// DefaultPrintable reports whether layers of type t print unless the
// document says otherwise.
func DefaultPrintable(t LayerType) bool {
	return t != LayerAnnotation && t != LayerTechnical
}

type layerRule struct {
	tokens []string
	tp     LayerType
}

// layerRules is evaluated in order, the first rule with a matching token
// wins.  Tokens are in folded case.
var layerRules = []layerRule{
	{[]string{"white", "underprint"}, LayerWhite},
	{[]string{"varnish", "coating", "uv", "gloss", "matte"}, LayerVarnish},
	{[]string{"die", "cut", "crease", "perf", "kiss"}, LayerDieline},
	{[]string{"foil", "gold", "silver", "metallic"}, LayerFoil},
	{[]string{"emboss", "deboss", "blind"}, LayerEmboss},
	{[]string{"braille"}, LayerBraille},
	{[]string{"technical", "info", "notes", "instructions"}, LayerTechnical},
	{[]string{"annotation", "comment", "markup"}, LayerAnnotation},
}

var folder = cases.Fold()

// Classify determines the layer type from the name of a layer.
// Names which match none of the rules are classified as artwork.
func Classify(name string) LayerType {
	key := folder.String(name)
	for _, rule := range layerRules {
		for _, tok := range rule.tokens {
			if strings.Contains(key, tok) {
				return rule.tp
			}
		}
	}
	return LayerArtwork
}

var spotTokens = []string{"pantone", "spot", "pms ", "hks ", "toyo", "dic "}

// IsSpotAssociated reports whether a layer name refers to a spot colour.
func IsSpotAssociated(name string) bool {
	key := folder.String(name)
	for _, tok := range spotTokens {
		if strings.Contains(key, tok) {
			return true
		}
	}
	return false
}

var (
	pantoneLayer = regexp.MustCompile(`(?i)pantone\s*(\d+)\s*([cmu])?\b`)
	pmsLayer     = regexp.MustCompile(`(?i)pms\s*(\d+)\s*([cmu])?\b`)
	spotPrefix   = regexp.MustCompile(`(?i)spot:\s*(.+)`)
	spotSuffix   = regexp.MustCompile(`(?i)(.+?)\s*\(spot\)`)
)

// AssociatedColor extracts the name of the ink a layer is named after.
// The second return value is false if no ink name could be found.
func AssociatedColor(name string) (string, bool) {
	if !IsSpotAssociated(name) {
		return "", false
	}
	for _, re := range []*regexp.Regexp{pantoneLayer, pmsLayer} {
		if m := re.FindStringSubmatch(name); m != nil {
			res := "PANTONE " + m[1]
			if m[2] != "" {
				res += " " + strings.ToUpper(m[2])
			}
			return res, true
		}
	}
	for _, re := range []*regexp.Regexp{spotPrefix, spotSuffix} {
		if m := re.FindStringSubmatch(name); m != nil {
			if ink := strings.TrimSpace(m[1]); ink != "" {
				return ink, true
			}
		}
	}
	return "", false
}

// Layer describes an optional content group as seen by the print
// production workflow.
type Layer struct {
	ID   string
	Name string

	Visible   bool
	Printable bool
	Locked    bool

	Type LayerType

	// SpotAssociated is set if the layer name refers to a spot colour.
	// AssociatedColor is the ink name, if one could be extracted.
	SpotAssociated  bool
	AssociatedColor string

	// Parent is the ID of the enclosing layer, or "" for top-level
	// layers.  Children lists the IDs of the sub-layers in order.
	Parent   string
	Children []string

	// Order is the position of the layer in declaration order.
	Order int

	// ObjectIDs lists the page objects drawn inside the layer.
	ObjectIDs []string

	Intent []string
}

// Clone returns a deep copy of l.
func (l *Layer) Clone() *Layer {
	if l == nil {
		return nil
	}
	c := *l
	c.Children = slices.Clone(l.Children)
	c.ObjectIDs = slices.Clone(l.ObjectIDs)
	c.Intent = slices.Clone(l.Intent)
	return &c
}
