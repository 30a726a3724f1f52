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
	"strings"

	"golang.org/x/text/cases"
)

type spotRule struct {
	tokens []string
	exact  []string
	tp     SpotColorType
}

// spotRules is evaluated top to bottom.  The first rule with a matching
// token decides the classification.
var spotRules = []spotRule{
	{tokens: []string{"white"}, tp: SpotWhite},
	{tokens: []string{"varnish", "coating", "uv"}, tp: SpotVarnish},
	{tokens: []string{"silver", "gold", "metallic"}, tp: SpotMetallic},
	{tokens: []string{"fluorescent", "neon"}, tp: SpotFluorescent},
	{tokens: []string{"die", "cut", "crease"}, tp: SpotDieline},
	{tokens: []string{"registration"}, exact: []string{"all"}, tp: SpotTechnical},
	{tokens: []string{"opaque"}, tp: SpotOpaque},
	{tokens: []string{"transparent"}, tp: SpotTransparent},
}

// ClassifySpot returns the classification of an ink name.
// The comparison ignores case.
func ClassifySpot(name string) SpotColorType {
	lower := cases.Fold().String(strings.TrimSpace(name))
	for _, rule := range spotRules {
		for _, tok := range rule.tokens {
			if strings.Contains(lower, tok) {
				return rule.tp
			}
		}
		for _, s := range rule.exact {
			if lower == s {
				return rule.tp
			}
		}
	}
	return SpotStandard
}

// IsProcessColorant reports whether name is one of the colorant names which
// PDF reserves for process inks and special purposes.  Such colorants are
// never registered as spot colours.
func IsProcessColorant(name string) bool {
	switch name {
	case "Cyan", "Magenta", "Yellow", "Black", "None", "All":
		return true
	}
	return false
}
