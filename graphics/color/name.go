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
	"regexp"
	"strconv"
	"strings"

	"github.com/xdg-go/stringprep"
	"golang.org/x/text/unicode/norm"
)

var (
	pantonePrefix = regexp.MustCompile(`(?i)^pantone\b\s*`)
	finishSuffix  = regexp.MustCompile(`(?i)^(.*?)(?:\s+|(\d))([cmu])$`)
)

// NormalizeName returns the catalog key for an ink name.
//
// Name escapes of the form #xx are decoded and a leading slash is removed.
// The name is then brought into a canonical Unicode form, surrounding white
// space is removed, and runs of white space are collapsed to a single space.
// For PANTONE inks the prefix is written in upper case, and a trailing
// finish code (C, U or M) is written in upper case and separated by a space.
func NormalizeName(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "/")
	s = decodeNameEscapes(s)

	if p, err := stringprep.SASLprep.Prepare(s); err == nil {
		s = p
	} else {
		s = norm.NFC.String(s)
	}
	s = strings.Join(strings.Fields(s), " ")

	if loc := pantonePrefix.FindStringIndex(s); loc != nil {
		rest := s[loc[1]:]
		if rest == "" {
			return "PANTONE"
		}
		s = "PANTONE " + rest
		if m := finishSuffix.FindStringSubmatch(s); m != nil && len(m[1]) > len("PANTONE") {
			s = m[1] + m[2] + " " + strings.ToUpper(m[3])
		}
	}
	return s
}

// decodeNameEscapes replaces #xx sequences, as used in PDF names, by the
// byte they encode.  Invalid sequences are left unchanged.
func decodeNameEscapes(s string) string {
	if !strings.Contains(s, "#") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && i+2 < len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
