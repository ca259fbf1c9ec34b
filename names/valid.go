// seehuhn.de/go/iconenc - encoding vectors for icon fonts
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Package names implements syntax checks for glyph names.
package names

// ReservedMarker is the first character of glyph names which are internal
// to a font, for example ".notdef" or ".null".
const ReservedMarker = '.'

const maxNameLength = 127

// IsReserved checks whether s is an internal glyph name which must not be
// given a slot in an encoding vector.
func IsReserved(s string) bool {
	return len(s) > 0 && s[0] == ReservedMarker
}

// IsToken checks whether s can be written as a PostScript literal name,
// i.e. as "/" followed by s, and read back unchanged.
//
// Icon font glyph names often contain hyphens ("arrow-right"), so the
// stricter rules of the Adobe Glyph List specification are not applied.
// See section 3.2.4 of the PLRM for the name syntax.
func IsToken(s string) bool {
	if len(s) < 1 || len(s) > maxNameLength {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c >= 127 {
			return false
		}
		switch c {
		case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
			return false
		}
	}

	return true
}
