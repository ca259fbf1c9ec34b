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

// Package otfglyphs lists the glyph names of OpenType and TrueType fonts.
package otfglyphs

import (
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/sfnt"
)

// Read returns the glyph names of the font, in glyph ID order.  For fonts
// without glyph name information, names are made up by the sfnt library.
func Read(r io.Reader) ([]string, error) {
	info, err := sfnt.Read(r)
	if err != nil {
		return nil, err
	}
	return info.MakeGlyphNames(), nil
}

// ReadFile returns the glyph names of the font stored in the named file.
func ReadFile(fname string) ([]string, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	glyphNames, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return glyphNames, nil
}
