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

// Package iconenc distributes the glyphs of icon fonts over encoding vectors
// with 256 slots each, so that the fonts can be used with 8-bit font
// machinery like TeX's tfm/vf files and dvips map files.
//
// The glyphs of a font are sorted by name and then cut into pages of
// [PageSize] glyphs.  Every page becomes one encoding vector; slots which
// are not used hold the [Notdef] glyph.  Two styles of the same family can
// share one page geometry: the primary style determines where every glyph
// goes, the secondary style uses the same slots and leaves holes for the
// glyphs it does not have.
//
// The result of a run is collected in a [Table], which maps every glyph name
// to its encoding family and slot.  All generated files are derived from
// this table.
package iconenc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'iconenc'.
func tracer() tracing.Trace {
	return tracing.Select("iconenc")
}
