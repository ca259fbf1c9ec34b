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

package iconenc

import (
	"golang.org/x/exp/slices"

	"seehuhn.de/go/iconenc/names"
)

// skipNames are glyph names which never get a slot.  Icon fonts carry the
// digits as helper glyphs; they are not icons.
var skipNames = map[string]bool{
	"0": true, "1": true, "2": true, "3": true, "4": true,
	"5": true, "6": true, "7": true, "8": true, "9": true,
}

// GlyphSet is a sorted list of distinct glyph names.
//
// The names are sorted by byte-wise comparison.  Slot assignments depend
// only on this order, so they are the same in every run and for every
// style of a family.
type GlyphSet struct {
	names []string
}

// NewGlyphSet returns the glyph set for the given names.  Reserved names
// (see [names.IsReserved]), the digit glyphs "0" to "9" and empty names are
// dropped, duplicates are removed.  The argument is not modified.
func NewGlyphSet(glyphNames []string) GlyphSet {
	keep := make([]string, 0, len(glyphNames))
	for _, name := range glyphNames {
		if name == "" || names.IsReserved(name) || skipNames[name] {
			continue
		}
		keep = append(keep, name)
	}
	slices.Sort(keep)
	keep = slices.Compact(keep)
	return GlyphSet{names: keep}
}

// Len returns the number of glyphs in the set.
func (s GlyphSet) Len() int {
	return len(s.names)
}

// At returns the i-th glyph name in sort order.
func (s GlyphSet) At(i int) string {
	return s.names[i]
}

// Names returns a copy of the glyph names, in sort order.
func (s GlyphSet) Names() []string {
	return slices.Clone(s.names)
}

// Contains checks whether the set contains the given glyph.
func (s GlyphSet) Contains(name string) bool {
	_, found := slices.BinarySearch(s.names, name)
	return found
}

// Locate returns the page and slot of the given glyph, when the set is
// partitioned into pages of the given capacity.
func (s GlyphSet) Locate(name string, capacity int) (Location, bool) {
	if capacity <= 0 {
		return Location{}, false
	}
	idx, found := slices.BinarySearch(s.names, name)
	if !found {
		return Location{}, false
	}
	return Location{Page: idx / capacity, Slot: idx % capacity}, true
}
