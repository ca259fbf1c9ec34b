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

const (
	// PageSize is the number of slots in an 8-bit encoding vector.
	PageSize = 256

	// Notdef is the glyph name used for unused slots.
	Notdef = ".notdef"
)

// Page is one encoding vector.  Every entry is either a glyph name or
// [Notdef].
type Page []string

// Location gives the position of a glyph in a sequence of pages.
type Location struct {
	Page int
	Slot int
}

// NumPages returns the number of pages needed for n glyphs.
func NumPages(n, capacity int) int {
	return (n + capacity - 1) / capacity
}

// Partition cuts the glyph set into pages of the given capacity.
//
// Page p holds the glyphs with indices p*capacity to (p+1)*capacity-1;
// slots after the end of the set are filled with [Notdef].  Every page has
// exactly capacity entries.  An empty set gives no pages.  The capacity
// must be between 1 and [PageSize].
func Partition(set GlyphSet, capacity int) ([]Page, error) {
	if capacity <= 0 {
		return nil, configError("page capacity %d is not positive", capacity)
	}
	if capacity > PageSize {
		return nil, configError("page capacity %d exceeds %d slots", capacity, PageSize)
	}

	n := set.Len()
	pages := make([]Page, NumPages(n, capacity))
	for p := range pages {
		page := make(Page, capacity)
		for slot := range page {
			idx := p*capacity + slot
			if idx < n {
				page[slot] = set.names[idx]
			} else {
				page[slot] = Notdef
			}
		}
		pages[p] = page
	}
	return pages, nil
}
