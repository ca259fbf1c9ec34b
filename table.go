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
)

// Assignment gives the position of a glyph: the encoding family and the
// slot within the family's encoding vector.
type Assignment struct {
	Family
	Slot int
}

// Table maps glyph names to their assignments, for all fonts of a run.
//
// A Table only grows.  All generated files are computed from the same
// Table, which keeps them consistent with each other.
type Table struct {
	glyphs map[string]Assignment
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		glyphs: make(map[string]Assignment),
	}
}

// Add merges the assignments of a layout into the table.
//
// Glyph names must be unique across the fonts of a run.  If a glyph of l is
// already present, a [*DuplicateGlyphError] is returned and the table is
// left unchanged.
func (t *Table) Add(l *Layout) error {
	glyphNames := make([]string, 0, len(l.Assignments))
	for name := range l.Assignments {
		glyphNames = append(glyphNames, name)
	}
	slices.Sort(glyphNames)

	for _, name := range glyphNames {
		if old, seen := t.glyphs[name]; seen {
			return &DuplicateGlyphError{
				Glyph: name,
				Old:   old,
				New:   l.Assignments[name],
			}
		}
	}
	for _, name := range glyphNames {
		t.glyphs[name] = l.Assignments[name]
	}

	tracer().Debugf("added %d glyphs of %s, table has %d entries",
		len(glyphNames), l.Primary, len(t.glyphs))
	return nil
}

// Lookup returns the assignment of the given glyph.
func (t *Table) Lookup(name string) (Assignment, bool) {
	a, ok := t.glyphs[name]
	return a, ok
}

// Len returns the number of glyphs in the table.
func (t *Table) Len() int {
	return len(t.glyphs)
}

// Names returns the glyph names in the table, in sort order.
func (t *Table) Names() []string {
	res := make([]string, 0, len(t.glyphs))
	for name := range t.glyphs {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// Families returns the distinct encoding families used in the table,
// ordered by family tag and page.
func (t *Table) Families() []Family {
	seen := make(map[string]bool)
	var res []Family
	for _, a := range t.glyphs {
		q := a.Qualifier()
		if seen[q] {
			continue
		}
		seen[q] = true
		res = append(res, a.Family)
	}
	slices.SortFunc(res, func(a, b Family) int {
		if a.Kind.Tag() != b.Kind.Tag() {
			if a.Kind.Tag() < b.Kind.Tag() {
				return -1
			}
			return 1
		}
		return a.Page - b.Page
	})
	return res
}
