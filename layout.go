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

// Layout describes how the glyphs of one font, or of the two styles of one
// family, are distributed over encoding vectors.
type Layout struct {
	// Primary is the font whose glyph set determines the page geometry.
	Primary FamilyKind

	// Secondary is the second style of a dual-style family.  For a
	// single-style layout this equals Primary.
	Secondary FamilyKind

	Capacity int

	// Pages holds the encoding vectors of the primary font.
	Pages []Page

	// SecondaryPages holds the encoding vectors of the secondary style,
	// with the same geometry as Pages.  This is nil for a single-style
	// layout.
	SecondaryPages []Page

	// Assignments maps every glyph of the primary font to its family and
	// slot.  Glyphs which only exist in the secondary style are not
	// included.
	Assignments map[string]Assignment
}

// LayoutSingle distributes the glyphs of a single font over encoding
// vectors.
func LayoutSingle(kind FamilyKind, set GlyphSet, capacity int) (*Layout, error) {
	pages, err := Partition(set, capacity)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		Primary:   kind,
		Secondary: kind,
		Capacity:  capacity,
		Pages:     pages,
	}
	l.assign(set)

	tracer().Debugf("%s: %d glyphs on %d pages", kind, set.Len(), len(pages))
	return l, nil
}

// LayoutPair distributes the glyphs of two styles of one family over
// parallel encoding vectors.
//
// The glyph set of the primary style is partitioned as in [Partition].  The
// secondary vectors use the same slots: a slot holds the glyph if the
// secondary style has it, and [Notdef] otherwise.  Glyphs which only occur
// in the secondary style are not placed anywhere.
func LayoutPair(primary, secondary FamilyKind, pSet, sSet GlyphSet, capacity int) (*Layout, error) {
	if primary == secondary || primary.Tag() != secondary.Tag() {
		return nil, configError("%s and %s are not two styles of one family",
			primary, secondary)
	}

	pages, err := Partition(pSet, capacity)
	if err != nil {
		return nil, err
	}

	secondaryPages := make([]Page, len(pages))
	holes := 0
	for p, page := range pages {
		sPage := make(Page, capacity)
		for slot, name := range page {
			if sSet.Contains(name) {
				sPage[slot] = name
			} else {
				sPage[slot] = Notdef
				if name != Notdef {
					holes++
				}
			}
		}
		secondaryPages[p] = sPage
	}

	l := &Layout{
		Primary:        primary,
		Secondary:      secondary,
		Capacity:       capacity,
		Pages:          pages,
		SecondaryPages: secondaryPages,
	}
	l.assign(pSet)

	tracer().Debugf("%s/%s: %d glyphs on %d pages, %d missing in %s",
		primary, secondary, pSet.Len(), len(pages), holes, secondary)
	return l, nil
}

func (l *Layout) assign(set GlyphSet) {
	l.Assignments = make(map[string]Assignment, set.Len())
	for i, name := range set.names {
		l.Assignments[name] = Assignment{
			Family: Family{Kind: l.Primary, Page: i / l.Capacity},
			Slot:   i % l.Capacity,
		}
	}
}

// IsPair reports whether the layout describes two styles of one family.
func (l *Layout) IsPair() bool {
	return l.Primary != l.Secondary
}

// Vector is one encoding vector of a layout, together with the font and
// page it belongs to.
type Vector struct {
	Kind   FamilyKind
	Page   int
	Glyphs Page
}

// Vectors returns all encoding vectors of the layout.  For a dual-style
// layout the primary and the secondary vector of each page are returned
// next to each other.
func (l *Layout) Vectors() []Vector {
	var res []Vector
	for p, page := range l.Pages {
		res = append(res, Vector{Kind: l.Primary, Page: p, Glyphs: page})
		if l.IsPair() {
			res = append(res, Vector{Kind: l.Secondary, Page: p, Glyphs: l.SecondaryPages[p]})
		}
	}
	return res
}
