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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTableAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconenc")
	defer teardown()

	brands, err := LayoutSingle(Brands, NewGlyphSet([]string{"github", "gitlab"}), PageSize)
	if err != nil {
		t.Fatal(err)
	}
	free, err := LayoutPair(FreeSolid, FreeRegular,
		NewGlyphSet([]string{"house", "car", "star"}),
		NewGlyphSet([]string{"house", "car"}), PageSize)
	if err != nil {
		t.Fatal(err)
	}

	table := NewTable()
	if err := table.Add(brands); err != nil {
		t.Fatal(err)
	}
	if err := table.Add(free); err != nil {
		t.Fatal(err)
	}

	if table.Len() != 5 {
		t.Errorf("table has %d entries, want 5", table.Len())
	}
	want := []string{"car", "github", "gitlab", "house", "star"}
	if d := cmp.Diff(table.Names(), want); d != "" {
		t.Errorf("names (-got +want):\n%s", d)
	}

	a, ok := table.Lookup("gitlab")
	if !ok || a.Qualifier() != "brands0" || a.Slot != 1 {
		t.Errorf("gitlab: got %v, %t", a, ok)
	}
	a, ok = table.Lookup("star")
	if !ok || a.Qualifier() != "free0" || a.Slot != 2 || a.Kind != FreeSolid {
		t.Errorf("star: got %v, %t", a, ok)
	}
	if _, ok := table.Lookup("bus"); ok {
		t.Error("found unknown glyph")
	}
}

func TestTableDuplicate(t *testing.T) {
	brands, err := LayoutSingle(Brands, NewGlyphSet([]string{"a", "shared"}), PageSize)
	if err != nil {
		t.Fatal(err)
	}
	free, err := LayoutSingle(FreeSolid, NewGlyphSet([]string{"b", "shared", "z"}), PageSize)
	if err != nil {
		t.Fatal(err)
	}

	table := NewTable()
	if err := table.Add(brands); err != nil {
		t.Fatal(err)
	}
	err = table.Add(free)
	var dupErr *DuplicateGlyphError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateGlyphError, got %v", err)
	}
	if dupErr.Glyph != "shared" {
		t.Errorf("duplicate glyph %q, want shared", dupErr.Glyph)
	}
	if dupErr.Old.Kind != Brands || dupErr.New.Kind != FreeSolid {
		t.Errorf("wrong assignments in error: %v", dupErr)
	}

	// the failed merge must not change the table
	if d := cmp.Diff(table.Names(), []string{"a", "shared"}); d != "" {
		t.Errorf("table changed by failed merge (-got +want):\n%s", d)
	}
	if a, _ := table.Lookup("shared"); a.Kind != Brands {
		t.Errorf("shared now assigned to %s", a.Kind)
	}
}

func TestTableFamilies(t *testing.T) {
	brands, err := LayoutSingle(Brands, NewGlyphSet(makeNames(300)), PageSize)
	if err != nil {
		t.Fatal(err)
	}
	var freeNames []string
	for _, name := range makeNames(600) {
		freeNames = append(freeNames, "free-"+name)
	}
	free, err := LayoutPair(FreeSolid, FreeRegular,
		NewGlyphSet(freeNames), NewGlyphSet(freeNames[:10]), PageSize)
	if err != nil {
		t.Fatal(err)
	}

	table := NewTable()
	for _, l := range []*Layout{free, brands} {
		if err := table.Add(l); err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	for _, f := range table.Families() {
		got = append(got, f.Qualifier())
	}
	want := []string{"brands0", "brands1", "free0", "free1", "free2"}
	if d := cmp.Diff(got, want); d != "" {
		t.Errorf("families (-got +want):\n%s", d)
	}
}
