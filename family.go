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
	"strconv"
)

// FamilyKind identifies one of the fonts processed in a run.
type FamilyKind int

// These are the supported fonts.
const (
	Brands FamilyKind = iota + 1
	FreeRegular
	FreeSolid
)

// AllKinds lists the supported fonts in processing order.
var AllKinds = []FamilyKind{Brands, FreeRegular, FreeSolid}

func (k FamilyKind) String() string {
	switch k {
	case Brands:
		return "Brands"
	case FreeRegular:
		return "FreeRegular"
	case FreeSolid:
		return "FreeSolid"
	default:
		return "FamilyKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Tag returns the family part of encoding and file names.
// The two Free styles share the tag "free".
func (k FamilyKind) Tag() string {
	switch k {
	case Brands:
		return "brands"
	case FreeRegular, FreeSolid:
		return "free"
	default:
		return ""
	}
}

// Style returns the style of the font.  The Brands font only has a regular
// style.
func (k FamilyKind) Style() StyleKind {
	if k == FreeSolid {
		return Solid
	}
	return Regular
}

// IsFree reports whether the font belongs to the Free family, which comes
// in two styles sharing one page geometry.
func (k FamilyKind) IsFree() bool {
	return k == FreeRegular || k == FreeSolid
}

// StyleKind distinguishes the two styles of a family.
type StyleKind int

// These are the supported styles.
const (
	Regular StyleKind = iota
	Solid
)

func (s StyleKind) String() string {
	switch s {
	case Regular:
		return "regular"
	case Solid:
		return "solid"
	default:
		return "style" + strconv.Itoa(int(s))
	}
}

// Family identifies one page of encoding vectors.  For the Free family the
// same Family value describes the solid and the regular vector.
type Family struct {
	Kind FamilyKind
	Page int
}

// Qualifier returns the family qualifier used in the generated TeX files,
// for example "brands0" or "free1".
func (f Family) Qualifier() string {
	return f.Kind.Tag() + strconv.Itoa(f.Page)
}

func (f Family) String() string {
	return f.Qualifier()
}
