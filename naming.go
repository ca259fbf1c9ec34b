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
	"strings"
)

// EncodingName returns the name of the PostScript array holding the
// encoding vector for the given font and page, for example "fa7brands0" or
// "fa7free0solid".  The same name is used for the metric resource generated
// from this vector.
func EncodingName(prefix string, kind FamilyKind, page int) string {
	name := prefix + kind.Tag() + strconv.Itoa(page)
	if kind.IsFree() {
		name += kind.Style().String()
	}
	return name
}

// EncodingFile returns the file name of the encoding vector for the given
// font and page, for example "fa7brands0.enc" or "fa7free0_solid.enc".
func EncodingFile(prefix string, kind FamilyKind, page int) string {
	name := prefix + kind.Tag() + strconv.Itoa(page)
	if kind.IsFree() {
		name += "_" + kind.Style().String()
	}
	return name + ".enc"
}

// Metric describes a metric resource (a tfm file) generated for one page
// of one font.
type Metric struct {
	Name  string
	Kind  FamilyKind
	Style StyleKind
	Page  int
}

// MetricFor returns the metric resource for the given font and page.
func MetricFor(prefix string, kind FamilyKind, page int) Metric {
	return Metric{
		Name:  EncodingName(prefix, kind, page),
		Kind:  kind,
		Style: kind.Style(),
		Page:  page,
	}
}

// ParseMetricName recovers font and page from the name of a metric
// resource, as produced by [EncodingName].
//
// Names ending in "solid" have style [Solid], all other names have style
// [Regular].  A name which does not belong to a known family gives a
// [*LookupError].
func ParseMetricName(prefix, name string) (Metric, error) {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return Metric{}, &LookupError{What: "font family", Key: name}
	}

	style := Regular
	if r, ok := strings.CutSuffix(rest, Solid.String()); ok {
		style = Solid
		rest = r
	} else if r, ok := strings.CutSuffix(rest, Regular.String()); ok {
		rest = r
	}

	var kind FamilyKind
	var digits string
	if d, ok := strings.CutPrefix(rest, Brands.Tag()); ok {
		kind = Brands
		digits = d
	} else if d, ok := strings.CutPrefix(rest, FreeSolid.Tag()); ok {
		kind = FreeRegular
		if style == Solid {
			kind = FreeSolid
		}
		digits = d
	} else {
		return Metric{}, &LookupError{What: "font family", Key: name}
	}

	page, err := strconv.Atoi(digits)
	if err != nil || page < 0 || strconv.Itoa(page) != digits {
		return Metric{}, &LookupError{What: "page number", Key: name}
	}

	return Metric{Name: name, Kind: kind, Style: style, Page: page}, nil
}
