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

package texmap

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/iconenc"
)

// FontFiles gives the PostScript name and the Type 1 font file of a font.
type FontFiles struct {
	PostScriptName string
	Type1File      string
}

// MapEntry is one line of a dvips map file.
type MapEntry struct {
	Metric         string
	PostScriptName string
	EncodingName   string
	EncodingFile   string
	FontFile       string
}

func (e *MapEntry) String() string {
	return fmt.Sprintf("%s %s \"%s ReEncodeFont\" <[%s <%s",
		e.Metric, e.PostScriptName, e.EncodingName, e.EncodingFile, e.FontFile)
}

// MapFile returns the file name of the dvips map file.
func (n *Names) MapFile() string {
	return n.Package + ".map"
}

// MapEntries returns the map file entries for the given metric resources,
// sorted by metric name.  A metric whose font is missing from fonts gives a
// [*iconenc.LookupError].
func (n *Names) MapEntries(metrics []iconenc.Metric, fonts map[iconenc.FamilyKind]FontFiles) ([]*MapEntry, error) {
	res := make([]*MapEntry, 0, len(metrics))
	for _, m := range metrics {
		ff, ok := fonts[m.Kind]
		if !ok {
			return nil, &iconenc.LookupError{What: "font files", Key: m.Name}
		}
		res = append(res, &MapEntry{
			Metric:         m.Name,
			PostScriptName: ff.PostScriptName,
			EncodingName:   iconenc.EncodingName(n.Prefix, m.Kind, m.Page),
			EncodingFile:   iconenc.EncodingFile(n.Prefix, m.Kind, m.Page),
			FontFile:       ff.Type1File,
		})
	}
	slices.SortFunc(res, func(a, b *MapEntry) int {
		return strings.Compare(a.Metric, b.Metric)
	})
	return res, nil
}

// WriteMap writes a dvips map file, one line per entry.
func WriteMap(w io.Writer, entries []*MapEntry) error {
	for _, e := range entries {
		_, err := fmt.Fprintln(w, e.String())
		if err != nil {
			return err
		}
	}
	return nil
}
