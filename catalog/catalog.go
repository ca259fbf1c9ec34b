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

// Package catalog reads the icon metadata shipped with icon fonts.
//
// The catalog is a JSON object which maps icon names to descriptions:
//
//	{
//	  "house": {"unicode": "f015", "label": "House", "styles": ["solid", "regular"]},
//	  ...
//	}
//
// Only the fields needed to generate TeX macros are decoded.  The order of
// the entries in the file is preserved.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Icon describes one entry of the catalog.
type Icon struct {
	Name string

	// Unicode is the code point of the icon in the OpenType fonts, as a
	// hexadecimal string without prefix, e.g. "f015".  This is empty if the
	// catalog has no code point for the icon.
	Unicode string

	Label  string
	Styles []string
}

// Catalog is the list of icons, in file order.
type Catalog struct {
	Icons []*Icon
	index map[string]int
}

type iconJSON struct {
	Unicode string   `json:"unicode"`
	Label   string   `json:"label"`
	Styles  []string `json:"styles"`
}

// Read decodes a catalog.  If a name occurs more than once, the last
// description is used, at the position of the first occurrence.
func Read(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("catalog: expected object, got %v", tok)
	}

	res := &Catalog{
		index: make(map[string]int),
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("catalog: unexpected token %v", tok)
		}

		var raw iconJSON
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("catalog: icon %q: %w", name, err)
		}
		icon := &Icon{
			Name:    name,
			Unicode: raw.Unicode,
			Label:   raw.Label,
			Styles:  raw.Styles,
		}
		if i, seen := res.index[name]; seen {
			res.Icons[i] = icon
			continue
		}
		res.index[name] = len(res.Icons)
		res.Icons = append(res.Icons, icon)
	}

	tok, err = dec.Token()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if tok != json.Delim('}') {
		return nil, fmt.Errorf("catalog: expected end of object, got %v", tok)
	}
	return res, nil
}

// ReadFile decodes the catalog stored in the named file.
func ReadFile(fname string) (*Catalog, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(fd)
}

// Lookup returns the description of the named icon.
func (c *Catalog) Lookup(name string) (*Icon, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.Icons[i], true
}

// Len returns the number of icons in the catalog.
func (c *Catalog) Len() int {
	return len(c.Icons)
}
