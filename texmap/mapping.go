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

	"seehuhn.de/go/iconenc"
	"seehuhn.de/go/iconenc/catalog"
)

// MappingFile returns the file name of the icon mapping file.
func (n *Names) MappingFile() string {
	return n.Package + "-mapping.def"
}

// WriteMapping writes the icon mapping file.  For every icon of the catalog
// which has a slot in the table, one line
//
//	\__fontawesome_def_icon:nnnnn{<macro>}{<name>}{<family>}{<slot>}{"<code point>}
//
// is written, in catalog order.  The macro field is empty if no macro name
// can be derived from the icon name, see [MacroName].
func (n *Names) WriteMapping(w io.Writer, hdr *Header, cat *catalog.Catalog, table *iconenc.Table) error {
	write := func(format string, a ...any) error {
		_, err := fmt.Fprintf(w, format+"\n", a...)
		return err
	}

	if err := hdr.Write(w); err != nil {
		return err
	}

	count := 0
	for _, icon := range cat.Icons {
		a, ok := table.Lookup(icon.Name)
		if !ok {
			continue
		}
		if icon.Unicode == "" {
			return &iconenc.LookupError{What: "code point", Key: icon.Name}
		}

		macro := MacroName(n.Macro, icon.Name)
		err := write(`\__%s_def_icon:nnnnn{%s}{%s}{%s}{%d}{"%s}`,
			n.Module, macro, icon.Name, a.Qualifier(), a.Slot,
			strings.ToUpper(icon.Unicode))
		if err != nil {
			return err
		}
		count++
	}

	tracer().Debugf("%d of %d catalog icons mapped", count, cat.Len())
	return nil
}
