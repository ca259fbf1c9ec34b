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

// Package texmap writes the TeX-side files for icon fonts: the dvips map
// file, the icon mapping file used to define the icon macros, and the LaTeX
// font definition (.fd) files.
//
// All files are computed from an [iconenc.Table], so that they agree with
// the encoding vectors written for the same table.
package texmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'iconenc.texmap'.
func tracer() tracing.Trace {
	return tracing.Select("iconenc.texmap")
}

// Names collects the names which tie the generated files together.
type Names struct {
	// Prefix starts the names of encoding vectors and metric files,
	// e.g. "fa7".
	Prefix string

	// Package is the name of the LaTeX package, e.g. "fontawesome7".  It
	// starts the names of the generated .map, .def and .fd files and of the
	// LaTeX font families.
	Package string

	// Module is the expl3 module name used for the icon declaration macro,
	// e.g. "fontawesome".
	Module string

	// Macro starts the name of every icon macro, e.g. `\fa`.
	Macro string
}

// DefaultNames are the names used for FontAwesome 7.
var DefaultNames = Names{
	Prefix:  "fa7",
	Package: "fontawesome7",
	Module:  "fontawesome",
	Macro:   `\fa`,
}
