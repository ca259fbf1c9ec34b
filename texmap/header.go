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
)

// Header is the license block at the top of every generated TeX file.
type Header struct {
	Year       int
	Maintainer string
}

// Write writes the license block as TeX comments.
func (h *Header) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, headerTmpl, h.Year, h.Maintainer, h.Maintainer)
	return err
}

const headerTmpl = `%% Copyright %d %s
%%
%% This work may be distributed and/or modified under the
%% conditions of the LaTeX Project Public License, either version 1.3c
%% of this license or (at your option) any later version.
%% The latest version of this license is in
%%   http://www.latex-project.org/lppl.txt
%% and version 1.3 or later is part of all distributions of LaTeX
%% version 2005/12/01 or later.
%%
%% This work has the LPPL maintenance status ` + "`" + `maintained'.
%%
%% The Current Maintainer of this work is %s
%%
`
