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
	"io"
	"text/template"

	"seehuhn.de/go/iconenc"
)

// FDFile returns the file name of the font definition file for the given
// encoding family, e.g. "ufontawesome7free0.fd".
func (n *Names) FDFile(f iconenc.Family) string {
	return "u" + n.Package + f.Qualifier() + ".fd"
}

type fdData struct {
	Family  string
	Regular string
	Solid   string
}

// WriteFD writes the LaTeX font definition file for one encoding family.
//
// Free families have a solid and a regular font; the medium weight maps to
// regular, the bold weights map to solid.  Brands families only have a
// regular font, which is used for all series.
func (n *Names) WriteFD(w io.Writer, hdr *Header, f iconenc.Family) error {
	if err := hdr.Write(w); err != nil {
		return err
	}

	data := &fdData{
		Family: n.Package + f.Qualifier(),
	}
	tmpl := fdBrands
	if f.Kind.IsFree() {
		tmpl = fdFree
		data.Regular = iconenc.EncodingName(n.Prefix, iconenc.FreeRegular, f.Page)
		data.Solid = iconenc.EncodingName(n.Prefix, iconenc.FreeSolid, f.Page)
	} else {
		data.Regular = iconenc.EncodingName(n.Prefix, f.Kind, f.Page)
	}
	return tmpl.Execute(w, data)
}

var fdFree = template.Must(template.New("free").Delims("[[", "]]").Parse(
	`\DeclareFontFamily{U}{[[.Family]]}{}
\DeclareFontShape{U}{[[.Family]]}{solid}{n}
    {<-> [[.Solid]]}{}
\DeclareFontShape{U}{[[.Family]]}{regular}{n}
    {<-> [[.Regular]]}{}

\DeclareFontShape{U}{[[.Family]]}{m}{n}
    {<->ssub * [[.Family]]/regular/n}{}
\DeclareFontShape{U}{[[.Family]]}{b}{n}
    {<->ssub * [[.Family]]/solid/n}{}
\DeclareFontShape{U}{[[.Family]]}{bx}{n}
    {<->ssub * [[.Family]]/solid/n}{}
`))

var fdBrands = template.Must(template.New("brands").Delims("[[", "]]").Parse(
	`\DeclareFontFamily{U}{[[.Family]]}{}
\DeclareFontShape{U}{[[.Family]]}{regular}{n}
    {<-> [[.Regular]]}{}
\DeclareFontShape{U}{[[.Family]]}{solid}{n}
    {<->ssub * [[.Family]]/regular/n}{}
\DeclareFontShape{U}{[[.Family]]}{light}{n}
    {<->ssub * [[.Family]]/regular/n}{}

\DeclareFontShape{U}{[[.Family]]}{l}{n}
    {<->ssub * [[.Family]]/regular/n}{}
\DeclareFontShape{U}{[[.Family]]}{m}{n}
    {<->ssub * [[.Family]]/regular/n}{}
\DeclareFontShape{U}{[[.Family]]}{b}{n}
    {<->ssub * [[.Family]]/regular/n}{}
\DeclareFontShape{U}{[[.Family]]}{bx}{n}
    {<->ssub * [[.Family]]/regular/n}{}
`))
