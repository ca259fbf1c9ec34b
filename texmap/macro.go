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
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var macroLetters = regexp.MustCompile(`^[A-Za-z]+$`)

// MacroName returns the name of the TeX macro for an icon: the prefix
// followed by the hyphen-separated words of the icon name, each with an
// initial capital, e.g. `\faArrowRight` for "arrow-right".
//
// TeX control words consist of letters only.  If the icon name gives
// anything else (digits, for example), the empty string is returned and the
// icon must be accessed by name.
func MacroName(prefix, icon string) string {
	title := cases.Title(language.Und)

	words := strings.Split(icon, "-")
	for i, word := range words {
		words[i] = title.String(word)
	}
	name := strings.Join(words, "")

	if !macroLetters.MatchString(name) {
		return ""
	}
	return prefix + name
}
