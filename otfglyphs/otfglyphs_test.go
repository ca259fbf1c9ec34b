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

package otfglyphs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/iconenc"
)

func TestRead(t *testing.T) {
	for _, data := range [][]byte{goregular.TTF, gomono.TTF} {
		glyphNames, err := Read(bytes.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
		if len(glyphNames) < 100 {
			t.Fatalf("only %d glyphs", len(glyphNames))
		}

		has := make(map[string]bool, len(glyphNames))
		for _, name := range glyphNames {
			has[name] = true
		}
		for _, name := range []string{"A", "a", "zero"} {
			if !has[name] {
				t.Errorf("glyph %q not found", name)
			}
		}

		set := iconenc.NewGlyphSet(glyphNames)
		for _, name := range set.Names() {
			if strings.HasPrefix(name, ".") {
				t.Errorf("reserved glyph %q in glyph set", name)
			}
		}
	}
}

func TestReadFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	fromFile, err := ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	fromMem, err := Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	if len(fromFile) != len(fromMem) {
		t.Errorf("%d glyphs from file, %d from memory", len(fromFile), len(fromMem))
	}

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.otf"))
	if err == nil {
		t.Error("missing file accepted")
	}

	junk := filepath.Join(t.TempDir(), "junk.otf")
	if err := os.WriteFile(junk, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ReadFile(junk)
	if err == nil || !strings.Contains(err.Error(), junk) {
		t.Errorf("junk file: got %v", err)
	}
}
