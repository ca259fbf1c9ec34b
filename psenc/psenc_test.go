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

package psenc

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func notdefVector(name string) *Vector {
	enc := make([]string, 256)
	for i := range enc {
		enc[i] = ".notdef"
	}
	return &Vector{Name: name, Glyphs: enc}
}

func TestWrite(t *testing.T) {
	v := &Vector{
		Name:   "fa7free0solid",
		Glyphs: []string{"arrow-right", ".notdef", "house"},
	}
	buf := &bytes.Buffer{}
	err := v.Write(buf)
	if err != nil {
		t.Fatal(err)
	}

	want := "/fa7free0solid [\n/arrow-right\n/.notdef\n/house\n] def\n"
	if d := cmp.Diff(buf.String(), want); d != "" {
		t.Errorf("output (-got +want):\n%s", d)
	}
}

func TestWriteInvalid(t *testing.T) {
	cases := []*Vector{
		{Name: "", Glyphs: []string{"a"}},
		{Name: "a b", Glyphs: []string{"a"}},
		{Name: "ok", Glyphs: []string{"a", "b/c"}},
		{Name: "ok", Glyphs: []string{""}},
	}
	for i, v := range cases {
		buf := &bytes.Buffer{}
		if err := v.Write(buf); err == nil {
			t.Errorf("%d: invalid vector written", i)
		}
		if buf.Len() != 0 {
			t.Errorf("%d: partial output for invalid vector", i)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	v := notdefVector("fa7brands0")
	v.Glyphs[0] = "500px"
	v.Glyphs[1] = "github"
	v.Glyphs[2] = "x-twitter"
	v.Glyphs[255] = "zhihu"

	buf := &bytes.Buffer{}
	if err := v.Write(buf); err != nil {
		t.Fatal(err)
	}
	back, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(back, v); d != "" {
		t.Errorf("round trip (-got +want):\n%s", d)
	}
}

func TestRoundTripFile(t *testing.T) {
	v := notdefVector("fa7free1regular")
	v.Glyphs[7] = "house"

	fname := filepath.Join(t.TempDir(), "fa7free1_regular.enc")
	if err := v.WriteFile(fname); err != nil {
		t.Fatal(err)
	}
	back, err := ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(back, v); d != "" {
		t.Errorf("round trip (-got +want):\n%s", d)
	}
}

func TestReadComments(t *testing.T) {
	in := `% encoding written by hand
/test [ % opening
  /a /b
  /.notdef   % hole
] def
`
	v, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := &Vector{Name: "test", Glyphs: []string{"a", "b", ".notdef"}}
	if d := cmp.Diff(v, want); d != "" {
		t.Errorf("(-got +want):\n%s", d)
	}
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("% nothing here\n"))
	if !errors.Is(err, errNoVector) {
		t.Errorf("empty input: got %v", err)
	}

	_, err = Read(strings.NewReader("/a [ /x ] def /b [ /y ] def"))
	if err == nil {
		t.Error("two vectors accepted")
	}

	_, err = Read(strings.NewReader("/a [ /x 1 ] def"))
	if err == nil {
		t.Error("number in vector accepted")
	}
}
