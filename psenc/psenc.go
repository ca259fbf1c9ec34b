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

// Package psenc reads and writes PostScript encoding vectors.
//
// An encoding vector file defines a single array of glyph names:
//
//	/fa7brands0 [
//	/github
//	/gitlab
//	/.notdef
//	...
//	] def
//
// This is the format expected by dvips (ReEncodeFont) and by otftotfm.
package psenc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/iconenc/names"
	"seehuhn.de/go/postscript"
)

// Vector is a named encoding vector.
type Vector struct {
	Name   string
	Glyphs []string
}

// Write writes the vector in PostScript syntax, one glyph name per line.
func (v *Vector) Write(w io.Writer) error {
	if !names.IsToken(v.Name) {
		return fmt.Errorf("psenc: invalid vector name %q", v.Name)
	}
	for i, name := range v.Glyphs {
		if !names.IsToken(name) {
			return fmt.Errorf("psenc: %s: invalid glyph name %q in slot %d",
				v.Name, name, i)
		}
	}

	bw := bufio.NewWriter(w)
	write := func(format string, a ...any) error {
		_, err := fmt.Fprintf(bw, format+"\n", a...)
		return err
	}

	if err := write("/%s [", v.Name); err != nil {
		return err
	}
	for _, name := range v.Glyphs {
		if err := write("/%s", name); err != nil {
			return err
		}
	}
	if err := write("] def"); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile writes the vector to the named file.
func (v *Vector) WriteFile(fname string) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = v.Write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

var errNoVector = errors.New("psenc: no encoding vector found")

// Read reads an encoding vector.  The input is executed by a PostScript
// interpreter, so that comments and arbitrary white space are allowed.
// The input must define exactly one array of names.
func Read(r io.Reader) (*Vector, error) {
	intp := postscript.NewInterpreter()
	err := intp.Execute(r)
	if err != nil {
		return nil, fmt.Errorf("psenc: %w", err)
	}

	var res *Vector
	dict := intp.DictStack[len(intp.DictStack)-1]
	for key, val := range dict {
		arr, ok := val.(postscript.Array)
		if !ok {
			continue
		}
		glyphs := make([]string, len(arr))
		for i, obj := range arr {
			name, ok := obj.(postscript.Name)
			if !ok {
				return nil, fmt.Errorf("psenc: %s: slot %d is not a name", key, i)
			}
			glyphs[i] = string(name)
		}
		if res != nil {
			return nil, fmt.Errorf("psenc: more than one vector (%s and %s)", res.Name, key)
		}
		res = &Vector{Name: string(key), Glyphs: glyphs}
	}
	if res == nil {
		return nil, errNoVector
	}
	return res, nil
}

// ReadFile reads an encoding vector from the named file.
func ReadFile(fname string) (*Vector, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(fd)
}
