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

// Package otftotfm runs the otftotfm program from LCDF Typetools, which
// converts an OpenType font together with an encoding vector into a TeX
// metric file (.tfm) and a Type 1 font (.pfb).
package otftotfm

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// ToolError is returned when the converter program fails.
type ToolError struct {
	Program string
	Args    []string
	Err     error
	Output  string
}

func (err *ToolError) Error() string {
	msg := fmt.Sprintf("otftotfm: %s %s: %v", err.Program, strings.Join(err.Args, " "), err.Err)
	if out := strings.TrimSpace(err.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (err *ToolError) Unwrap() error {
	return err.Err
}

// Converter describes how otftotfm is invoked.
type Converter struct {
	// Program is the name or path of the otftotfm executable.
	Program string

	// TFMDir is the directory where metric files are written.
	TFMDir string

	// Type1Dir is the directory where Type 1 fonts are written.
	Type1Dir string

	// ExtraArgs are passed to the program before the font file name.
	ExtraArgs []string
}

// Args returns the command line arguments used to convert the given font
// with the given encoding vector.
func (c *Converter) Args(fontFile, encFile string) []string {
	args := []string{
		"--no-encoding",
		"--force",
		"--tfm-directory", c.TFMDir,
		"--type1-directory", c.Type1Dir,
		"-e", encFile,
	}
	args = append(args, c.ExtraArgs...)
	return append(args, fontFile)
}

// Convert runs otftotfm for one font and one encoding vector.
func (c *Converter) Convert(ctx context.Context, fontFile, encFile string) error {
	program := c.Program
	if program == "" {
		program = "otftotfm"
	}
	args := c.Args(fontFile, encFile)

	cmd := exec.CommandContext(ctx, program, args...)
	out := &bytes.Buffer{}
	cmd.Stdout = out
	cmd.Stderr = out
	err := cmd.Run()
	if err != nil {
		return &ToolError{
			Program: program,
			Args:    args,
			Err:     err,
			Output:  out.String(),
		}
	}
	return nil
}

var weightSuffix = regexp.MustCompile(`-[0-9]+$`)

// ProducedTFM returns the name of the metric file otftotfm writes for the
// given font and encoding file.  The name is made from the font file name
// without its weight suffix and the encoding file name, e.g.
// "FontAwesome7Free-Solid--fa7free0_solid.tfm" for
// "FontAwesome7Free-Solid-900.otf" and "fa7free0_solid.enc".
func ProducedTFM(fontFile, encFile string) string {
	font := strings.TrimSuffix(filepath.Base(fontFile), filepath.Ext(fontFile))
	font = weightSuffix.ReplaceAllString(font, "")
	enc := strings.TrimSuffix(filepath.Base(encFile), filepath.Ext(encFile))
	return font + "--" + enc + ".tfm"
}

// Rename gives the metric file produced for the given font and encoding
// file its canonical name metric + ".tfm".  The new path is returned.
func (c *Converter) Rename(fontFile, encFile, metric string) (string, error) {
	from := filepath.Join(c.TFMDir, ProducedTFM(fontFile, encFile))
	to := filepath.Join(c.TFMDir, metric+".tfm")
	err := os.Rename(from, to)
	if err != nil {
		return "", err
	}
	return to, nil
}
