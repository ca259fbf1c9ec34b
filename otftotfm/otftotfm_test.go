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

package otftotfm

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArgs(t *testing.T) {
	c := &Converter{TFMDir: "out/tfm", Type1Dir: "out/type1"}
	got := c.Args("otf/Font-900.otf", "enc/fa7free0_solid.enc")
	want := []string{
		"--no-encoding", "--force",
		"--tfm-directory", "out/tfm",
		"--type1-directory", "out/type1",
		"-e", "enc/fa7free0_solid.enc",
		"otf/Font-900.otf",
	}
	if d := cmp.Diff(got, want); d != "" {
		t.Errorf("args (-got +want):\n%s", d)
	}

	c.ExtraArgs = []string{"--no-updmap"}
	got = c.Args("a.otf", "b.enc")
	if got[len(got)-2] != "--no-updmap" || got[len(got)-1] != "a.otf" {
		t.Errorf("extra args misplaced: %q", got)
	}
}

func TestProducedTFM(t *testing.T) {
	cases := []struct {
		font, enc, tfm string
	}{
		{"FontAwesome7Free-Solid-900.otf", "fa7free0_solid.enc",
			"FontAwesome7Free-Solid--fa7free0_solid.tfm"},
		{"opentype/FontAwesome7Brands-Regular-400.otf", "enc/fa7brands1.enc",
			"FontAwesome7Brands-Regular--fa7brands1.tfm"},
		{"Plain.otf", "x.enc", "Plain--x.tfm"},
	}
	for _, test := range cases {
		if got := ProducedTFM(test.font, test.enc); got != test.tfm {
			t.Errorf("ProducedTFM(%q, %q) = %q, want %q", test.font, test.enc, got, test.tfm)
		}
	}
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	c := &Converter{TFMDir: dir}

	produced := filepath.Join(dir, "FontAwesome7Free-Solid--fa7free0_solid.tfm")
	if err := os.WriteFile(produced, []byte("tfm"), 0o644); err != nil {
		t.Fatal(err)
	}

	to, err := c.Rename("FontAwesome7Free-Solid-900.otf", "fa7free0_solid.enc", "fa7free0solid")
	if err != nil {
		t.Fatal(err)
	}
	if to != filepath.Join(dir, "fa7free0solid.tfm") {
		t.Errorf("renamed to %q", to)
	}
	if _, err := os.Stat(to); err != nil {
		t.Error(err)
	}
	if _, err := os.Stat(produced); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("produced file still present: %v", err)
	}

	_, err = c.Rename("Missing-400.otf", "fa7brands0.enc", "fa7brands0")
	if err == nil {
		t.Error("missing metric file renamed")
	}
}

func fakeProgram(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no shell available")
	}
	fname := filepath.Join(t.TempDir(), "otftotfm")
	err := os.WriteFile(fname, []byte("#!/bin/sh\n"+script), 0o755)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	program := fakeProgram(t, `
while [ $# -gt 1 ]; do
  case "$1" in
    --tfm-directory) shift; tfm="$1" ;;
  esac
  shift
done
touch "$tfm/called"
`)
	c := &Converter{Program: program, TFMDir: dir, Type1Dir: dir}
	err := c.Convert(context.Background(), "font.otf", "enc.enc")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "called")); err != nil {
		t.Errorf("program was not run with the tfm directory: %v", err)
	}
}

func TestConvertFailure(t *testing.T) {
	program := fakeProgram(t, "echo 'otftotfm: font.otf: no such file' >&2\nexit 1\n")
	c := &Converter{Program: program, TFMDir: t.TempDir(), Type1Dir: t.TempDir()}
	err := c.Convert(context.Background(), "font.otf", "enc.enc")

	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if !strings.Contains(toolErr.Output, "no such file") {
		t.Errorf("output not captured: %q", toolErr.Output)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Errorf("exit status not available: %v", err)
	}
}

func TestConvertCancelled(t *testing.T) {
	program := fakeProgram(t, "sleep 10\n")
	c := &Converter{Program: program, TFMDir: t.TempDir(), Type1Dir: t.TempDir()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.Convert(ctx, "font.otf", "enc.enc")
	if err == nil {
		t.Error("cancelled conversion succeeded")
	}
}
