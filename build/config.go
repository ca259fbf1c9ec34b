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

package build

import (
	"fmt"
	"path/filepath"

	"seehuhn.de/go/iconenc"
	"seehuhn.de/go/iconenc/texmap"
)

// FontSpec describes one input font.
type FontSpec struct {
	Kind iconenc.FamilyKind

	// OpenTypeFile is the name of the font file in the OpenType directory.
	OpenTypeFile string

	// PostScriptName and Type1File are used in the map file.
	PostScriptName string
	Type1File      string
}

// Config holds the settings for a run.
type Config struct {
	// Root is the directory of the generated TeX package.  The directory
	// names below are relative to Root.
	Root        string
	OpenTypeDir string
	EncDir      string
	TFMDir      string
	Type1Dir    string
	MapDir      string
	TeXDir      string

	// Catalog is the path of the icon metadata file.  Relative paths are
	// taken relative to Root.
	Catalog string

	Fonts    []FontSpec
	Names    texmap.Names
	Header   texmap.Header
	Capacity int

	// Program is the otftotfm executable.
	Program string

	// SkipConvert disables running otftotfm.  The map file is then written
	// for the metric files which a conversion would produce.
	SkipConvert bool
}

// DefaultYear is the copyright year written into the generated TeX files.
const DefaultYear = 2025

// DefaultConfig returns the configuration for FontAwesome 7, with the
// package generated in root.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:        root,
		OpenTypeDir: "opentype",
		EncDir:      "enc",
		TFMDir:      "tfm",
		Type1Dir:    "type1",
		MapDir:      "map",
		TeXDir:      "tex",
		Catalog:     filepath.Join("assets", "icons.json"),
		Fonts: []FontSpec{
			{
				Kind:           iconenc.Brands,
				OpenTypeFile:   "FontAwesome7Brands-Regular-400.otf",
				PostScriptName: "FontAwesome7Brands-Regular",
				Type1File:      "FontAwesome7Brands-Regular.pfb",
			},
			{
				Kind:           iconenc.FreeRegular,
				OpenTypeFile:   "FontAwesome7Free-Regular-400.otf",
				PostScriptName: "FontAwesome7Free-Regular",
				Type1File:      "FontAwesome7Free-Regular.pfb",
			},
			{
				Kind:           iconenc.FreeSolid,
				OpenTypeFile:   "FontAwesome7Free-Solid-900.otf",
				PostScriptName: "FontAwesome7Free-Solid",
				Type1File:      "FontAwesome7Free-Solid.pfb",
			},
		},
		Names: texmap.DefaultNames,
		Header: texmap.Header{
			Year:       DefaultYear,
			Maintainer: "Daniel Nagel",
		},
		Capacity: iconenc.PageSize,
		Program:  "otftotfm",
	}
}

// Validate checks the configuration for consistency.  Problems are
// reported as [*iconenc.ConfigError].
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return &iconenc.ConfigError{Reason: "page capacity must be positive"}
	}
	if c.Capacity > iconenc.PageSize {
		return &iconenc.ConfigError{Reason: fmt.Sprintf("page capacity %d exceeds %d slots", c.Capacity, iconenc.PageSize)}
	}
	if c.Names.Prefix == "" || c.Names.Package == "" {
		return &iconenc.ConfigError{Reason: "encoding prefix and package name must be set"}
	}
	if len(c.Fonts) == 0 {
		return &iconenc.ConfigError{Reason: "no fonts configured"}
	}

	seen := make(map[iconenc.FamilyKind]bool)
	for _, f := range c.Fonts {
		if f.Kind.Tag() == "" {
			return &iconenc.ConfigError{Reason: "unknown font kind " + f.Kind.String()}
		}
		if seen[f.Kind] {
			return &iconenc.ConfigError{Reason: "font " + f.Kind.String() + " given twice"}
		}
		seen[f.Kind] = true
		if f.OpenTypeFile == "" {
			return &iconenc.ConfigError{Reason: "no font file for " + f.Kind.String()}
		}
	}
	if seen[iconenc.FreeRegular] != seen[iconenc.FreeSolid] {
		return &iconenc.ConfigError{Reason: "the Free family needs both the regular and the solid font"}
	}
	return nil
}

func (c *Config) dir(sub string) string {
	return filepath.Join(c.Root, sub)
}

func (c *Config) catalogPath() string {
	if filepath.IsAbs(c.Catalog) {
		return c.Catalog
	}
	return filepath.Join(c.Root, c.Catalog)
}

func (c *Config) font(kind iconenc.FamilyKind) *FontSpec {
	for i := range c.Fonts {
		if c.Fonts[i].Kind == kind {
			return &c.Fonts[i]
		}
	}
	return nil
}

func (c *Config) fontPath(f *FontSpec) string {
	return filepath.Join(c.Root, c.OpenTypeDir, f.OpenTypeFile)
}

func (c *Config) fontFiles() map[iconenc.FamilyKind]texmap.FontFiles {
	res := make(map[iconenc.FamilyKind]texmap.FontFiles, len(c.Fonts))
	for _, f := range c.Fonts {
		res[f.Kind] = texmap.FontFiles{
			PostScriptName: f.PostScriptName,
			Type1File:      f.Type1File,
		}
	}
	return res
}
