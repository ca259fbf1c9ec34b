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

// Package build generates the files of a TeX icon font package from a set
// of OpenType icon fonts.
//
// A run reads the glyph names of all fonts, distributes the glyphs over
// encoding vectors, and then writes the encoding vectors, the icon mapping
// file, the metric files and Type 1 fonts (via otftotfm), the dvips map
// file, and the LaTeX font definition files.  All steps use the same
// [iconenc.Table].
package build

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/iconenc"
	"seehuhn.de/go/iconenc/catalog"
	"seehuhn.de/go/iconenc/otfglyphs"
	"seehuhn.de/go/iconenc/otftotfm"
	"seehuhn.de/go/iconenc/psenc"
	"seehuhn.de/go/iconenc/texmap"
)

// tracer traces with key 'iconenc.build'.
func tracer() tracing.Trace {
	return tracing.Select("iconenc.build")
}

// GlyphReader returns the glyph names of a font file.
type GlyphReader func(fname string) ([]string, error)

// Converter turns an OpenType font and an encoding vector into a metric
// file and a Type 1 font.  [*otftotfm.Converter] implements this
// interface.
type Converter interface {
	Convert(ctx context.Context, fontFile, encFile string) error
	Rename(fontFile, encFile, metric string) (string, error)
}

// Builder runs the steps of a build.
type Builder struct {
	Config     *Config
	ReadGlyphs GlyphReader
	Converter  Converter

	// Table and Layouts are set by [Builder.Layout].
	Table   *iconenc.Table
	Layouts []*iconenc.Layout
}

// New returns a builder for the given configuration, using the sfnt
// library to read glyph names and otftotfm for the conversion.
func New(cfg *Config) (*Builder, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &Builder{
		Config:     cfg,
		ReadGlyphs: otfglyphs.ReadFile,
		Converter: &otftotfm.Converter{
			Program:  cfg.Program,
			TFMDir:   cfg.dir(cfg.TFMDir),
			Type1Dir: cfg.dir(cfg.Type1Dir),
		},
	}, nil
}

// EncodingFile describes one encoding vector of the build.
type EncodingFile struct {
	Kind iconenc.FamilyKind
	Page int

	// Name is the PostScript name of the vector.
	Name string

	// Path is the location of the .enc file.
	Path string

	Glyphs iconenc.Page
}

// Run performs a complete build.
func (b *Builder) Run(ctx context.Context) error {
	cfg := b.Config
	for _, sub := range []string{cfg.EncDir, cfg.TFMDir, cfg.Type1Dir, cfg.MapDir, cfg.TeXDir} {
		err := os.MkdirAll(cfg.dir(sub), 0o755)
		if err != nil {
			return err
		}
	}

	tracer().Infof("Generating enc files...")
	if err := b.Layout(); err != nil {
		return err
	}
	if err := b.WriteEncodings(); err != nil {
		return err
	}

	tracer().Infof("Generating mapping file...")
	if err := b.WriteMapping(); err != nil {
		return err
	}

	var metrics []iconenc.Metric
	if cfg.SkipConvert {
		metrics = b.Metrics()
	} else {
		tracer().Infof("Generating type1 files...")
		var err error
		metrics, err = b.Convert(ctx)
		if err != nil {
			return err
		}
	}

	tracer().Infof("Generating map file...")
	if err := b.WriteMap(metrics); err != nil {
		return err
	}

	tracer().Infof("Generating fd files...")
	return b.WriteFD()
}

// Layout reads the glyph names of all fonts and distributes the glyphs
// over encoding vectors.  The Brands font is laid out on its own, the two
// Free fonts share the geometry of the solid style.
func (b *Builder) Layout() error {
	cfg := b.Config

	sets := make(map[iconenc.FamilyKind]iconenc.GlyphSet)
	for i := range cfg.Fonts {
		f := &cfg.Fonts[i]
		fname := cfg.fontPath(f)
		glyphNames, err := b.ReadGlyphs(fname)
		if err != nil {
			return err
		}
		sets[f.Kind] = iconenc.NewGlyphSet(glyphNames)
		tracer().Debugf("%s: %d glyphs, %d used", fname, len(glyphNames), sets[f.Kind].Len())
	}

	var layouts []*iconenc.Layout
	if set, ok := sets[iconenc.Brands]; ok {
		l, err := iconenc.LayoutSingle(iconenc.Brands, set, cfg.Capacity)
		if err != nil {
			return err
		}
		layouts = append(layouts, l)
	}
	if solid, ok := sets[iconenc.FreeSolid]; ok {
		regular := sets[iconenc.FreeRegular]
		l, err := iconenc.LayoutPair(iconenc.FreeSolid, iconenc.FreeRegular, solid, regular, cfg.Capacity)
		if err != nil {
			return err
		}
		layouts = append(layouts, l)
	}

	table := iconenc.NewTable()
	for _, l := range layouts {
		if err := table.Add(l); err != nil {
			return err
		}
	}

	b.Table = table
	b.Layouts = layouts
	return nil
}

// Encodings returns the encoding vectors of the build, ordered by font (in
// configuration order) and page.
func (b *Builder) Encodings() []*EncodingFile {
	cfg := b.Config

	var res []*EncodingFile
	for _, l := range b.Layouts {
		for _, v := range l.Vectors() {
			res = append(res, &EncodingFile{
				Kind:   v.Kind,
				Page:   v.Page,
				Name:   iconenc.EncodingName(cfg.Names.Prefix, v.Kind, v.Page),
				Path:   filepath.Join(cfg.dir(cfg.EncDir), iconenc.EncodingFile(cfg.Names.Prefix, v.Kind, v.Page)),
				Glyphs: v.Glyphs,
			})
		}
	}

	order := make(map[iconenc.FamilyKind]int, len(cfg.Fonts))
	for i, f := range cfg.Fonts {
		order[f.Kind] = i
	}
	slices.SortStableFunc(res, func(x, y *EncodingFile) int {
		if x.Kind != y.Kind {
			return order[x.Kind] - order[y.Kind]
		}
		return x.Page - y.Page
	})
	return res
}

// WriteEncodings writes all encoding vectors.
func (b *Builder) WriteEncodings() error {
	for _, e := range b.Encodings() {
		v := &psenc.Vector{Name: e.Name, Glyphs: e.Glyphs}
		err := v.WriteFile(e.Path)
		if err != nil {
			return err
		}
		tracer().Infof("... generated %s", e.Path)
	}
	return nil
}

// WriteMapping writes the icon mapping file.
func (b *Builder) WriteMapping() error {
	cfg := b.Config

	cat, err := catalog.ReadFile(cfg.catalogPath())
	if err != nil {
		return err
	}
	fname := filepath.Join(cfg.dir(cfg.TeXDir), cfg.Names.MappingFile())
	return writeFile(fname, func(w io.Writer) error {
		return cfg.Names.WriteMapping(w, &cfg.Header, cat, b.Table)
	})
}

// Metrics returns the metric files which are generated for the encoding
// vectors of the build.
func (b *Builder) Metrics() []iconenc.Metric {
	var res []iconenc.Metric
	for _, e := range b.Encodings() {
		res = append(res, iconenc.MetricFor(b.Config.Names.Prefix, e.Kind, e.Page))
	}
	return res
}

// Convert runs the converter for every encoding vector and gives the
// resulting metric files their canonical names.  The first failure aborts
// the conversion.
func (b *Builder) Convert(ctx context.Context) ([]iconenc.Metric, error) {
	cfg := b.Config

	var res []iconenc.Metric
	for _, e := range b.Encodings() {
		f := cfg.font(e.Kind)
		if f == nil {
			return nil, &iconenc.LookupError{What: "font", Key: e.Kind.String()}
		}
		fontPath := cfg.fontPath(f)

		err := b.Converter.Convert(ctx, fontPath, e.Path)
		if err != nil {
			return nil, err
		}

		m := iconenc.MetricFor(cfg.Names.Prefix, e.Kind, e.Page)
		tfm, err := b.Converter.Rename(fontPath, e.Path, m.Name)
		if err != nil {
			return nil, err
		}
		tracer().Infof("... generated %s", tfm)
		res = append(res, m)
	}
	return res, nil
}

// MetricsFromDir lists the metric files in the tfm directory.  This allows
// to regenerate the map file without running the converter.
func (b *Builder) MetricsFromDir() ([]iconenc.Metric, error) {
	cfg := b.Config

	entries, err := os.ReadDir(cfg.dir(cfg.TFMDir))
	if err != nil {
		return nil, err
	}
	var res []iconenc.Metric
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), ".tfm")
		if !ok || entry.IsDir() {
			continue
		}
		m, err := iconenc.ParseMetricName(cfg.Names.Prefix, name)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, nil
}

// WriteMap writes the dvips map file for the given metric files.
func (b *Builder) WriteMap(metrics []iconenc.Metric) error {
	cfg := b.Config

	entries, err := cfg.Names.MapEntries(metrics, cfg.fontFiles())
	if err != nil {
		return err
	}
	fname := filepath.Join(cfg.dir(cfg.MapDir), cfg.Names.MapFile())
	return writeFile(fname, func(w io.Writer) error {
		return texmap.WriteMap(w, entries)
	})
}

// WriteFD writes one font definition file per encoding family.
func (b *Builder) WriteFD() error {
	cfg := b.Config

	for _, f := range b.Table.Families() {
		fname := filepath.Join(cfg.dir(cfg.TeXDir), cfg.Names.FDFile(f))
		err := writeFile(fname, func(w io.Writer) error {
			return cfg.Names.WriteFD(w, &cfg.Header, f)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Verify reads back the encoding vectors on disk and checks them against
// the layout computed by [Builder.Layout].
func (b *Builder) Verify() error {
	for _, e := range b.Encodings() {
		v, err := psenc.ReadFile(e.Path)
		if err != nil {
			return err
		}
		if v.Name != e.Name {
			return fmt.Errorf("%s: vector is called %q, expected %q", e.Path, v.Name, e.Name)
		}
		if len(v.Glyphs) != len(e.Glyphs) {
			return fmt.Errorf("%s: %d slots, expected %d", e.Path, len(v.Glyphs), len(e.Glyphs))
		}
		for slot, name := range v.Glyphs {
			if name != e.Glyphs[slot] {
				return fmt.Errorf("%s: slot %d holds %q, expected %q", e.Path, slot, name, e.Glyphs[slot])
			}
			if name == iconenc.Notdef {
				continue
			}
			a, ok := b.Table.Lookup(name)
			if !ok || a.Page != e.Page || a.Slot != slot || a.Kind.Tag() != e.Kind.Tag() {
				return fmt.Errorf("%s: %q in slot %d disagrees with the assignment table", e.Path, name, slot)
			}
		}
		tracer().Debugf("%s: ok", e.Path)
	}
	return nil
}

func writeFile(fname string, fn func(w io.Writer) error) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fd)
	err = fn(w)
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		fd.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	err = fd.Close()
	if err != nil {
		return err
	}
	tracer().Infof("... generated %s", fname)
	return nil
}
