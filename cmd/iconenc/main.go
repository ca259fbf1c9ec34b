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

// Iconenc generates the encoding vectors, metric files, map file and LaTeX
// support files for the FontAwesome 7 icon fonts.
//
// The argument is the root directory of the TeX package (default: the
// current directory), which must contain the OpenType fonts in "opentype/"
// and the icon catalog in "assets/icons.json".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"seehuhn.de/go/iconenc/build"
	"seehuhn.de/go/iconenc/internal/buildinfo"
)

// tracer traces with key 'iconenc'.
func tracer() tracing.Trace {
	return tracing.Select("iconenc")
}

var traceKeys = []string{"iconenc", "iconenc.build", "iconenc.texmap"}

func main() {
	opt, err := parseArgs(os.Args[0], os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}

	initDisplay()
	if err := initTracing(opt.trace); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, opt.config(), opt.mode())
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// options holds the command line settings.  Zero values keep the defaults
// of [build.DefaultConfig].
type options struct {
	root        string
	prefix      string
	pkg         string
	capacity    int
	catalog     string
	program     string
	maintainer  string
	year        int
	skipConvert bool
	mapOnly     bool
	verify      bool
	trace       string
}

// parseArgs parses the command line.  Errors are reported to stderr by the
// flag package, together with the usage text.
func parseArgs(name string, args []string) (*options, error) {
	opt := &options{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&opt.prefix, "prefix", "", "prefix of encoding and metric names")
	fs.StringVar(&opt.pkg, "package", "", "name of the LaTeX package")
	fs.IntVar(&opt.capacity, "capacity", 0, "number of slots per encoding vector (at most 256)")
	fs.StringVar(&opt.catalog, "catalog", "", "icon catalog, relative to the root directory")
	fs.StringVar(&opt.program, "otftotfm", "", "otftotfm executable")
	fs.StringVar(&opt.maintainer, "maintainer", "", "maintainer named in the generated TeX files")
	fs.IntVar(&opt.year, "year", 0, "copyright year in the generated TeX files")
	fs.BoolVar(&opt.skipConvert, "skip-convert", false, "do not run otftotfm")
	fs.BoolVar(&opt.mapOnly, "map-only", false, "only regenerate the map file from the existing metric files")
	fs.BoolVar(&opt.verify, "verify", false, "check the encoding files on disk against the computed layout")
	fs.StringVar(&opt.trace, "trace", "Info", "trace level [Debug|Info|Error]")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, buildinfo.Short("iconenc"))
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Usage: %s [options] [root]\n\n", name)
		fs.PrintDefaults()
	}

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}

	opt.root = "."
	switch fs.NArg() {
	case 0:
	case 1:
		opt.root = fs.Arg(0)
	default:
		fmt.Fprintln(fs.Output(), "error: too many arguments")
		fs.Usage()
		return nil, errors.New("too many arguments")
	}
	return opt, nil
}

// config returns the build configuration with the command line settings
// applied.
func (opt *options) config() *build.Config {
	cfg := build.DefaultConfig(opt.root)
	if opt.prefix != "" {
		cfg.Names.Prefix = opt.prefix
	}
	if opt.pkg != "" {
		cfg.Names.Package = opt.pkg
	}
	if opt.capacity != 0 {
		cfg.Capacity = opt.capacity
	}
	if opt.catalog != "" {
		cfg.Catalog = opt.catalog
	}
	if opt.program != "" {
		cfg.Program = opt.program
	}
	if opt.maintainer != "" {
		cfg.Header.Maintainer = opt.maintainer
	}
	if opt.year != 0 {
		cfg.Header.Year = opt.year
	}
	cfg.SkipConvert = opt.skipConvert
	return cfg
}

func (opt *options) mode() func(context.Context, *build.Builder) error {
	switch {
	case opt.mapOnly:
		return runMapOnly
	case opt.verify:
		return runVerify
	default:
		return runAll
	}
}

func run(ctx context.Context, cfg *build.Config, mode func(context.Context, *build.Builder) error) error {
	b, err := build.New(cfg)
	if err != nil {
		return err
	}
	return mode(ctx, b)
}

func runAll(ctx context.Context, b *build.Builder) error {
	err := b.Run(ctx)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%d glyphs in %d encoding families", b.Table.Len(), len(b.Table.Families())))
	return nil
}

func runMapOnly(_ context.Context, b *build.Builder) error {
	metrics, err := b.MetricsFromDir()
	if err != nil {
		return err
	}
	if len(metrics) == 0 {
		return fmt.Errorf("no metric files found in %s",
			filepath.Join(b.Config.Root, b.Config.TFMDir))
	}
	err = b.WriteMap(metrics)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("map file written for %d metric files", len(metrics)))
	return nil
}

func runVerify(_ context.Context, b *build.Builder) error {
	err := b.Layout()
	if err != nil {
		return err
	}
	err = b.Verify()
	if err != nil {
		return err
	}
	pterm.Info.Println("encoding files agree with the glyph assignments")
	return nil
}

func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true))
	if err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	var l tracing.TraceLevel
	switch level {
	case "Debug":
		l = tracing.LevelDebug
	case "Info":
		l = tracing.LevelInfo
	case "Error":
		l = tracing.LevelError
	default:
		return fmt.Errorf("invalid trace level %q", level)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Debugf("trace level is %s", level)
	return nil
}

// We use pterm for the summary and for error messages.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " iconenc ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
