// Package main implements derivegen, a go:generate tool that scans one
// package directory for derive: directives and writes the companion file
// with the generated Parse and Span code.
package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"go.uber.org/zap"

	"github.com/derive-go/derive"
	"github.com/derive-go/derive/gen"
)

var cli struct {
	Out     string `short:"o" default:"derive_gen.go" help:"Name of the generated file, relative to the package directory."`
	Verbose bool   `short:"v" help:"Enable debug logging and dump the extracted declaration model."`
	Dir     string `arg:"" optional:"" default:"." type:"existingdir" help:"Package directory to scan."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Description(`derivegen generates Parse and Span companion code for Go types decorated with derive: doc comment directives.

Run it through go:generate in the package that declares the decorated types.`),
	)
	logger := newLogger(cli.Verbose)
	defer logger.Sync() // nolint: errcheck
	ctx.FatalIfErrorf(run(logger.Sugar()))
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func run(log *zap.SugaredLogger) error {
	pkg, err := derive.ParsePackage(cli.Dir)
	if err != nil {
		return err
	}
	if cli.Verbose {
		log.Debugf("extracted model:\n%s", repr.String(pkg, repr.Indent("  ")))
	}
	if len(pkg.Decls) == 0 {
		log.Infow("no decorated declarations found, nothing to generate", "dir", cli.Dir)
		return nil
	}
	out := cli.Out
	if !filepath.IsAbs(out) {
		out = filepath.Join(cli.Dir, out)
	}
	source, err := gen.Generate(pkg, out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, source, 0600); err != nil {
		return err
	}
	log.Infow("generated", "out", out, "package", pkg.Name, "decls", len(pkg.Decls))
	return nil
}
