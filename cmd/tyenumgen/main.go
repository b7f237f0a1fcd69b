// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command tyenumgen generates tyenum schemas and typed match helpers from a
// declarative schema file.
//
// Usage:
//
//	//go:generate tyenumgen -p shapes -o shapes_tyenum.go shapes.tyenum
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"
	"go.uber.org/zap"

	"code.hybscloud.com/tyenum/internal/gen"
)

type args struct {
	Package string `arg:"-p,--package,required" help:"package name of the generated file"`
	Output  string `arg:"-o,--output" help:"output file; stdout when empty"`
	Verbose bool   `arg:"-v,--verbose" help:"log progress"`
	Input   string `arg:"positional,required" help:"schema file"`
}

func (args) Description() string {
	return "tyenumgen generates marker-keyed enum schemas for package tyenum"
}

func main() {
	var a args
	arg.MustParse(&a)

	logger := newLogger(a.Verbose)
	defer logger.Sync()

	if err := run(a, logger); err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func run(a args, logger *zap.Logger) error {
	src, err := os.ReadFile(a.Input)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}
	decls, err := gen.Parse(a.Input, string(src))
	if err != nil {
		return err
	}
	for _, d := range decls {
		logger.Debug("parsed enum",
			zap.String("enum", d.Name),
			zap.Int("entries", len(d.Entries)))
	}

	out, err := gen.Generate(a.Package, filepath.Base(a.Input), decls)
	if err != nil {
		return err
	}
	if a.Output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(a.Output, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Info("wrote enums",
		zap.String("output", a.Output),
		zap.Int("enums", len(decls)))
	return nil
}
