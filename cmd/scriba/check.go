package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/scriba-dev/scriba/compiler/gen"
	"github.com/scriba-dev/scriba/schema"
	"github.com/scriba-dev/scriba/toolchain"
)

var cmdCheck = &cli.Command{
	Name:      "check",
	Usage:     "render model documents and compile them with fpc",
	ArgsUsage: "<model-file> [<model-file>...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "fpc",
			Usage:   "path to the fpc binary",
			EnvVars: []string{"SCRIBA_FPC"},
		},
		&cli.StringSliceFlag{
			Name:    "unit-path",
			Aliases: []string{"u"},
			Usage:   "unit search path passed to the compiler (repeatable)",
		},
	},
	Action: runCheck,
}

func runCheck(cctx *cli.Context) error {
	ctx := context.Background()
	logger := configLogger(cctx, os.Stderr)

	paths, err := expandArgs(cctx)
	if err != nil {
		return err
	}
	files, err := loadModels(paths)
	if err != nil {
		return err
	}

	compiler := &toolchain.FPC{Binary: cctx.String("fpc")}
	if !compiler.Available() {
		return fmt.Errorf("fpc not found in PATH (install Free Pascal or pass --fpc)")
	}

	dir, err := os.MkdirTemp("", "scriba-check-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	if err := gen.Generate(ctx, files, gen.WithTarget(dir)); err != nil {
		return err
	}
	searchPaths := append([]string{dir}, cctx.StringSlice("unit-path")...)

	failed := 0
	for _, file := range files {
		name := renderedName(file)
		result, err := compiler.Compile(ctx, filepath.Join(dir, name), searchPaths)
		if err != nil {
			return err
		}
		if result.OK {
			logger.Info("compiles cleanly", "file", name)
			continue
		}
		failed++
		logger.Error("compiler rejected rendered source", "file", name, "exit", result.ExitCode)
		fmt.Fprint(os.Stderr, result.Output)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d rendered files failed to compile", failed, len(files))
	}
	logger.Info("all rendered files compile", "files", len(files))
	return nil
}

// renderedName mirrors the generator's default file naming.
func renderedName(file schema.SourceFile) string {
	if _, ok := file.(*schema.Program); ok {
		return file.BaseName() + ".dpr"
	}
	return file.BaseName() + ".pas"
}
