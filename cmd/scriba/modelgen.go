package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/scriba-dev/scriba/compiler/load"
	"github.com/scriba-dev/scriba/compiler/modelgen"
)

var cmdModelgen = &cli.Command{
	Name:      "modelgen",
	Usage:     "emit Go source that reconstructs a model document",
	ArgsUsage: "<model-file>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "package",
			Aliases: []string{"p"},
			Usage:   "package name for the emitted Go source",
			Value:   "model",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "file to write the Go source to (default: stdout)",
		},
	},
	Action: runModelgen,
}

func runModelgen(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need to provide a model file as an argument")
	}

	doc, err := load.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	src, err := modelgen.Emit(doc, cctx.String("package"))
	if err != nil {
		return err
	}

	out := cctx.String("out")
	if out == "" || out == stdIOPath {
		_, err = os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(out, src, 0o644)
}
