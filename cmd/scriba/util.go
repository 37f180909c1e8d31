package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/scriba-dev/scriba/compiler/load"
	"github.com/scriba-dev/scriba/schema"
)

const stdIOPath = "-"

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cctx.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// expandArgs resolves the command arguments as paths or glob patterns. An
// argument that matches nothing is an error; a plain path to an existing file
// matches itself.
func expandArgs(cctx *cli.Context) ([]string, error) {
	if cctx.Args().Len() == 0 {
		return nil, fmt.Errorf("need to provide at least one model file as an argument")
	}
	var paths []string
	for _, arg := range cctx.Args().Slice() {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no model files match %q", arg)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// loadModels reads each model document and maps it onto the schema model.
func loadModels(paths []string) ([]schema.SourceFile, error) {
	files := make([]schema.SourceFile, 0, len(paths))
	for _, path := range paths {
		doc, err := load.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		file, err := doc.SourceFile()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		files = append(files, file)
	}
	return files, nil
}

// writeModel serializes an imported model as a document. An empty or "-" path
// writes YAML to stdout; otherwise the file extension picks the format.
func writeModel(path string, file schema.SourceFile) error {
	doc, err := load.FromSourceFile(file)
	if err != nil {
		return err
	}
	if path == "" || path == stdIOPath {
		data, err := load.Encode(doc, load.FormatYAML)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	return load.WriteFile(path, doc)
}
