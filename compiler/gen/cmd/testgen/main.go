// testgen regenerates the golden conformance archive from its model
// documents. It decodes every .yaml entry in testdata/golden.txtar, renders
// it, and rewrites the paired source entry in place.
// Run: go run ./compiler/gen/cmd/testgen
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/txtar"

	"github.com/scriba-dev/scriba/compiler/gen"
	"github.com/scriba-dev/scriba/compiler/load"
	"github.com/scriba-dev/scriba/schema"
)

func main() {
	if err := run(filepath.Join("compiler", "gen", "testdata", "golden.txtar")); err != nil {
		fmt.Fprintf(os.Stderr, "testgen: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	archive, err := txtar.ParseFile(path)
	if err != nil {
		return err
	}

	index := make(map[string]int, len(archive.Files))
	for i, f := range archive.Files {
		index[f.Name] = i
	}

	for _, f := range archive.Files {
		if filepath.Ext(f.Name) != ".yaml" {
			continue
		}
		doc, err := load.Decode(f.Data, load.FormatYAML)
		if err != nil {
			return fmt.Errorf("decode %s: %w", f.Name, err)
		}
		file, err := doc.SourceFile()
		if err != nil {
			return fmt.Errorf("map %s: %w", f.Name, err)
		}
		out, err := gen.NewWriter().Render(file)
		if err != nil {
			return fmt.Errorf("render %s: %w", f.Name, err)
		}

		golden := renderedName(file)
		if i, ok := index[golden]; ok {
			archive.Files[i].Data = []byte(out)
		} else {
			archive.Files = append(archive.Files, txtar.File{Name: golden, Data: []byte(out)})
			index[golden] = len(archive.Files) - 1
		}
		fmt.Printf("rendered %s -> %s\n", f.Name, golden)
	}

	return os.WriteFile(path, txtar.Format(archive), 0o644)
}

func renderedName(file schema.SourceFile) string {
	if _, ok := file.(*schema.Program); ok {
		return file.BaseName() + ".dpr"
	}
	return file.BaseName() + ".pas"
}
