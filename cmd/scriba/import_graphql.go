package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/scriba-dev/scriba/contrib/graphql"
)

var cmdImportGraphQL = &cli.Command{
	Name:      "graphql",
	Usage:     "import a GraphQL SDL schema as a model unit",
	ArgsUsage: "<schema.graphql> [<schema.graphql>...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "importer config file (YAML)",
		},
		&cli.StringFlag{
			Name:  "unit",
			Usage: "unit name for the imported model",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "file to write the model document to (default: YAML on stdout)",
		},
	},
	Action: runImportGraphQL,
}

func runImportGraphQL(cctx *cli.Context) error {
	logger := configLogger(cctx, os.Stderr)

	var opts []graphql.Option
	var config *graphql.Config
	if path := cctx.String("config"); path != "" {
		cfg, err := graphql.LoadConfig(path)
		if err != nil {
			return err
		}
		config = cfg
		opts = append(opts, graphql.WithConfig(cfg))
	}
	if unit := cctx.String("unit"); unit != "" {
		opts = append(opts, graphql.WithUnitName(unit))
	}

	paths := cctx.Args().Slice()
	if len(paths) == 0 && config != nil {
		paths = config.Schema
	}
	if len(paths) == 0 {
		return fmt.Errorf("need to provide a schema file as an argument")
	}

	var src []byte
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read schema %s: %w", path, err)
		}
		src = append(src, data...)
		src = append(src, '\n')
	}

	unit, err := graphql.Import(src, opts...)
	if err != nil {
		return err
	}

	logger.Info("imported graphql schema",
		"files", len(paths),
		"declarations", len(unit.Interface.Declarations),
	)
	return writeModel(cctx.String("out"), unit)
}
