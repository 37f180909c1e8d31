package main

import (
	"github.com/urfave/cli/v2"
)

var cmdImport = &cli.Command{
	Name:  "import",
	Usage: "sub-commands for importing models from external schemas",
	Subcommands: []*cli.Command{
		cmdImportSQL,
		cmdImportGraphQL,
	},
}
