package main

import (
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "scriba",
		Usage:   "Pascal source generator for schema models",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				EnvVars: []string{"SCRIBA_DEBUG"},
			},
		},
	}
	app.Commands = []*cli.Command{
		cmdGenerate,
		cmdImport,
		cmdModelgen,
		cmdCheck,
		cmdVersion,
	}
	return app.Run(args)
}

var cmdVersion = &cli.Command{
	Name:  "version",
	Usage: "print the scriba version",
	Action: func(cctx *cli.Context) error {
		fmt.Println(versioninfo.Short())
		return nil
	},
}
