package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/urfave/cli/v2"

	"github.com/scriba-dev/scriba/contrib/sqlimport"
)

var cmdImportSQL = &cli.Command{
	Name:  "sql",
	Usage: "import a SQL database catalog as a model unit",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "driver",
			Usage:    "database driver: mysql, postgres or sqlite",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "dsn",
			Usage:    "database connection string",
			Required: true,
			EnvVars:  []string{"SCRIBA_SQL_DSN"},
		},
		&cli.StringFlag{
			Name:  "unit",
			Usage: "unit name for the imported model",
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "prefix for imported class and enum names",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "file to write the model document to (default: YAML on stdout)",
		},
	},
	Action: runImportSQL,
}

func runImportSQL(cctx *cli.Context) error {
	ctx := context.Background()
	logger := configLogger(cctx, os.Stderr)

	driver := cctx.String("driver")
	db, err := sql.Open(driver, cctx.String("dsn"))
	if err != nil {
		return fmt.Errorf("open %s database: %w", driver, err)
	}
	defer db.Close()

	var opts []sqlimport.Option
	if unit := cctx.String("unit"); unit != "" {
		opts = append(opts, sqlimport.WithUnitName(unit))
	}
	if prefix := cctx.String("prefix"); prefix != "" {
		opts = append(opts, sqlimport.WithTypePrefix(prefix))
	}
	importer, err := sqlimport.NewImporter(opts...)
	if err != nil {
		return err
	}

	unit, err := importer.ImportDB(ctx, driver, db)
	if err != nil {
		return err
	}

	report := importer.Report()
	logger.Info("imported sql catalog",
		"driver", driver,
		"tables", report.Tables,
		"columns", report.Columns,
	)
	for _, col := range report.Unknown {
		logger.Warn("no Pascal mapping for column type, using Variant", "column", col)
	}

	return writeModel(cctx.String("out"), unit)
}
