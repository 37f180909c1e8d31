package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/scriba-dev/scriba/compiler/gen"
	"github.com/scriba-dev/scriba/compiler/load"
)

var cmdGenerate = &cli.Command{
	Name:      "generate",
	Usage:     "render model documents into Pascal source files",
	ArgsUsage: "<model-file> [<model-file>...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "directory to write rendered sources to",
			Value:   ".",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "parallel render workers (default: one per CPU)",
		},
		&cli.StringFlag{
			Name:  "ext",
			Usage: "file extension for rendered units",
			Value: ".pas",
		},
		&cli.BoolFlag{
			Name:    "watch",
			Aliases: []string{"w"},
			Usage:   "keep running and re-render models when they change",
		},
	},
	Action: runGenerate,
}

func runGenerate(cctx *cli.Context) error {
	logger := configLogger(cctx, os.Stderr)
	paths, err := expandArgs(cctx)
	if err != nil {
		return err
	}

	opts := []gen.Option{
		gen.WithTarget(cctx.String("out")),
		gen.WithUnitExt(cctx.String("ext")),
	}
	if n := cctx.Int("workers"); n > 0 {
		opts = append(opts, gen.WithWorkers(n))
	}
	config, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := generateModels(ctx, config, paths); err != nil {
		return err
	}

	if !cctx.Bool("watch") {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info("watching model files", "files", len(paths))
	err = load.Watch(ctx, paths, func(changed []string) {
		logger.Debug("model files changed", "files", changed)
		if err := generateModels(ctx, config, changed); err != nil {
			logger.Error("generation failed", "err", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func generateModels(ctx context.Context, config *gen.Config, paths []string) error {
	files, err := loadModels(paths)
	if err != nil {
		return err
	}
	g, err := gen.NewGenerator(config)
	if err != nil {
		return err
	}
	if err := g.Generate(ctx, files...); err != nil {
		return err
	}
	metrics := g.Metrics()
	slog.Info("generated sources",
		"files", metrics.FilesGenerated,
		"bytes", metrics.TotalBytes,
		"dir", config.Target,
	)
	return nil
}
