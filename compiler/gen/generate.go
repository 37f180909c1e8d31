package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/scriba-dev/scriba/schema"
)

// Generator writes rendered source files to disk with parallel execution,
// one output file per Unit or Program.
type Generator struct {
	config *Config

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics *Metrics
}

// Metrics tracks generation performance.
type Metrics struct {
	FilesGenerated int
	TotalBytes     int64
	RenderTime     int64 // nanoseconds
	WriteTime      int64 // nanoseconds
}

// NewGenerator creates a Generator for the given config. The config must
// name a target directory; an unset worker count or extension falls back to
// its default.
func NewGenerator(config *Config) (*Generator, error) {
	if config == nil || config.Target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory in config")
	}
	cfg := *config
	if cfg.Workers < 1 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.UnitExt == "" {
		cfg.UnitExt = ".pas"
	}
	if cfg.ProgramExt == "" {
		cfg.ProgramExt = ".dpr"
	}
	return &Generator{config: &cfg, metrics: &Metrics{}}, nil
}

// Metrics returns a snapshot of the generation metrics.
func (g *Generator) Metrics() Metrics {
	g.mu.Lock()
	defer g.mu.Unlock()
	return *g.metrics
}

// Generate renders every file and writes it under the target directory.
// Files render in parallel, each on its own Writer; the first failure
// cancels the remaining work.
func (g *Generator) Generate(ctx context.Context, files ...schema.SourceFile) error {
	if err := os.MkdirAll(g.config.Target, 0o755); err != nil {
		return NewGenerationError(g.config.Target, "create output directory", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Workers)

	for _, f := range files {
		f := f
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return g.generateFile(f)
			}
		})
	}

	return eg.Wait()
}

// fileName returns the target-relative name for a source file: the file's
// base name plus the configured per-kind extension.
func (g *Generator) fileName(f schema.SourceFile) (string, error) {
	base := f.BaseName()
	if base == "" {
		return "", NewGenerationError("", "source file has no base name", nil)
	}
	switch f.(type) {
	case *schema.Program:
		return base + g.config.ProgramExt, nil
	default:
		return base + g.config.UnitExt, nil
	}
}

// generateFile renders a single source file and writes it to disk.
func (g *Generator) generateFile(f schema.SourceFile) error {
	name, err := g.fileName(f)
	if err != nil {
		return err
	}

	renderStart := time.Now()
	src, err := NewWriter().Render(f)
	if err != nil {
		return NewGenerationError(name, "render", err)
	}
	renderTime := time.Since(renderStart)

	out := g.header() + src

	writeStart := time.Now()
	path := filepath.Join(g.config.Target, name)
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return NewGenerationError(name, "write", err)
	}
	writeTime := time.Since(writeStart)

	g.mu.Lock()
	g.metrics.FilesGenerated++
	g.metrics.TotalBytes += int64(len(out))
	g.metrics.RenderTime += renderTime.Nanoseconds()
	g.metrics.WriteTime += writeTime.Nanoseconds()
	g.mu.Unlock()

	return nil
}

// header renders the configured header comment block, or "" when no header
// lines are set.
func (g *Generator) header() string {
	if len(g.config.Header) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range g.config.Header {
		if line == "" {
			b.WriteString("//\n")
		} else {
			b.WriteString("// " + line + "\n")
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// Generate is the convenience entry point: it builds a Generator from the
// options and renders the given files under the target directory.
func Generate(ctx context.Context, files []schema.SourceFile, opts ...Option) error {
	config, err := NewConfig(opts...)
	if err != nil {
		return err
	}
	g, err := NewGenerator(config)
	if err != nil {
		return err
	}
	return g.Generate(ctx, files...)
}
