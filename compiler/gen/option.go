package gen

import (
	"errors"
	"strings"
)

// Config carries the settings a Generator writes files with.
type Config struct {
	// Target is the directory generated source files are written to.
	Target string

	// Workers caps the number of files rendered concurrently. Zero means
	// one worker per available CPU.
	Workers int

	// UnitExt and ProgramExt are the file extensions for rendered units
	// and programs. They default to ".pas" and ".dpr".
	UnitExt    string
	ProgramExt string

	// Header holds comment lines written at the top of every generated
	// file, before the rendered source.
	Header []string
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
// The directory where generated source files will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithWorkers sets the number of parallel render workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "worker count must be at least 1")
		}
		c.Workers = n
		return nil
	}
}

// WithUnitExt sets the file extension used for rendered units.
// The extension must start with a dot, e.g. ".pas" or ".pp".
func WithUnitExt(ext string) Option {
	return func(c *Config) error {
		if !strings.HasPrefix(ext, ".") {
			return NewConfigError("UnitExt", ext, "extension must start with a dot")
		}
		c.UnitExt = ext
		return nil
	}
}

// WithProgramExt sets the file extension used for rendered programs.
// The extension must start with a dot, e.g. ".dpr" or ".lpr".
func WithProgramExt(ext string) Option {
	return func(c *Config) error {
		if !strings.HasPrefix(ext, ".") {
			return NewConfigError("ProgramExt", ext, "extension must start with a dot")
		}
		c.ProgramExt = ext
		return nil
	}
}

// WithHeader appends file header comment lines.
// The lines are written as "//" comments at the top of each generated file.
func WithHeader(lines ...string) Option {
	return func(c *Config) error {
		c.Header = append(c.Header, lines...)
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
