// Package toolchain invokes Pascal compilers on generated sources.
//
// The package is the bridge between rendering and verification: scriba
// check renders a model and hands the result to a Compiler to prove the
// output parses and resolves. The FPC implementation shells out to the Free
// Pascal compiler; rendered files already carry a mode block switching FPC
// into Delphi-compatible parsing.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Result is the outcome of one compile run.
type Result struct {
	// OK reports whether the compiler accepted the file.
	OK bool
	// ExitCode is the compiler's exit code, 0 when OK.
	ExitCode int
	// Output is the combined compiler stdout and stderr.
	Output string
}

// Compiler builds a single source file, resolving unit references through
// the given search paths.
type Compiler interface {
	// Compile builds file. A compiler rejection is not an error: it is
	// reported through the Result. An error means the compiler could not
	// be run at all.
	Compile(ctx context.Context, file string, searchPaths []string) (*Result, error)

	// Available reports whether the compiler binary can be found.
	Available() bool
}

// FPC invokes the Free Pascal compiler. The zero value runs "fpc" from the
// PATH.
type FPC struct {
	// Binary overrides the compiler binary name.
	Binary string
	// Flags are extra flags passed before the source file.
	Flags []string
}

var _ Compiler = (*FPC)(nil)

func (c *FPC) binary() string {
	if c.Binary != "" {
		return c.Binary
	}
	return "fpc"
}

// Available reports whether the fpc binary is on the PATH.
func (c *FPC) Available() bool {
	_, err := exec.LookPath(c.binary())
	return err == nil
}

// args assembles the fpc invocation: a -Fu flag per unit search path, the
// scratch -FE output directory, extra flags, then the source file.
func (c *FPC) args(file string, searchPaths []string, outDir string) []string {
	args := make([]string, 0, len(searchPaths)+len(c.Flags)+2)
	for _, p := range searchPaths {
		args = append(args, "-Fu"+p)
	}
	args = append(args, "-FE"+outDir)
	args = append(args, c.Flags...)
	args = append(args, file)
	return args
}

// Compile runs fpc on file. Compiled units and binaries land in a scratch
// directory that is removed before returning; Compile verifies, it does not
// install.
func (c *FPC) Compile(ctx context.Context, file string, searchPaths []string) (*Result, error) {
	outDir, err := os.MkdirTemp("", "scriba-check-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	cmd := exec.CommandContext(ctx, c.binary(), c.args(file, searchPaths, outDir)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Result{ExitCode: exitErr.ExitCode(), Output: string(out)}, nil
		}
		return nil, fmt.Errorf("run %s: %w", c.binary(), err)
	}
	return &Result{OK: true, Output: string(out)}, nil
}
