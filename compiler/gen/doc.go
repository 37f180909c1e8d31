// Package gen renders scriba source models into Object Pascal source text.
//
// This package is the writing half of the pipeline: it consumes the typed
// trees of [github.com/scriba-dev/scriba/schema] and produces consistently
// indented, deterministic Delphi-compatible units and programs.
//
// # Architecture
//
// The rendering pipeline follows this flow:
//
//	Model definition (schema.Unit / schema.Program)
//	        ↓
//	   Writer (recursive-descent emission)
//	        ↓
//	   conditional protocol + indentation + casing + ordering helpers
//	        ↓
//	   Source text (.pas / .dpr)
//
// # Key Types
//
// The package provides several key types:
//
//   - Writer: Single-render text accumulator with indentation bookkeeping
//   - Generator: Concurrent multi-file generation with metrics
//   - Config: Target directory, worker count, extensions, header block
//   - CaseStyle: Identifier case-conversion styles for SplitSyllables/ToCase
//
// # Rendering Contract
//
// Rendering a structurally valid tree never fails and is deterministic: the
// same tree renders to byte-identical text. Output uses "\n" separators on
// every platform. Trees are never mutated and never sorted — caller order is
// preserved; use SortUsesClause before construction when sorted uses clauses
// are wanted.
//
// Structural precondition violations (an unknown union variant, a conditional
// wrapper with nothing to emit) abort the render with a typed error from the
// root scriba package:
//
//	src, err := gen.RenderUnit(u)
//	if err != nil {
//	    if scriba.IsEmptyConditional(err) {
//	        // A conditional reference or annotation has no branch.
//	    }
//	    return err
//	}
//
// # Error Handling
//
// The package uses structured error types for better error handling:
//
//   - ConfigError: Configuration errors
//   - GenerationError: File generation errors
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./src"),        // Output directory
//	    gen.WithWorkers(4),             // Parallel unit rendering
//	    gen.WithHeader("Generated code. DO NOT EDIT."),
//	)
//
// # Usage
//
// Render a single unit in memory:
//
//	src, err := gen.RenderUnit(u)
//
// Or generate a whole set of files concurrently:
//
//	g, err := gen.NewGenerator(config)
//	if err != nil {
//	    return err
//	}
//	if err := g.Generate(ctx, unitA, unitB, mainProgram); err != nil {
//	    return err
//	}
//
// # Code Organization
//
// The package is organized into several files:
//
//   - writer.go: Writer and the per-node-kind render rules
//   - conditional.go: {$IFDEF}/{$ELSE}/{$ENDIF} emission protocol
//   - indent.go: Indentation manager
//   - func.go: Syllable splitting, case conversion, inflection rules
//   - order.go: Uses-clause reference ordering
//   - option.go: Functional option pattern for configuration
//   - generate.go: Generator for concurrent multi-file output
//   - errors.go: Structured error types
package gen
