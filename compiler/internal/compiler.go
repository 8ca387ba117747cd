package internal

import (
	"log/slog"
)

// Options are the caller supplied inputs of a compilation besides the source text.
type Options struct {
	// Pre and Post are the cells before and after the initial pointer position.
	Pre      uint32
	Post     uint32
	MaxDepth int
}

type Result struct {
	Program   Program
	Code      string
	Extension string
}

// Compile parses source and hands the program to backend. A syntax error stops the pipeline before the
// backend is called; there is no partial result.
func Compile(source string, backend Backend, opts Options) (*Result, error) {
	slog.Debug("compiler: start parser", "bytes", len(source), "max_depth", opts.MaxDepth)
	program, err := ParseWithDepth(source, opts.MaxDepth)
	if err != nil {
		return nil, err
	}
	Trace("compiler: parsed program", "statements", len(program))
	slog.Debug("compiler: start generate codes", "backend", backend.Name(), "pre", opts.Pre, "post", opts.Post)
	code, ext := Generate(backend, program, opts.Pre, opts.Post)
	Trace("compiler: generated code", "bytes", len(code), "extension", ext)
	return &Result{Program: program, Code: code, Extension: ext}, nil
}
