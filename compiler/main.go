package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tebeka/atexit"
	"github.com/xiaobogaga/bfc/compiler/internal"
)

// bfc compiles an extended brainfuck source file into a standalone C program.

var (
	inputPath   = flag.String("i", "", "the input bfc source file path")
	outputPath  = flag.String("o", "", "the output file path, defaults to the input path with the backend extension")
	configPath  = flag.String("config", "", "an optional bfc.yaml config file, flags override its values")
	backendName = flag.String("backend", "c99", "the target backend")
	pre         = flag.Uint("pre", 0, "the number of cells before the initial pointer position")
	post        = flag.Uint("post", 30000, "the number of cells from the initial pointer position on")
	maxDepth    = flag.Int("max-depth", internal.DefaultMaxDepth, "the deepest loop nesting accepted")
	printIR     = flag.Bool("ir", false, "whether print the parsed program to stderr")
	printStats  = flag.Bool("stats", false, "whether print program statistics to stderr")
	check       = flag.Bool("check", false, "whether check the generated C code for syntax errors")
	verbose     = flag.Bool("v", false, "whether print debug logs")
	repl        = flag.Bool("repl", false, "start an interactive session instead of compiling a file")
)

const (
	exitOK           = 0
	exitCompileError = 1
	exitUsage        = 2
	exitIO           = 3
)

func main() {
	flag.Parse()
	config, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(exitUsage)
	}
	if err = setupLogger(config); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(exitUsage)
	}
	if *repl {
		atexit.Exit(runRepl(config))
	}
	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: bfc [options] -i <source.bf>")
		flag.PrintDefaults()
		atexit.Exit(exitUsage)
	}
	atexit.Exit(compileFile(config, *inputPath, *outputPath))
}

// loadConfig starts from the defaults or the -config file and applies the flags set on the command line.
func loadConfig() (*internal.Config, error) {
	config := internal.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = internal.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
	}
	var flagErrs []error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			config.Backend = *backendName
		case "pre":
			if *pre > math.MaxUint32 {
				flagErrs = append(flagErrs, fmt.Errorf("config: -pre %d does not fit 32 bits", *pre))
				return
			}
			config.Tape.Pre = uint32(*pre)
		case "post":
			if *post > math.MaxUint32 {
				flagErrs = append(flagErrs, fmt.Errorf("config: -post %d does not fit 32 bits", *post))
				return
			}
			config.Tape.Post = uint32(*post)
		case "max-depth":
			config.MaxDepth = *maxDepth
		case "check":
			config.Check = *check
		case "v":
			if *verbose {
				config.Log.Level = "debug"
			}
		}
	})
	if len(flagErrs) > 0 {
		return nil, errors.Join(flagErrs...)
	}
	return config, config.Validate()
}

func setupLogger(config *internal.Config) error {
	level, err := internal.ParseLevel(config.Log.Level)
	if err != nil {
		return err
	}
	logger, err := internal.NewLogger(os.Stderr, level, config.Log.Format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func compileFile(config *internal.Config, input, output string) int {
	source, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[bfc]: failed to read %s, err: %v\n", input, err)
		return exitIO
	}
	backend, err := internal.LookupBackend(config.Backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	result, err := internal.Compile(string(source), backend, config.Options())
	if err != nil {
		fmt.Fprintf(os.Stderr, "[bfc]: %s: %v\n", input, err)
		return exitCompileError
	}
	if *printIR {
		fmt.Fprintln(os.Stderr, result.Program.String())
	}
	if *printStats {
		fmt.Fprintln(os.Stderr, internal.CollectStats(result.Program).Render())
	}
	if config.Check {
		if err = verifyGenerated(backend, result.Code); err != nil {
			fmt.Fprintf(os.Stderr, "[bfc]: %s: %v\n", input, err)
			return exitCompileError
		}
	}
	if output == "" {
		output = outputPathFor(input, result.Extension)
	}
	if err = os.WriteFile(output, []byte(result.Code), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "[bfc]: failed to save to path: %s, err: %v\n", output, err)
		return exitIO
	}
	slog.Info("bfc: wrote output", "path", output, "bytes", len(result.Code))
	return exitOK
}

func verifyGenerated(backend internal.Backend, code string) error {
	if backend.Extension() != "c" {
		slog.Warn("bfc: no checker for backend, skipping check", "backend", backend.Name())
		return nil
	}
	return internal.VerifyC([]byte(code))
}

// outputPathFor swaps the extension of input for ext: hello.bf -> hello.c.
func outputPathFor(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + ext
}
