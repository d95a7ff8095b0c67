package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"brio/interpreter-go/pkg/ast"
	"brio/interpreter-go/pkg/driver"
	"brio/interpreter-go/pkg/interpreter"
	"brio/interpreter-go/pkg/parser"
	"brio/interpreter-go/pkg/runtime"
)

const cliToolVersion = "brio-cli 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Stdin))
}

func run(args []string, stdout, stderr io.Writer, stdin io.Reader) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage(stdout)
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:], stdout, stderr, stdin)
	default:
		return runEntry(args, stdout, stderr, stdin)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: brio [run] [--trace] [--ast] <program.brio>")
	fmt.Fprintln(w, "       brio run              (loads brio.yml from the working directory)")
	fmt.Fprintln(w, "       brio --version")
}

type runOptions struct {
	trace   bool
	astJSON bool
	path    string
}

func parseRunArgs(args []string, stderr io.Writer) (runOptions, bool) {
	var opts runOptions
	for _, arg := range args {
		switch arg {
		case "--trace":
			opts.trace = true
		case "--ast":
			opts.astJSON = true
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(stderr, "unknown flag: %s\n", arg)
				return opts, false
			}
			if opts.path != "" {
				fmt.Fprintf(stderr, "unexpected argument: %s\n", arg)
				return opts, false
			}
			opts.path = arg
		}
	}
	return opts, true
}

func runEntry(args []string, stdout, stderr io.Writer, stdin io.Reader) int {
	opts, ok := parseRunArgs(args, stderr)
	if !ok {
		return 1
	}

	if opts.path == "" {
		return runFromManifest(opts, stdout, stderr)
	}

	program, ok := loadProgram(opts.path, opts.astJSON, stderr)
	if !ok {
		return 1
	}
	return executeProgram(program, stdout, stderr, stdin, opts.trace)
}

func runFromManifest(opts runOptions, stdout, stderr io.Writer) int {
	manifestPath, err := driver.FindManifest(".")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stderr, "brio run requires a source file (%s not found)\n", driver.ManifestName)
		} else {
			fmt.Fprintf(stderr, "failed to locate manifest: %v\n", err)
		}
		return 1
	}
	manifest, err := driver.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load manifest: %v\n", err)
		return 1
	}
	program, ok := loadProgram(manifest.EntryPath(), false, stderr)
	if !ok {
		return 1
	}
	stdin := strings.NewReader(manifest.InputFeed())
	return executeProgram(program, stdout, stderr, stdin, opts.trace || manifest.Trace)
}

func loadProgram(path string, astJSON bool, stderr io.Writer) (*ast.Program, bool) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read %s: %v\n", path, err)
		return nil, false
	}
	if astJSON {
		decoded, err := interpreter.DecodeProgram(source)
		if err != nil {
			fmt.Fprintf(stderr, "invalid AST in %s: %v\n", path, err)
			return nil, false
		}
		return decoded, true
	}
	parsed, err := parser.Parse(string(source))
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", path, err)
		return nil, false
	}
	return parsed, true
}

func executeProgram(program *ast.Program, stdout, stderr io.Writer, stdin io.Reader, trace bool) int {
	var interpOpts []interpreter.Option
	if trace {
		log := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		interpOpts = append(interpOpts, interpreter.WithLogger(log), interpreter.WithTrace())
	}
	interp := interpreter.New(stdout, stdin, interpOpts...)
	if err := interp.Run(program); err != nil {
		var re *runtime.RuntimeError
		if errors.As(err, &re) {
			fmt.Fprintln(stderr, re.Error())
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}
