// Package main implements the alna front-end driver.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/you-not-fish/alna/internal/config"
)

// Version information
const Version = "0.1.0"

// Exit codes
const (
	exitOK    = 0
	exitError = 1 // diagnostics, I/O or configuration errors
	exitUsage = 2
)

// options are the command-line settings after merging alna.toml.
type options struct {
	emitTokens bool
	emitAST    bool
	astFormat  string
	format     bool
	comments   bool
	maxErrors  int
	configPath string
	watch      bool
	color      bool
	verbose    bool
	version    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the driver with the given arguments and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("alnac", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.BoolVar(&opts.emitTokens, "emit-tokens", false, "Output token stream")
	fs.BoolVar(&opts.emitAST, "emit-ast", false, "Output AST")
	fs.StringVar(&opts.astFormat, "ast-format", "text", "AST output format (text, json or dump)")
	fs.BoolVar(&opts.format, "fmt", false, "Output canonically formatted source")
	fs.BoolVar(&opts.comments, "comments", false, "Keep comments in the AST")
	fs.IntVar(&opts.maxErrors, "max-errors", 0, "Stop after this many diagnostics (0 = unlimited)")
	fs.StringVar(&opts.configPath, "config", "", "Path to alna.toml (default: search upwards from the first input)")
	fs.BoolVar(&opts.watch, "watch", false, "Re-run whenever an input file changes")
	fs.BoolVar(&opts.color, "color", false, "Colour diagnostics with ANSI escapes")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	fs.BoolVar(&opts.version, "version", false, "Print version")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "alna front end %s\n\n", Version)
		fmt.Fprintf(stderr, "Usage: alnac [options] <file.alna>...\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "alnac version %s\n", Version)
		fmt.Fprintf(stdout, "go version %s\n", runtime.Version())
		return exitOK
	}

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "error: no input file")
		fmt.Fprintln(stderr, "usage: alnac [options] <file.alna>...")
		return exitUsage
	}

	logger := newLogger(stderr, opts.verbose)

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := applyConfig(&opts, set, files[0], logger); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	switch opts.astFormat {
	case "text", "json", "dump":
	default:
		fmt.Fprintf(stderr, "error: unknown AST format %q (want text, json or dump)\n", opts.astFormat)
		return exitUsage
	}
	if opts.maxErrors < 0 {
		fmt.Fprintln(stderr, "error: -max-errors must not be negative")
		return exitUsage
	}

	d := newDriver(opts, stdout, stderr, logger)
	if opts.watch {
		if err := d.watch(ctx, files); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitError
		}
		return exitOK
	}
	return d.runFiles(ctx, files)
}

// newLogger returns a text logger on w; verbose enables Debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// applyConfig loads alna.toml and fills every option that was not set on
// the command line.
func applyConfig(opts *options, set map[string]bool, firstFile string, logger *slog.Logger) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if opts.configPath != "" {
		path = opts.configPath
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.FindAndLoad(filepath.Dir(firstFile))
	}
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	} else {
		logger.Debug("no config file found, using defaults")
	}

	if err := cfg.CheckVersion(Version); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if !set["comments"] {
		opts.comments = cfg.Parser.Comments
	}
	if !set["max-errors"] {
		opts.maxErrors = cfg.Parser.MaxErrors
	}
	if !set["ast-format"] {
		opts.astFormat = cfg.Output.ASTFormat
	}
	if !set["color"] {
		opts.color = cfg.Output.Color
	}
	return nil
}
