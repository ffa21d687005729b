package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/sanity-io/litter"
	"golang.org/x/sync/errgroup"

	"github.com/you-not-fish/alna/internal/report"
	"github.com/you-not-fish/alna/internal/syntax"
	"github.com/you-not-fish/alna/internal/types"
)

// driver runs the selected action over input files.
type driver struct {
	opts     options
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
	renderer *report.Renderer

	// watchReady, if set, is called once watch mode is listening.
	watchReady func()
}

func newDriver(opts options, stdout, stderr io.Writer, logger *slog.Logger) *driver {
	return &driver{
		opts:     opts,
		stdout:   stdout,
		stderr:   stderr,
		logger:   logger,
		renderer: report.New(opts.color),
	}
}

// result is the output of processing one file. Results are produced
// concurrently and printed in argument order.
type result struct {
	filename string
	out      bytes.Buffer // stdout
	errOut   bytes.Buffer // stderr
	failed   bool
}

// runFiles processes every file and returns the exit code.
func (d *driver) runFiles(ctx context.Context, files []string) int {
	results, err := d.processAll(ctx, files)
	if err != nil {
		fmt.Fprintf(d.stderr, "error: %v\n", err)
		return exitError
	}

	code := exitOK
	for _, r := range results {
		d.stdout.Write(r.out.Bytes())
		d.stderr.Write(r.errOut.Bytes())
		if r.failed {
			code = exitError
		}
	}
	return code
}

// processAll processes files concurrently, one parser per file.
func (d *driver) processAll(ctx context.Context, files []string) ([]*result, error) {
	results := make([]*result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, filename := range files {
		i, filename := i, filename
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = d.processFile(filename)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// processFile reads and handles a single file.
func (d *driver) processFile(filename string) *result {
	r := &result{filename: filename}

	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(&r.errOut, "error: %v\n", err)
		r.failed = true
		return r
	}

	start := time.Now()
	var errs syntax.ErrorList
	switch {
	case d.opts.emitTokens:
		errs = d.emitTokens(&r.out, filename, src)
	case d.opts.emitAST:
		errs, err = d.emitAST(&r.out, filename, src)
	case d.opts.format:
		errs, err = d.emitFormat(&r.out, filename, src)
	default:
		_, errs = syntax.Parse(filename, src, d.parseOptions()...)
	}
	d.logger.Debug("processed", "file", filename, "diagnostics", errs.Len(), "elapsed", time.Since(start))

	if err != nil {
		fmt.Fprintf(&r.errOut, "error: %v\n", err)
		r.failed = true
	}
	if errs.Len() > 0 {
		errs.Sort()
		d.renderer.RenderAll(&r.errOut, src, errs)
		fmt.Fprintf(&r.errOut, "%s: %s\n", filename, report.Summary(errs))
		r.failed = true
	}
	return r
}

func (d *driver) parseOptions() []syntax.Option {
	var opts []syntax.Option
	if d.opts.comments {
		opts = append(opts, syntax.WithComments())
	}
	if d.opts.maxErrors > 0 {
		opts = append(opts, syntax.WithMaxErrors(d.opts.maxErrors))
	}
	return opts
}

// emitTokens scans src and prints all tokens with positions.
func (d *driver) emitTokens(w io.Writer, filename string, src []byte) syntax.ErrorList {
	var errs syntax.ErrorList
	s := syntax.NewScanner(filename, bytes.NewReader(src), errs.Add)

	// Print header
	fmt.Fprintf(w, "%-20s %-14s %-10s %s\n", "POSITION", "TOKEN", "CLASS", "LITERAL")
	fmt.Fprintf(w, "%-20s %-14s %-10s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 14),
		strings.Repeat("-", 10), strings.Repeat("-", 20))

	for {
		s.Next()
		tok := s.Token()
		lit := s.Literal()
		switch {
		case tok.Class() == syntax.ClassNumber:
			lit += " (" + s.LitKind().String() + ")"
		case tok.IsTypeKeyword():
			lit += " (" + types.Describe(tok.TypeKind()) + ")"
		}
		fmt.Fprintf(w, "%-20s %-14s %-10s %s\n", s.Pos(), tok, tok.Class(), formatLiteral(lit))
		if tok.IsEOF() {
			break
		}
	}
	return errs
}

// emitAST parses src and prints the tree in the configured format.
func (d *driver) emitAST(w io.Writer, filename string, src []byte) (syntax.ErrorList, error) {
	ast, errs := syntax.Parse(filename, src, d.parseOptions()...)

	switch d.opts.astFormat {
	case "json":
		if err := syntax.FprintJSON(w, ast); err != nil {
			return errs, err
		}
	case "dump":
		fmt.Fprintln(w, litter.Sdump(ast))
	default:
		syntax.Fprint(w, ast)
	}
	return errs, nil
}

// emitFormat prints src in canonical form. Files with syntax errors are
// not formatted.
func (d *driver) emitFormat(w io.Writer, filename string, src []byte) (syntax.ErrorList, error) {
	ast, errs := syntax.Parse(filename, src)
	if errs.Len() > 0 {
		return errs, nil
	}
	out, err := syntax.FormatString(ast)
	if err != nil {
		return errs, fmt.Errorf("%s: %w", filename, err)
	}
	io.WriteString(w, out)
	return errs, nil
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	// Show the content with escapes visible for readability
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		case 0:
			b.WriteString("\\0")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
