package convert

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/adrianmusante/mws-tools/internal/fs"
	"github.com/adrianmusante/mws-tools/internal/logging"
	"github.com/adrianmusante/mws-tools/internal/mws"
)

type Mode string

const (
	// ModeColumns prints filtered tokens as comma-separated triples.
	ModeColumns Mode = "columns"
	// ModeRQ prints one "run rq..." line per "Mode Number" section.
	ModeRQ Mode = "rq"
)

type Options struct {
	InputPath string
	Output    io.Writer
	Mode      Mode
}

type Result struct {
	Tokens int
	Lines  int
}

// Run reads the whole input before writing anything, so a read failure never
// leaves partial output behind.
func Run(ctx context.Context, opts Options) (Result, error) {
	log := logging.FromContext(ctx)
	if opts.Output == nil {
		return Result{}, fmt.Errorf("output writer is required")
	}
	if opts.Mode == "" {
		opts.Mode = ModeColumns
	}

	in, err := fs.OpenInput(opts.InputPath)
	if err != nil {
		return Result{}, err
	}
	log.Debug("reading input", "path", opts.InputPath, "mode", opts.Mode)

	switch opts.Mode {
	case ModeColumns:
		return runColumns(ctx, in, opts)
	case ModeRQ:
		return runRQ(ctx, in, opts)
	default:
		fs.CloseOrLog(in, opts.InputPath)
		return Result{}, fmt.Errorf("unknown mode %q", opts.Mode)
	}
}

func runColumns(ctx context.Context, in io.ReadCloser, opts Options) (Result, error) {
	tokens, err := readAndClose(in, opts.InputPath, mws.ReadTokens)
	if err != nil {
		return Result{}, err
	}
	triples := mws.Group(tokens)
	logging.FromContext(ctx).Debug("filtered tokens", "tokens", len(tokens), "lines", len(triples))

	if err := flushed(opts.Output, func(w io.Writer) error { return mws.WriteTriples(w, triples) }); err != nil {
		return Result{}, err
	}
	return Result{Tokens: len(tokens), Lines: len(triples)}, nil
}

func runRQ(ctx context.Context, in io.ReadCloser, opts Options) (Result, error) {
	data, err := readAndClose(in, opts.InputPath, io.ReadAll)
	if err != nil {
		return Result{}, err
	}
	log := logging.FromContext(ctx)
	runs, skipped := mws.ParseRuns(string(data))
	for _, idx := range skipped {
		log.Warn("section without numbers skipped", "section", idx)
	}
	log.Debug("parsed runs", "runs", len(runs))

	if err := flushed(opts.Output, func(w io.Writer) error { return mws.WriteRuns(w, runs) }); err != nil {
		return Result{}, err
	}
	return Result{Lines: len(runs)}, nil
}

// readAndClose releases the handle whether or not read succeeds.
func readAndClose[T any](in io.ReadCloser, path string, read func(io.Reader) (T, error)) (T, error) {
	defer fs.CloseOrLog(in, path)
	v, err := read(in)
	if err != nil {
		var zero T
		return zero, &fs.FileAccessError{Path: path, Err: err}
	}
	return v, nil
}

func flushed(out io.Writer, write func(io.Writer) error) error {
	bw := bufio.NewWriter(out)
	if err := write(bw); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
