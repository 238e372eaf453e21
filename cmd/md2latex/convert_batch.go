package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	md2latex "github.com/alnah/go-md2latex"
	"github.com/alnah/go-md2latex/internal/fileutil"
	"github.com/alnah/go-md2latex/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrWriteOutput   = errors.New("failed to write LaTeX file")
	ErrConverterInit = errors.New("failed to initialize converter")
)

// CLIConverter is the part of the converter the CLI relies on.
type CLIConverter interface {
	Convert(ctx context.Context, input md2latex.Input) (*md2latex.ConvertResult, error)
	MakeDocument(w io.Writer, doc md2latex.Document) error
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2latex.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() CLIConverter
	Release(CLIConverter)
	Size() int
}

// poolAdapter exposes a md2latex.ConverterPool as a Pool.
type poolAdapter struct {
	pool *md2latex.ConverterPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

// Acquire returns nil when the converter could not be created, so callers
// compare with nil before use.
func (a *poolAdapter) Acquire() CLIConverter {
	conv := a.pool.Acquire()
	if conv == nil {
		return nil
	}
	return conv
}

// Release panics on converters that did not come from the pool.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*md2latex.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

// initError explains why the pool handed out no converter.
func (a *poolAdapter) initError() error {
	if err := a.pool.InitError(); err != nil {
		return fmt.Errorf("%w: %w", ErrConverterInit, err)
	}
	return ErrConverterInit
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
	Minted     bool // output needs -shell-escape
}

// conversionParams groups parameters shared across the batch.
type conversionParams struct {
	// document is the template for standalone output; nil writes fragments.
	document     *md2latex.Document
	strictImages bool
	initErr      func() error
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv := pool.Acquire()
			if conv == nil {
				err := ErrConverterInit
				if params.initErr != nil {
					err = params.initErr()
				}
				for idx := range jobs {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	res, err := conv.Convert(ctx, md2latex.Input{
		Markdown:  string(content),
		SourceDir: filepath.Dir(f.InputPath),
	})
	if err != nil {
		return fail(withHints(err, params.strictImages))
	}
	for _, p := range res.Packages {
		if p.Name == "minted" {
			result.Minted = true
		}
	}

	var out bytes.Buffer
	if params.document != nil {
		doc := *params.document
		doc.Packages = append(append([]md2latex.Package{}, res.Packages...), doc.Packages...)
		doc.Elements = []string{res.LaTeX}
		if err := conv.MakeDocument(&out, doc); err != nil {
			return fail(fmt.Errorf("assembling document: %w", err))
		}
	} else {
		writeFragment(&out, res)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
	}
	if err := fileutil.WriteFileAtomic(f.OutputPath, out.Bytes(), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	result.Duration = time.Since(start)
	return result
}

// writeFragment writes the body with the packages it needs listed as
// comments, ready to copy into a preamble.
func writeFragment(w io.Writer, res *md2latex.ConvertResult) {
	if preamble := res.Preamble(); preamble != "" {
		fmt.Fprintln(w, "% Required packages:")
		for _, line := range strings.Split(strings.TrimRight(preamble, "\n"), "\n") {
			fmt.Fprintf(w, "%% %s\n", line)
		}
	}
	fmt.Fprint(w, strings.TrimLeft(res.LaTeX, "\n"))
}

// withHints appends actionable hints to conversion errors.
func withHints(err error, strict bool) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForImageTimeout())
	case errors.Is(err, md2latex.ErrImageUnavailable), errors.Is(err, md2latex.ErrImageFetch):
		return fmt.Errorf("%w%s", err, hints.ForImageFetch(strict))
	}
	return err
}

// batchError summarizes failed conversions and keeps their causes for
// errors.Is.
type batchError struct {
	failed []error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", len(e.failed))
}

func (e *batchError) Unwrap() []error {
	return e.failed
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)
	minted := false

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		minted = minted || r.Minted

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}
	if !quiet && minted {
		fmt.Fprintln(env.Stderr, strings.TrimPrefix(hints.ForMinted(), "\n"))
	}

	return summary.Failed
}
