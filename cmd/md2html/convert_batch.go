package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2html.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	now        func() time.Time
	standalone bool
	title      string
	lang       string
	css        string
}

// convertBatch processes files concurrently with at most workers goroutines.
// The converter is shared: it holds no per-document state.
func convertBatch(ctx context.Context, converter CLIConverter, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency > len(files) {
		concurrency = len(files)
	}
	if concurrency < md2html.MinPoolSize {
		concurrency = md2html.MinPoolSize
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, converter, files[idx], params)
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
func convertFile(ctx context.Context, converter CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := params.now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = params.now().Sub(start)
		return result
	}

	input := md2html.Input{
		Markdown:  string(content),
		SourceDir: filepath.Dir(f.InputPath),
		OutputDir: filepath.Dir(f.OutputPath),
	}
	if params.standalone {
		input.Document = &md2html.Document{
			Title:         params.title,
			FallbackTitle: baseName(f.InputPath),
			Lang:          params.lang,
			CSS:           params.css,
		}
	}

	convResult, err := converter.Convert(ctx, input)
	if err != nil {
		if errors.Is(err, md2html.ErrInvalidInput) {
			err = fmt.Errorf("%w%s", err, hints.ForInvalidInput())
		}
		result.Err = err
		result.Duration = params.now().Sub(start)
		return result
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
		result.Duration = params.now().Sub(start)
		return result
	}

	// #nosec G306 -- HTML files are meant to be readable
	if err := fileutil.WriteFileAtomic(f.OutputPath, convResult.HTML+"\n", filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
		result.Duration = params.now().Sub(start)
		return result
	}

	result.Duration = params.now().Sub(start)
	return result
}

// baseName returns the file name of path without its extension. It titles
// standalone pages whose source has no heading.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
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

// firstError returns the first failure in input order, or nil.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResultsWithWriter outputs conversion results using the provided writers.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

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

	return summary.Failed
}
