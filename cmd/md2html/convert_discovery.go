package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrMissingInput       = errors.New("input not found")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// MissingInputError reports an input path that does not exist.
// It prints as "Missing <path>" and matches ErrMissingInput and os.ErrNotExist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return "Missing " + e.Path
}

// Is reports whether target is ErrMissingInput.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// Unwrap returns os.ErrNotExist.
func (e *MissingInputError) Unwrap() error {
	return os.ErrNotExist
}

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert.
// ext is the output extension including its dot.
func discoverFiles(inputPath, output, ext string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: inputPath}
		}
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, output, "", ext)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		outPath := resolveOutputPath(path, output, inputPath, ext)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
// For a single file (baseInputDir empty), an output ending in ext names the
// file itself. Directory input mirrors its tree under output.
func resolveOutputPath(inputPath, output, baseInputDir, ext string) string {
	base := fileutil.SwapExtension(filepath.Base(inputPath), ext)

	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if baseInputDir == "" && strings.HasSuffix(strings.ToLower(output), strings.ToLower(ext)) {
		return output
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(output, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(output, base)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2html.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2html.MaxPoolSize)
	}
	return nil
}
