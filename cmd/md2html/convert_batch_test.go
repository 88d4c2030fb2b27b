package main

// Notes:
// - convertBatch/convertFile: we use a mock CLIConverter to observe the
//   Input built for each file and real temp files for reads and writes.
// - A fixed clock makes durations deterministic in verbose output.
// - Output write failures are exercised by pointing the output path at an
//   existing directory; disk-full style failures are not simulated.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	md2html "github.com/alnah/go-md2html"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Mock converter and fixed clock
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns a canned result.
type mockConverter struct {
	mu     sync.Mutex
	inputs []md2html.Input
	html   string
	err    error
}

func (m *mockConverter) Convert(_ context.Context, input md2html.Input) (*md2html.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &md2html.ConvertResult{HTML: m.html}, nil
}

func (m *mockConverter) calls() []md2html.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]md2html.Input(nil), m.inputs...)
}

// fixedClock returns a clock that advances by step on every call.
func fixedClock(step time.Duration) func() time.Time {
	var mu sync.Mutex
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(step)
		return t
	}
}

func testParams() *conversionParams {
	return &conversionParams{now: time.Now}
}

// ---------------------------------------------------------------------------
// TestConvertFile - Single file conversion
// ---------------------------------------------------------------------------

func TestConvertFile_WritesOutputWithTrailingNewline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	out := filepath.Join(dir, "out", "nested", "doc.html")
	writeTestFile(t, in, "# Title")

	conv := &mockConverter{html: "<h1>Title</h1>"}
	res := convertFile(context.Background(), conv, FileToConvert{InputPath: in, OutputPath: out}, testParams())
	if res.Err != nil {
		t.Fatalf("convertFile() error = %v", res.Err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "<h1>Title</h1>\n" {
		t.Errorf("output = %q, want %q", string(data), "<h1>Title</h1>\n")
	}

	calls := conv.calls()
	if len(calls) != 1 {
		t.Fatalf("Convert called %d times, want 1", len(calls))
	}
	if calls[0].Markdown != "# Title" {
		t.Errorf("Markdown = %q, want %q", calls[0].Markdown, "# Title")
	}
	if calls[0].SourceDir != dir {
		t.Errorf("SourceDir = %q, want %q", calls[0].SourceDir, dir)
	}
	if calls[0].OutputDir != filepath.Dir(out) {
		t.Errorf("OutputDir = %q, want %q", calls[0].OutputDir, filepath.Dir(out))
	}
	if calls[0].Document != nil {
		t.Errorf("Document = %+v, want nil for fragment output", calls[0].Document)
	}
}

func TestConvertFile_Standalone(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name         string
		file         string
		markdown     string
		title        string
		wantTitle    string
		wantFallback string
	}{
		{"configured title passed through", "a.md", "# Heading", "Configured", "Configured", "a"},
		{"heading left to the converter", "b.md", "intro\n## Heading", "", "", "b"},
		{"file name as fallback", "release-notes.md", "no heading", "", "", "release-notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := filepath.Join(dir, tt.file)
			writeTestFile(t, in, tt.markdown)

			conv := &mockConverter{html: "<p>x</p>"}
			params := &conversionParams{now: time.Now, standalone: true, title: tt.title, lang: "fr", css: "p{}"}
			res := convertFile(context.Background(), conv, FileToConvert{InputPath: in, OutputPath: in + ".html"}, params)
			if res.Err != nil {
				t.Fatalf("convertFile() error = %v", res.Err)
			}

			doc := conv.calls()[0].Document
			if doc == nil {
				t.Fatal("Document = nil, want standalone settings")
			}
			want := &md2html.Document{Title: tt.wantTitle, FallbackTitle: tt.wantFallback, Lang: "fr", CSS: "p{}"}
			if diff := cmp.Diff(want, doc); diff != "" {
				t.Errorf("Document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	writeTestFile(t, in, "text")

	t.Run("unreadable input", func(t *testing.T) {
		t.Parallel()

		res := convertFile(context.Background(), &mockConverter{}, FileToConvert{
			InputPath:  filepath.Join(dir, "absent.md"),
			OutputPath: filepath.Join(dir, "absent.html"),
		}, testParams())
		if !errors.Is(res.Err, ErrReadMarkdown) {
			t.Errorf("error = %v, want ErrReadMarkdown", res.Err)
		}
	})

	t.Run("invalid input gets hint and no output", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(dir, "invalid.html")
		conv := &mockConverter{err: md2html.ErrInvalidInput}
		res := convertFile(context.Background(), conv, FileToConvert{InputPath: in, OutputPath: out}, testParams())
		if !errors.Is(res.Err, md2html.ErrInvalidInput) {
			t.Fatalf("error = %v, want ErrInvalidInput", res.Err)
		}
		if !strings.Contains(res.Err.Error(), "hint:") {
			t.Errorf("error %q should carry a hint", res.Err)
		}
		if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("output file exists after failed conversion (stat err = %v)", err)
		}
	})

	t.Run("output path is a directory", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(dir, "taken")
		if err := os.MkdirAll(filepath.Join(out, "child"), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		res := convertFile(context.Background(), &mockConverter{html: "<p>x</p>"}, FileToConvert{InputPath: in, OutputPath: out}, testParams())
		if !errors.Is(res.Err, ErrWriteHTML) {
			t.Errorf("error = %v, want ErrWriteHTML", res.Err)
		}
	})

	t.Run("output parent is a file", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(in, "doc.html")
		res := convertFile(context.Background(), &mockConverter{html: "<p>x</p>"}, FileToConvert{InputPath: in, OutputPath: out}, testParams())
		if res.Err == nil || !strings.Contains(res.Err.Error(), "creating output directory") {
			t.Errorf("error = %v, want output directory failure", res.Err)
		}
	})
}

func TestConvertFile_Duration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	writeTestFile(t, in, "text")

	params := &conversionParams{now: fixedClock(5 * time.Millisecond)}
	res := convertFile(context.Background(), &mockConverter{html: "<p>text</p>"}, FileToConvert{InputPath: in, OutputPath: in + ".html"}, params)
	if res.Err != nil {
		t.Fatalf("convertFile() error = %v", res.Err)
	}
	if res.Duration != 5*time.Millisecond {
		t.Errorf("Duration = %v, want 5ms", res.Duration)
	}
}

// ---------------------------------------------------------------------------
// TestConvertBatch - Worker pool behavior
// ---------------------------------------------------------------------------

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var files []FileToConvert
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		in := filepath.Join(dir, name+".md")
		writeTestFile(t, in, "# "+name)
		files = append(files, FileToConvert{InputPath: in, OutputPath: filepath.Join(dir, "out", name+".html")})
	}

	for _, workers := range []int{1, 2, 8} {
		conv := &mockConverter{html: "<p>ok</p>"}
		results := convertBatch(context.Background(), conv, workers, files, testParams())

		if len(results) != len(files) {
			t.Fatalf("workers=%d: got %d results, want %d", workers, len(results), len(files))
		}
		for i, r := range results {
			if r.Err != nil {
				t.Errorf("workers=%d: %s failed: %v", workers, r.InputPath, r.Err)
			}
			if r.InputPath != files[i].InputPath {
				t.Errorf("workers=%d: result %d is %s, want input order %s", workers, i, r.InputPath, files[i].InputPath)
			}
		}
		if got := len(conv.calls()); got != len(files) {
			t.Errorf("workers=%d: Convert called %d times, want %d", workers, got, len(files))
		}
	}
}

func TestConvertBatch_Empty(t *testing.T) {
	t.Parallel()

	if results := convertBatch(context.Background(), &mockConverter{}, 4, nil, testParams()); results != nil {
		t.Errorf("convertBatch(nil) = %v, want nil", results)
	}
}

func TestConvertBatch_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := []FileToConvert{
		{InputPath: filepath.Join(dir, "a.md"), OutputPath: filepath.Join(dir, "a.html")},
		{InputPath: filepath.Join(dir, "b.md"), OutputPath: filepath.Join(dir, "b.html")},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := &mockConverter{html: "<p>x</p>"}
	results := convertBatch(ctx, conv, 2, files, testParams())

	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s error = %v, want context.Canceled", r.InputPath, r.Err)
		}
	}
	if got := len(conv.calls()); got != 0 {
		t.Errorf("Convert called %d times after cancellation, want 0", got)
	}
}

// ---------------------------------------------------------------------------
// TestPrintResultsWithWriter - Result reporting
// ---------------------------------------------------------------------------

func TestPrintResultsWithWriter(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md", OutputPath: "a.html", Duration: 1500 * time.Microsecond},
		{InputPath: "b.md", OutputPath: "b.html", Err: errors.New("boom")},
	}

	tests := []struct {
		name       string
		results    []ConversionResult
		quiet      bool
		verbose    bool
		wantStdout string
		wantStderr string
	}{
		{
			name:       "default",
			results:    results,
			wantStdout: "Created a.html\n\n1 succeeded, 1 failed\n",
			wantStderr: "FAILED b.md: boom\n",
		},
		{
			name:       "verbose",
			results:    results,
			verbose:    true,
			wantStdout: "a.md -> a.html (2ms)\n\n1 succeeded, 1 failed\n",
			wantStderr: "FAILED b.md: boom\n",
		},
		{
			name:       "quiet keeps failures",
			results:    results,
			quiet:      true,
			wantStdout: "",
			wantStderr: "FAILED b.md: boom\n",
		},
		{
			name:       "single file has no summary",
			results:    results[:1],
			wantStdout: "Created a.html\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			env := &Environment{Now: time.Now, Stdout: &stdout, Stderr: &stderr}

			failed := printResultsWithWriter(tt.results, tt.quiet, tt.verbose, env)

			if want := countResults(tt.results).Failed; failed != want {
				t.Errorf("failed = %d, want %d", failed, want)
			}
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestFirstError(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	results := []ConversionResult{
		{InputPath: "a.md"},
		{InputPath: "b.md", Err: first},
		{InputPath: "c.md", Err: errors.New("second")},
	}

	if got := firstError(results); got != first {
		t.Errorf("firstError() = %v, want %v", got, first)
	}
	if got := firstError(results[:1]); got != nil {
		t.Errorf("firstError() = %v, want nil", got)
	}
}
