package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no escape needed",
			input:    "body { color: red; }",
			expected: "body { color: red; }",
		},
		{
			name:     "escapes style close",
			input:    "</style>",
			expected: `<\/style>`,
		},
		{
			name:     "multiple occurrences",
			input:    "</a></b>",
			expected: `<\/a><\/b>`,
		},
		{
			name:     "case variation STYLE",
			input:    "</STYLE>",
			expected: `<\/STYLE>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sanitizeCSS(tt.input)
			if got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "empty CSS returns HTML unchanged",
			html:     "<html><head></head><body>Hello</body></html>",
			css:      "",
			expected: "<html><head></head><body>Hello</body></html>",
		},
		{
			name:     "injects before </head>",
			html:     "<html><head></head><body>Hello</body></html>",
			css:      "body { color: red; }",
			expected: "<html><head><style>body { color: red; }</style></head><body>Hello</body></html>",
		},
		{
			name:     "injects after <body> with attributes",
			html:     `<html><body class="main">Hello</body></html>`,
			css:      "p{}",
			expected: `<html><body class="main"><style>p{}</style>Hello</body></html>`,
		},
		{
			name:     "prepends to fragment",
			html:     "<p>Hello</p>",
			css:      "p{}",
			expected: "<style>p{}</style><p>Hello</p>",
		},
		{
			name:     "sanitizes closing sequence",
			html:     "<head></head>",
			css:      "</style><script>",
			expected: `<head><style><\/style><script></style></head>`,
		},
	}

	injector := &CSSInjection{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectCSS_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<head></head>"
	if got := (&CSSInjection{}).InjectCSS(ctx, html, "p{}"); got != html {
		t.Errorf("InjectCSS() with canceled context = %q, want unchanged", got)
	}
}

func TestStandaloneDocument_WrapDocument(t *testing.T) {
	t.Parallel()

	w := NewStandaloneDocument()
	fragment := "<h1>Title</h1>"

	tests := []struct {
		name         string
		data         *DocumentData
		wantContains []string
		wantExcludes []string
	}{
		{
			name: "defaults",
			data: &DocumentData{},
			wantContains: []string{
				"<!DOCTYPE html>",
				`<html lang="en">`,
				`<meta charset="utf-8">`,
				"<title>Document</title>",
				"<body>\n<h1>Title</h1>\n</body>",
			},
			wantExcludes: []string{"<style>"},
		},
		{
			name:         "title and lang escaped",
			data:         &DocumentData{Title: "A & <B>", Lang: `fr"`},
			wantContains: []string{"<title>A &amp; &lt;B&gt;</title>", `<html lang="fr&#34;">`},
		},
		{
			name:         "css in head",
			data:         &DocumentData{CSS: "h1{color:red}"},
			wantContains: []string{"<style>h1{color:red}</style></head>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := w.WrapDocument(context.Background(), fragment, tt.data)
			if err != nil {
				t.Fatalf("WrapDocument() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("WrapDocument() = %q, want to contain %q", got, want)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("WrapDocument() = %q, should not contain %q", got, exclude)
				}
			}
		})
	}
}

func TestStandaloneDocument_WrapDocument_NilData(t *testing.T) {
	t.Parallel()

	got, err := NewStandaloneDocument().WrapDocument(context.Background(), "<p>x</p>", nil)
	if err != nil {
		t.Fatalf("WrapDocument() error = %v", err)
	}
	if got != "<p>x</p>" {
		t.Errorf("WrapDocument(nil) = %q, want fragment unchanged", got)
	}
}

func TestStandaloneDocument_WrapDocument_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStandaloneDocument().WrapDocument(ctx, "<p>x</p>", &DocumentData{})
	if err == nil {
		t.Error("WrapDocument() with canceled context: expected error, got nil")
	}
}
