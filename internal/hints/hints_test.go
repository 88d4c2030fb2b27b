package hints

// Notes:
// - ForNoInput tests cannot use t.Parallel() because they use t.Setenv(),
//   which modifies process environment.
// These are acceptable gaps: we test observable behavior through environment manipulation.

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForNoInput_EnvUnset(t *testing.T) {
	t.Setenv("MD2HTML_INPUT_DIR", "")

	hint := ForNoInput()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "Markdown file or directory") {
		t.Error("expected input argument suggestion")
	}
	if !strings.Contains(hint, "MD2HTML_INPUT_DIR") {
		t.Error("expected MD2HTML_INPUT_DIR suggestion")
	}
}

func TestForNoInput_EnvAlreadySet(t *testing.T) {
	t.Setenv("MD2HTML_INPUT_DIR", "/docs")

	hint := ForNoInput()

	if strings.Contains(hint, "MD2HTML_INPUT_DIR") {
		t.Error("should not suggest MD2HTML_INPUT_DIR when already set")
	}
	if !strings.Contains(hint, "Markdown file or directory") {
		t.Error("expected input argument suggestion")
	}
}

func TestForInvalidInput(t *testing.T) {
	hint := ForInvalidInput()

	if !strings.Contains(hint, "UTF-8") {
		t.Errorf("expected UTF-8 mention, got %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	userPath := filepath.Join("home", "me", ".config", "go-md2html", "site.yaml")

	tests := []struct {
		name     string
		paths    []string
		contains string
		excludes string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
			excludes: "create",
		},
		{
			name:     "with user config path",
			paths:    []string{"site.yaml", "site.yml", userPath},
			contains: "create " + userPath,
		},
		{
			name:     "local paths only",
			paths:    []string{"site.yaml", "site.yml"},
			contains: "--config",
			excludes: "create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
			if tt.excludes != "" && strings.Contains(hint, tt.excludes) {
				t.Errorf("expected hint to not contain %q, got %q", tt.excludes, hint)
			}
		})
	}
}

func TestForOutputDirectory(t *testing.T) {
	hint := ForOutputDirectory()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "parent directory") {
		t.Error("expected parent directory mention")
	}
}

func TestForUnknownEngine(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		wantEmpty bool
		contains  string
	}{
		{
			name:      "empty available",
			available: []string{},
			wantEmpty: true,
		},
		{
			name:      "with engines",
			available: []string{"line", "commonmark"},
			contains:  "line, commonmark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForUnknownEngine(tt.available)

			if tt.wantEmpty && hint != "" {
				t.Errorf("expected empty hint, got %q", hint)
			}
			if !tt.wantEmpty && !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForUnknownStyle(t *testing.T) {
	if hint := ForUnknownStyle(nil); hint != "" {
		t.Errorf("expected empty hint, got %q", hint)
	}

	hint := ForUnknownStyle([]string{"default", "minimal"})
	if !strings.Contains(hint, "default, minimal") {
		t.Errorf("expected style list, got %q", hint)
	}
	if !strings.Contains(hint, "--asset-path") {
		t.Errorf("expected asset path mention, got %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForNoInput(),
		ForInvalidInput(),
		ForOutputDirectory(),
		ForCSSFile(),
		ForUnknownStyle([]string{"default"}),
		ForConfigNotFound(nil),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
