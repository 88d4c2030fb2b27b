// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// configDirName matches the directory the config loader searches under the
// user config dir.
const configDirName = "go-md2html"

// ForNoInput returns hints for a missing input argument.
// Suggests MD2HTML_INPUT_DIR when neither the environment nor config set one.
func ForNoInput() string {
	var hints []string

	hints = append(hints, "pass a Markdown file or directory")

	if os.Getenv("MD2HTML_INPUT_DIR") == "" {
		hints = append(hints, "or set MD2HTML_INPUT_DIR / input.defaultDir")
	}

	return formatHints(hints)
}

// ForInvalidInput returns hints for input that is not valid UTF-8.
func ForInvalidInput() string {
	return format("re-encode the file as UTF-8, e.g. iconv -f latin1 -t utf-8")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (parent dir is go-md2html) to suggest
	for _, p := range searchedPaths {
		if filepath.Base(filepath.Dir(p)) == configDirName {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownEngine returns hints for engine name errors.
func ForUnknownEngine(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForCSSFile returns hints for stylesheet errors.
func ForCSSFile() string {
	return format("pass a .css file path, a built-in style name, or inline CSS containing '{'")
}

// ForUnknownStyle returns hints for style name errors.
func ForUnknownStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("built-in styles: " + strings.Join(available, ", ") + "; or add styles/<name>.css under --asset-path")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
