package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrInvalidEngine    = errors.New("invalid engine")
	ErrInvalidExtension = errors.New("invalid output extension")
)

// DefaultExtension is the output file extension.
const DefaultExtension = ".html"

// configDirName is the directory searched under the user config dir.
const configDirName = "go-md2html"

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxTitleLength     = md2html.MaxTitleLength
	MaxLangLength      = 35 // BCP 47 practical maximum
	MaxExtensionLength = 16
)

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Engine   string         `yaml:"engine"`
	Document DocumentConfig `yaml:"document"`
	CSS      CSSConfig      `yaml:"css"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Extension  string `yaml:"extension"`  // Output extension (empty = ".html")
}

// DocumentConfig defines standalone page options.
type DocumentConfig struct {
	Standalone bool   `yaml:"standalone"`
	Title      string `yaml:"title"` // Empty = first heading, then file name
	Lang       string `yaml:"lang"`  // Empty = "en"
}

// CSSConfig defines stylesheet options.
type CSSConfig struct {
	File      string `yaml:"file"`      // Style name, stylesheet path, or inline CSS
	AssetPath string `yaml:"assetPath"` // Directory with styles/{name}.css overrides
}

// Validate checks field values. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.extension", c.Output.Extension, MaxExtensionLength); err != nil {
		return err
	}
	if err := ValidateExtension(c.Output.Extension); err != nil {
		return fmt.Errorf("output.extension: %w", err)
	}
	if err := ValidateEngine(c.Engine); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.lang", c.Document.Lang, MaxLangLength); err != nil {
		return err
	}
	if err := validateFieldLength("css.file", c.CSS.File, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("css.assetPath", c.CSS.AssetPath, MaxPathLength); err != nil {
		return err
	}
	return nil
}

// ValidateEngine checks that name is empty (default) or one of md2html.Engines.
func ValidateEngine(name string) error {
	if name == "" {
		return nil
	}
	for _, e := range md2html.Engines {
		if strings.EqualFold(name, e) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (must be %s)", ErrInvalidEngine, name, strings.Join(md2html.Engines, " or "))
}

// ValidateExtension checks that ext is empty (default) or a dot followed by
// a file-name-safe suffix.
func ValidateExtension(ext string) error {
	if ext == "" {
		return nil
	}
	if !strings.HasPrefix(ext, ".") || len(ext) == 1 {
		return fmt.Errorf("%w: %q (must start with a dot)", ErrInvalidExtension, ext)
	}
	if err := fileutil.ValidateExtension(ext[1:]); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidExtension, ext, err)
	}
	return nil
}

// EffectiveEngine returns the lower-cased engine name, or the default.
func (c *Config) EffectiveEngine() string {
	if c.Engine == "" {
		return md2html.EngineLine
	}
	return strings.ToLower(c.Engine)
}

// EffectiveExtension returns the output extension, or the default.
func (c *Config) EffectiveExtension() string {
	if c.Output.Extension == "" {
		return DefaultExtension
	}
	return c.Output.Extension
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: every field empty, so
// environment overrides can fill them and Effective* accessors supply the
// defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:    InputConfig{DefaultDir: ""},
		Output:   OutputConfig{DefaultDir: "", Extension: ""},
		Engine:   "",
		Document: DocumentConfig{Standalone: false},
		CSS:      CSSConfig{File: "", AssetPath: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// <name>.yaml and <name>.yml in the current directory, then the same two
// under <user config dir>/go-md2html/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
