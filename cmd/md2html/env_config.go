package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envPrefix is the prefix shared by all recognized environment variables.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: config file name or path
	Engine     string // MD2HTML_ENGINE: line or commonmark
	InputDir   string // MD2HTML_INPUT_DIR: default input directory
	OutputDir  string // MD2HTML_OUTPUT_DIR: default output directory
	CSS        string // MD2HTML_CSS: style name, stylesheet path, or inline CSS
	AssetPath  string // MD2HTML_ASSET_PATH: directory with style overrides
	Workers    int    // MD2HTML_WORKERS: parallel workers
	Standalone bool   // MD2HTML_STANDALONE: wrap output in a full page
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":     true,
	"MD2HTML_ENGINE":     true,
	"MD2HTML_INPUT_DIR":  true,
	"MD2HTML_OUTPUT_DIR": true,
	"MD2HTML_CSS":        true,
	"MD2HTML_ASSET_PATH": true,
	"MD2HTML_WORKERS":    true,
	"MD2HTML_STANDALONE": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MD2HTML_* values. Unparseable
// numbers and booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2HTML_CONFIG"),
		Engine:     os.Getenv("MD2HTML_ENGINE"),
		InputDir:   os.Getenv("MD2HTML_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2HTML_OUTPUT_DIR"),
		CSS:        os.Getenv("MD2HTML_CSS"),
		AssetPath:  os.Getenv("MD2HTML_ASSET_PATH"),
	}

	// Parse int for workers
	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	// Parse bool for standalone
	if standalone := os.Getenv("MD2HTML_STANDALONE"); standalone != "" {
		if b, err := strconv.ParseBool(standalone); err == nil {
			cfg.Standalone = b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_ENGIN instead of MD2HTML_ENGINE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Engine != "" && cfg.Engine == "" {
		cfg.Engine = env.Engine
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.CSS != "" && cfg.CSS.File == "" {
		cfg.CSS.File = env.CSS
	}
	if env.AssetPath != "" && cfg.CSS.AssetPath == "" {
		cfg.CSS.AssetPath = env.AssetPath
	}
	if env.Standalone && !cfg.Document.Standalone {
		cfg.Document.Standalone = true
	}
}

// resolveWorkers picks the worker count: flag > env > auto (0).
func resolveWorkers(flagWorkers int, env *envConfig) int {
	if flagWorkers != 0 {
		return flagWorkers
	}
	return env.Workers
}

// resolveConfigName picks the config source: flag > env.
func resolveConfigName(flagConfig string, env *envConfig) string {
	if flagConfig != "" {
		return flagConfig
	}
	return env.ConfigPath
}
