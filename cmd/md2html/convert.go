package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput = errors.New("no input specified")
	ErrReadCSS = errors.New("failed to read CSS file")
)

// batchError reports failed conversions. Each failure has already been
// printed; the first one drives the exit code.
type batchError struct {
	failed int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", e.failed)
}

func (e *batchError) Unwrap() error {
	return e.first
}

// newConverter builds the conversion service. Replaced in tests.
var newConverter = func(engine string) (CLIConverter, error) {
	c, err := md2html.NewConverter(md2html.WithEngine(engine))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	envCfg := loadEnvConfig()
	workers := resolveWorkers(flags.workers, envCfg)
	if err := validateWorkers(workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if name := resolveConfigName(flags.common.config, envCfg); name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Environment fills what the config left empty, then CLI flags win
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrInvalidEngine) {
			return fmt.Errorf("%w%s", err, hints.ForUnknownEngine(md2html.Engines))
		}
		return err
	}

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Resolve output file or directory
	output := resolveOutput(flags.output, positionalArgs, cfg)

	// Discover files to convert
	files, err := discoverFiles(inputPath, output, cfg.EffectiveExtension())
	if err != nil {
		var missing *MissingInputError
		if errors.As(err, &missing) {
			return err
		}
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	cssContent, err := resolveCSSContent(cfg.CSS.File, cfg.CSS.AssetPath)
	if err != nil {
		return err
	}

	params := &conversionParams{
		now:        env.Now,
		standalone: cfg.Document.Standalone || cssContent != "",
		title:      cfg.Document.Title,
		lang:       cfg.Document.Lang,
		css:        cssContent,
	}

	converter, err := newConverter(cfg.EffectiveEngine())
	if err != nil {
		return err
	}

	poolSize := md2html.ResolvePoolSize(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}

	// Convert files
	results := convertBatch(ctx, converter, poolSize, files, params)

	// Print results
	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return &batchError{failed: failedCount, first: firstError(results)}
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.engine != "" {
		cfg.Engine = flags.engine
	}
	if flags.extension != "" {
		cfg.Output.Extension = flags.extension
	}

	// Document flags
	if flags.document.standalone {
		cfg.Document.Standalone = true
	}
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.lang != "" {
		cfg.Document.Lang = flags.document.lang
	}
	if flags.document.css != "" {
		cfg.CSS.File = flags.document.css
	}
	if flags.document.assetPath != "" {
		cfg.CSS.AssetPath = flags.document.assetPath
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// resolveOutput determines the output from the -o flag, the second
// positional argument, or config. Empty means next to each source.
func resolveOutput(flagOutput string, args []string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if len(args) > 1 {
		return args[1]
	}
	return cfg.Output.DefaultDir
}

// resolveCSSContent turns the css setting into stylesheet text. Inline CSS
// is returned as-is, a path or *.css name is read from disk, and anything
// else is a style name looked up under assetPath, then among the built-ins.
// Empty means no stylesheet.
func resolveCSSContent(css, assetPath string) (string, error) {
	if css == "" || fileutil.IsCSS(css) {
		return css, nil
	}

	if fileutil.IsFilePath(css) || strings.EqualFold(filepath.Ext(css), ".css") {
		content, err := os.ReadFile(css) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v%s", ErrReadCSS, err, hints.ForCSSFile())
		}
		return string(content), nil
	}

	resolver, err := assets.NewStyleResolver(assetPath)
	if err != nil {
		return "", fmt.Errorf("loading styles: %w", err)
	}

	content, err := resolver.LoadStyle(css)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return "", fmt.Errorf("%w%s", err, hints.ForUnknownStyle(assets.StyleNames()))
		}
		return "", err
	}
	return content, nil
}
