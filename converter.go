package md2html

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SubstitutionPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.LineConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.DocumentWrapper      = (*pipeline.StandaloneDocument)(nil)
)

// Converter orchestrates the Markdown-to-HTML conversion pipeline.
// A Converter holds no per-document state and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	preprocessor  pipeline.MarkdownPreprocessor // nil for the line engine
	htmlConverter pipeline.HTMLConverter
	wrapper       pipeline.DocumentWrapper
	rebaseLinks   bool
}

// NewConverter creates a Converter using the line engine unless WithEngine
// says otherwise. Returns ErrUnknownEngine for an unrecognized engine name.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:     converterConfig{engine: EngineLine},
		wrapper: pipeline.NewStandaloneDocument(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Components injected by tests take precedence over the engine defaults
	if c.htmlConverter != nil {
		return c, nil
	}

	switch c.cfg.engine {
	case EngineLine:
		c.htmlConverter = pipeline.NewLineConverter()
	case EngineCommonMark:
		c.preprocessor = &pipeline.SubstitutionPreprocessor{}
		c.htmlConverter = pipeline.NewGoldmarkConverter()
		c.rebaseLinks = true
	default:
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownEngine, c.cfg.engine, Engines)
	}

	return c, nil
}

// Engine returns the name of the configured engine.
func (c *Converter) Engine() string {
	return c.cfg.engine
}

// Convert runs the pipeline and returns the HTML.
// The context is used for cancellation. Input that is not valid UTF-8
// fails with ErrInvalidInput and produces no output.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Document.Validate(); err != nil {
		return nil, err
	}

	// Validate and normalize text
	content, err := pipeline.DecodeText([]byte(input.Markdown))
	if err != nil {
		return nil, err
	}

	// Preprocess markdown (commonmark engine only)
	if c.preprocessor != nil {
		content = c.preprocessor.PreprocessMarkdown(ctx, content)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	// Convert to HTML
	htmlContent, err := c.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Keep relative links working from the output location
	if c.rebaseLinks {
		htmlContent, err = pipeline.RebaseRelativePaths(htmlContent, input.SourceDir, input.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("rebasing relative paths: %w", err)
		}
	}

	res := &ConvertResult{HTML: htmlContent}

	if input.Document == nil {
		return res, nil
	}

	res.Title = resolveTitle(input.Document, content)
	res.HTML, err = c.wrapper.WrapDocument(ctx, htmlContent, &pipeline.DocumentData{
		Title: res.Title,
		Lang:  input.Document.Lang,
		CSS:   input.Document.CSS,
	})
	if err != nil {
		return nil, fmt.Errorf("wrapping document: %w", err)
	}

	return res, nil
}

// resolveTitle picks the explicit title, then the first heading of the
// decoded markdown, then the fallback title, then the default page title.
// Derived titles are cut to MaxTitleLength.
func resolveTitle(doc *Document, markdown string) string {
	if doc.Title != "" {
		return doc.Title
	}
	if h := pipeline.FirstHeading(markdown); h != "" {
		return truncateTitle(h)
	}
	if doc.FallbackTitle != "" {
		return truncateTitle(doc.FallbackTitle)
	}
	return pipeline.DefaultTitle
}

// truncateTitle cuts s to at most MaxTitleLength bytes without splitting
// a UTF-8 sequence.
func truncateTitle(s string) string {
	if len(s) <= MaxTitleLength {
		return s
	}
	cut := MaxTitleLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Convert decodes src as UTF-8 Markdown and converts it with the line engine.
// Returns ErrInvalidInput (wrapped) when src is not valid UTF-8; no partial
// output is produced in that case.
func Convert(src []byte) (string, error) {
	content, err := pipeline.DecodeText(src)
	if err != nil {
		return "", err
	}
	return pipeline.AssembleText(content), nil
}

// ConvertString is Convert for Markdown held in a string.
func ConvertString(markdown string) (string, error) {
	return Convert([]byte(markdown))
}
