package md2html

import (
	"fmt"
	"strings"
)

// Engine names accepted by WithEngine.
const (
	// EngineLine is the line-oriented converter: ATX headings, one flat
	// list level, paragraphs and the inline substitutions.
	EngineLine = "line"

	// EngineCommonMark runs Goldmark with GFM extensions after applying the
	// content hash and character strip substitutions to the Markdown.
	EngineCommonMark = "commonmark"
)

// Engines lists the available engine names.
var Engines = []string{EngineLine, EngineCommonMark}

// MaxTitleLength bounds Document.Title in bytes. Titles derived from a
// heading or FallbackTitle are truncated to it instead of rejected.
const MaxTitleLength = 200

// Input contains conversion parameters.
type Input struct {
	Markdown  string    // Markdown content; must be valid UTF-8
	SourceDir string    // Directory of the source file (commonmark engine link rebasing)
	OutputDir string    // Directory the HTML is written to (commonmark engine link rebasing)
	Document  *Document // Standalone page settings (optional, nil = fragment only)
}

// Document configures the standalone HTML5 page around the fragment.
type Document struct {
	Title         string // <title> text ("" = first heading, then FallbackTitle)
	FallbackTitle string // Used when Title is empty and there is no heading ("" = "Document")
	Lang          string // <html lang> value ("" = "en")
	CSS           string // Inlined into a <style> element in <head>
}

// Validate checks that document settings are valid. Only the explicit
// Title is bounded. Returns nil if d is nil (nil means no wrapping).
func (d *Document) Validate() error {
	if d == nil {
		return nil
	}
	if len(d.Title) > MaxTitleLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrTitleTooLong, len(d.Title), MaxTitleLength)
	}
	return nil
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML  string // Fragment, or full page when Input.Document is set
	Title string // Resolved page title ("" for fragments)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine string
}

// WithEngine selects the conversion engine by name (case-insensitive).
// Unknown names make NewConverter fail with ErrUnknownEngine.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = strings.ToLower(strings.TrimSpace(name))
	}
}
