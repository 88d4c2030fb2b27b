package pipeline

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// DefaultTitle is used when a standalone document has no title.
const DefaultTitle = "Document"

// DefaultLang is the lang attribute of standalone documents.
const DefaultLang = "en"

// documentTemplate wraps a fragment in a complete HTML5 document.
// Arguments: lang, title, body.
const documentTemplate = `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// DocumentData holds the metadata of a standalone document.
type DocumentData struct {
	Title string
	Lang  string
	CSS   string
}

// DocumentWrapper turns an HTML fragment into a standalone page.
type DocumentWrapper interface {
	WrapDocument(ctx context.Context, fragment string, data *DocumentData) (string, error)
}

// StandaloneDocument implements DocumentWrapper with an HTML5 skeleton and
// an inlined stylesheet.
type StandaloneDocument struct {
	css CSSInjector
}

// NewStandaloneDocument creates a StandaloneDocument.
func NewStandaloneDocument() *StandaloneDocument {
	return &StandaloneDocument{css: &CSSInjection{}}
}

// WrapDocument wraps fragment in a page. If data is nil, fragment is
// returned unchanged.
func (d *StandaloneDocument) WrapDocument(ctx context.Context, fragment string, data *DocumentData) (string, error) {
	if data == nil {
		return fragment, nil
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	title := data.Title
	if title == "" {
		title = DefaultTitle
	}
	lang := data.Lang
	if lang == "" {
		lang = DefaultLang
	}

	page := fmt.Sprintf(documentTemplate,
		html.EscapeString(lang),
		html.EscapeString(title),
		fragment,
	)
	return d.css.InjectCSS(ctx, page, data.CSS), nil
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized so it cannot close the style element.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot terminate the
// surrounding <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
