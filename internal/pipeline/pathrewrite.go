package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RebaseRelativePaths rewrites relative image and link paths so they keep
// pointing at the same files when the HTML is written to outputDir instead
// of next to its source in sourceDir. If either directory is empty, or both
// resolve to the same place, the HTML is returned unchanged.
//
// Rewrites:
//   - img[src]
//   - a[href] (not anchors, not URLs)
//
// Absolute paths and URLs are left alone.
func RebaseRelativePaths(htmlContent, sourceDir, outputDir string) (string, error) {
	if sourceDir == "" || outputDir == "" {
		return htmlContent, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	absOutputDir, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}
	if absSourceDir == absOutputDir {
		return htmlContent, nil
	}

	// Parse HTML - detect if full document or fragment
	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rebaseNode(doc, absSourceDir, absOutputDir)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rebaseNode traverses the DOM and rewrites relative paths.
func rebaseNode(n *html.Node, sourceDir, outputDir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rebaseAttr(n, "src", sourceDir, outputDir)
		case atom.A:
			rebaseAttr(n, "href", sourceDir, outputDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rebaseNode(c, sourceDir, outputDir)
	}
}

// rebaseAttr rewrites a single attribute if it holds a relative path.
// Query strings and fragments are preserved.
func rebaseAttr(n *html.Node, attrName, sourceDir, outputDir string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}

		u, err := url.Parse(attr.Val)
		if err != nil || u.Scheme != "" || u.Path == "" {
			continue
		}

		target := filepath.Join(sourceDir, filepath.FromSlash(u.Path))
		rel, err := filepath.Rel(outputDir, target)
		if err != nil {
			continue
		}

		u.Path = filepath.ToSlash(rel)
		n.Attr[i].Val = u.String()
	}
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}

	// Skip URLs (http, https, file, data, mailto, protocol-relative)
	if strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "file://") ||
		strings.HasPrefix(path, "data:") ||
		strings.HasPrefix(path, "mailto:") ||
		strings.HasPrefix(path, "//") {
		return false
	}

	// Skip anchors
	if strings.HasPrefix(path, "#") {
		return false
	}

	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return false
	}

	return true
}
