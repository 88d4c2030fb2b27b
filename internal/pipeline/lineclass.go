package pipeline

import (
	"regexp"
	"strings"
)

// LineKind is the block-level classification of a single source line.
type LineKind int

// Line kinds, in classification precedence order.
const (
	KindBlank LineKind = iota
	KindHeading
	KindListItem
	KindParagraph
)

// String returns the kind name, used in test output and debugging.
func (k LineKind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list-item"
	case KindParagraph:
		return "paragraph"
	}
	return "unknown"
}

// Heading level bounds.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// headingPattern matches 1-6 '#' characters, a single space, then content.
var headingPattern = regexp.MustCompile(`^(#{1,6}) (.+)$`)

// List item markers: a dash or an asterisk followed by exactly one space.
var listMarkers = []string{"- ", "* "}

// Line is a classified source line.
// Level is set only for headings; Content is the inline text of the block.
type Line struct {
	Kind    LineKind
	Level   int
	Content string
}

// ClassifyLine determines the block kind of a line.
// The line is trimmed before matching. Classification is pure and checks,
// in order: heading, list item, blank, paragraph.
func ClassifyLine(raw string) Line {
	line := strings.TrimSpace(raw)

	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindHeading, Level: len(m[1]), Content: m[2]}
	}

	for _, marker := range listMarkers {
		if strings.HasPrefix(line, marker) {
			return Line{Kind: KindListItem, Content: line[len(marker):]}
		}
	}

	if line == "" {
		return Line{Kind: KindBlank}
	}

	return Line{Kind: KindParagraph, Content: line}
}

// FirstHeading returns the content of the first heading line in markdown,
// or "" if there is none. Used to derive a document title.
func FirstHeading(markdown string) string {
	for _, raw := range strings.Split(markdown, "\n") {
		if l := ClassifyLine(raw); l.Kind == KindHeading {
			return l.Content
		}
	}
	return ""
}
