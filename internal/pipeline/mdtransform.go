package pipeline

import (
	"context"
	"crypto/md5" // #nosec G501 -- content fingerprint, not a security control
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/net/html/atom"
)

// Precompiled inline patterns. All spans are minimal (non-greedy) and never
// cross a line boundary.
var (
	// Bold **text**
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

	// Emphasis __text__
	emphasisPattern = regexp.MustCompile(`__(.*?)__`)

	// Content hash [[text]]
	hashPattern = regexp.MustCompile(`\[\[(.*?)\]\]`)

	// Character strip ((text))
	stripPattern = regexp.MustCompile(`\(\((.*?)\)\)`)
)

// spanDelimiterLen is the width of every inline delimiter ("**", "[[", ...).
const spanDelimiterLen = 2

// stripReplacer removes both cases of the letter c.
var stripReplacer = strings.NewReplacer("c", "", "C", "")

// Replacement templates for the tag-wrapping rules.
var (
	boldTemplate     = openTag(atom.B) + "${1}" + closeTag(atom.B)
	emphasisTemplate = openTag(atom.Em) + "${1}" + closeTag(atom.Em)
)

// TransformInline applies the inline rules to block content in fixed order:
// bold, emphasis, content hash, character strip. Unmatched delimiters are
// left as literal text.
func TransformInline(content string) string {
	content = convertBold(content)
	content = convertEmphasis(content)
	content = convertHashes(content)
	content = convertStrips(content)
	return content
}

// convertBold wraps **text** spans in <b> tags.
func convertBold(content string) string {
	return boldPattern.ReplaceAllString(content, boldTemplate)
}

// convertEmphasis wraps __text__ spans in <em> tags.
func convertEmphasis(content string) string {
	return emphasisPattern.ReplaceAllString(content, emphasisTemplate)
}

// convertHashes replaces [[text]] spans with the MD5 digest of text.
func convertHashes(content string) string {
	return hashPattern.ReplaceAllStringFunc(content, func(span string) string {
		return ContentHash(innerSpan(span))
	})
}

// convertStrips replaces ((text)) spans with text minus every c and C.
func convertStrips(content string) string {
	return stripPattern.ReplaceAllStringFunc(content, func(span string) string {
		return StripC(innerSpan(span))
	})
}

// innerSpan drops the two-character delimiters on both ends of a match.
func innerSpan(span string) string {
	return span[spanDelimiterLen : len(span)-spanDelimiterLen]
}

// ContentHash returns the lowercase hex MD5 digest of the UTF-8 bytes of s.
func ContentHash(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401 -- content fingerprint
	return hex.EncodeToString(sum[:])
}

// StripC removes every 'c' and 'C' from s.
func StripC(s string) string {
	return stripReplacer.Replace(s)
}

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SubstitutionPreprocessor applies the hash and strip substitutions to raw
// Markdown before a CommonMark engine sees it. Bold and emphasis are left to
// the engine, which has its own rules for ** and __.
type SubstitutionPreprocessor struct{}

// PreprocessMarkdown applies the substitutions to the whole document.
func (p *SubstitutionPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = convertHashes(content)
	content = convertStrips(content)
	return content
}
