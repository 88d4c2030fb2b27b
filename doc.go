// Package md2html converts line-oriented Markdown to HTML.
//
// # Quick Start
//
// The package-level functions run the line engine on a whole document:
//
//	html, err := md2html.ConvertString("# Hello\n\n- one\n- two")
//	// <h1>Hello</h1>
//	// <ul>
//	// <li>one</li>
//	// <li>two</li>
//	// </ul>
//
// Input that is not valid UTF-8 fails with ErrInvalidInput. Malformed
// Markdown never fails: anything unrecognized becomes a paragraph and
// unmatched delimiters stay literal.
//
// # Line Engine
//
// Each line is classified after trimming surrounding whitespace:
//
//   - "#".."######" followed by a space: heading <h1>..<h6>
//   - "- " or "* ": list item, consecutive items share one <ul>
//   - empty: closes an open list, emits nothing
//   - anything else: paragraph
//
// Inline rules apply, in order, to heading, item and paragraph text:
// **bold** becomes <b>, __emphasis__ becomes <em>, [[text]] becomes the
// lowercase hex MD5 of text, and ((text)) becomes text with every c and C
// removed. Output lines are joined with "\n" and carry no trailing newline.
//
// # Converter
//
// Use a Converter to pick an engine or produce a standalone page:
//
//	conv, err := md2html.NewConverter(md2html.WithEngine(md2html.EngineCommonMark))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: content,
//	    Document: &md2html.Document{Lang: "en", CSS: "body { max-width: 40em; }"},
//	})
//
// The commonmark engine runs Goldmark with GFM extensions and syntax
// highlighting. It applies the [[hash]] and ((strip)) substitutions to the
// Markdown first, and rebases relative links from Input.SourceDir to
// Input.OutputDir.
//
// A Converter keeps no state between documents and is safe for concurrent
// use. For batch conversion, size a worker pool with ResolvePoolSize.
package md2html
