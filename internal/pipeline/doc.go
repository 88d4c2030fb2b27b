// Package pipeline implements the Markdown-to-HTML conversion stages.
//
// This package handles decoding, conversion and document wrapping:
//   - Input decoding (UTF-8 validation, BOM removal, line endings)
//   - Line classification (headings, list items, blank lines, paragraphs)
//   - Inline substitutions (bold, emphasis, content hash, character strip)
//   - Document assembly, a two-state machine that opens and closes lists
//   - An alternative CommonMark engine via Goldmark
//   - Standalone HTML5 page wrapping with inlined CSS
//
// Everything here works on in-memory text. Reading and writing files is
// left to the command in cmd/md2html.
package pipeline
