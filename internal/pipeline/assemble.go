package pipeline

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// blockState tracks whether a list block is open.
type blockState int

const (
	stateIdle blockState = iota
	stateInList
)

// outputSeparator joins emitted block fragments.
const outputSeparator = "\n"

// headingTags maps heading levels 1-6 to their elements.
var headingTags = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// Assembler drives classification and inline transformation across the
// lines of one document. It is not safe for concurrent use; create one per
// document.
type Assembler struct {
	state  blockState
	out    []string
	inline func(string) string
}

// NewAssembler returns an Assembler in the idle state using TransformInline
// for block content.
func NewAssembler() *Assembler {
	return &Assembler{inline: TransformInline}
}

// WriteLine classifies one raw line and emits the corresponding fragments.
func (a *Assembler) WriteLine(raw string) {
	line := ClassifyLine(raw)

	switch line.Kind {
	case KindBlank:
		a.closeList()

	case KindHeading:
		a.closeList()
		tag := headingTags[line.Level-MinHeadingLevel]
		a.emit(wrapTag(tag, a.inline(line.Content)))

	case KindListItem:
		if a.state == stateIdle {
			a.emit(openTag(atom.Ul))
			a.state = stateInList
		}
		a.emit(wrapTag(atom.Li, a.inline(line.Content)))

	case KindParagraph:
		a.closeList()
		a.emit(wrapTag(atom.P, a.inline(line.Content)))
	}
}

// String closes any open list and returns the assembled HTML.
// No trailing separator is added.
func (a *Assembler) String() string {
	a.closeList()
	return strings.Join(a.out, outputSeparator)
}

// InList reports whether a list block is currently open.
func (a *Assembler) InList() bool {
	return a.state == stateInList
}

func (a *Assembler) closeList() {
	if a.state != stateInList {
		return
	}
	a.emit(closeTag(atom.Ul))
	a.state = stateIdle
}

func (a *Assembler) emit(fragment string) {
	a.out = append(a.out, fragment)
}

// AssembleLines converts a sequence of newline-free lines into HTML.
func AssembleLines(lines []string) string {
	a := NewAssembler()
	for _, line := range lines {
		a.WriteLine(line)
	}
	return a.String()
}

// AssembleText splits text on "\n" and converts it. Line endings must
// already be normalized.
func AssembleText(text string) string {
	if text == "" {
		return ""
	}
	return AssembleLines(strings.Split(text, "\n"))
}

func openTag(a atom.Atom) string {
	return "<" + a.String() + ">"
}

func closeTag(a atom.Atom) string {
	return "</" + a.String() + ">"
}

func wrapTag(a atom.Atom, inner string) string {
	return openTag(a) + inner + closeTag(a)
}
