package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// ErrInvalidInput reports Markdown bytes that are not valid UTF-8 text.
	ErrInvalidInput = pipeline.ErrInvalidInput

	// ErrHTMLConversion reports a failure inside the CommonMark engine.
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Configuration errors.
	ErrUnknownEngine = errors.New("unknown conversion engine")
	ErrTitleTooLong  = errors.New("document title too long")
)
