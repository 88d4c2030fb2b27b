package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	"go4.org/bytereplacer"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidInput indicates the source bytes cannot be decoded as text.
var ErrInvalidInput = errors.New("input is not valid UTF-8 text")

// lineEndings rewrites \r\n and lone \r to \n. Earlier pairs win, so \r\n
// is consumed before \r.
var lineEndings = bytereplacer.New(
	"\r\n", "\n",
	"\r", "\n",
)

// DecodeText validates src as UTF-8, drops a leading byte order mark and
// normalizes line endings to \n. No partial text is returned on error.
func DecodeText(src []byte) (string, error) {
	// Validator runs first so invalid bytes are rejected rather than
	// replaced with U+FFFD by the BOM decoder.
	t := transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder())

	decoded, _, err := transform.Bytes(t, src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return string(normalizeLineEndings(decoded)), nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content []byte) []byte {
	if !bytes.ContainsRune(content, '\r') {
		return content
	}
	// Replace may modify its argument in place.
	return lineEndings.Replace(bytes.Clone(content))
}
