package assets

import (
	"fmt"
	"strings"
)

// forbiddenNameChars may not appear in a style name. Separators and dots
// would let a name pick another directory or extension; NUL truncates paths.
const forbiddenNameChars = "/\\.\x00"

// ValidateAssetName reports ErrInvalidAssetName unless name is a bare style
// name such as "default" or "print-wide".
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if i := strings.IndexAny(name, forbiddenNameChars); i >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidAssetName, name, name[i])
	}
	return nil
}
