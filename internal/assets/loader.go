package assets

// StyleLoader loads a stylesheet by name (without the .css extension).
// Implementations return ErrStyleNotFound for unknown names and
// ErrInvalidAssetName for names that are not plain identifiers.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// DefaultStyleName is the name of the built-in general-purpose style.
const DefaultStyleName = "default"
