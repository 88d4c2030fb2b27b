package assets

import "errors"

// StyleResolver combines a custom and the embedded loader. When a custom
// loader is configured it is tried first, and only a not-found result falls
// back to the built-in styles.
type StyleResolver struct {
	custom   StyleLoader // nil if no asset path configured
	embedded StyleLoader
}

// NewStyleResolver creates a StyleResolver.
// If customBasePath is empty, only built-in styles are used.
// Returns ErrInvalidBasePath if customBasePath is set but unusable.
func NewStyleResolver(customBasePath string) (*StyleResolver, error) {
	resolver := &StyleResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a style, trying the custom loader first if available.
func (r *StyleResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}

	// Validation and I/O errors are not masked by the fallback
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}

	return r.embedded.LoadStyle(name)
}

// Compile-time interface check.
var _ StyleLoader = (*StyleResolver)(nil)
