package assets

// defaultLoader serves the package-level helpers.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in stylesheet by name.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or dots.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// StyleNames lists the built-in style names in lexical order.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}
