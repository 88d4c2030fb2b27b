package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrStyleNotFound indicates the requested style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName indicates the style name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid style name")

	// ErrInvalidBasePath indicates the configured asset path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid asset path")

	// ErrAssetRead indicates an I/O error occurred while reading a style file.
	ErrAssetRead = errors.New("failed to read style")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
