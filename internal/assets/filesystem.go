package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// stylesSubdir holds the .css files under an asset path.
const stylesSubdir = "styles"

// FilesystemLoader reads user stylesheets from {assetPath}/styles/{name}.css.
// The asset path is resolved once, symlinks included, when the loader is
// built; every style file must resolve to a location inside it.
type FilesystemLoader struct {
	root string // absolute, symlink-free asset path
}

// NewFilesystemLoader checks that assetPath is a readable directory.
// Failures wrap ErrInvalidBasePath.
func NewFilesystemLoader(assetPath string) (*FilesystemLoader, error) {
	if assetPath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	root, err := filepath.Abs(assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	_, err = os.ReadDir(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidBasePath, root)
	case err != nil:
		// ReadDir on a regular file fails too; report it plainly
		if info, statErr := os.Stat(root); statErr == nil && !info.IsDir() {
			return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, root)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{root: root}, nil
}

// LoadStyle returns the content of styles/{name}.css under the asset path.
// A missing file is ErrStyleNotFound so a resolver can fall back to the
// built-in styles; other read failures are ErrAssetRead.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path, err := f.stylePath(name)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- contained in the asset path
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// stylePath builds the file path for name and rejects it when a symlink
// takes it outside the asset path.
func (f *FilesystemLoader) stylePath(name string) (string, error) {
	path := filepath.Join(f.root, stylesSubdir, name+".css")

	// A missing file keeps its unresolved path; the read reports it
	resolved := path
	if target, err := filepath.EvalSymlinks(path); err == nil {
		resolved = target
	}

	rel, err := filepath.Rel(f.root, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s resolves outside %s", ErrPathTraversal, name, f.root)
	}
	return path, nil
}

// Compile-time interface check.
var _ StyleLoader = (*FilesystemLoader)(nil)
