// Package assets provides the stylesheets inlined into standalone HTML pages.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - styles from a user directory
//	    └── StyleResolver     - custom-first, falling back to built-in
//
// StyleResolver is what the CLI uses: a style named on the command line is
// looked up under the asset path first, so a user can shadow a built-in
// style by dropping a file with the same name there.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// # Security
//
// Style names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
