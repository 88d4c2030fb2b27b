package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds standalone page flags.
type documentFlags struct {
	standalone bool
	title      string
	lang       string
	css        string // Style name, stylesheet path, or inline CSS
	assetPath  string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	workers   int
	engine    string
	extension string
	document  documentFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDocumentFlags adds standalone page flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a full HTML5 page")
	fs.StringVar(&f.title, "title", "", "page title (\"\" = first heading, then file name)")
	fs.StringVar(&f.lang, "lang", "", "page language (default: en)")
	fs.StringVar(&f.css, "css", "", "style name, CSS file path, or inline CSS (implies --standalone)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/{name}.css overrides")
}

// buildConvertFlagSet creates a FlagSet with all convert command flags bound to f.
func buildConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.engine, "engine", "e", "", "conversion engine: line, commonmark")
	fs.StringVar(&f.extension, "ext", "", "output file extension (default: .html)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Parse errors and usage go to stderr.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := buildConvertFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
