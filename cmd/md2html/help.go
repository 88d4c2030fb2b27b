package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <input> [output] [flags]")
	fmt.Fprintln(w, "       md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to HTML (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert <input> [output] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "  output   Output file or directory (same as --output)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --ext <.ext>          Output file extension (default: .html)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -e, --engine <name>       Engine: line (default), commonmark")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --standalone          Wrap output in a full HTML5 page")
	fmt.Fprintln(w, "      --title <s>           Page title (\"\" = first heading, then file name)")
	fmt.Fprintln(w, "      --lang <s>            Page language (default: en)")
	fmt.Fprintln(w, "      --css <name|path|css> Built-in style, stylesheet file, or inline CSS")
	fmt.Fprintln(w, "                            (implies --standalone)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/{name}.css overrides")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Built-in styles: %s\n", strings.Join(assets.StyleNames(), ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG, MD2HTML_ENGINE, MD2HTML_INPUT_DIR, MD2HTML_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MD2HTML_CSS, MD2HTML_ASSET_PATH, MD2HTML_WORKERS, MD2HTML_STANDALONE")
}

// runHelp prints help for a specific command.
// Returns false for an unknown command.
func runHelp(args []string, env *Environment) bool {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return true
	}

	switch args[0] {
	case cmdConvert:
		printConvertUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return false
	}
	return true
}
