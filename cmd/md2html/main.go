package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdConvert = "convert"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command line and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd := args[1]
	if !isCommand(cmd) {
		// Implicit convert: md2html doc.md, md2html docs/, md2html -o out doc.md
		if looksLikeMarkdown(cmd) || strings.HasPrefix(cmd, "-") || isDir(cmd) {
			return runConvertCmd(args[1:], env)
		}
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch cmd {
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	case cmdHelp:
		if !runHelp(args[2:], env) {
			return ExitUsage
		}
		return ExitSuccess
	default:
		return runConvertCmd(args[2:], env)
	}
}

// runConvertCmd parses convert flags, runs the batch, and maps the outcome
// to an exit code.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand returns true if arg is a known command name.
func isCommand(arg string) bool {
	switch arg {
	case cmdConvert, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// looksLikeMarkdown returns true if arg has a markdown file extension.
func looksLikeMarkdown(arg string) bool {
	return fileutil.IsMarkdown(arg)
}

// isDir reports whether path is an existing directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// hasVerboseFlag scans raw arguments for -v or --verbose before flag parsing.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
