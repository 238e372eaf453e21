package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// commands lists the subcommands in help order.
var commands = []string{"convert", "glossary", "table", "version", "help"}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}

// runMain dispatches to a subcommand and returns the process exit code.
// A first argument that is not a command is treated as input to convert.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		if looksLikeMarkdown(cmd) {
			cmd, rest = "convert", args[1:]
		} else {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
	}

	var err error
	switch cmd {
	case "convert":
		err = runConvertCmd(ctx, rest, env)
	case "glossary":
		err = runGlossaryCmd(ctx, rest, env)
	case "table":
		err = runTableCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "go-md2latex %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	}

	if err != nil {
		if errors.Is(err, errHelpShown) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// looksLikeMarkdown reports whether arg names a Markdown file or directory
// rather than a mistyped command.
func looksLikeMarkdown(arg string) bool {
	if validateMarkdownExtension(arg) == nil {
		return true
	}
	info, err := os.Stat(arg)
	return err == nil && info.IsDir()
}

// hasVerboseFlag scans raw arguments for -v or --verbose before flag parsing.
func hasVerboseFlag(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}
