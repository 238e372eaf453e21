package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2latex <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to LaTeX")
	fmt.Fprintln(w, "  glossary   Render a YAML glossary as LaTeX definitions")
	fmt.Fprintln(w, "  table      Render a CSV file as a LaTeX table")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2latex help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2latex convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to LaTeX body fragments or standalone documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .tex file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --standalone          Write complete documents")
	fmt.Fprintln(w, "      --class <s>           Document class (default: report)")
	fmt.Fprintln(w, "      --title <s>           Document title")
	fmt.Fprintln(w, "      --author <s>          Document author")
	fmt.Fprintln(w, "      --date <s>            Date: \"today\", \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Date]: YYYY")
	fmt.Fprintln(w, "      --toc                 Include a table of contents")
	fmt.Fprintln(w, "      --glossary <path>     Glossary YAML file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Images:")
	fmt.Fprintln(w, "      --offline, --no-fetch Keep remote image URLs without fetching")
	fmt.Fprintln(w, "      --strict-images       Fail on unavailable remote images")
	fmt.Fprintln(w, "      --image-timeout <d>   Remote image timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Listings and Templates:")
	fmt.Fprintln(w, "      --minted              Use minted for fenced code with a known language")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/<name>.tex overrides")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing and debug logs")
}

// printGlossaryUsage prints usage for the glossary command.
func printGlossaryUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2latex glossary <file.yaml> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render acronyms and glossary terms as \\newacronym and \\newglossaryentry.")
	fmt.Fprintln(w, "Names, texts and descriptions are converted from markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file     Glossary YAML file (optional if config has glossary.file)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .tex file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
}

// printTableUsage prints usage for the table command.
func printTableUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2latex table <file.csv> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render CSV data as a tabular, table float or longtable.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .tex file (default: stdout)")
	fmt.Fprintln(w, "      --caption <s>         Table caption (implies --float)")
	fmt.Fprintln(w, "      --label <s>           Table label (default: table:<caption>)")
	fmt.Fprintln(w, "      --pos <s>             Float position (default: htpb)")
	fmt.Fprintln(w, "      --float               Wrap the tabular in a table float")
	fmt.Fprintln(w, "      --booktabs            Use booktabs rules")
	fmt.Fprintln(w, "      --longtable           Emit a longtable")
	fmt.Fprintln(w, "      --continued           Add a continued-on-next-page footer")
	fmt.Fprintln(w, "      --no-header           Treat the first record as data")
	fmt.Fprintln(w, "      --raw                 Do not escape cell contents")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "glossary":
		printGlossaryUsage(env.Stdout)
	case "table":
		printTableUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2latex version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2latex help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
