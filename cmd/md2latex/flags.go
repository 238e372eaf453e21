package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// errHelpShown reports that -h printed usage; the command exits cleanly.
var errHelpShown = errors.New("help shown")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// imageFlags holds remote image flags.
type imageFlags struct {
	offline bool
	strict  bool
	timeout string
}

// documentFlags holds standalone document flags.
type documentFlags struct {
	standalone bool
	class      string
	title      string
	author     string
	date       string
	toc        bool
	glossary   string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	workers   int
	minted    bool
	assetPath string
	images    imageFlags
	document  documentFlags
}

// tableFlags holds flags for the table command.
type tableFlags struct {
	output    string
	caption   string
	label     string
	pos       string
	booktabs  bool
	longtable bool
	continued bool
	noHeader  bool
	raw       bool
	float     bool
}

// glossaryFlags holds flags for the glossary command.
type glossaryFlags struct {
	common commonFlags
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and debug logs")
}

// addImageFlags adds remote image flags to a FlagSet.
func addImageFlags(fs *flag.FlagSet, f *imageFlags) {
	fs.BoolVar(&f.offline, "offline", false, "keep remote image URLs without fetching")
	fs.BoolVar(&f.strict, "strict-images", false, "fail on unavailable remote images")
	fs.StringVar(&f.timeout, "image-timeout", "", "remote image timeout (e.g., 30s, 2m)")
}

// addDocumentFlags adds standalone document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "write complete documents instead of body fragments")
	fs.StringVar(&f.class, "class", "", "document class (default: report)")
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringVar(&f.date, "date", "", "document date (\"today\", \"auto\", \"auto:FORMAT\" or literal)")
	fs.BoolVar(&f.toc, "toc", false, "include a table of contents")
	fs.StringVar(&f.glossary, "glossary", "", "glossary YAML file")
}

// flagAliases maps alternative flag spellings to their canonical names.
func flagAliases(_ *flag.FlagSet, name string) flag.NormalizedName {
	if name == "no-fetch" {
		name = "offline"
	}
	return flag.NormalizedName(name)
}

// newFlagSet creates a FlagSet that reports errors instead of exiting and
// prints usage with usage.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlagSet parses args and maps pflag outcomes to CLI errors.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return errHelpShown
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usageOut io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert", usageOut, printConvertUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.minted, "minted", false, "use minted for fenced code with a known language")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with templates/<name>.tex overrides")

	addCommonFlags(fs, &f.common)
	addImageFlags(fs, &f.images)
	addDocumentFlags(fs, &f.document)
	fs.SetNormalizeFunc(flagAliases)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTableFlags parses table command flags and returns positional args.
func parseTableFlags(args []string, usageOut io.Writer) (*tableFlags, []string, error) {
	f := &tableFlags{}
	fs := newFlagSet("table", usageOut, printTableUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output .tex file (default: stdout)")
	fs.StringVar(&f.caption, "caption", "", "table caption")
	fs.StringVar(&f.label, "label", "", "table label (default: table:<caption>)")
	fs.StringVar(&f.pos, "pos", "", "float position (default: htpb)")
	fs.BoolVar(&f.booktabs, "booktabs", false, "use booktabs rules")
	fs.BoolVar(&f.longtable, "longtable", false, "emit a longtable that breaks across pages")
	fs.BoolVar(&f.continued, "continued", false, "add a continued-on-next-page footer to longtables")
	fs.BoolVar(&f.noHeader, "no-header", false, "treat the first CSV record as data")
	fs.BoolVar(&f.raw, "raw", false, "do not escape cell contents")
	fs.BoolVar(&f.float, "float", false, "wrap the tabular in a table float")

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseGlossaryFlags parses glossary command flags and returns positional args.
func parseGlossaryFlags(args []string, usageOut io.Writer) (*glossaryFlags, []string, error) {
	f := &glossaryFlags{}
	fs := newFlagSet("glossary", usageOut, printGlossaryUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output .tex file (default: stdout)")
	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
