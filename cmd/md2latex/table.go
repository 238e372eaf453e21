package main

import (
	"fmt"
	"os"

	md2latex "github.com/alnah/go-md2latex"
	"github.com/alnah/go-md2latex/internal/fileutil"
)

// runTableCmd renders a CSV file as a tabular, table or longtable.
func runTableCmd(args []string, env *Environment) error {
	flags, positional, err := parseTableFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: expected one CSV file, got %d", ErrUsage, len(positional))
	}

	file, err := os.Open(positional[0]) // #nosec G304 -- user-provided path
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	headers, rows, err := md2latex.ReadCSV(file, !flags.noHeader)
	if err != nil {
		return fmt.Errorf("%s: %w", positional[0], err)
	}

	return writeOutput(env, flags.output, renderTable(headers, rows, flags))
}

// renderTable picks the environment from the flags: longtable, a table
// float when requested or captioned, a bare tabular otherwise. The packages
// the table needs are listed as comments.
func renderTable(headers []string, rows [][]string, flags *tableFlags) string {
	opts := md2latex.TableOptions{
		Headers:   headers,
		Caption:   flags.caption,
		Label:     flags.label,
		Pos:       flags.pos,
		Booktabs:  flags.booktabs,
		Raw:       flags.raw,
		Continued: flags.continued,
	}

	var body string
	switch {
	case flags.longtable:
		body = md2latex.LongtableFromRows(rows, opts)
	case flags.float || flags.caption != "" || flags.label != "":
		body = md2latex.TableFromRows(rows, opts)
	default:
		body = md2latex.TabularFromRows(rows, opts)
	}

	var header string
	for _, p := range md2latex.TablePackages(opts, flags.longtable) {
		header += "% " + p.UsePackage() + "\n"
	}
	return header + body
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(env *Environment, path, content string) error {
	if path == "" {
		_, err := fmt.Fprint(env.Stdout, content)
		return err
	}
	if err := fileutil.WriteFileAtomic(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
