package md2latex

import (
	"io"

	"github.com/alnah/go-md2latex/internal/tabular"
)

// TableOptions controls tabular rendering: headers, alignment, rules,
// caption and label. See the field comments for defaults.
type TableOptions = tabular.Options

// Lines selects rule or spacing positions in TableOptions.
type Lines = tabular.Lines

// AllLines selects every position.
func AllLines() Lines { return tabular.Every() }

// LinesAt selects the given positions; -1 means after the last one.
func LinesAt(indices ...int) Lines { return tabular.At(indices...) }

// TabularFromRows renders rows as a tabular environment.
func TabularFromRows(rows [][]string, opts TableOptions) string {
	return tabular.Tabular(rows, opts)
}

// TableFromRows renders rows as a table float with caption and label.
func TableFromRows(rows [][]string, opts TableOptions) string {
	return tabular.Table(rows, opts)
}

// LongtableFromRows renders rows as a longtable that breaks across pages.
// It requires the longtable package, and booktabs when opts.Booktabs is set.
func LongtableFromRows(rows [][]string, opts TableOptions) string {
	return tabular.Longtable(rows, opts)
}

// TablePackages lists the packages a table rendered with opts requires.
func TablePackages(opts TableOptions, longtable bool) []Package {
	var pkgs []Package
	if longtable {
		pkgs = append(pkgs, Package{Name: "longtable"})
	}
	if opts.Booktabs {
		pkgs = append(pkgs, Package{Name: "booktabs"})
	}
	return pkgs
}

// ReadCSV reads CSV records. With header set, the first record is
// returned as headers.
func ReadCSV(r io.Reader, header bool) (headers []string, rows [][]string, err error) {
	return tabular.ReadCSV(r, header)
}

// Multicolumn returns a cell spanning cols columns.
func Multicolumn(cols int, pos, text string) string {
	return tabular.Multicolumn(cols, pos, text)
}

// SetTableWidths replaces the column specification of tabular and
// longtable environments in table.
func SetTableWidths(table, widths string) string {
	return tabular.SetTableWidths(table, widths)
}

// AddLongtableCaption inserts a caption and label above a longtable's
// first rule.
func AddLongtableCaption(table, caption, label string) string {
	return tabular.AddLongtableCaption(table, caption, label)
}
