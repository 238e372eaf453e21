// Package tabular renders rows of strings as LaTeX tabular, table and
// longtable environments.
package tabular

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-md2latex/internal/escape"
	"github.com/alnah/go-md2latex/internal/latex"
)

// DefaultPos is the float placement used when Options.Pos is empty.
const DefaultPos = "htpb"

// Lines selects rule or spacing positions. All selects every position;
// otherwise At lists indices, where -1 means after the last column.
type Lines struct {
	All bool
	At  []int
}

// Every returns a Lines selecting every position.
func Every() Lines { return Lines{All: true} }

// At returns a Lines selecting the given indices.
func At(indices ...int) Lines { return Lines{At: indices} }

func (l Lines) has(i, n int) bool {
	if l.All {
		return true
	}
	for _, v := range l.At {
		if v == i || (v == -1 && i == n) {
			return true
		}
	}
	return false
}

// Options controls rendering. The zero value renders a plain tabular with
// escaped cells and automatic column alignment.
type Options struct {
	Headers   []string
	Caption   string
	Label     string   // defaults to table:<slug of caption>
	Pos       string   // float placement, defaults to DefaultPos
	ColAlign  []string // l, r, c or left, right, center, decimal; empty entries are automatic
	ColWidths []string // p{width} columns; empty entries keep the alignment
	VLines    Lines    // vertical rules before the selected columns
	HLines    Lines    // horizontal rules between body rows
	VSpace    Lines    // extra space before the selected body rows
	Booktabs  bool
	Raw       bool   // cells are LaTeX already and are not escaped
	Footer    string // raw LaTeX placed after the closing rule
	Continued bool   // longtable only: "Continued on next page" foot

	NoLeftMargin  bool
	NoRightMargin bool
}

var alignments = map[string]string{
	"l": "l", "left": "l",
	"r": "r", "right": "r", "decimal": "r",
	"c": "c", "center": "c",
}

// Tabular renders rows as a tabular environment.
func Tabular(rows [][]string, opts Options) string {
	return render("tabular", rows, opts)
}

// Table wraps Tabular in a table float with caption and label.
func Table(rows [][]string, opts Options) string {
	pos := opts.Pos
	if pos == "" {
		pos = DefaultPos
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{table}[%s]\n\\centering\n", pos)
	b.WriteString(Tabular(rows, opts))
	if opts.Caption != "" {
		b.WriteString(latex.Caption(opts.Caption) + "\n")
	}
	if label := labelFor(opts); label != "" {
		b.WriteString(latex.Label(label) + "\n")
	}
	b.WriteString(latex.End("table") + "\n")
	return b.String()
}

// Longtable renders rows as a longtable with its header repeated on every
// page. Caption and label go above the first rule.
func Longtable(rows [][]string, opts Options) string {
	return AddLongtableCaption(render("longtable", rows, opts), opts.Caption, labelFor(opts))
}

func labelFor(opts Options) string {
	if opts.Label != "" {
		return opts.Label
	}
	if opts.Caption == "" {
		return ""
	}
	return latex.LabelFor("table", opts.Caption)
}

func render(env string, rows [][]string, opts Options) string {
	ncols := len(opts.Headers)
	for _, r := range rows {
		ncols = max(ncols, len(r))
	}
	top, mid, bottom := `\hline`, `\hline`, `\hline`
	if opts.Booktabs {
		top, mid, bottom = `\toprule`, `\midrule`, `\bottomrule`
	}
	longtable := env == "longtable"

	var b strings.Builder
	b.WriteString(latex.Begin(env, ColumnSpec(rows, ncols, opts)) + "\n")
	if longtable && opts.Continued {
		fmt.Fprintf(&b, "%s\n%s \\\\\n%s\n\\endfoot\n\n%s\n\\endlastfoot\n",
			mid, Multicolumn(ncols, "r", `\small Continued on next page\normalsize`), mid, bottom)
	}
	b.WriteString(top + "\n")
	if len(opts.Headers) > 0 {
		b.WriteString(row(opts.Headers, ncols, opts.Raw) + "\n")
		b.WriteString(mid + "\n")
		if longtable {
			b.WriteString("\\endhead\n")
		}
	}
	for i, r := range rows {
		if i > 0 && opts.HLines.has(i, len(rows)) {
			b.WriteString(mid + "\n")
		}
		if opts.VSpace.has(i, len(rows)) {
			b.WriteString("\\noalign{\\smallskip}\n")
		}
		b.WriteString(row(r, ncols, opts.Raw) + "\n")
	}
	if !(longtable && opts.Continued) {
		b.WriteString(bottom + "\n")
	}
	if opts.Footer != "" {
		b.WriteString(opts.Footer + "\n")
	}
	b.WriteString(latex.End(env) + "\n")
	return b.String()
}

// row pads short rows with empty cells.
func row(cells []string, ncols int, raw bool) string {
	out := make([]string, ncols)
	for i := range out {
		if i < len(cells) {
			out[i] = strings.TrimSpace(cells[i])
			if !raw {
				out[i] = escape.Tabular(out[i])
			}
		}
	}
	return strings.Join(out, " & ") + ` \\`
}

// ColumnSpec builds the column specification: explicit widths, then
// explicit alignments, then r for numeric columns and l for the rest.
func ColumnSpec(rows [][]string, ncols int, opts Options) string {
	var b strings.Builder
	if opts.NoLeftMargin {
		b.WriteString("@{}")
	}
	for i := range ncols {
		if opts.VLines.has(i, ncols) {
			b.WriteByte('|')
		}
		switch {
		case i < len(opts.ColWidths) && opts.ColWidths[i] != "":
			b.WriteString("p{" + opts.ColWidths[i] + "}")
		case i < len(opts.ColAlign) && alignments[strings.ToLower(opts.ColAlign[i])] != "":
			b.WriteString(alignments[strings.ToLower(opts.ColAlign[i])])
		case isNumericColumn(rows, i):
			b.WriteByte('r')
		default:
			b.WriteByte('l')
		}
	}
	if opts.VLines.has(ncols, ncols) {
		b.WriteByte('|')
	}
	if opts.NoRightMargin {
		b.WriteString("@{}")
	}
	return b.String()
}

// isNumericColumn reports whether every non-empty cell of column i parses
// as a number. A column of empty cells is not numeric.
func isNumericColumn(rows [][]string, i int) bool {
	seen := false
	for _, r := range rows {
		if i >= len(r) {
			continue
		}
		v := strings.TrimSpace(r[i])
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}

// Multicolumn returns a cell spanning cols columns, with text grouped.
func Multicolumn(cols int, pos, text string) string {
	return latex.Multicolumn(cols, pos, "{"+text+"}")
}

var beginEnvRe = regexp.MustCompile(`\\begin\{(tabular|longtable)\}(\[[^\]]*\])?\{.*\}`)

// SetTableWidths replaces the column specification of every tabular and
// longtable in table, dropping any position argument.
func SetTableWidths(table, widths string) string {
	return beginEnvRe.ReplaceAllStringFunc(table, func(m string) string {
		env := beginEnvRe.FindStringSubmatch(m)[1]
		return latex.Begin(env, widths)
	})
}

// AddLongtableCaption inserts caption and label before the first top rule
// of a longtable. It is a no-op when both are empty.
func AddLongtableCaption(table, caption, label string) string {
	if caption == "" && label == "" {
		return table
	}
	var head string
	if caption != "" {
		head += latex.Caption(caption)
	}
	if label != "" {
		head += latex.Label(label)
	}
	head += "\\\\\n"

	// Rules inside a continued foot belong to the foot.
	start := 0
	if i := strings.Index(table, `\endlastfoot`); i >= 0 {
		start = i
	}
	for _, rule := range []string{`\toprule`, `\hline`} {
		if i := strings.Index(table[start:], rule); i >= 0 {
			i += start
			return table[:i] + head + table[i:]
		}
	}
	return table
}
