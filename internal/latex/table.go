package latex

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is one table cell. Content is already LaTeX.
type Cell struct {
	Content string
	Header  bool
	Colspan int
}

// span returns the number of logical columns the cell covers.
func (c Cell) span() int {
	if c.Colspan < 1 {
		return 1
	}
	return c.Colspan
}

// LaTeX renders the cell: header cells are bold and spanning cells use
// \multicolumn centred between rules.
func (c Cell) LaTeX() string {
	content := c.Content
	if c.Header {
		content = Bold(content)
	}
	if c.Colspan > 0 {
		return Multicolumn(c.Colspan, "|c|", content)
	}
	return content
}

// Row is one table row.
type Row []Cell

// Width returns the number of logical columns the row covers.
func (r Row) Width() int {
	n := 0
	for _, c := range r {
		n += c.span()
	}
	return n
}

// Table is the intermediate form of an HTML or GFM table.
type Table struct {
	Rows    []Row
	Caption string
	Label   string
}

// MaxCols returns the width of the widest row in logical columns.
func (t *Table) MaxCols() int {
	maxCols := 0
	for _, r := range t.Rows {
		maxCols = max(maxCols, r.Width())
	}
	return maxCols
}

// ColumnSpec returns the tabular column specification: one left-aligned
// column per logical column, separated by vertical rules.
func (t *Table) ColumnSpec() string {
	return strings.Repeat("|l", t.MaxCols()) + "|"
}

// MapText applies f to every cell and to the caption.
func (t *Table) MapText(f func(string) string) {
	for i := range t.Rows {
		for j := range t.Rows[i] {
			t.Rows[i][j].Content = f(t.Rows[i][j].Content)
		}
	}
	t.Caption = f(t.Caption)
}

// LaTeX renders the table environment. Every row is preceded by \hline and
// the tabular is closed by a final rule.
func (t *Table) LaTeX() string {
	var b strings.Builder
	b.WriteString("\\begin{table}[h]\n")
	b.WriteString(Begin("tabular", t.ColumnSpec()))
	b.WriteByte('\n')

	for _, r := range t.Rows {
		cells := make([]string, len(r))
		for i, c := range r {
			cells[i] = c.LaTeX()
		}
		b.WriteString("\\hline\n")
		b.WriteString(strings.Join(cells, " & "))
		b.WriteString(" \\\\\n")
	}

	b.WriteString("\\hline\n")
	b.WriteString(End("tabular"))
	b.WriteString("\n\\\\[5pt]\n")
	b.WriteString(Caption(t.Caption))
	b.WriteByte('\n')
	if t.Label != "" {
		b.WriteString(Label(t.Label))
		b.WriteByte('\n')
	}
	b.WriteString(End("table"))
	return b.String()
}

// ParseColspan reads a colspan attribute. An empty value means no span.
func ParseColspan(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid colspan %q", v)
	}
	return n, nil
}
