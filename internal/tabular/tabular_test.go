package tabular

import (
	"errors"
	"strings"
	"testing"
)

var sampleRows = [][]string{
	{"Alpha", "1.5"},
	{"Beta & Co", "20"},
}

func TestTabular(t *testing.T) {
	t.Parallel()

	got := Tabular(sampleRows, Options{Headers: []string{"Name", "Value"}})
	want := "\\begin{tabular}{lr}\n" +
		"\\hline\n" +
		"Name & Value \\\\\n" +
		"\\hline\n" +
		"Alpha & 1.5 \\\\\n" +
		"Beta \\& Co & 20 \\\\\n" +
		"\\hline\n" +
		"\\end{tabular}\n"
	if got != want {
		t.Errorf("Tabular() = %q, want %q", got, want)
	}
}

func TestTabular_Booktabs(t *testing.T) {
	t.Parallel()

	got := Tabular(sampleRows, Options{Headers: []string{"Name", "Value"}, Booktabs: true, Raw: true})
	for _, want := range []string{"\\toprule\n", "\\midrule\n", "\\bottomrule\n", "Beta & Co & 20"} {
		if !strings.Contains(got, want) {
			t.Errorf("Tabular() missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "\\hline") {
		t.Errorf("Tabular() with booktabs should not use \\hline: %q", got)
	}
}

func TestTabular_PadsShortRows(t *testing.T) {
	t.Parallel()

	got := Tabular([][]string{{"a", "b", "c"}, {"d"}}, Options{})
	if !strings.Contains(got, "d &  &  \\\\") {
		t.Errorf("Tabular() = %q, want padded short row", got)
	}
}

func TestTabular_HLinesAndVSpace(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"a"}, {"b"}, {"c"}}
	got := Tabular(rows, Options{HLines: At(2), VSpace: At(1)})
	want := "\\begin{tabular}{l}\n\\hline\na \\\\\n\\noalign{\\smallskip}\nb \\\\\n\\hline\nc \\\\\n\\hline\n\\end{tabular}\n"
	if got != want {
		t.Errorf("Tabular() = %q, want %q", got, want)
	}
}

func TestColumnSpec(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"x", "1", "", "y"}, {"z", "2,000", "", "3"}}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"automatic", Options{}, "lrll"},
		{"explicit alignment", Options{ColAlign: []string{"center", "", "decimal", "R"}}, "crrr"},
		{"widths win", Options{ColWidths: []string{"3cm"}, ColAlign: []string{"c"}}, "p{3cm}rll"},
		{"all vlines", Options{VLines: Every()}, "|l|r|l|l|"},
		{"selected vlines", Options{VLines: At(1, -1)}, "l|rll|"},
		{"no margins", Options{NoLeftMargin: true, NoRightMargin: true}, "@{}lrll@{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ColumnSpec(rows, 4, tt.opts); got != tt.want {
				t.Errorf("ColumnSpec() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTable(t *testing.T) {
	t.Parallel()

	got := Table(sampleRows, Options{Caption: "Sample Data"})
	for _, want := range []string{
		"\\begin{table}[htpb]\n\\centering\n\\begin{tabular}{lr}",
		"\\caption{Sample Data}\n",
		"\\label{table:sample_data}\n",
		"\\end{table}\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Table() missing %q in %q", want, got)
		}
	}

	got = Table(sampleRows, Options{Pos: "H", Label: "tab:x"})
	if !strings.HasPrefix(got, "\\begin{table}[H]") || !strings.Contains(got, "\\label{tab:x}") {
		t.Errorf("Table() = %q, want custom pos and label", got)
	}
	if strings.Contains(got, "\\caption") {
		t.Errorf("Table() without caption should not emit \\caption: %q", got)
	}
}

func TestLongtable(t *testing.T) {
	t.Parallel()

	got := Longtable(sampleRows, Options{Headers: []string{"Name", "Value"}, Booktabs: true, Caption: "Results"})
	want := "\\begin{longtable}{lr}\n" +
		"\\caption{Results}\\label{table:results}\\\\\n" +
		"\\toprule\n" +
		"Name & Value \\\\\n" +
		"\\midrule\n" +
		"\\endhead\n" +
		"Alpha & 1.5 \\\\\n" +
		"Beta \\& Co & 20 \\\\\n" +
		"\\bottomrule\n" +
		"\\end{longtable}\n"
	if got != want {
		t.Errorf("Longtable() = %q, want %q", got, want)
	}
}

func TestLongtable_Continued(t *testing.T) {
	t.Parallel()

	got := Longtable(sampleRows, Options{Booktabs: true, Continued: true, Caption: "Long"})
	foot := "\\midrule\n\\multicolumn{2}{r}{{\\small Continued on next page\\normalsize}} \\\\\n\\midrule\n\\endfoot\n\n\\bottomrule\n\\endlastfoot\n"
	if !strings.Contains(got, foot) {
		t.Errorf("Longtable() missing continued foot in %q", got)
	}
	if strings.Index(got, "\\caption{Long}") < strings.Index(got, "\\endlastfoot") {
		t.Errorf("caption should follow the foot definition: %q", got)
	}
	if strings.Count(got, "\\bottomrule") != 1 {
		t.Errorf("continued longtable should only use the last-foot rule: %q", got)
	}
}

func TestMulticolumn(t *testing.T) {
	t.Parallel()

	if got, want := Multicolumn(3, "c", "Total"), "\\multicolumn{3}{c}{{Total}}"; got != want {
		t.Errorf("Multicolumn() = %q, want %q", got, want)
	}
}

func TestSetTableWidths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"tabular", "\\begin{tabular}{lr}\nx\n", "\\begin{tabular}{p{2cm}p{3cm}}\nx\n"},
		{"with position", "\\begin{tabular}[t]{lr}\n", "\\begin{tabular}{p{2cm}p{3cm}}\n"},
		{"longtable", "\\begin{longtable}{ll}\n", "\\begin{longtable}{p{2cm}p{3cm}}\n"},
		{"no environment", "plain text", "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SetTableWidths(tt.in, "p{2cm}p{3cm}"); got != tt.want {
				t.Errorf("SetTableWidths(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAddLongtableCaption(t *testing.T) {
	t.Parallel()

	table := "\\begin{longtable}{l}\n\\toprule\nx \\\\\n\\bottomrule\n\\end{longtable}\n"

	if got := AddLongtableCaption(table, "", ""); got != table {
		t.Errorf("AddLongtableCaption() with nothing = %q, want unchanged", got)
	}

	got := AddLongtableCaption(table, "", "tab:x")
	if !strings.Contains(got, "\\label{tab:x}\\\\\n\\toprule") {
		t.Errorf("AddLongtableCaption() = %q, want label before rule", got)
	}
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	input := "name, value\nalpha, 1\nbeta\n"

	headers, rows, err := ReadCSV(strings.NewReader(input), true)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(headers) != 2 || headers[1] != "value" {
		t.Errorf("headers = %q, want [name value]", headers)
	}
	if len(rows) != 2 || len(rows[1]) != 1 {
		t.Errorf("rows = %q, want two ragged rows", rows)
	}

	headers, rows, err = ReadCSV(strings.NewReader(input), false)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if headers != nil || len(rows) != 3 {
		t.Errorf("ReadCSV(no header) = %q, %q", headers, rows)
	}

	_, _, err = ReadCSV(strings.NewReader("a,\"b\nc"), false)
	if !errors.Is(err, ErrCSV) {
		t.Errorf("ReadCSV(bad quote) error = %v, want ErrCSV", err)
	}
}
