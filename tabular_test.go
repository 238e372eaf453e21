package md2latex

import (
	"errors"
	"strings"
	"testing"
)

func TestTableFromRows(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"Alpha", "1.5"}, {"Beta", "20"}}

	got := TabularFromRows(rows, TableOptions{Headers: []string{"Name", "Value"}, HLines: AllLines()})
	want := "\\begin{tabular}{lr}\n" +
		"\\hline\n" +
		"Name & Value \\\\\n" +
		"\\hline\n" +
		"Alpha & 1.5 \\\\\n" +
		"\\hline\n" +
		"Beta & 20 \\\\\n" +
		"\\hline\n" +
		"\\end{tabular}\n"
	if got != want {
		t.Errorf("TabularFromRows() = %q, want %q", got, want)
	}

	got = TableFromRows(rows, TableOptions{Caption: "Data", Booktabs: true})
	if !strings.Contains(got, "\\caption{Data}\n\\label{table:data}\n\\end{table}") {
		t.Errorf("TableFromRows() = %q, want caption and label", got)
	}

	got = LongtableFromRows(rows, TableOptions{Caption: "Data", Booktabs: true, Continued: true})
	if !strings.HasPrefix(got, "\\begin{longtable}{lr}\n") || !strings.Contains(got, "\\endlastfoot") {
		t.Errorf("LongtableFromRows() = %q", got)
	}
}

func TestTablePackages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      TableOptions
		longtable bool
		want      []string
	}{
		{"plain", TableOptions{}, false, nil},
		{"booktabs", TableOptions{Booktabs: true}, false, []string{"booktabs"}},
		{"longtable booktabs", TableOptions{Booktabs: true}, true, []string{"longtable", "booktabs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pkgs := TablePackages(tt.opts, tt.longtable)
			var got []string
			for _, p := range pkgs {
				got = append(got, p.Name)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("TablePackages() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadCSV_Wrapper(t *testing.T) {
	t.Parallel()

	headers, rows, err := ReadCSV(strings.NewReader("a, b\n1, 2\n3\n"), true)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if strings.Join(headers, "|") != "a|b" {
		t.Errorf("headers = %v", headers)
	}
	if len(rows) != 2 || len(rows[1]) != 1 {
		t.Errorf("rows = %v, want ragged rows kept", rows)
	}

	if _, _, err := ReadCSV(strings.NewReader("\"unterminated\n"), false); !errors.Is(err, ErrCSV) {
		t.Errorf("ReadCSV(bad) error = %v, want ErrCSV", err)
	}
}

func TestTableHelpers(t *testing.T) {
	t.Parallel()

	if got := Multicolumn(2, "c", "x"); got != "\\multicolumn{2}{c}{{x}}" {
		t.Errorf("Multicolumn() = %q", got)
	}
	if got := SetTableWidths("\\begin{tabular}{ll}\n", "p{1cm}p{2cm}"); got != "\\begin{tabular}{p{1cm}p{2cm}}\n" {
		t.Errorf("SetTableWidths() = %q", got)
	}
	table := "\\begin{longtable}{l}\n\\hline\nx \\\\\n\\hline\n\\end{longtable}\n"
	got := AddLongtableCaption(table, "Cap", "tab:c")
	if !strings.Contains(got, "\\caption{Cap}\\label{tab:c}\\\\\n\\hline") {
		t.Errorf("AddLongtableCaption() = %q", got)
	}
}
