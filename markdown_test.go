package md2latex

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"paragraph", "Hello world", "\nHello world\n"},
		{"math", "Energy $$E=mc^2$$ and $x$.", "\nEnergy \\[E=mc^2\\] and \\(x\\).\n"},
		{"footnote", "Claim[^1].\n\n[^1]: Source.\n", "\nClaim\\footnote{Source.}.\n"},
		{"subscript", "H<sub>2</sub>O", "\nH\\textsubscript{2}O\n"},
		{"inline code", "`a_b`", "\n\\texttt{a\\_b}\n"},
		{"entity", "Fish &amp; chips", "\nFish \\& chips\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMarkdown(tt.input)
			if err != nil {
				t.Fatalf("ParseMarkdown(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("![Plot](img/plot.png)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadMarkdown(path)
	if err != nil {
		t.Fatalf("LoadMarkdown() error = %v", err)
	}
	want := "{" + filepath.Join(dir, "img", "plot.png") + "}"
	if !strings.Contains(got, want) {
		t.Errorf("LoadMarkdown() = %q, want image path %q", got, want)
	}
}

func TestLoadMarkdown_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadMarkdown(filepath.Join(t.TempDir(), "missing.md"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadMarkdown() error = %v, want os.ErrNotExist", err)
	}
}

func TestConvertTable_Wrapper(t *testing.T) {
	t.Parallel()

	got, err := ConvertTable(`<table><tr><td>1</td><td>2</td></tr></table>`)
	if err != nil {
		t.Fatalf("ConvertTable() error = %v", err)
	}
	if !strings.Contains(got, "\\begin{tabular}{|l|l|}") || !strings.Contains(got, "1 & 2 \\\\") {
		t.Errorf("ConvertTable() = %q", got)
	}

	if _, err := ConvertTable("<p>no table</p>"); !errors.Is(err, ErrMalformedIsland) {
		t.Errorf("ConvertTable(<p>) error = %v, want ErrMalformedIsland", err)
	}
}

func TestConvertImage_Wrapper(t *testing.T) {
	t.Parallel()

	got, err := ConvertImage(context.Background(), `<img src="http://x/a.png" alt="A & B">`, nil)
	if err != nil {
		t.Fatalf("ConvertImage() error = %v", err)
	}
	want := "\\begin{figure}[H]\n\\centering\n\\includegraphics[max width=\\linewidth]{http://x/a.png}\n\\caption{A \\& B}\n\\end{figure}"
	if got != want {
		t.Errorf("ConvertImage() = %q, want %q", got, want)
	}

	f := &stubFetcher{path: "/tmp/a.png"}
	got, err = ConvertImage(context.Background(), `<img src="http://x/a.png">`, f)
	if err != nil {
		t.Fatalf("ConvertImage() error = %v", err)
	}
	if !strings.Contains(got, "{/tmp/a.png}") {
		t.Errorf("ConvertImage() = %q, want localized path", got)
	}
}

func TestParseMarkdown_RawImages(t *testing.T) {
	t.Parallel()

	got, err := ParseMarkdown(`<img src="a.png" alt="A"> and some trailing words`)
	if err != nil {
		t.Fatalf("ParseMarkdown() error = %v", err)
	}
	if !strings.Contains(got, "{a.png}") || !strings.Contains(got, "and some trailing words") {
		t.Errorf("ParseMarkdown() = %q, want figure and trailing text", got)
	}

	got, err = ParseMarkdown("<img src=\"a.png\" alt=\"A\">\n<img src=\"b.png\" alt=\"B\">\n")
	if err != nil {
		t.Fatalf("ParseMarkdown() error = %v", err)
	}
	if strings.Count(got, "\\begin{figure}") != 2 || !strings.Contains(got, "{b.png}") {
		t.Errorf("ParseMarkdown() = %q, want both figures", got)
	}
}

func TestEntityHelpers(t *testing.T) {
	t.Parallel()

	if got := ConvertLink(`see <a href="http://x">docs</a>`); got != `see \href{http://x}{docs}` {
		t.Errorf("ConvertLink() = %q", got)
	}
	if got := EscapeLatexEntities("50% & #1"); got != `50\% \& \#1` {
		t.Errorf("EscapeLatexEntities() = %q", got)
	}
	if got := UnescapeHTMLEntities("&lt;b&gt; &amp;"); got != "<b> &" {
		t.Errorf("UnescapeHTMLEntities() = %q", got)
	}
	if got := UnescapeLatexEntities(`a \& b`); got != "a & b" {
		t.Errorf("UnescapeLatexEntities() = %q", got)
	}
}
