package md2latex

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGlossary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glossary.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGlossary(t *testing.T) {
	t.Parallel()

	path := writeGlossary(t, `acronyms:
  api:
    name: API
    text: Application Programming Interface
glossary:
  latex:
    name: LaTeX
    description: A *document* preparation system
`)

	g, err := LoadGlossary(path)
	if err != nil {
		t.Fatalf("LoadGlossary() error = %v", err)
	}

	if got := g.Acronyms["api"].Text; got != "Application Programming Interface" {
		t.Errorf("Acronyms[api].Text = %q, want trimmed fragment", got)
	}
	if got := g.Terms["latex"].Description; got != "A \\emph{document} preparation system" {
		t.Errorf("Terms[latex].Description = %q, want converted Markdown", got)
	}

	rendered := RenderGlossary(g)
	if !strings.Contains(rendered, "\\newacronym{api}{API}{Application Programming Interface}") {
		t.Errorf("RenderGlossary() missing acronym in %q", rendered)
	}
	if !strings.Contains(rendered, "\\newglossaryentry{latex}") {
		t.Errorf("RenderGlossary() missing term in %q", rendered)
	}
}

func TestLoadGlossary_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.yaml") }},
		{"unknown field", func(t *testing.T) string { return writeGlossary(t, "terms:\n  a:\n    name: A\n") }},
		{"acronym without text", func(t *testing.T) string { return writeGlossary(t, "acronyms:\n  a:\n    name: A\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := newTestConverter(t, WithFetcher(nil))
			_, err := conv.LoadGlossary(context.Background(), tt.path(t))
			if !errors.Is(err, ErrGlossaryParse) {
				t.Errorf("LoadGlossary() error = %v, want ErrGlossaryParse", err)
			}
		})
	}
}

func TestRenderGlossary_Nil(t *testing.T) {
	t.Parallel()

	if got := RenderGlossary(nil); got != "" {
		t.Errorf("RenderGlossary(nil) = %q, want empty", got)
	}
}
