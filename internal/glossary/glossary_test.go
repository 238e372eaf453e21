package glossary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `acronyms:
  api:
    name: API
    text: Application Programming Interface
    prefix: an
    prefixfirst: an eye
  cli:
    name: CLI
    text: Command Line Interface
glossary:
  latex:
    name: LaTeX
    description: A *document* preparation system
`

func TestParse(t *testing.T) {
	t.Parallel()

	g, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(g.Acronyms) != 2 {
		t.Errorf("len(Acronyms) = %d, want 2", len(g.Acronyms))
	}
	if got := g.Terms["latex"].Text; got != "LaTeX" {
		t.Errorf("Terms[latex].Text = %q, want name fallback %q", got, "LaTeX")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "acronyms:\n  api:\n    name: API\n    text: x\n    plural: APIs\n"},
		{"acronym missing text", "acronyms:\n  api:\n    name: API\n"},
		{"term missing description", "glossary:\n  tex:\n    name: TeX\n"},
		{"key with brace", "acronyms:\n  \"a{b\":\n    name: A\n    text: B\n"},
		{"not a mapping", "acronyms: [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse() error = %v, want ErrParse", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "glossary.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if g.Empty() {
		t.Error("Load() returned empty glossary")
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrParse) {
		t.Errorf("Load(missing) error = %v, want ErrParse", err)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	g := &Glossary{
		Acronyms: map[string]Entry{
			"cli": {Name: "CLI", Text: "Command Line Interface"},
			"api": {Name: "API", Text: "Application Programming Interface", Prefix: "an", PrefixFirst: "an eye"},
		},
		Terms: map[string]Entry{
			"latex": {Name: "LaTeX", Text: "LaTeX", Description: "A system"},
		},
	}

	want := "\\newacronym[prefixfirst={an\\ eye}, prefix={an}]{api}{API}{Application Programming Interface}\n" +
		"\\newacronym{cli}{CLI}{Command Line Interface}\n" +
		"\n\\newglossaryentry{latex}\n{\nname={LaTeX},\ntext={LaTeX},\ndescription={A system},\n}"

	if got := g.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	g, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	upper := func(s string) (string, error) { return "\n" + strings.ToUpper(s) + "\n", nil }
	got, err := g.Format(upper)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if d := got.Terms["latex"].Description; d != "A *DOCUMENT* PREPARATION SYSTEM" {
		t.Errorf("Description = %q, want trimmed formatted value", d)
	}
	if p := got.Acronyms["api"].PrefixFirst; p != "an eye" {
		t.Errorf("PrefixFirst = %q, want unchanged %q", p, "an eye")
	}
	if g.Terms["latex"].Description != "A *document* preparation system" {
		t.Error("Format() modified the receiver")
	}

	boom := errors.New("boom")
	_, err = g.Format(func(string) (string, error) { return "", boom })
	if !errors.Is(err, ErrParse) {
		t.Errorf("Format() error = %v, want ErrParse", err)
	}
}

func TestEscapePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"an", "an"},
		{"an eye", `an\ eye`},
		{"", ""},
	}
	for _, tt := range tests {
		if got := escapePrefix(tt.in); got != tt.want {
			t.Errorf("escapePrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	var nilGlossary *Glossary
	if !nilGlossary.Empty() {
		t.Error("nil Glossary should be empty")
	}
	if !(&Glossary{}).Empty() {
		t.Error("zero Glossary should be empty")
	}
}
