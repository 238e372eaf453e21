package md2latex

import (
	"context"
	"strings"

	"github.com/alnah/go-md2latex/internal/glossary"
)

// Glossary holds acronyms and terms keyed by their \gls key.
type Glossary = glossary.Glossary

// GlossaryEntry is one acronym or term.
type GlossaryEntry = glossary.Entry

// LoadGlossary reads a YAML glossary with acronyms and glossary maps and
// converts every name, text and description from Markdown, using the
// default converter.
func LoadGlossary(path string) (*Glossary, error) {
	conv, err := defaultConverter()
	if err != nil {
		return nil, err
	}
	return conv.LoadGlossary(context.Background(), path)
}

// LoadGlossary reads and formats a glossary with the converter.
func (c *Converter) LoadGlossary(ctx context.Context, path string) (*Glossary, error) {
	g, err := glossary.Load(path)
	if err != nil {
		return nil, err
	}
	return g.Format(func(markdown string) (string, error) {
		if strings.TrimSpace(markdown) == "" {
			return "", nil
		}
		res, err := c.Convert(ctx, Input{Markdown: markdown})
		if err != nil {
			return "", err
		}
		return res.LaTeX, nil
	})
}

// RenderGlossary returns \newacronym and \newglossaryentry definitions for
// the document preamble. A nil glossary renders nothing.
func RenderGlossary(g *Glossary) string {
	if g.Empty() {
		return ""
	}
	return g.Render()
}
