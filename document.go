package md2latex

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alnah/go-md2latex/internal/assets"
	"github.com/alnah/go-md2latex/internal/dateutil"
	"github.com/alnah/go-md2latex/internal/latex"
)

// SectionKind is a LaTeX sectioning command.
type SectionKind string

const (
	Part          SectionKind = "part"
	Chapter       SectionKind = "chapter"
	Section       SectionKind = "section"
	Subsection    SectionKind = "subsection"
	Subsubsection SectionKind = "subsubsection"
	Paragraph     SectionKind = "paragraph"
	Subparagraph  SectionKind = "subparagraph"
)

// Valid reports whether k is a known sectioning command.
func (k SectionKind) Valid() bool {
	switch k {
	case Part, Chapter, Section, Subsection, Subsubsection, Paragraph, Subparagraph:
		return true
	}
	return false
}

// SectionOptions adjusts a section heading.
type SectionOptions struct {
	Label      string // defaults to <kind>:<normalised title>
	ShortTitle string // optional table of contents entry
	Unnumbered bool   // starred form
}

// MakeSection renders a sectioning command, its label and body with the
// default templates.
func MakeSection(kind SectionKind, title, body string, opts SectionOptions) (string, error) {
	conv, err := defaultConverter()
	if err != nil {
		return "", err
	}
	return conv.MakeSection(kind, title, body, opts)
}

// MakeSection renders a sectioning command with the converter's templates.
func (c *Converter) MakeSection(kind SectionKind, title, body string, opts SectionOptions) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSectionKind, kind)
	}
	label := opts.Label
	if label == "" {
		label = latex.LabelFor(string(kind), title)
	}
	return c.templates.Render(assets.SectioningTemplate, assets.SectionData{
		Kind:       string(kind),
		Title:      title,
		ShortTitle: opts.ShortTitle,
		Label:      label,
		Body:       strings.Trim(body, "\n"),
		Unnumbered: opts.Unnumbered,
	})
}

// Document describes a standalone LaTeX document.
type Document struct {
	Class        string   // defaults to report
	ClassOptions []string // e.g. a4paper, 12pt
	Title        string
	Author       string
	Date         string // passed through ResolveDate
	TOC          bool
	// Packages are emitted as \usepackage lines; duplicates merge their
	// options. Pass ConvertResult.Packages here.
	Packages []Package
	// Glossary holds definitions from RenderGlossary. When set, the
	// glossaries package is loaded and the glossary printed at the end.
	Glossary string
	Elements []string
}

// DefaultDocumentClass is used when Document.Class is empty.
const DefaultDocumentClass = "report"

// MakeDocument writes a complete document with the default templates.
func MakeDocument(w io.Writer, doc Document) error {
	conv, err := defaultConverter()
	if err != nil {
		return err
	}
	return conv.MakeDocument(w, doc)
}

// MakeDocument writes a complete document with the converter's templates.
func (c *Converter) MakeDocument(w io.Writer, doc Document) error {
	class := doc.Class
	if class == "" {
		class = DefaultDocumentClass
	}

	pkgs := latex.NewPackages()
	for _, p := range doc.Packages {
		pkgs.Require(p.Name, p.Options...)
	}
	if doc.Glossary != "" {
		pkgs.Require("glossaries")
	}

	date, err := ResolveDate(doc.Date, time.Now())
	if err != nil {
		return err
	}

	elements := make([]string, 0, len(doc.Elements))
	for _, el := range doc.Elements {
		elements = append(elements, strings.Trim(el, "\n"))
	}

	out, err := c.templates.Render(assets.DocumentTemplate, assets.DocumentData{
		Class:        class,
		ClassOptions: strings.Join(doc.ClassOptions, ","),
		Preamble:     strings.TrimRight(pkgs.Preamble(), "\n"),
		Glossary:     strings.Trim(doc.Glossary, "\n"),
		Title:        doc.Title,
		Author:       doc.Author,
		Date:         date,
		TOC:          doc.TOC,
		Elements:     elements,
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// ResolveDate handles "today", "auto" and "auto:FORMAT" date values.
//   - "today" → \today
//   - "auto" → now in YYYY-MM-DD format
//   - "auto:FORMAT" → now in a custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" → now using a preset (iso, european, us, long)
//   - any other value → returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, now time.Time) (string, error) {
	return dateutil.Resolve(value, now)
}
