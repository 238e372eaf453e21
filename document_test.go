package md2latex

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMakeSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kind  SectionKind
		title string
		body  string
		opts  SectionOptions
		want  string
	}{
		{
			name:  "section with body",
			kind:  Section,
			title: "Intro",
			body:  "Text\n",
			want:  "\\section{Intro}\n\\label{section:intro}\n\nText\n",
		},
		{
			name:  "chapter label from title",
			kind:  Chapter,
			title: "My Title",
			want:  "\\chapter{My Title}\n\\label{chapter:my_title}\n",
		},
		{
			name:  "custom label",
			kind:  Subsection,
			title: "Setup",
			opts:  SectionOptions{Label: "sec:setup"},
			want:  "\\subsection{Setup}\n\\label{sec:setup}\n",
		},
		{
			name:  "unnumbered with short title",
			kind:  Part,
			title: "Long Title",
			opts:  SectionOptions{ShortTitle: "Short", Unnumbered: true},
			want:  "\\part*[Short]{Long Title}\n\\label{part:long_title}\n",
		},
		{
			name:  "body newlines trimmed",
			kind:  Paragraph,
			title: "P",
			body:  "\n\nbody\n\n",
			want:  "\\paragraph{P}\n\\label{paragraph:p}\n\nbody\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := MakeSection(tt.kind, tt.title, tt.body, tt.opts)
			if err != nil {
				t.Fatalf("MakeSection() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MakeSection(%q, %q) = %q, want %q", tt.kind, tt.title, got, tt.want)
			}
		})
	}
}

func TestMakeSection_InvalidKind(t *testing.T) {
	t.Parallel()

	_, err := MakeSection("heading", "X", "", SectionOptions{})
	if !errors.Is(err, ErrInvalidSectionKind) {
		t.Errorf("MakeSection(heading) error = %v, want ErrInvalidSectionKind", err)
	}
}

func TestMakeDocument(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := MakeDocument(&buf, Document{
		ClassOptions: []string{"a4paper", "12pt"},
		Title:        "Report",
		Author:       "A. Writer",
		Date:         "today",
		TOC:          true,
		Packages: []Package{
			{Name: "hyperref"},
			{Name: "adjustbox", Options: []string{"export"}},
		},
		Glossary: "\\newacronym{api}{API}{Application Programming Interface}",
		Elements: []string{"\\chapter{One}", "Body text."},
	})
	if err != nil {
		t.Fatalf("MakeDocument() error = %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"\\documentclass[a4paper,12pt]{report}\n",
		"\\usepackage{hyperref}\n",
		"\\usepackage[export]{adjustbox}\n",
		"\\usepackage{glossaries}\n",
		"\\makeglossaries\n",
		"\\newacronym{api}",
		"\\title{Report}\n",
		"\\author{A. Writer}\n",
		"\\date{\\today}\n",
		"\\begin{document}\n",
		"\\maketitle\n",
		"\\tableofcontents\n",
		"\\chapter{One}\n",
		"Body text.\n",
		"\\printglossaries\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("MakeDocument() missing %q in:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "\\end{document}\n") {
		t.Errorf("MakeDocument() should end with \\end{document}:\n%s", got)
	}
	if strings.Index(got, "\\chapter{One}") > strings.Index(got, "Body text.") {
		t.Errorf("elements out of order:\n%s", got)
	}
}

func TestMakeDocument_Minimal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := MakeDocument(&buf, Document{Class: "article", Elements: []string{"x"}}); err != nil {
		t.Fatalf("MakeDocument() error = %v", err)
	}
	got := buf.String()

	if !strings.HasPrefix(got, "\\documentclass{article}\n") {
		t.Errorf("MakeDocument() = %q, want bare article class", got)
	}
	for _, absent := range []string{"\\maketitle", "\\tableofcontents", "\\makeglossaries", "\\printglossaries", "\\title"} {
		if strings.Contains(got, absent) {
			t.Errorf("MakeDocument() should not contain %q:\n%s", absent, got)
		}
	}
}

func TestMakeDocument_InvalidDate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := MakeDocument(&buf, Document{Date: "auto:"})
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("MakeDocument() error = %v, want ErrInvalidDateFormat", err)
	}
	if buf.Len() != 0 {
		t.Errorf("MakeDocument() wrote %q on error", buf.String())
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		value string
		want  string
	}{
		{"today", "\\today"},
		{"auto", "2025-03-07"},
		{"auto:DD/MM/YYYY", "07/03/2025"},
		{"auto:long", "March 7, 2025"},
		{"1 April 2020", "1 April 2020"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := ResolveDate(tt.value, now)
		if err != nil {
			t.Errorf("ResolveDate(%q) error = %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestSectionKind_Valid(t *testing.T) {
	t.Parallel()

	for _, k := range []SectionKind{Part, Chapter, Section, Subsection, Subsubsection, Paragraph, Subparagraph} {
		if !k.Valid() {
			t.Errorf("%q.Valid() = false, want true", k)
		}
	}
	if SectionKind("Section").Valid() {
		t.Error(`"Section".Valid() = true, want false`)
	}
}
