package assets

import (
	"bytes"
	"fmt"
	"text/template"
)

// Template names shipped with the embedded set.
const (
	DocumentTemplate   = "document"
	SectioningTemplate = "sectioning"
)

// requiredTemplates lists the templates a TemplateSet must provide.
var requiredTemplates = []string{DocumentTemplate, SectioningTemplate}

// TemplateSet holds the parsed LaTeX templates used to assemble output.
type TemplateSet struct {
	templates map[string]*template.Template
}

// LoadTemplateSet loads and parses every required template from loader.
func LoadTemplateSet(loader TemplateLoader) (*TemplateSet, error) {
	ts := &TemplateSet{templates: make(map[string]*template.Template, len(requiredTemplates))}
	for _, name := range requiredTemplates {
		content, err := loader.LoadTemplate(name)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(name).Delims("<<", ">>").Option("missingkey=error").Parse(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
		}
		ts.templates[name] = tmpl
	}
	return ts, nil
}

// Render executes the named template with data.
func (ts *TemplateSet) Render(name string, data any) (string, error) {
	tmpl, ok := ts.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, name, err)
	}
	return buf.String(), nil
}

// DocumentData is the input of the document template.
type DocumentData struct {
	Class        string
	ClassOptions string
	Preamble     string // \usepackage lines and extra definitions
	Glossary     string // glossary definitions; enables \makeglossaries
	Title        string
	Author       string
	Date         string
	TOC          bool
	Elements     []string
}

// SectionData is the input of the sectioning template.
type SectionData struct {
	Kind       string // part, chapter, section, ...
	Title      string
	ShortTitle string
	Label      string
	Body       string
	Unnumbered bool
}
