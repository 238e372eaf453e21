// Package glossary loads acronym and glossary definitions from YAML and
// renders them as glossaries package commands.
package glossary

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/alnah/go-md2latex/internal/yamlutil"
)

// ErrParse indicates an invalid glossary file.
var ErrParse = errors.New("glossary parse failed")

// Entry is one acronym or glossary term.
type Entry struct {
	Name        string `yaml:"name"`
	Text        string `yaml:"text"`
	Description string `yaml:"description"`
	Prefix      string `yaml:"prefix"`
	PrefixFirst string `yaml:"prefixfirst"`
}

// Glossary holds acronyms and terms keyed by their \gls key.
type Glossary struct {
	Acronyms map[string]Entry `yaml:"acronyms"`
	Terms    map[string]Entry `yaml:"glossary"`
}

// Formatter turns an inline Markdown value into LaTeX.
type Formatter func(markdown string) (string, error)

// Load reads a glossary file.
func Load(path string) (*Glossary, error) {
	var g Glossary
	if err := yamlutil.ReadFileStrict(path, &g); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: file not found", ErrParse, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Parse decodes glossary YAML from memory.
func Parse(data []byte) (*Glossary, error) {
	var g Glossary
	if err := yamlutil.UnmarshalStrict(data, &g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Validate checks keys and required fields. A term without text uses its name.
func (g *Glossary) Validate() error {
	for key, e := range g.Acronyms {
		if err := validateKey(key); err != nil {
			return err
		}
		if e.Name == "" || e.Text == "" {
			return fmt.Errorf("%w: acronym %q needs name and text", ErrParse, key)
		}
	}
	for key, e := range g.Terms {
		if err := validateKey(key); err != nil {
			return err
		}
		if e.Name == "" || e.Description == "" {
			return fmt.Errorf("%w: term %q needs name and description", ErrParse, key)
		}
		if e.Text == "" {
			e.Text = e.Name
			g.Terms[key] = e
		}
	}
	return nil
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `{}\%#`) {
		return fmt.Errorf("%w: invalid key %q", ErrParse, key)
	}
	return nil
}

// Format runs every name, text and description through format and trims the
// result. Prefixes are left as written.
func (g *Glossary) Format(format Formatter) (*Glossary, error) {
	out := &Glossary{
		Acronyms: make(map[string]Entry, len(g.Acronyms)),
		Terms:    make(map[string]Entry, len(g.Terms)),
	}
	var err error
	apply := func(key, field, value string) string {
		if err != nil || value == "" {
			return value
		}
		var s string
		s, err = format(value)
		if err != nil {
			err = fmt.Errorf("%w: %s.%s: %v", ErrParse, key, field, err)
		}
		return strings.TrimSpace(s)
	}
	for key, e := range g.Acronyms {
		e.Name = apply(key, "name", e.Name)
		e.Text = apply(key, "text", e.Text)
		out.Acronyms[key] = e
	}
	for key, e := range g.Terms {
		e.Name = apply(key, "name", e.Name)
		e.Text = apply(key, "text", e.Text)
		e.Description = apply(key, "description", e.Description)
		out.Terms[key] = e
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Render emits \newacronym lines followed by \newglossaryentry blocks,
// each group in key order.
func (g *Glossary) Render() string {
	var b strings.Builder
	for _, key := range slices.Sorted(maps.Keys(g.Acronyms)) {
		e := g.Acronyms[key]
		b.WriteString(`\newacronym`)
		var opts []string
		if e.PrefixFirst != "" {
			opts = append(opts, "prefixfirst={"+escapePrefix(e.PrefixFirst)+"}")
		}
		if e.Prefix != "" {
			opts = append(opts, "prefix={"+escapePrefix(e.Prefix)+"}")
		}
		if len(opts) > 0 {
			b.WriteString("[" + strings.Join(opts, ", ") + "]")
		}
		fmt.Fprintf(&b, "{%s}{%s}{%s}\n", key, e.Name, e.Text)
	}
	for _, key := range slices.Sorted(maps.Keys(g.Terms)) {
		e := g.Terms[key]
		fmt.Fprintf(&b, "\n\\newglossaryentry{%s}\n{\nname={%s},\ntext={%s},\ndescription={%s},\n}",
			key, e.Name, e.Text, e.Description)
	}
	return b.String()
}

// Empty reports whether the glossary defines nothing.
func (g *Glossary) Empty() bool {
	return g == nil || len(g.Acronyms)+len(g.Terms) == 0
}

// escapePrefix makes spaces in a prefix survive key=value parsing.
func escapePrefix(prefix string) string {
	return strings.ReplaceAll(prefix, " ", `\ `)
}
