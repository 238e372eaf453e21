package latex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Island tokens are delimited by Private Use Area runes, which cannot occur
// in parsed Markdown text and pass through every regex pass untouched.
const (
	TokenOpen  = "\uE002"
	TokenClose = "\uE003"
)

var tokenPattern = regexp.MustCompile(TokenOpen + `(\d+)` + TokenClose)

// Island is a construct whose final LaTeX is produced by a later pass. The
// set of islands is closed.
type Island interface {
	// LaTeX renders the island in its final form.
	LaTeX() string
	isIsland()
}

// TableIsland is a table awaiting the table pass.
type TableIsland struct {
	Table *Table
}

// ImageIsland is an image awaiting the image pass, which may localize Src.
type ImageIsland struct {
	Src string
	Alt string
}

// LinkIsland is a hyperlink awaiting the link pass.
type LinkIsland struct {
	Href string
	Text string
}

// VerbatimIsland is a code block. Its body is never touched by text passes.
type VerbatimIsland struct {
	Body string
	// Lang is the minted language; empty renders a verbatim environment.
	Lang string
}

// CodeIsland is an inline code span, already rendered.
type CodeIsland struct {
	Rendered string
}

func (TableIsland) isIsland()    {}
func (ImageIsland) isIsland()    {}
func (LinkIsland) isIsland()     {}
func (VerbatimIsland) isIsland() {}
func (CodeIsland) isIsland()     {}

func (t TableIsland) LaTeX() string { return t.Table.LaTeX() }

func (c CodeIsland) LaTeX() string { return c.Rendered }

// LaTeX renders the image as a non-floating figure scaled to the line
// width. Requires float, graphicx and adjustbox with the export option.
func (i ImageIsland) LaTeX() string {
	return "\\begin{figure}[H]\n" +
		"\\centering\n" +
		"\\includegraphics[max width=\\linewidth]{" + i.Src + "}\n" +
		Caption(i.Alt) + "\n" +
		"\\end{figure}"
}

// LaTeX renders the link. Requires hyperref.
func (l LinkIsland) LaTeX() string {
	return Href(l.Href, l.Text)
}

// LaTeX renders the code block as a verbatim or minted environment.
func (v VerbatimIsland) LaTeX() string {
	body := strings.Trim(v.Body, "\n")
	if v.Lang != "" {
		return "\n" + Begin("minted", v.Lang) + "\n" + body + "\n" + End("minted") + "\n"
	}
	return "\n" + Begin("verbatim", "") + "\n" + body + "\n" + End("verbatim") + "\n"
}

// Islands stores the islands of one conversion run and hands out the tokens
// that reference them.
type Islands struct {
	items []Island
}

// Add stores isl and returns its token.
func (s *Islands) Add(isl Island) string {
	s.items = append(s.items, isl)
	return TokenOpen + strconv.Itoa(len(s.items)-1) + TokenClose
}

// Len returns the number of stored islands.
func (s *Islands) Len() int {
	return len(s.items)
}

// At returns the island with index i.
func (s *Islands) At(i int) Island {
	return s.items[i]
}

// Lookup returns the island referenced by token.
func (s *Islands) Lookup(token string) (Island, bool) {
	m := tokenPattern.FindStringSubmatch(token)
	if m == nil || m[0] != token {
		return nil, false
	}
	i, err := strconv.Atoi(m[1])
	if err != nil || i >= len(s.items) {
		return nil, false
	}
	return s.items[i], true
}

// MapText applies a text pass to the textual payload of pending islands:
// table cells and captions, image alt text and link text. Code is exempt.
func (s *Islands) MapText(f func(string) string) {
	for i, isl := range s.items {
		switch v := isl.(type) {
		case TableIsland:
			v.Table.MapText(f)
		case ImageIsland:
			v.Alt = f(v.Alt)
			s.items[i] = v
		case LinkIsland:
			v.Text = f(v.Text)
			s.items[i] = v
		case VerbatimIsland, CodeIsland:
		}
	}
}

// Resolve replaces every token in text for which render reports ok. Tokens
// render declines are left in place for a later pass.
func (s *Islands) Resolve(text string, render func(Island) (string, bool, error)) (string, error) {
	var firstErr error
	out := tokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		if firstErr != nil {
			return token
		}
		isl, ok := s.Lookup(token)
		if !ok {
			return token
		}
		latex, handled, err := render(isl)
		if err != nil {
			firstErr = err
			return token
		}
		if !handled {
			return token
		}
		return latex
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// Unresolved reports the first token still present in text.
func Unresolved(text string) error {
	if loc := tokenPattern.FindString(text); loc != "" {
		return fmt.Errorf("unresolved island %q", strings.Trim(loc, TokenOpen+TokenClose))
	}
	return nil
}
