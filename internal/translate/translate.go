// Package translate renders a document tree into LaTeX in a single
// post-order walk.
//
// Constructs finished by later passes (tables, images, links, code) are
// emitted as island tokens; everything else is final LaTeX.
package translate

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/alnah/go-md2latex/internal/doctree"
	"github.com/alnah/go-md2latex/internal/escape"
	"github.com/alnah/go-md2latex/internal/latex"
)

// Listings selects how code blocks are rendered.
type Listings int

const (
	// ListingsVerbatim renders every code block in a verbatim environment.
	ListingsVerbatim Listings = iota
	// ListingsMinted uses minted for code blocks whose language chroma
	// recognises, and verbatim for the rest.
	ListingsMinted
)

// String returns the configuration value of l, as accepted by ParseListings.
func (l Listings) String() string {
	if l == ListingsMinted {
		return "minted"
	}
	return "verbatim"
}

// ParseListings maps a configuration value to a Listings style.
func ParseListings(s string) (Listings, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "verbatim":
		return ListingsVerbatim, nil
	case "minted":
		return ListingsMinted, nil
	}
	return ListingsVerbatim, fmt.Errorf("unknown listings style %q (want verbatim or minted)", s)
}

const horizontalRule = `\noindent\makebox[\linewidth]{\rule{\linewidth}{0.4pt}}`

// Visitor renders one document tree. It records required packages and
// stores islands as it goes, so it must not be reused across runs.
type Visitor struct {
	packages *latex.Packages
	islands  *latex.Islands
	listings Listings
	err      error
}

// NewVisitor creates a Visitor writing packages and islands into the
// run-owned accumulators.
func NewVisitor(packages *latex.Packages, islands *latex.Islands, listings Listings) *Visitor {
	return &Visitor{packages: packages, islands: islands, listings: listings}
}

// Translate renders root and returns the LaTeX text with island tokens.
func (v *Visitor) Translate(root *doctree.Node) (string, error) {
	out := v.render(root)
	if v.err != nil {
		return "", v.err
	}
	return out, nil
}

func (v *Visitor) render(n *doctree.Node) string {
	var sub strings.Builder
	switch n.Kind {
	case doctree.KindPre, doctree.KindCode, doctree.KindRaw, doctree.KindImg:
		// Text is consumed raw by dispatch.
	default:
		sub.WriteString(v.escape(n.Text))
		for _, c := range n.Children {
			sub.WriteString(v.render(c))
		}
	}

	out := v.dispatch(n, sub.String())

	if n.Tail != "" {
		if n.Kind == doctree.KindRaw {
			out += n.Tail
		} else {
			out += v.escape(n.Tail)
		}
	}
	return out
}

func (v *Visitor) dispatch(n *doctree.Node, sub string) string {
	switch n.Kind {
	case doctree.KindH1:
		return v.heading("\n", "chapter", n, sub)
	case doctree.KindH2:
		return v.heading("\n\n", "section", n, sub)
	case doctree.KindH3:
		return v.heading("\n\n", "subsection", n, sub)
	case doctree.KindH4:
		return v.heading("\n", "subsubsection", n, sub)
	case doctree.KindH5:
		return v.heading("\n", "paragraph", n, sub)
	case doctree.KindHR:
		return horizontalRule
	case doctree.KindUL:
		return "\n" + latex.Begin("itemize", "") + sub + "\n" + latex.End("itemize") + "\n"
	case doctree.KindOL:
		return "\n" + latex.Begin("enumerate", "") + sub + "\n" + latex.End("enumerate") + "\n"
	case doctree.KindLI:
		return "\n\t\\item " + strings.TrimSpace(sub)
	case doctree.KindBlockquote:
		return "\n" + latex.Begin("quotation", "") + "\n" + strings.TrimSpace(sub) + "\n" + latex.End("quotation") + "\n"
	case doctree.KindPre:
		return v.codeBlock(n)
	case doctree.KindQ:
		return "`" + strings.TrimSpace(sub) + "'"
	case doctree.KindP:
		return "\n" + strings.TrimSpace(sub) + "\n"
	case doctree.KindSup:
		return latex.Footnote(strings.TrimSpace(sub))
	case doctree.KindStrong:
		return latex.Bold(strings.TrimSpace(sub))
	case doctree.KindEm:
		return latex.Emph(strings.TrimSpace(sub))
	case doctree.KindTable:
		return "\n\n" + v.islands.Add(latex.TableIsland{Table: v.table(n)}) + "\n\n"
	case doctree.KindTHead, doctree.KindTBody, doctree.KindTR, doctree.KindTH, doctree.KindTD:
		// Only reachable outside a table; keep the content.
		return sub
	case doctree.KindImg:
		v.packages.Require("float")
		v.packages.Require("graphicx")
		v.packages.Require("adjustbox", "export")
		return v.islands.Add(latex.ImageIsland{Src: n.Attr("src"), Alt: v.escape(n.Attr("alt"))})
	case doctree.KindA:
		v.packages.Require("hyperref")
		return v.islands.Add(latex.LinkIsland{Href: n.Attr("href"), Text: sub})
	case doctree.KindCode:
		return v.islands.Add(latex.CodeIsland{Rendered: `\texttt{` + escape.Tabular(n.Text) + `}`})
	case doctree.KindRaw:
		return n.Text
	case doctree.KindText, doctree.KindOther:
		return sub
	}
	return sub
}

func (v *Visitor) heading(lead, command string, n *doctree.Node, sub string) string {
	return lead + `\` + command + "{" + sub + "}\n" +
		latex.Label(latex.LabelFor(command, n.PlainText())) + "\n"
}

func (v *Visitor) escape(text string) string {
	if text == "" {
		return ""
	}
	out := escape.Latex(text)
	if strings.Contains(out, `\enquote{`) {
		v.packages.Require("csquotes")
	}
	return out
}

func (v *Visitor) codeBlock(n *doctree.Node) string {
	island := latex.VerbatimIsland{Body: n.Text}
	if v.listings == ListingsMinted {
		if alias := mintedLanguage(n.Attr("lang")); alias != "" {
			island.Lang = alias
			v.packages.Require("minted")
		}
	}
	return v.islands.Add(island)
}

// mintedLanguage resolves a fence info string to a lexer alias that minted
// (Pygments) understands, or "" when chroma does not know it.
func mintedLanguage(lang string) string {
	if lang == "" {
		return ""
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return ""
	}
	cfg := lexer.Config()
	if len(cfg.Aliases) > 0 {
		return cfg.Aliases[0]
	}
	return strings.ToLower(cfg.Name)
}

// table builds the table model from a table subtree. Rows may sit directly
// under the table or inside thead, tbody and tfoot containers.
func (v *Visitor) table(n *doctree.Node) *latex.Table {
	tbl := &latex.Table{}
	var collect func(*doctree.Node)
	collect = func(n *doctree.Node) {
		for _, c := range n.Children {
			switch c.Kind {
			case doctree.KindTR:
				tbl.Rows = append(tbl.Rows, v.row(c))
			case doctree.KindTHead, doctree.KindTBody, doctree.KindOther:
				collect(c)
			}
		}
	}
	collect(n)
	return tbl
}

func (v *Visitor) row(tr *doctree.Node) latex.Row {
	var row latex.Row
	for _, c := range tr.Children {
		if c.Kind != doctree.KindTH && c.Kind != doctree.KindTD {
			continue
		}
		var content strings.Builder
		content.WriteString(v.escape(c.Text))
		for _, child := range c.Children {
			content.WriteString(v.render(child))
		}
		colspan, err := latex.ParseColspan(c.Attr("colspan"))
		if err != nil && v.err == nil {
			v.err = fmt.Errorf("%w: %v", latex.ErrMalformedIsland, err)
		}
		row = append(row, latex.Cell{
			Content: strings.TrimSpace(content.String()),
			Header:  c.Kind == doctree.KindTH,
			Colspan: colspan,
		})
	}
	return row
}
