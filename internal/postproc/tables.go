package postproc

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2latex/internal/escape"
	"github.com/alnah/go-md2latex/internal/latex"
)

// ConvertTable converts one <table>..</table> island into a LaTeX table.
func ConvertTable(island string) (string, error) {
	tbl, err := ParseTable(island)
	if err != nil {
		return "", err
	}
	return tbl.LaTeX(), nil
}

// ParseTable builds the table model from an HTML table. Rows are taken in
// document order from thead, tbody, tfoot or the table itself. Cell text is
// escaped; th cells are marked as headers. rowspan is ignored.
func ParseTable(island string) (*latex.Table, error) {
	nodes, err := parseFragment(island)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", latex.ErrMalformedIsland, err)
	}
	table := findElement(nodes, atom.Table)
	if table == nil {
		return nil, fmt.Errorf("%w: no table element in %q", latex.ErrMalformedIsland, island)
	}

	tbl := &latex.Table{}
	if err := collectRows(tbl, table); err != nil {
		return nil, err
	}
	if caption := findElement([]*html.Node{table}, atom.Caption); caption != nil {
		tbl.Caption = strings.TrimSpace(cellText(caption))
	}
	if tbl.Caption != "" {
		tbl.Label = latex.LabelFor("table", tbl.Caption)
	}
	return tbl, nil
}

func collectRows(tbl *latex.Table, n *html.Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Tr:
			row, err := parseRow(c)
			if err != nil {
				return err
			}
			tbl.Rows = append(tbl.Rows, row)
		case atom.Thead, atom.Tbody, atom.Tfoot:
			if err := collectRows(tbl, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseRow reads the td and th element children of tr. Whitespace text
// between cells is skipped, so the last cell is the last cell element.
func parseRow(tr *html.Node) (latex.Row, error) {
	var row latex.Row
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		v, _ := attr(c, "colspan")
		colspan, err := latex.ParseColspan(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", latex.ErrMalformedIsland, err)
		}
		row = append(row, latex.Cell{
			Content: strings.TrimSpace(cellText(c)),
			Header:  c.DataAtom == atom.Th,
			Colspan: colspan,
		})
	}
	return row, nil
}

// cellText concatenates the escaped text below n, dropping text that is
// blank once rendered.
func cellText(n *html.Node) string {
	if n.Type == html.TextNode {
		return escape.Latex(n.Data)
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text := cellText(c); strings.TrimSpace(text) != "" {
			b.WriteString(text)
		}
	}
	return b.String()
}

// Tables resolves table islands and converts raw HTML table blocks.
func Tables(text string, islands *latex.Islands) (string, error) {
	out, err := islands.Resolve(text, func(isl latex.Island) (string, bool, error) {
		if t, ok := isl.(latex.TableIsland); ok {
			return t.LaTeX(), true, nil
		}
		return "", false, nil
	})
	if err != nil {
		return "", err
	}

	return mapBlocks(out, func(block string) (string, error) {
		stripped := strings.TrimSpace(block)
		if !strings.HasPrefix(stripped, "<table") || !strings.HasSuffix(stripped, "</table>") {
			return block, nil
		}
		return ConvertTable(stripped)
	})
}
