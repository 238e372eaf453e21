package doctree

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// ErrParse indicates the Markdown front-end failed.
var ErrParse = errors.New("markdown parsing failed")

// TreeBuilder abstracts Markdown to document tree conversion.
type TreeBuilder interface {
	Build(ctx context.Context, markdown string) (*Node, error)
}

// GoldmarkBuilder builds document trees with goldmark (CommonMark + GFM).
type GoldmarkBuilder struct {
	md goldmark.Markdown
}

// NewGoldmarkBuilder creates a GoldmarkBuilder with GFM and footnote extensions.
func NewGoldmarkBuilder() *GoldmarkBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes become \footnote
		),
	)
	return &GoldmarkBuilder{md: md}
}

// Build parses markdown and converts the goldmark AST into a document tree
// rooted at a KindOther node.
// Supports context cancellation via goroutine + select since goldmark
// doesn't natively support context.
func (b *GoldmarkBuilder) Build(ctx context.Context, markdown string) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		root *Node
		err  error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrParse, r)}
			}
		}()
		src := []byte(markdown)
		doc := b.md.Parser().Parse(text.NewReader(src))
		done <- result{root: newConverter(src, doc).convert(doc)}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.root, r.err
	}
}

// converter walks one goldmark AST. Footnote bodies are indexed up front so
// references can inline them.
type converter struct {
	src       []byte
	footnotes map[int]*east.Footnote
}

func newConverter(src []byte, doc ast.Node) *converter {
	c := &converter{src: src, footnotes: make(map[int]*east.Footnote)}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if fn, ok := n.(*east.Footnote); ok && entering {
			c.footnotes[fn.Index] = fn
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return c
}

func (c *converter) convert(n ast.Node) *Node {
	switch n := n.(type) {
	case *ast.Document:
		return c.container(KindOther, n)
	case *ast.Heading:
		return c.container(headingKind(n.Level), n)
	case *ast.ThematicBreak:
		return NewNode(KindHR, "")
	case *ast.List:
		if n.IsOrdered() {
			return c.container(KindOL, n)
		}
		return c.container(KindUL, n)
	case *ast.ListItem:
		return c.container(KindLI, n)
	case *ast.Blockquote:
		return c.container(KindBlockquote, n)
	case *ast.FencedCodeBlock:
		pre := NewNode(KindPre, c.lines(n))
		if lang := n.Language(c.src); len(lang) > 0 {
			pre.SetAttr("lang", string(lang))
		}
		return pre
	case *ast.CodeBlock:
		return NewNode(KindPre, c.lines(n))
	case *ast.HTMLBlock:
		body := c.lines(n)
		if n.HasClosure() {
			body += string(n.ClosureLine.Value(c.src))
		}
		return NewNode(KindRaw, "\n\n"+strings.TrimRight(body, "\n")+"\n\n")
	case *ast.Paragraph:
		return c.container(KindP, n)
	case *ast.TextBlock:
		return c.container(KindOther, n)
	case *ast.Text:
		value := string(n.Segment.Value(c.src))
		if n.SoftLineBreak() || n.HardLineBreak() {
			value += "\n"
		}
		return NewNode(KindText, value)
	case *ast.String:
		return NewNode(KindText, string(n.Value))
	case *ast.CodeSpan:
		return NewNode(KindCode, c.inlineText(n))
	case *ast.Emphasis:
		if n.Level >= 2 {
			return c.container(KindStrong, n)
		}
		return c.container(KindEm, n)
	case *ast.Link:
		return c.container(KindA, n).SetAttr("href", string(n.Destination))
	case *ast.AutoLink:
		a := NewNode(KindA, string(n.Label(c.src)))
		return a.SetAttr("href", string(n.URL(c.src)))
	case *ast.Image:
		img := NewNode(KindImg, "")
		img.SetAttr("src", string(n.Destination))
		return img.SetAttr("alt", c.inlineText(n))
	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(c.src))
		}
		return NewNode(KindRaw, b.String())
	case *east.Table:
		return c.table(n)
	case *east.Strikethrough:
		return c.container(KindOther, n)
	case *east.TaskCheckBox:
		if n.IsChecked {
			return NewNode(KindText, "[x] ")
		}
		return NewNode(KindText, "[ ] ")
	case *east.FootnoteLink:
		sup := NewNode(KindSup, "")
		if fn, ok := c.footnotes[n.Index]; ok {
			c.appendChildren(sup, fn)
		}
		return sup
	case *east.FootnoteList, *east.FootnoteBacklink:
		return nil
	default:
		return c.container(KindOther, n)
	}
}

func headingKind(level int) Kind {
	switch level {
	case 1:
		return KindH1
	case 2:
		return KindH2
	case 3:
		return KindH3
	case 4:
		return KindH4
	}
	return KindH5
}

func (c *converter) container(k Kind, n ast.Node) *Node {
	out := NewNode(k, "")
	c.appendChildren(out, n)
	return out
}

// appendChildren converts the children of n into out. Adjacent text runs,
// which goldmark splits at every inline trigger character, are merged.
func (c *converter) appendChildren(out *Node, n ast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		conv := c.convert(child)
		if conv == nil {
			continue
		}
		if last := lastChild(out); conv.Kind == KindText && last != nil &&
			last.Kind == KindText && len(last.Children) == 0 {
			last.Text += conv.Text
			continue
		}
		out.Append(conv)
	}
}

func lastChild(n *Node) *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// lines concatenates the source lines of a block node.
func (c *converter) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}
	return b.String()
}

// inlineText returns the raw source text below an inline node.
func (c *converter) inlineText(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(c.src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// table converts a GFM table into the thead/tbody/tr/th/td shape that raw
// HTML tables also produce.
func (c *converter) table(n *east.Table) *Node {
	table := NewNode(KindTable, "")
	var body *Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *east.TableHeader:
			table.Append(NewNode(KindTHead, "").Append(c.row(row, KindTH)))
		case *east.TableRow:
			if body == nil {
				body = NewNode(KindTBody, "")
				table.Append(body)
			}
			body.Append(c.row(row, KindTD))
		}
	}
	return table
}

func (c *converter) row(n ast.Node, cell Kind) *Node {
	tr := NewNode(KindTR, "")
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if _, ok := child.(*east.TableCell); ok {
			tr.Append(c.container(cell, child))
		}
	}
	return tr
}
