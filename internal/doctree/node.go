// Package doctree defines the document tree consumed by the LaTeX visitor
// and builds it from Markdown with goldmark.
package doctree

import "strings"

// Kind identifies the construct a Node represents. The set is closed.
type Kind int

const (
	KindOther Kind = iota
	KindText
	KindH1
	KindH2
	KindH3
	KindH4
	KindH5 // h5 and h6
	KindHR
	KindUL
	KindOL
	KindLI
	KindBlockquote
	KindPre
	KindQ
	KindP
	KindSup
	KindStrong
	KindEm
	KindTable
	KindTHead
	KindTBody
	KindTR
	KindTH
	KindTD
	KindImg
	KindA
	KindCode
	KindRaw
)

var kindNames = [...]string{
	KindOther:      "other",
	KindText:       "text",
	KindH1:         "h1",
	KindH2:         "h2",
	KindH3:         "h3",
	KindH4:         "h4",
	KindH5:         "h5",
	KindHR:         "hr",
	KindUL:         "ul",
	KindOL:         "ol",
	KindLI:         "li",
	KindBlockquote: "blockquote",
	KindPre:        "pre",
	KindQ:          "q",
	KindP:          "p",
	KindSup:        "sup",
	KindStrong:     "strong",
	KindEm:         "em",
	KindTable:      "table",
	KindTHead:      "thead",
	KindTBody:      "tbody",
	KindTR:         "tr",
	KindTH:         "th",
	KindTD:         "td",
	KindImg:        "img",
	KindA:          "a",
	KindCode:       "code",
	KindRaw:        "raw",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "other"
	}
	return kindNames[k]
}

// KindFromTag maps an HTML tag name to its Kind. Unknown tags map to KindOther.
func KindFromTag(tag string) Kind {
	tag = strings.ToLower(tag)
	for k, name := range kindNames {
		if name == tag && Kind(k) != KindText && Kind(k) != KindRaw {
			return Kind(k)
		}
	}
	return KindOther
}

// Node is one element of the document tree.
//
// Text is the content before the first child and Tail the content after the
// node and before its next sibling, mirroring the ElementTree model.
type Node struct {
	Kind     Kind
	Text     string
	Tail     string
	Children []*Node
	Attrs    map[string]string
}

// NewNode returns a node of kind k with the given text.
func NewNode(k Kind, text string) *Node {
	return &Node{Kind: k, Text: text}
}

// Append adds children and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr returns the named attribute or "".
func (n *Node) Attr(name string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// SetAttr sets an attribute, allocating the map on first use.
func (n *Node) SetAttr(name, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string, 2)
	}
	n.Attrs[name] = value
	return n
}

// PlainText concatenates the text and tail of every descendant in document
// order, without the node's own tail.
func (n *Node) PlainText() string {
	var b strings.Builder
	n.writePlain(&b)
	return b.String()
}

func (n *Node) writePlain(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, c := range n.Children {
		c.writePlain(b)
		b.WriteString(c.Tail)
	}
}
