package postproc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseFragment parses an HTML fragment in a body context so no html or
// body wrapper is added.
func parseFragment(content string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(content), context)
}

// findElement returns the first element with tag a in document order.
func findElement(nodes []*html.Node, a atom.Atom) *html.Node {
	for _, n := range nodes {
		if n.Type == html.ElementNode && n.DataAtom == a {
			return n
		}
		var children []*html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			children = append(children, c)
		}
		if found := findElement(children, a); found != nil {
			return found
		}
	}
	return nil
}

// soleElement returns the only node of nodes when it is an element with tag
// a. Whitespace text around it is allowed; anything else yields nil.
func soleElement(nodes []*html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	for _, n := range nodes {
		switch {
		case n.Type == html.TextNode && strings.TrimSpace(n.Data) == "":
		case n.Type == html.ElementNode && n.DataAtom == a && found == nil:
			found = n
		default:
			return nil
		}
	}
	return found
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
