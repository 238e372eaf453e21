package postproc

import (
	"regexp"

	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2latex/internal/latex"
)

var anchorPattern = regexp.MustCompile(`<a[^>]*>([^<]+)</a>`)

// ConvertLink replaces the first <a href="..">text</a> in block with
// \href{..}{text}. The rest of the block is untouched and a block without
// an anchor is returned unchanged.
func ConvertLink(block string) string {
	loc := anchorPattern.FindStringSubmatchIndex(block)
	if loc == nil {
		return block
	}
	anchor := block[loc[0]:loc[1]]
	text := block[loc[2]:loc[3]]
	return block[:loc[0]] + latex.Href(anchorHref(anchor), text) + block[loc[1]:]
}

func anchorHref(anchor string) string {
	nodes, err := parseFragment(anchor)
	if err != nil {
		return ""
	}
	a := findElement(nodes, atom.A)
	if a == nil {
		return ""
	}
	href, _ := attr(a, "href")
	return href
}

// Links resolves link islands, then converts the first raw anchor of every
// block. Required packages are recorded in pkgs when it is non-nil.
func Links(text string, islands *latex.Islands, pkgs *latex.Packages) (string, error) {
	out, err := islands.Resolve(text, func(isl latex.Island) (string, bool, error) {
		if l, ok := isl.(latex.LinkIsland); ok {
			return l.LaTeX(), true, nil
		}
		return "", false, nil
	})
	if err != nil {
		return "", err
	}

	return mapBlocks(out, func(block string) (string, error) {
		converted := ConvertLink(block)
		if converted != block && pkgs != nil {
			pkgs.Require("hyperref")
		}
		return converted, nil
	})
}
