package postproc

import (
	"regexp"

	"github.com/alnah/go-md2latex/internal/latex"
)

var (
	underlineTag = regexp.MustCompile(`<u>(.+?)</u>`)
	// Color names follow xcolor: a name, optionally mixed as red!40!blue.
	colorSpan = regexp.MustCompile(`<span style=["']\s*color:\s*([A-Za-z][A-Za-z0-9!]*)\s*;?\s*["']>(.+?)</span>`)
)

// Decorations converts <u>..</u> and <span style="color: name">..</span> on
// a single line to \underline and a scoped \color. Spans with other styles
// are left alone. xcolor is recorded in pkgs when a color is used.
func Decorations(text string, pkgs *latex.Packages) string {
	out := underlineTag.ReplaceAllStringFunc(text, func(m string) string {
		return latex.Underline(underlineTag.FindStringSubmatch(m)[1])
	})

	colored := false
	out = colorSpan.ReplaceAllStringFunc(out, func(m string) string {
		sub := colorSpan.FindStringSubmatch(m)
		colored = true
		return latex.Color(sub[1], sub[2])
	})
	if colored && pkgs != nil {
		pkgs.Require("xcolor")
	}
	return out
}
