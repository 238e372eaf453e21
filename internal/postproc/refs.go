package postproc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-md2latex/internal/latex"
)

var (
	rootTag = regexp.MustCompile(`</?root>`)

	glsMarker   = regexp.MustCompile(`gls\{([^}]*)\}`)
	citepMarker = regexp.MustCompile(`citep\{([^}]*)\}`)
	citeMarker  = regexp.MustCompile(`cite\{([^}]*)\}`)

	supTag = regexp.MustCompile(`<sup>(.+?)</sup>`)
	subTag = regexp.MustCompile(`<sub>(.+?)</sub>`)
)

// StripRoot removes <root> and </root> markers.
func StripRoot(text string) string {
	return rootTag.ReplaceAllString(text, "")
}

// Refs turns the shorthand markers gls{key}, citep{key} and cite{key} into
// \gls{key}, ~\citep{key} and ~\cite{key}. Markers already preceded by a
// backslash or a letter are left alone. Required packages are recorded in
// pkgs when it is non-nil.
func Refs(text string, pkgs *latex.Packages) string {
	out, n := replaceMarker(text, glsMarker, func(key string) string { return `\gls{` + key + `}` })
	if n > 0 && pkgs != nil {
		pkgs.Require("glossaries")
	}
	out, n = replaceMarker(out, citepMarker, func(key string) string { return `~\citep{` + key + `}` })
	total := n
	out, n = replaceMarker(out, citeMarker, func(key string) string { return `~\cite{` + key + `}` })
	if total+n > 0 && pkgs != nil {
		pkgs.Require("natbib")
	}
	return out
}

// replaceMarker rewrites matches of re whose preceding rune is neither a
// backslash nor a letter. It returns the new text and the rewrite count.
func replaceMarker(text string, re *regexp.Regexp, repl func(arg string) string) (string, int) {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text, 0
	}

	var b strings.Builder
	last, count := 0, 0
	for _, m := range matches {
		if m[0] > 0 {
			r, _ := utf8.DecodeLastRuneInString(text[:m[0]])
			if r == '\\' || unicode.IsLetter(r) {
				continue
			}
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(repl(text[m[2]:m[3]]))
		last = m[1]
		count++
	}
	b.WriteString(text[last:])
	return b.String(), count
}

// SupSub converts <sup>..</sup> and <sub>..</sub> on a single line to
// \textsuperscript and \textsubscript.
func SupSub(text string) string {
	out := supTag.ReplaceAllStringFunc(text, func(m string) string {
		return latex.TextSuperscript(supTag.FindStringSubmatch(m)[1])
	})
	return subTag.ReplaceAllStringFunc(out, func(m string) string {
		return latex.TextSubscript(subTag.FindStringSubmatch(m)[1])
	})
}
