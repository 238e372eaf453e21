package postproc

import (
	"regexp"
	"strings"

	"github.com/alnah/go-md2latex/internal/escape"
)

var (
	// Spans are never empty; replaceMath rejects an escaped opening dollar.
	displayMath = regexp.MustCompile(`\$\$([^$]+)\$\$`)
	inlineMath  = regexp.MustCompile(`\$([^$]+)\$`)

	mathLt  = regexp.MustCompile(`\\lt\b`)
	mathDel = regexp.MustCompile(`\\del\b`)
)

// Math converts $$..$$ to \[..\] and then $..$ to \(..\). The content of
// each span has \& reverted to & and the asciimath shorthands \lt, " * "
// and \del rewritten.
func Math(text string) string {
	if !strings.Contains(text, "$") {
		return text
	}
	out := replaceMath(text, displayMath, `\[`, `\]`)
	return replaceMath(out, inlineMath, `\(`, `\)`)
}

// replaceMath rewrites every match of re whose opening dollar is not
// preceded by a backslash. The preceding byte is only inspected, so a span
// may start right where the previous one ended.
func replaceMath(text string, re *regexp.Regexp, opening, closing string) string {
	var b strings.Builder
	done, from := 0, 0
	for from < len(text) {
		loc := re.FindStringSubmatchIndex(text[from:])
		if loc == nil {
			break
		}
		start, end := from+loc[0], from+loc[1]
		if start > 0 && text[start-1] == '\\' {
			from = start + 1
			continue
		}
		b.WriteString(text[done:start])
		b.WriteString(opening)
		b.WriteString(mathShorthands(escape.UnescapeLatex(text[from+loc[2] : from+loc[3]])))
		b.WriteString(closing)
		done, from = end, end
	}
	if done == 0 {
		return text
	}
	b.WriteString(text[done:])
	return b.String()
}

func mathShorthands(s string) string {
	s = mathLt.ReplaceAllString(s, "<")
	s = strings.ReplaceAll(s, " * ", ` \cdot `)
	return mathDel.ReplaceAllString(s, `\partial`)
}
