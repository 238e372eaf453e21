// Package escape converts between HTML entities and LaTeX reserved characters.
//
// Only %, & and # are escaped in running text. Braces, dollars and
// backslashes are left for the math and macro passes that run afterwards.
package escape

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var htmlUnescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
)

// doubleQuoteRe may span lines; single quotes are handled by enquoteSingle.
var doubleQuoteRe = regexp.MustCompile(`"([^"]*)"`)

var tabularEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
	"<", `\textless{}`,
	">", `\textgreater{}`,
)

// UnescapeHTML replaces &amp;, &lt;, &gt; and &quot; with their characters.
// Other entities are left alone.
func UnescapeHTML(text string) string {
	return htmlUnescaper.Replace(text)
}

// UnescapeLatex reverts \& to &. Used inside math, where & is an alignment
// character rather than a literal ampersand.
func UnescapeLatex(text string) string {
	return strings.ReplaceAll(text, `\&`, "&")
}

// Latex escapes LaTeX reserved characters in running text.
//
// HTML entities are decoded first. Then %, & and # receive a backslash
// unless one already precedes them; a % directly after a newline is kept as
// a comment marker. Quoted passages become \enquote{...}. Applying Latex to
// its own output is a no-op.
func Latex(text string) string {
	out := UnescapeHTML(text)
	out = escapeReserved(out)
	out = doubleQuoteRe.ReplaceAllString(out, `\enquote{$1}`)
	return enquoteSingle(out)
}

// Tabular escapes every LaTeX special character. Use it for data that must
// print literally, such as table cells and inline code.
func Tabular(text string) string {
	return tabularEscaper.Replace(text)
}

func escapeReserved(s string) string {
	if !strings.ContainsAny(s, "%&#") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	var prev byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '%':
			if prev != '\\' && prev != '\n' {
				b.WriteByte('\\')
			}
		case '&', '#':
			if prev != '\\' {
				b.WriteByte('\\')
			}
		}
		b.WriteByte(c)
		prev = c
	}
	return b.String()
}

// enquoteSingle wraps 'quoted' passages. An opening quote must start a word
// and a closing quote must not be followed by a letter or digit, so
// apostrophes such as don't survive.
func enquoteSingle(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)

	for i := 0; i < len(s); {
		if s[i] == '\'' && opensQuote(s, i) {
			if j := closingQuote(s, i+1); j > i+1 {
				b.WriteString(`\enquote{`)
				b.WriteString(s[i+1 : j])
				b.WriteByte('}')
				i = j + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func opensQuote(s string, i int) bool {
	if i == 0 {
		return true
	}
	switch s[i-1] {
	case ' ', '\t', '\n', '(', '[', '{':
		return true
	}
	return false
}

// closingQuote returns the index of the quote closing a passage that starts
// at from, or -1. The passage may not cross a line break.
func closingQuote(s string, from int) int {
	for k := from; k < len(s); k++ {
		switch s[k] {
		case '\n':
			return -1
		case '\'':
			if k+1 == len(s) {
				return k
			}
			r, _ := utf8.DecodeRuneInString(s[k+1:])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return k
			}
		}
	}
	return -1
}
