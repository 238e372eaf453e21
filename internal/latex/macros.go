package latex

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UsePackage returns \usepackage{name}, with [options] when non-empty.
func UsePackage(name, options string) string {
	if options != "" {
		return fmt.Sprintf(`\usepackage[%s]{%s}`, options, name)
	}
	return fmt.Sprintf(`\usepackage{%s}`, name)
}

// Begin returns \begin{env}, followed by {arg} when arg is non-empty.
func Begin(env, arg string) string {
	if arg != "" {
		return fmt.Sprintf(`\begin{%s}{%s}`, env, arg)
	}
	return fmt.Sprintf(`\begin{%s}`, env)
}

// End returns \end{env}.
func End(env string) string {
	return fmt.Sprintf(`\end{%s}`, env)
}

func Caption(text string) string { return `\caption{` + text + `}` }

func Label(name string) string { return `\label{` + name + `}` }

func Bold(text string) string { return `\textbf{` + text + `}` }

func Emph(text string) string { return `\emph{` + text + `}` }

func Underline(text string) string { return `\underline{` + text + `}` }

// Color returns {\color{name}text}, scoping the color to text. Requires
// xcolor.
func Color(name, text string) string { return `{\color{` + name + `}` + text + `}` }

// Subscript and Superscript use math mode, for use in tabular data.
func Subscript(text string) string { return `$_{` + text + `}$` }

func Superscript(text string) string { return `$^{` + text + `}$` }

func TextSubscript(text string) string { return `\textsubscript{` + text + `}` }

func TextSuperscript(text string) string { return `\textsuperscript{` + text + `}` }

func Footnote(text string) string { return `\footnote{` + text + `}` }

// Href returns \href{url}{text}. Requires hyperref.
func Href(url, text string) string {
	return `\href{` + url + `}{` + text + `}`
}

// Multicolumn returns \multicolumn{cols}{pos}{text}.
func Multicolumn(cols int, pos, text string) string {
	return fmt.Sprintf(`\multicolumn{%d}{%s}{%s}`, cols, pos, text)
}

// labelDrop lists characters that would break a \label argument.
const labelDrop = `\{}$%&#^~`

// Slug lower-cases title and replaces spaces with underscores. Characters
// that are special inside \label and private-use runes are removed.
func Slug(title string) string {
	// Casers are stateful, so one is built per call.
	s := cases.Lower(language.Und).String(strings.TrimSpace(title))
	s = strings.Map(func(r rune) rune {
		if r == ' ' {
			return '_'
		}
		if strings.ContainsRune(labelDrop, r) || unicode.Is(unicode.Co, r) {
			return -1
		}
		return r
	}, s)
	return s
}

// LabelFor returns prefix:slug(title), the default label of headings,
// sections and tables.
func LabelFor(prefix, title string) string {
	return prefix + ":" + Slug(title)
}
