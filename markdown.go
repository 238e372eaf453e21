package md2latex

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alnah/go-md2latex/internal/escape"
	"github.com/alnah/go-md2latex/internal/postproc"
)

// defaultConverter backs the package-level helpers.
var defaultConverter = sync.OnceValues(func() (*Converter, error) {
	return NewConverter()
})

// ParseMarkdown converts Markdown to a LaTeX fragment with the default
// converter. Empty input yields an empty fragment.
func ParseMarkdown(source string) (string, error) {
	return parseMarkdown(context.Background(), source, "")
}

// LoadMarkdown reads a Markdown file and converts it. Relative image paths
// resolve against the file's directory.
func LoadMarkdown(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("reading markdown: %w", err)
	}
	return parseMarkdown(context.Background(), string(content), filepath.Dir(path))
}

func parseMarkdown(ctx context.Context, source, sourceDir string) (string, error) {
	if source == "" {
		return "", nil
	}
	conv, err := defaultConverter()
	if err != nil {
		return "", err
	}
	res, err := conv.Convert(ctx, Input{Markdown: source, SourceDir: sourceDir})
	if err != nil {
		return "", err
	}
	return res.LaTeX, nil
}

// ConvertTable converts a pseudo-HTML table island, such as a raw <table>
// block, to a LaTeX table. Returns an error wrapping ErrMalformedIsland if
// a cell spans an invalid number of columns.
func ConvertTable(island string) (string, error) {
	return postproc.ConvertTable(island)
}

// ConvertImage converts an <img> tag to a figure. Remote sources go through
// fetcher; a nil fetcher keeps them as written.
func ConvertImage(ctx context.Context, tag string, fetcher Fetcher) (string, error) {
	var f postproc.Fetcher
	if fetcher != nil {
		f = fetcher
	}
	return postproc.ConvertImage(ctx, tag, f)
}

// ConvertLink replaces the first anchor of block with \href.
func ConvertLink(block string) string {
	return postproc.ConvertLink(block)
}

// EscapeLatexEntities escapes LaTeX reserved characters in running text
// and turns quoted passages into \enquote.
func EscapeLatexEntities(text string) string {
	return escape.Latex(text)
}

// UnescapeHTMLEntities decodes &amp;, &lt;, &gt; and &quot;.
func UnescapeHTMLEntities(text string) string {
	return escape.UnescapeHTML(text)
}

// UnescapeLatexEntities reverts \& to &.
func UnescapeLatexEntities(text string) string {
	return escape.UnescapeLatex(text)
}
