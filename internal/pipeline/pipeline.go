package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alnah/go-md2latex/internal/doctree"
	"github.com/alnah/go-md2latex/internal/escape"
	"github.com/alnah/go-md2latex/internal/latex"
	"github.com/alnah/go-md2latex/internal/postproc"
	"github.com/alnah/go-md2latex/internal/translate"
)

// Config holds the settings shared by every run of a Pipeline.
type Config struct {
	Listings translate.Listings
	// Fetcher localizes remote images. Nil keeps remote URLs.
	Fetcher postproc.Fetcher
	// StrictImages fails a run on an unavailable remote image.
	StrictImages bool
	Logger       *slog.Logger
}

// Input is one document to convert.
type Input struct {
	Markdown string
	// SourceDir anchors relative image paths. Empty leaves them as written.
	SourceDir string
}

// Result is a finished LaTeX fragment and the packages it needs.
type Result struct {
	LaTeX    string
	Packages *latex.Packages
}

// Pipeline converts Markdown to a LaTeX fragment. It holds no per-run state
// and is safe for concurrent use when its Fetcher is.
type Pipeline struct {
	cfg          Config
	preprocessor MarkdownPreprocessor
	builder      doctree.TreeBuilder
	logger       *slog.Logger
}

// New creates a Pipeline with the goldmark front-end.
func New(cfg Config) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		cfg:          cfg,
		preprocessor: &CommonMarkPreprocessor{},
		builder:      doctree.NewGoldmarkBuilder(),
		logger:       logger,
	}
}

// run carries the state of one conversion.
type run struct {
	text     string
	packages *latex.Packages
	islands  *latex.Islands
}

// textPass applies f to the text and to the payload of pending islands.
func (r *run) textPass(f func(string) string) {
	r.text = f(r.text)
	r.islands.MapText(f)
}

// Run converts one document. Either the complete fragment or an error is
// returned, never a partial result.
func (p *Pipeline) Run(ctx context.Context, in Input) (*Result, error) {
	content := p.preprocessor.PreprocessMarkdown(ctx, in.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := p.builder.Build(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("parsing markdown: %w", err)
	}

	r := &run{packages: latex.NewPackages(), islands: &latex.Islands{}}
	r.text, err = translate.NewVisitor(r.packages, r.islands, p.cfg.Listings).Translate(root)
	if err != nil {
		return nil, fmt.Errorf("rendering tree: %w", err)
	}
	p.logger.Debug("tree rendered", "bytes", len(r.text), "islands", r.islands.Len())

	r.textPass(postproc.StripRoot)
	r.textPass(func(s string) string { return postproc.Refs(s, r.packages) })
	r.textPass(postproc.SupSub)
	r.textPass(func(s string) string { return postproc.Decorations(s, r.packages) })
	r.textPass(postproc.Math)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.text, err = postproc.Tables(r.text, r.islands); err != nil {
		return nil, fmt.Errorf("converting tables: %w", err)
	}

	images := &postproc.Images{
		Fetcher:   p.cfg.Fetcher,
		Strict:    p.cfg.StrictImages,
		SourceDir: in.SourceDir,
		Packages:  r.packages,
		Logger:    p.logger,
	}
	if r.text, err = images.Run(ctx, r.text, r.islands); err != nil {
		return nil, fmt.Errorf("converting images: %w", err)
	}

	if r.text, err = postproc.Links(r.text, r.islands, r.packages); err != nil {
		return nil, fmt.Errorf("converting links: %w", err)
	}

	r.text = escape.UnescapeHTML(r.text)

	if r.text, err = restoreCode(r.text, r.islands); err != nil {
		return nil, err
	}
	if err := latex.Unresolved(r.text); err != nil {
		return nil, fmt.Errorf("internal error: %w", err)
	}

	p.logger.Debug("conversion complete", "bytes", len(r.text), "packages", r.packages.Names())
	return &Result{LaTeX: r.text, Packages: r.packages}, nil
}

// restoreCode puts code blocks and spans back once no pass can touch them.
func restoreCode(text string, islands *latex.Islands) (string, error) {
	return islands.Resolve(text, func(isl latex.Island) (string, bool, error) {
		switch isl.(type) {
		case latex.VerbatimIsland, latex.CodeIsland:
			return isl.LaTeX(), true, nil
		}
		return "", false, nil
	})
}
