package md2latex

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alnah/go-md2latex/internal/assets"
	"github.com/alnah/go-md2latex/internal/pipeline"
	"github.com/alnah/go-md2latex/internal/postproc"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ assets.TemplateLoader         = (*assets.TemplateResolver)(nil)
)

// Converter orchestrates the Markdown-to-LaTeX pipeline and the document
// templates. It is safe for concurrent use.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
type Converter struct {
	cfg       converterConfig
	pipeline  *pipeline.Pipeline
	templates *assets.TemplateSet
	logger    *slog.Logger
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithImageTimeout, WithAssetPath).
// Returns error if the asset path is invalid or a template fails to parse.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{imageTimeout: defaultImageTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.cfg.logger
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var loader assets.TemplateLoader = assets.NewEmbeddedLoader()
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewTemplateResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		loader = resolver
	}

	templates, err := assets.LoadTemplateSet(loader)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	c.templates = templates

	if !c.cfg.fetcherSet {
		c.cfg.fetcher = postproc.NewHTTPFetcher(c.cfg.imageTimeout)
	}

	pcfg := pipeline.Config{
		Listings:     c.cfg.listings,
		StrictImages: c.cfg.strictImages,
		Logger:       c.logger,
	}
	if c.cfg.fetcher != nil {
		pcfg.Fetcher = c.cfg.fetcher
	}
	c.pipeline = pipeline.New(pcfg)

	return c, nil
}

// Convert runs the full pipeline and returns the LaTeX fragment.
// The context is used for cancellation and bounds remote image fetches.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	res, err := c.pipeline.Run(ctx, pipeline.Input{
		Markdown:  input.Markdown,
		SourceDir: input.SourceDir,
	})
	if err != nil {
		return nil, err
	}

	return &ConvertResult{LaTeX: res.LaTeX, Packages: res.Packages.List()}, nil
}

// Close releases idle network connections held by the image fetcher.
func (c *Converter) Close() error {
	if f, ok := c.cfg.fetcher.(interface{ CloseIdleConnections() }); ok {
		f.CloseIdleConnections()
	}
	return nil
}
