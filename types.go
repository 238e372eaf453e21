package md2latex

import (
	"context"
	"log/slog"
	"time"

	"github.com/alnah/go-md2latex/internal/latex"
	"github.com/alnah/go-md2latex/internal/postproc"
	"github.com/alnah/go-md2latex/internal/translate"
)

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	// SourceDir anchors relative image paths (optional). Empty leaves them
	// as written.
	SourceDir string
}

// Package is a LaTeX package with its options.
type Package = latex.Package

// ConvertResult is a LaTeX body fragment and the packages it requires.
type ConvertResult struct {
	LaTeX    string
	Packages []Package
}

// Preamble returns one \usepackage line per required package.
func (r *ConvertResult) Preamble() string {
	pkgs := latex.NewPackages()
	for _, p := range r.Packages {
		pkgs.Require(p.Name, p.Options...)
	}
	return pkgs.Preamble()
}

// Listings selects the environment used for fenced code blocks.
type Listings = translate.Listings

const (
	ListingsVerbatim = translate.ListingsVerbatim
	ListingsMinted   = translate.ListingsMinted
)

// Fetcher makes remote images available locally.
// Localize returns a local path for src, or an error wrapping
// ErrImageUnavailable or ErrImageFetch.
type Fetcher interface {
	Localize(ctx context.Context, src string) (string, error)
}

// Compile-time check that internal fetchers satisfy the public interface.
var (
	_ Fetcher = (*postproc.HTTPFetcher)(nil)
	_ Fetcher = postproc.NopFetcher{}
)

// NewHTTPFetcher returns the default fetcher: a HEAD check, then a download
// into a fresh temporary directory.
func NewHTTPFetcher(timeout time.Duration) Fetcher {
	return postproc.NewHTTPFetcher(timeout)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	fetcher      Fetcher
	fetcherSet   bool
	imageTimeout time.Duration
	strictImages bool
	logger       *slog.Logger
	listings     Listings
	assetPath    string
}

// defaultImageTimeout is used when no timeout is specified.
const defaultImageTimeout = postproc.DefaultFetchTimeout

// WithFetcher replaces the image fetcher. A nil fetcher keeps remote image
// URLs without any network access.
func WithFetcher(f Fetcher) Option {
	return func(c *Converter) {
		c.cfg.fetcher = f
		c.cfg.fetcherSet = true
	}
}

// WithImageTimeout sets the timeout of each remote image request.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithImageTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2latex: WithImageTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.imageTimeout = d
	}
}

// WithStrictImages makes an unavailable remote image fail the conversion
// instead of keeping its URL.
func WithStrictImages(strict bool) Option {
	return func(c *Converter) {
		c.cfg.strictImages = strict
	}
}

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = l
	}
}

// WithListings selects verbatim or minted code blocks.
func WithListings(l Listings) Option {
	return func(c *Converter) {
		c.cfg.listings = l
	}
}

// WithAssetPath loads templates from dir, falling back to the embedded
// ones for templates dir does not provide.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// ParseListings maps "verbatim" or "minted" to a Listings style.
func ParseListings(s string) (Listings, error) {
	return translate.ParseListings(s)
}
