package postproc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2latex/internal/escape"
	"github.com/alnah/go-md2latex/internal/latex"
)

// Images converts image islands and raw <img> blocks into figures.
type Images struct {
	// Fetcher localizes remote images. Nil leaves remote sources unchanged.
	Fetcher Fetcher
	// Strict makes an unavailable remote image fail the run instead of
	// keeping its URL.
	Strict bool
	// SourceDir resolves relative image paths when set.
	SourceDir string
	// Packages records the packages figures need when non-nil.
	Packages *latex.Packages
	Logger   *slog.Logger
}

// ConvertImage converts one <img> tag into a figure. Remote sources are
// localized with fetcher; an unavailable image keeps its URL.
func ConvertImage(ctx context.Context, tag string, fetcher Fetcher) (string, error) {
	return (&Images{Fetcher: fetcher}).convertTag(ctx, tag)
}

// rawImgTag matches one author-written <img> tag; quoted attribute values
// may contain '>'.
var rawImgTag = regexp.MustCompile(`(?i)<img\b(?:[^>"']|"[^"]*"|'[^']*')*>`)

// Run resolves image islands and converts every raw <img> tag in place,
// keeping the text around it.
func (p *Images) Run(ctx context.Context, text string, islands *latex.Islands) (string, error) {
	out, err := islands.Resolve(text, func(isl latex.Island) (string, bool, error) {
		img, ok := isl.(latex.ImageIsland)
		if !ok {
			return "", false, nil
		}
		src, err := p.resolve(ctx, img.Src)
		if err != nil {
			return "", false, err
		}
		img.Src = src
		return img.LaTeX(), true, nil
	})
	if err != nil {
		return "", err
	}

	var convErr error
	out = rawImgTag.ReplaceAllStringFunc(out, func(tag string) string {
		if convErr != nil {
			return tag
		}
		fig, err := p.convertTag(ctx, tag)
		if err != nil {
			convErr = err
			return tag
		}
		return fig
	})
	if convErr != nil {
		return "", convErr
	}
	return out, nil
}

// convertTag converts a fragment holding exactly one <img> element.
func (p *Images) convertTag(ctx context.Context, tag string) (string, error) {
	nodes, err := parseFragment(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %v", latex.ErrMalformedIsland, err)
	}
	img := soleElement(nodes, atom.Img)
	if img == nil {
		return "", fmt.Errorf("%w: want a single img element, got %q", latex.ErrMalformedIsland, tag)
	}

	src, _ := attr(img, "src")
	alt, _ := attr(img, "alt")
	src, err = p.resolve(ctx, src)
	if err != nil {
		return "", err
	}
	if p.Packages != nil {
		p.Packages.Require("float")
		p.Packages.Require("graphicx")
		p.Packages.Require("adjustbox", "export")
	}
	return latex.ImageIsland{Src: src, Alt: escape.Latex(alt)}.LaTeX(), nil
}

// resolve localizes remote sources and anchors relative paths at SourceDir.
func (p *Images) resolve(ctx context.Context, src string) (string, error) {
	if !isRemote(src) {
		return resolveRelative(src, p.SourceDir), nil
	}
	if p.Fetcher == nil {
		return src, nil
	}

	local, err := p.Fetcher.Localize(ctx, src)
	if err == nil {
		p.logger().Debug("image localized", "src", src, "path", local)
		return local, nil
	}
	if errors.Is(err, ErrImageUnavailable) && !p.Strict {
		p.logger().Warn("remote image unavailable, keeping URL", "src", src, "error", err)
		return src, nil
	}
	return "", err
}

func (p *Images) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.Logger
}

// isRemote reports whether src carries a URL scheme. Single-letter schemes
// are Windows drive letters.
func isRemote(src string) bool {
	u, err := url.Parse(src)
	return err == nil && len(u.Scheme) > 1 && u.Scheme != "file"
}

// resolveRelative joins a relative path onto dir. Absolute paths, paths
// escaping dir and an empty dir leave src unchanged. The result uses
// forward slashes, which LaTeX accepts on every platform.
func resolveRelative(src, dir string) string {
	if dir == "" || src == "" || filepath.IsAbs(src) || strings.HasPrefix(src, "file:") {
		return src
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return src
	}
	joined := filepath.Join(absDir, src)
	if !isPathUnderDir(joined, absDir) {
		return src
	}
	return filepath.ToSlash(joined)
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}
