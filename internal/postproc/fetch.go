package postproc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

const (
	// DefaultFetchTimeout bounds each remote image request.
	DefaultFetchTimeout = 30 * time.Second
	// MaxImageSize limits a downloaded image (default 50MB).
	MaxImageSize = 50 << 20
)

// Fetcher makes a remote image available to LaTeX, which cannot include
// images over the network.
type Fetcher interface {
	// Localize returns a local path for the image at src. It returns an
	// error wrapping ErrImageUnavailable when the server does not serve the
	// image, and one wrapping ErrImageFetch on transport failure.
	Localize(ctx context.Context, src string) (string, error)
}

// NopFetcher leaves every source unchanged, for offline conversion.
type NopFetcher struct{}

func (NopFetcher) Localize(_ context.Context, src string) (string, error) {
	return src, nil
}

// HTTPFetcher checks images with HEAD and downloads those answering 200
// into a fresh temporary directory. Downloaded files are not removed.
type HTTPFetcher struct {
	client *http.Client
	// TempDir is the parent of the per-image directories; empty means
	// os.TempDir.
	TempDir string
	// MaxSize caps a download in bytes; zero means MaxImageSize.
	MaxSize int64
}

// NewHTTPFetcher creates an HTTPFetcher whose requests time out after
// timeout (DefaultFetchTimeout when zero or negative).
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
	}
}

// CloseIdleConnections releases keep-alive connections of the client.
func (f *HTTPFetcher) CloseIdleConnections() {
	f.client.CloseIdleConnections()
}

// Localize implements Fetcher.
func (f *HTTPFetcher) Localize(ctx context.Context, src string) (string, error) {
	u, err := url.Parse(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageFetch, err)
	}

	if err := f.head(ctx, src); err != nil {
		return "", err
	}

	dir, err := os.MkdirTemp(f.TempDir, "md2latex-img-")
	if err != nil {
		return "", fmt.Errorf("%w: creating temp dir: %v", ErrImageFetch, err)
	}
	dest := filepath.Join(dir, imageFilename(u))

	if err := f.download(ctx, src, dest); err != nil {
		_ = os.RemoveAll(dir)
		return "", err
	}
	return dest, nil
}

func (f *HTTPFetcher) head(ctx context.Context, src string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, src, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageFetch, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageFetch, err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: HEAD %s returned %d", ErrImageUnavailable, src, resp.StatusCode)
	}
	return nil
}

func (f *HTTPFetcher) download(ctx context.Context, src, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageFetch, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s returned %d", ErrImageUnavailable, src, resp.StatusCode)
	}

	file, err := os.Create(dest) // #nosec G304 -- dest is inside a directory we just created
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageFetch, err)
	}
	limit := f.MaxSize
	if limit <= 0 {
		limit = MaxImageSize
	}
	n, err := io.Copy(file, io.LimitReader(resp.Body, limit+1))
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: writing %s: %v", ErrImageFetch, dest, err)
	}
	if n > limit {
		_ = file.Close()
		return fmt.Errorf("%w: %s: image exceeds limit of %d bytes", ErrImageFetch, src, limit)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrImageFetch, err)
	}
	return nil
}

// imageFilename returns the last path segment of u, or "image" when the
// path has none.
func imageFilename(u *url.URL) string {
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "image"
	}
	return name
}
