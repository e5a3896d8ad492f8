// Package fetch implements the Fetcher interfaces.
// HTTPFetcher performs HTTP GET requests with sensible defaults for scraping
// recipe pages; FileFetcher and MemoryFetcher serve pages from fixtures.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gaurav-prasanna/recipepipe/core/website"
)

const (
	// DefaultTimeout bounds a single page request.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the scraper to websites.
	DefaultUserAgent = "recipepipe/1.0 (https://github.com/gaurav-prasanna/recipepipe)"
	// DefaultMaxBodyBytes caps how much of a page is read.
	DefaultMaxBodyBytes = 16 << 20
)

var (
	// ErrUnexpectedStatus is wrapped when a server answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrBodyTooLarge is wrapped when a page exceeds the body size limit.
	ErrBodyTooLarge = errors.New("response body too large")
)

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxBodyBytes sets the largest page Fetch accepts.
func WithMaxBodyBytes(n int64) Option {
	return func(f *HTTPFetcher) {
		if n > 0 {
			f.maxBody = n
		}
	}
}

// WithClient replaces the underlying HTTP client.
func WithClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// New creates an HTTPFetcher with a sensible timeout.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		maxBody:   DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the HTML content of the given URL. The website tag is not
// needed for plain HTTP and is accepted to satisfy core.Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, _ website.Website, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w %d for %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(body)) > f.maxBody {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrBodyTooLarge, url, f.maxBody)
	}

	return strings.ToValidUTF8(string(body), "\uFFFD"), nil
}
