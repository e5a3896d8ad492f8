// Package scrape extracts schema.org recipes from web pages.
//
// A Scraper composes the pipeline for one URL, strictly in sequence:
// classify the host, fetch the page, locate JSON-LD payloads, and decode
// them until one yields a recipe. The fetch is the only step that may block.
// A Scraper holds no mutable state and is safe for concurrent use.
package scrape

import (
	"context"
	"fmt"
	"sync"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/extract"
	"github.com/gaurav-prasanna/recipepipe/core/fetch"
	"github.com/gaurav-prasanna/recipepipe/core/schema"
	"github.com/gaurav-prasanna/recipepipe/core/website"
)

// Scraper extracts recipes from pages of known websites.
type Scraper struct {
	fetcher core.Fetcher
	table   *website.Table
	locator *extract.Locator
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithTable classifies URLs against t instead of the embedded hostname table.
func WithTable(t *website.Table) Option {
	return func(s *Scraper) {
		s.table = t
	}
}

// New creates a Scraper that fetches pages with f.
func New(f core.Fetcher, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher: f,
		locator: extract.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewBlocking creates a Scraper over a synchronous fetcher.
func NewBlocking(f core.BlockingFetcher, opts ...Option) *Scraper {
	return New(fetch.Blocking(f), opts...)
}

var defaultScraper = sync.OnceValue(func() *Scraper {
	return New(fetch.New())
})

// Default returns a process-wide Scraper backed by an HTTPFetcher with default
// settings. It is created on first use.
func Default() *Scraper {
	return defaultScraper()
}

// Scrape extracts a recipe from rawURL using the Default scraper.
func Scrape(ctx context.Context, rawURL string) (*schema.Recipe, error) {
	return Default().Scrape(ctx, rawURL)
}

// Classify identifies the website rawURL belongs to.
func (s *Scraper) Classify(rawURL string) (website.Website, error) {
	if s.table != nil {
		return s.table.Classify(rawURL)
	}
	return website.Classify(rawURL)
}

// Scrape extracts the recipe published at rawURL.
//
// Errors: ErrUnknownWebsite for hosts outside the table, *TransportError when
// the fetcher fails (including cancellation), ErrLdJSONNotFound when the page
// has no JSON-LD, ErrDomainNotImplemented when no payload yields a recipe,
// and *SelectorError when the HTML cannot be parsed.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*schema.Recipe, error) {
	// 1. Classify
	site, err := s.Classify(rawURL)
	if err != nil {
		return nil, err
	}

	// 2. Fetch
	html, err := s.fetcher.Fetch(ctx, site, rawURL)
	if err != nil {
		return nil, &TransportError{Website: site, URL: rawURL, Err: err}
	}

	// 3. Locate and decode
	return s.FromHTML(html)
}

// FromHTML extracts a recipe from an already fetched page. Payloads are tried
// in document order and the first recipe wins. When every payload fails, the
// returned error matches ErrDomainNotImplemented and wraps the last failure.
func (s *Scraper) FromHTML(html string) (*schema.Recipe, error) {
	payloads, err := s.locator.Locate(html)
	if err != nil {
		return nil, &SelectorError{Err: err}
	}

	var (
		candidates int
		lastErr    error
	)
	for payload := range payloads {
		candidates++
		recipe, err := schema.Decode([]byte(payload))
		if err == nil {
			return recipe, nil
		}
		lastErr = err
	}

	if candidates == 0 {
		return nil, ErrLdJSONNotFound
	}
	return nil, fmt.Errorf("%w: %w", ErrDomainNotImplemented, lastErr)
}
