// Package crawl discovers candidate recipe pages on one known website for
// batch scraping. It reads the site's sitemap.xml first and falls back to a
// breadth-first walk of same-site links. Every page, sitemaps included, goes
// through the same core.Fetcher the extractor uses.
package crawl

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/website"
)

// DefaultMaxPages bounds a discovery run when no limit is configured.
const DefaultMaxPages = 100

// maxSitemaps bounds how many nested sitemaps one run may read.
const maxSitemaps = 20

// ErrNothingFound is returned when neither the sitemap nor the link walk
// yields a page.
var ErrNothingFound = errors.New("no pages discovered")

// sitemapURL holds a URL from a sitemap.xml.
type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemapDoc covers both a <urlset> and a <sitemapindex>.
type sitemapDoc struct {
	XMLName  xml.Name
	URLs     []sitemapURL `xml:"url"`
	Sitemaps []sitemapURL `xml:"sitemap"`
}

// Discoverer finds pages of one website.
type Discoverer struct {
	fetcher  core.Fetcher
	logger   *zap.Logger
	maxPages int
	table    *website.Table
}

// Option configures a Discoverer.
type Option func(*Discoverer)

// WithTable sets the hostname table used to decide which links belong to the
// website. The embedded table is used otherwise.
func WithTable(t *website.Table) Option {
	return func(d *Discoverer) {
		d.table = t
	}
}

// New creates a Discoverer. A non-positive maxPages means DefaultMaxPages.
func New(fetcher core.Fetcher, logger *zap.Logger, maxPages int, opts ...Option) *Discoverer {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Discoverer{
		fetcher:  fetcher,
		logger:   logger.Named("crawl"),
		maxPages: maxPages,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Discoverer) hosts() (*website.Table, error) {
	if d.table != nil {
		return d.table, nil
	}
	return website.Default()
}

// Discover returns up to maxPages URLs of site, starting from baseURL. The
// start page is included when the sitemap is unusable.
func (d *Discoverer) Discover(ctx context.Context, baseURL string, site website.Website) ([]string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("parsing base URL %q: %w", baseURL, website.ErrUnknownWebsite)
	}
	scheme := parsed.Scheme
	if scheme == "" {
		scheme = "https"
	}
	table, err := d.hosts()
	if err != nil {
		return nil, err
	}
	belongs := func(u string) bool { return SameWebsite(table, u, site) }

	// 1. Sitemap
	sitemap := fmt.Sprintf("%s://%s/sitemap.xml", scheme, parsed.Host)
	urls, err := d.fromSitemap(ctx, sitemap, site, belongs)
	switch {
	case err != nil && ctx.Err() != nil:
		return nil, ctx.Err()
	case err != nil:
		d.logger.Debug("sitemap unusable, walking links",
			zap.String("sitemap", sitemap), zap.Error(err))
	case len(urls) > 0:
		d.logger.Info("discovered pages from sitemap",
			zap.String("website", string(site)), zap.Int("pages", len(urls)))
		return urls, nil
	}

	// 2. Links
	urls, err = d.fromLinks(ctx, baseURL, site, belongs)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, ErrNothingFound
	}
	d.logger.Info("discovered pages from links",
		zap.String("website", string(site)), zap.Int("pages", len(urls)))
	return urls, nil
}

// fromSitemap reads a sitemap and the sitemaps it indexes, breadth first.
// Only locations accepted by belongs are followed.
func (d *Discoverer) fromSitemap(ctx context.Context, sitemap string, site website.Website, belongs func(string) bool) ([]string, error) {
	pages := NewQueue()
	maps := NewQueue()
	maps.Add(sitemap)

	var firstErr error
	for maps.HasNext() && maps.Visited() <= maxSitemaps && pages.Len() < d.maxPages {
		current := maps.Next()

		body, err := d.fetcher.Fetch(ctx, site, current)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			firstErr = firstOf(firstErr, fmt.Errorf("fetching %s: %w", current, err))
			continue
		}

		var doc sitemapDoc
		if err := xml.Unmarshal([]byte(body), &doc); err != nil {
			firstErr = firstOf(firstErr, fmt.Errorf("parsing %s: %w", current, err))
			continue
		}

		for _, s := range doc.Sitemaps {
			if loc := strings.TrimSpace(s.Loc); belongs(loc) {
				maps.Add(loc)
			}
		}
		for _, u := range doc.URLs {
			loc := strings.TrimSpace(u.Loc)
			if belongs(loc) && IsRecipeCandidate(loc) && pages.Len() < d.maxPages {
				pages.Add(NormalizeURL(loc))
			}
		}
	}

	if pages.Len() == 0 && firstErr != nil {
		return nil, firstErr
	}
	return pages.All(), nil
}

// fromLinks performs BFS crawling over same-site links.
func (d *Discoverer) fromLinks(ctx context.Context, startURL string, site website.Website, belongs func(string) bool) ([]string, error) {
	queue := NewQueue()
	queue.Add(NormalizeURL(startURL))

	for queue.HasNext() && queue.Visited() <= d.maxPages {
		current := queue.Next()

		body, err := d.fetcher.Fetch(ctx, site, current)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			d.logger.Debug("skipping page", zap.String("url", current), zap.Error(err))
			continue
		}

		links, err := extractLinks(body, current)
		if err != nil {
			continue
		}
		for _, link := range links {
			if queue.Visited() >= d.maxPages {
				break
			}
			if belongs(link) && IsRecipeCandidate(link) {
				queue.Add(NormalizeURL(link))
			}
		}
	}

	return queue.All(), nil
}

// firstOf keeps the earliest failure for reporting.
func firstOf(first, next error) error {
	if first != nil {
		return first
	}
	return next
}

// extractLinks extracts all href values from <a> tags, resolving relative URLs.
func extractLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if b, err := url.Parse(href); err == nil {
			base = base.ResolveReference(b)
		}
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if resolved := resolveURL(href, base); resolved != "" {
			links = append(links, resolved)
		}
	})
	return links, nil
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) string {
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	for _, scheme := range []string{"mailto:", "javascript:", "tel:", "data:"} {
		if strings.HasPrefix(strings.ToLower(href), scheme) {
			return ""
		}
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
