// Package crawl — URL filtering rules.
// Decides which discovered URLs belong to the website being crawled and which
// could plausibly hold a recipe.
package crawl

import (
	"net/url"
	"path"
	"strings"

	"github.com/gaurav-prasanna/recipepipe/core/website"
)

// staticExtensions are file extensions that never hold a recipe page.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true, ".avif": true,
	".css": true, ".js": true, ".mjs": true, ".json": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true, ".xml": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// listingSegments are path segments of archive, account and feed pages that
// WordPress-style recipe sites publish next to their recipes.
var listingSegments = map[string]bool{
	"tag": true, "tags": true, "category": true, "categories": true,
	"author": true, "page": true, "feed": true, "search": true,
	"wp-json": true, "wp-admin": true, "wp-content": true, "wp-login.php": true,
	"cart": true, "checkout": true, "account": true, "login": true,
	"privacy-policy": true, "terms": true, "contact": true,
}

// SameWebsite reports whether rawURL's host belongs to site in t. Aliases
// count as the same website.
func SameWebsite(t *website.Table, rawURL string, site website.Website) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	got, ok := t.Lookup(parsed.Hostname())
	return ok && got == site
}

// IsStaticAsset reports whether rawURL points to a static asset (image, CSS, JS, etc.).
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return staticExtensions[ext]
}

// IsRecipeCandidate rejects static assets, the home page and listing pages.
func IsRecipeCandidate(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || IsStaticAsset(rawURL) {
		return false
	}
	p := strings.Trim(parsed.Path, "/")
	if p == "" {
		return false
	}
	for _, seg := range strings.Split(strings.ToLower(p), "/") {
		if listingSegments[seg] {
			return false
		}
	}
	return true
}

// NormalizeURL strips fragments and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""
	parsed.RawFragment = ""

	// Keep the root "/".
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
		parsed.RawPath = strings.TrimSuffix(parsed.RawPath, "/")
	}

	return parsed.String()
}
