// Package core defines the pipeline interfaces for recipepipe.
// Each stage of the pipeline is a clean, testable interface; the recipe
// extractor itself lives in core/scrape and depends only on these contracts.
package core

import (
	"context"

	"github.com/gaurav-prasanna/recipepipe/core/schema"
	"github.com/gaurav-prasanna/recipepipe/core/website"
)

// SourceMetadata describes where a recipe came from.
type SourceMetadata struct {
	URL       string          `json:"url"`
	Website   website.Website `json:"website"`
	FetchedAt string          `json:"fetched_at"` // ISO8601
}

// Fetcher retrieves the HTML body of a page on a known website.
// It may suspend on network I/O and must honour ctx cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, site website.Website, url string) (string, error)
}

// BlockingFetcher is the synchronous counterpart of Fetcher, typically backed
// by local fixtures.
type BlockingFetcher interface {
	FetchBlocking(site website.Website, url string) (string, error)
}

// Normalizer converts an HTML fragment into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a recipe (and its source metadata) into a final output format.
type Renderer interface {
	Render(recipe *schema.Recipe, meta SourceMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
