// Package extract locates structured data embedded in HTML pages.
// It finds every <script type="application/ld+json"> element with a real HTML
// parser and yields the raw payloads in document order, without validating them.
package extract

import (
	"fmt"
	"iter"
	"mime"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LDJSONType is the media type of JSON-LD script blocks.
const LDJSONType = "application/ld+json"

// Locator finds JSON-LD payloads in HTML.
type Locator struct{}

// New creates a Locator.
func New() *Locator {
	return &Locator{}
}

// Locate parses html and returns a lazy sequence of the inner text of every
// JSON-LD script element, in document order. An empty sequence means the page
// carries no structured data.
func (l *Locator) Locate(html string) (iter.Seq[string], error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	scripts := doc.Find("script[type]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return isLDJSON(s.AttrOr("type", ""))
	})

	return func(yield func(string) bool) {
		for i := range scripts.Length() {
			if !yield(scripts.Eq(i).Text()) {
				return
			}
		}
	}, nil
}

// isLDJSON matches the media type case-insensitively and ignores parameters
// such as charset.
func isLDJSON(typ string) bool {
	mediaType, _, err := mime.ParseMediaType(typ)
	if err != nil {
		return strings.EqualFold(strings.TrimSpace(typ), LDJSONType)
	}
	return mediaType == LDJSONType
}

// LDJSON is a convenience wrapper around Locator.Locate.
func LDJSON(html string) (iter.Seq[string], error) {
	return New().Locate(html)
}
