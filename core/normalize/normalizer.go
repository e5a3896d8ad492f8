// Package normalize converts the HTML fragments some sites embed in recipe
// text fields (descriptions, step text, review bodies) into Markdown for the
// human-readable renderers.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts an HTML fragment into Markdown.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

// Text normalizes a recipe text field. Plain text is returned trimmed and
// untouched; only values that carry tags or entities go through the converter.
func (n *MarkdownNormalizer) Text(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !HasMarkup(s) {
		return s, nil
	}
	return n.Normalize(s)
}

// HasMarkup reports whether s looks like an HTML fragment: it contains a tag
// or a character reference.
func HasMarkup(s string) bool {
	if i := strings.IndexByte(s, '<'); i >= 0 && strings.IndexByte(s[i:], '>') > 0 {
		return true
	}
	if i := strings.IndexByte(s, '&'); i >= 0 && strings.IndexByte(s[i:], ';') > 0 {
		return true
	}
	return false
}
