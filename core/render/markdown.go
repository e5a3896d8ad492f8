// Package render provides output renderers for extracted recipes.
// This file implements the Markdown renderer, which writes a recipe card.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/normalize"
	"github.com/gaurav-prasanna/recipepipe/core/schema"
)

// MarkdownRenderer writes a recipe as a Markdown card. Text fields that carry
// HTML are converted to Markdown on the way.
type MarkdownRenderer struct {
	normalizer *normalize.MarkdownNormalizer
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{normalizer: normalize.New()}
}

// Render writes the recipe card.
func (r *MarkdownRenderer) Render(recipe *schema.Recipe, meta core.SourceMetadata) ([]byte, error) {
	c, err := newCard(recipe, meta, r.normalizer)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", c.Title)
	if c.Image != "" {
		fmt.Fprintf(&buf, "![%s](%s)\n\n", c.Title, c.Image)
	}
	if c.Description != "" {
		fmt.Fprintf(&buf, "%s\n\n", c.Description)
	}

	for _, f := range c.Facts {
		fmt.Fprintf(&buf, "- **%s:** %s\n", f.Label, f.Value)
	}
	if len(c.Facts) > 0 {
		buf.WriteString("\n")
	}

	if len(c.Ingredients) > 0 {
		buf.WriteString("## Ingredients\n\n")
		for _, ing := range c.Ingredients {
			fmt.Fprintf(&buf, "- %s\n", ing)
		}
		buf.WriteString("\n")
	}

	if len(c.Steps) > 0 {
		buf.WriteString("## Instructions\n\n")
		for i, step := range c.Steps {
			fmt.Fprintf(&buf, "%d. %s\n", i+1, indentContinuation(step))
		}
		buf.WriteString("\n")
	}

	if len(c.Nutrition) > 0 {
		buf.WriteString("## Nutrition\n\n")
		for _, f := range c.Nutrition {
			fmt.Fprintf(&buf, "- %s: %s\n", f.Label, f.Value)
		}
		buf.WriteString("\n")
	}

	if c.Source != "" {
		fmt.Fprintf(&buf, "---\n\nSource: <%s>\n", c.Source)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// indentContinuation keeps multi-line steps inside their list item.
func indentContinuation(s string) string {
	var buf bytes.Buffer
	for i, line := range bytes.Split([]byte(s), []byte("\n")) {
		if i > 0 {
			buf.WriteString("\n")
			if len(bytes.TrimSpace(line)) > 0 {
				buf.WriteString("   ")
			}
		}
		buf.Write(line)
	}
	return buf.String()
}
