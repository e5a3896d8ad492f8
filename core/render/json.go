// Package render — JSON renderer.
// Emits the canonical JSON form of a recipe: the document the deserializer
// accepts back to an equal recipe. With source metadata enabled the recipe is
// wrapped in an envelope alongside where and when it was fetched.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/schema"
)

// RecipeJSON is the envelope written when source metadata is requested.
type RecipeJSON struct {
	Source core.SourceMetadata `json:"source"`
	Recipe *schema.Recipe      `json:"recipe"`
}

// JSONRenderer produces indented JSON.
type JSONRenderer struct {
	withSource bool
}

// NewJSONRenderer creates a JSONRenderer that emits the bare canonical recipe.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// NewJSONEnvelopeRenderer creates a JSONRenderer that wraps the recipe in a
// RecipeJSON envelope.
func NewJSONEnvelopeRenderer() *JSONRenderer {
	return &JSONRenderer{withSource: true}
}

// Render marshals the recipe.
func (r *JSONRenderer) Render(recipe *schema.Recipe, meta core.SourceMetadata) ([]byte, error) {
	var v any = recipe
	if r.withSource {
		v = RecipeJSON{Source: meta, Recipe: recipe}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
