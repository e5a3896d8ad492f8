package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/render"
	"github.com/gaurav-prasanna/recipepipe/core/schema"
	"github.com/gaurav-prasanna/recipepipe/core/website"
)

const soupDoc = `{
	"@context": "https://schema.org",
	"@type": "Recipe",
	"name": "Roasted Carrot Soup",
	"description": "A <em>velvety</em> soup &amp; a fall favourite.",
	"image": "https://abuelascounter.com/soup.jpeg",
	"author": {"@type": "Person", "name": "Abuelas Cuban Counter"},
	"datePublished": "2023-10-24T19:45:56+00:00",
	"recipeCategory": "Soups",
	"recipeYield": ["6", "6 servings"],
	"prepTime": "PT10M",
	"cookTime": "PT1H35M",
	"recipeIngredient": ["3 cups of carrots", "1 apple"],
	"recipeInstructions": [
		{"@type": "HowToStep", "text": "Preheat oven to 425 degrees."},
		{"@type": "HowToStep", "text": "Roast everything.\nThen blend."}
	],
	"aggregateRating": {"@type": "AggregateRating", "ratingValue": 4.5, "ratingCount": 38},
	"suitableForDiet": "https://schema.org/VegetarianDiet",
	"nutrition": {"@type": "NutritionInformation", "calories": "149 calories"}
}`

var soupMeta = core.SourceMetadata{
	URL:       "https://abuelascounter.com/roasted-carrot-soup",
	Website:   website.AbuelasCounterCom,
	FetchedAt: "2024-01-02T03:04:05Z",
}

func soup(t *testing.T) *schema.Recipe {
	t.Helper()
	r, err := schema.Decode([]byte(soupDoc))
	require.NoError(t, err)
	return r
}

func TestJSONRenderer_Canonical(t *testing.T) {
	t.Parallel()

	r := soup(t)
	out, err := render.NewJSONRenderer().Render(r, soupMeta)
	require.NoError(t, err)
	assert.Equal(t, ".json", render.NewJSONRenderer().Extension())

	again, err := schema.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, r.Name, again.Name)
	assert.Equal(t, r.RecipeInstructions, again.RecipeInstructions)

	out2, err := render.NewJSONRenderer().Render(again, soupMeta)
	require.NoError(t, err)
	assert.JSONEq(t, string(out), string(out2))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.NotContains(t, raw, "@graph")
	assert.InDelta(t, 6, raw["recipeYield"], 0)
}

func TestJSONRenderer_Envelope(t *testing.T) {
	t.Parallel()

	out, err := render.NewJSONEnvelopeRenderer().Render(soup(t), soupMeta)
	require.NoError(t, err)

	var env struct {
		Source core.SourceMetadata `json:"source"`
		Recipe json.RawMessage     `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(out, &env))
	assert.Equal(t, soupMeta, env.Source)

	r, err := schema.Decode(env.Recipe)
	require.NoError(t, err)
	assert.Equal(t, "Roasted Carrot Soup", r.Name)
}

func TestMarkdownRenderer(t *testing.T) {
	t.Parallel()

	out, err := render.NewMarkdownRenderer().Render(soup(t), soupMeta)
	require.NoError(t, err)
	md := string(out)

	assert.True(t, strings.HasPrefix(md, "# Roasted Carrot Soup\n"))
	for _, want := range []string{
		"![Roasted Carrot Soup](https://abuelascounter.com/soup.jpeg)",
		"A *velvety* soup & a fall favourite.",
		"- **Author:** Abuelas Cuban Counter",
		"- **Yield:** 6",
		"- **Prep time:** 10m (PT10M)",
		"- **Cook time:** 1h 35m (PT1H35M)",
		"- **Category:** Soups",
		"- **Rating:** 4.5 / 5 (38 ratings)",
		"- **Diet:** Vegetarian",
		"- **Published:** 2023-10-24",
		"## Ingredients\n\n- 3 cups of carrots\n- 1 apple\n",
		"1. Preheat oven to 425 degrees.\n2. Roast everything.\n   Then blend.\n",
		"- Calories: 149 calories",
		"Source: <https://abuelascounter.com/roasted-carrot-soup>",
	} {
		assert.Contains(t, md, want)
	}
}

func TestMarkdownRenderer_TextInstructions(t *testing.T) {
	t.Parallel()

	r, err := schema.Decode([]byte(`{"@type":"Recipe","name":"Estrogonofe",
		"recipeInstructions":"Doure a cebola.\n\nJunte a carne."}`))
	require.NoError(t, err)

	out, err := render.NewMarkdownRenderer().Render(r, core.SourceMetadata{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "1. Doure a cebola.\n2. Junte a carne.\n")
	assert.NotContains(t, string(out), "Source:")
	assert.Contains(t, string(out), "- **Category:** uncategorized")
}

func TestPDFRenderer(t *testing.T) {
	t.Parallel()

	renderer := render.NewPDFRenderer()
	out, err := renderer.Render(soup(t), soupMeta)
	require.NoError(t, err)
	assert.Equal(t, ".pdf", renderer.Extension())
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "%%EOF")
}

func TestPDFRenderer_NonLatinText(t *testing.T) {
	t.Parallel()

	r, err := schema.Decode([]byte(`{"@type":"Recipe","name":"Estrogonofe de carne — fácil",
		"recipeIngredient":["1 ½ xícara de cogumelos","塩"]}`))
	require.NoError(t, err)

	out, err := render.NewPDFRenderer().Render(r, core.SourceMetadata{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
