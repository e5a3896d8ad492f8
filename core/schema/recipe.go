// Package schema decodes schema.org Recipe documents from JSON-LD.
//
// Real-world recipe markup bends the vocabulary constantly: a field may be a
// string, a number, an object or an array of any of those. The decoder accepts
// every benign alternative and resolves it to one typed value, while a few
// sub-records (Organization, ImageObject, AggregateRating) reject unknown
// fields. Marshalling a Recipe produces its canonical JSON form, which decodes
// back to an equal Recipe.
package schema

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultCategory is used when a recipe carries no category.
const DefaultCategory = "uncategorized"

// Recipe is a schema.org Recipe.
type Recipe struct {
	Context       Context      `json:"@context"`
	Type          Type         `json:"@type,omitempty"`
	ID            string       `json:"@id,omitempty"`
	Name          string       `json:"name,omitempty"`
	Description   Description  `json:"description,omitempty"`
	Headline      string       `json:"headline,omitempty"`
	AlternateName string       `json:"alternateName,omitempty"`
	Image         Image        `json:"image,omitempty"`
	ThumbnailURL  URL          `json:"thumbnailUrl,omitempty"`
	Thumbnail     *ImageObject `json:"thumbnail,omitempty"`

	Author      Party `json:"author,omitempty"`
	Publisher   Party `json:"publisher,omitempty"`
	Contributor Party `json:"contributor,omitempty"`

	DateCreated   *Date `json:"dateCreated,omitempty"`
	DateModified  *Date `json:"dateModified,omitempty"`
	DatePublished *Date `json:"datePublished,omitempty"`

	InLanguage      Language         `json:"inLanguage,omitempty"`
	Keywords        Keywords         `json:"keywords,omitempty"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
	Review          []Review         `json:"review,omitempty"`

	RecipeCategory     string       `json:"recipeCategory"`
	RecipeCuisine      string       `json:"recipeCuisine,omitempty"`
	RecipeIngredient   []string     `json:"recipeIngredient,omitempty"`
	RecipeInstructions Instructions `json:"recipeInstructions,omitempty"`
	RecipeYield        Yield        `json:"recipeYield"`
	Yield              Yield        `json:"yield,omitempty"`

	CookTime    *Duration `json:"cookTime,omitempty"`
	PrepTime    *Duration `json:"prepTime,omitempty"`
	PerformTime *Duration `json:"performTime,omitempty"`
	TotalTime   *Duration `json:"totalTime,omitempty"`

	CookingMethod   string                `json:"cookingMethod,omitempty"`
	SuitableForDiet RestrictedDiet        `json:"suitableForDiet,omitempty"`
	Nutrition       *NutritionInformation `json:"nutrition,omitempty"`
	Video           Video                 `json:"video,omitempty"`
	Tool            []Instrument          `json:"tool,omitempty"`
	Supply          []Instrument          `json:"supply,omitempty"`

	URL    URL `json:"url,omitempty"`
	SameAs URL `json:"sameAs,omitempty"`

	ArticleBody         string        `json:"articleBody,omitempty"`
	Award               string        `json:"award,omitempty"`
	CommentCount        int64         `json:"commentCount,omitempty"`
	ContentRating       ContentRating `json:"contentRating,omitempty"`
	CreditText          string        `json:"creditText,omitempty"`
	IsAccessibleForFree *bool         `json:"isAccessibleForFree,omitempty"`
	IsPartOf            Reference     `json:"isPartOf,omitempty"`
	MainEntityOfPage    Reference     `json:"mainEntityOfPage,omitempty"`
	Text                string        `json:"text,omitempty"`

	// Graph holds every node of the enclosing @graph, in source order, when
	// the recipe was selected from a graph document.
	Graph []json.RawMessage `json:"-"`
}

// MarshalJSON writes the canonical form. @type always lists Recipe, followed
// by the resolved type when that is something else, so the output decodes
// back as a recipe. @graph nodes are not part of the canonical form.
func (r Recipe) MarshalJSON() ([]byte, error) {
	type plain Recipe
	var typ any = TypeRecipe
	switch r.Type {
	case "", TypeRecipe, TypeUnspecified:
	default:
		typ = []Type{TypeRecipe, r.Type}
	}
	return json.Marshal(struct {
		Context Context `json:"@context"`
		Type    any     `json:"@type"`
		plain
	}{r.Context, typ, plain(r)})
}

// Usable reports whether the recipe carries ingredients or instructions.
func (r *Recipe) Usable() bool {
	if len(r.RecipeIngredient) > 0 {
		return true
	}
	switch in := r.RecipeInstructions.(type) {
	case nil:
		return false
	case Steps:
		return len(in) > 0
	case Text:
		return strings.TrimSpace(string(in)) != ""
	default:
		return true
	}
}

// UnmarshalJSON decodes a JSON-LD document with Decode.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*r = *decoded
	return nil
}

// Decode parses one JSON-LD document into a Recipe.
//
// Three top-level shapes are recognised: a @graph container, whose first
// Recipe node is used; an object typed Recipe; and an article-shaped object
// (Article, NewsArticle, WebPage) that carries recipe fields directly. Any
// other document yields ErrRecipeNotFound. Structural mismatches yield a
// *DecodeError.
func Decode(data []byte) (*Recipe, error) {
	if !gjson.ValidBytes(data) {
		return nil, &DecodeError{Path: "$", Expected: "JSON document", Got: "invalid JSON"}
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, ErrRecipeNotFound
	}
	root := newObject("$", doc)

	if graph, ok := root.get("@graph"); ok {
		return decodeGraph(root, graph)
	}
	if root.hasType(TypeRecipe) {
		return decodeRecipe(root, nil)
	}
	if root.hasType(TypeArticle) || root.hasType(TypeNewsArticle) || root.hasType(TypeWebPage) {
		r, err := decodeRecipe(root, nil)
		if err != nil {
			return nil, err
		}
		if !r.Usable() {
			return nil, ErrRecipeNotFound
		}
		return r, nil
	}
	return nil, ErrRecipeNotFound
}

// decodeGraph selects the first node typed Recipe. Nodes without their own
// @context inherit the document's.
func decodeGraph(root *object, graph gjson.Result) (*Recipe, error) {
	path := child(root.path, "@graph")
	if !graph.IsArray() {
		return nil, mismatch(path, "array of nodes", graph)
	}
	nodes := graph.Array()
	for i, node := range nodes {
		if !node.IsObject() {
			continue
		}
		o := newObject(elem(path, i), node)
		if !o.hasType(TypeRecipe) {
			continue
		}
		if _, ok := o.get("@context"); !ok {
			if ctx, ok := root.get("@context"); ok {
				o.fields["@context"] = ctx
			}
		}
		raw := make([]json.RawMessage, len(nodes))
		for j, n := range nodes {
			raw[j] = json.RawMessage(n.Raw)
		}
		return decodeRecipe(o, raw)
	}
	return nil, ErrRecipeNotFound
}

func decodeRecipe(o *object, graph []json.RawMessage) (*Recipe, error) {
	r := &Recipe{
		Context:        ContextSchemaOrg,
		RecipeCategory: DefaultCategory,
		RecipeYield:    defaultYield,
		Graph:          graph,
	}

	field(o, "@context", &r.Context, decodeContext)
	field(o, "@type", &r.Type, decodeType)
	field(o, "@id", &r.ID, decodeText)
	field(o, "name", &r.Name, decodeTrimmed)
	field(o, "description", &r.Description, decodeDescription)
	field(o, "headline", &r.Headline, decodeText)
	field(o, "alternateName", &r.AlternateName, decodeText)
	field(o, "image", &r.Image, decodeImage)
	field(o, "thumbnailUrl", &r.ThumbnailURL, decodeURL)
	field(o, "thumbnail", &r.Thumbnail, decodeThumbnail)

	field(o, "author", &r.Author, decodeParty)
	field(o, "publisher", &r.Publisher, decodeParty)
	field(o, "contributor", &r.Contributor, decodeParty)

	field(o, "dateCreated", &r.DateCreated, decodeDate)
	field(o, "dateModified", &r.DateModified, decodeDate)
	field(o, "datePublished", &r.DatePublished, decodeDate)

	field(o, "inLanguage", &r.InLanguage, decodeLanguage)
	field(o, "keywords", &r.Keywords, decodeKeywords)
	field(o, "aggregateRating", &r.AggregateRating, decodeAggregateRating)
	field(o, "review", &r.Review, decodeReviews)

	field(o, "recipeCategory", &r.RecipeCategory, decodeTrimmed)
	field(o, "recipeCuisine", &r.RecipeCuisine, decodeTrimmed)
	field(o, "recipeIngredient", &r.RecipeIngredient, decodeTexts)
	field(o, "recipeInstructions", &r.RecipeInstructions, decodeInstructions)
	field(o, "recipeYield", &r.RecipeYield, decodeYield)
	field(o, "yield", &r.Yield, decodeYield)

	field(o, "cookTime", &r.CookTime, decodeDuration)
	field(o, "prepTime", &r.PrepTime, decodeDuration)
	field(o, "performTime", &r.PerformTime, decodeDuration)
	field(o, "totalTime", &r.TotalTime, decodeDuration)

	field(o, "cookingMethod", &r.CookingMethod, decodeText)
	field(o, "suitableForDiet", &r.SuitableForDiet, decodeDiet)
	field(o, "nutrition", &r.Nutrition, decodeNutrition)
	field(o, "video", &r.Video, decodeVideo)
	field(o, "tool", &r.Tool, decodeInstruments)
	field(o, "supply", &r.Supply, decodeInstruments)

	field(o, "url", &r.URL, decodeURL)
	field(o, "sameAs", &r.SameAs, decodeURL)

	field(o, "articleBody", &r.ArticleBody, decodeText)
	field(o, "award", &r.Award, decodeText)
	field(o, "commentCount", &r.CommentCount, decodeCount)
	field(o, "contentRating", &r.ContentRating, decodeContentRating)
	field(o, "creditText", &r.CreditText, decodeText)
	field(o, "isAccessibleForFree", &r.IsAccessibleForFree, decodeBool)
	field(o, "isPartOf", &r.IsPartOf, decodeReference)
	field(o, "mainEntityOfPage", &r.MainEntityOfPage, decodeReference)
	field(o, "text", &r.Text, decodeText)

	if o.err != nil {
		return nil, o.err
	}
	if r.RecipeCategory == "" {
		r.RecipeCategory = DefaultCategory
	}
	return r, nil
}

// decodeThumbnail accepts an ImageObject or a bare URL.
func decodeThumbnail(path string, v gjson.Result) (*ImageObject, error) {
	if v.Type == gjson.String {
		u, err := decodeURL(path, v)
		if err != nil {
			return nil, err
		}
		return &ImageObject{URL: u}, nil
	}
	if v.IsArray() {
		items := v.Array()
		if len(items) == 0 {
			return nil, nil
		}
		return decodeThumbnail(elem(path, 0), items[0])
	}
	return decodeImageObject(path, v)
}
