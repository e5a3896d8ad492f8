// Package render — recipe card model.
// The Markdown and PDF renderers lay out the same card: a title, a list of
// facts, ingredients, numbered steps and nutrition. Building it once keeps the
// two formats in step.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/normalize"
	"github.com/gaurav-prasanna/recipepipe/core/schema"
)

// fact is one labelled line of the card.
type fact struct {
	Label string
	Value string
}

// card is the renderer-neutral view of a recipe.
type card struct {
	Title       string
	Description string
	Image       string
	Facts       []fact
	Ingredients []string
	Steps       []string
	Nutrition   []fact
	Source      string
}

// textNormalizer is the subset of normalize.MarkdownNormalizer the card needs.
type textNormalizer interface {
	Text(s string) (string, error)
}

func newCard(r *schema.Recipe, meta core.SourceMetadata, n textNormalizer) (*card, error) {
	if n == nil {
		n = normalize.New()
	}
	text := func(s string) (string, error) {
		out, err := n.Text(s)
		if err != nil {
			return "", fmt.Errorf("normalizing text: %w", err)
		}
		return out, nil
	}

	c := &card{
		Title:  firstNonEmpty(r.Name, r.Headline, r.AlternateName, "Untitled recipe"),
		Image:  imageHref(r.Image),
		Source: firstNonEmpty(meta.URL, r.URL.String()),
	}

	var err error
	if c.Description, err = text(descriptionText(r.Description)); err != nil {
		return nil, err
	}

	c.addFact("Website", string(meta.Website))
	if r.Author != nil {
		c.addFact("Author", r.Author.DisplayName())
	}
	c.addFact("Yield", yieldText(r.RecipeYield))
	c.addFact("Prep time", durationText(r.PrepTime))
	c.addFact("Cook time", durationText(r.CookTime))
	c.addFact("Total time", durationText(r.TotalTime))
	c.addFact("Category", r.RecipeCategory)
	c.addFact("Cuisine", r.RecipeCuisine)
	c.addFact("Cooking method", r.CookingMethod)
	c.addFact("Rating", ratingText(r.AggregateRating))
	if r.SuitableForDiet != "" && r.SuitableForDiet != schema.UnspecifiedDiet {
		c.addFact("Diet", strings.TrimSuffix(string(r.SuitableForDiet), "Diet"))
	}
	if r.DatePublished != nil {
		c.addFact("Published", r.DatePublished.Time.Format("2006-01-02"))
	}

	for _, ing := range r.RecipeIngredient {
		s, err := text(ing)
		if err != nil {
			return nil, err
		}
		if s != "" {
			c.Ingredients = append(c.Ingredients, s)
		}
	}

	for _, raw := range stepTexts(r.RecipeInstructions) {
		s, err := text(raw)
		if err != nil {
			return nil, err
		}
		if s != "" {
			c.Steps = append(c.Steps, s)
		}
	}

	if nut := r.Nutrition; nut != nil {
		for _, f := range []fact{
			{"Serving size", nut.ServingSize},
			{"Calories", nut.Calories},
			{"Fat", nut.FatContent},
			{"Saturated fat", nut.SaturatedFatContent},
			{"Unsaturated fat", nut.UnsaturatedFatContent},
			{"Trans fat", nut.TransFatContent},
			{"Cholesterol", nut.CholesterolContent},
			{"Sodium", nut.SodiumContent},
			{"Carbohydrates", nut.CarbohydrateContent},
			{"Fiber", nut.FiberContent},
			{"Sugar", nut.SugarContent},
			{"Protein", nut.ProteinContent},
		} {
			if f.Value != "" {
				c.Nutrition = append(c.Nutrition, f)
			}
		}
	}

	return c, nil
}

func (c *card) addFact(label, value string) {
	if value = strings.TrimSpace(value); value != "" {
		c.Facts = append(c.Facts, fact{Label: label, Value: value})
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func descriptionText(d schema.Description) string {
	switch d := d.(type) {
	case schema.Text:
		return string(d)
	case *schema.TextObject:
		return d.Text
	default:
		return ""
	}
}

func imageHref(img schema.Image) string {
	switch img := img.(type) {
	case schema.URL:
		return img.String()
	case *schema.ImageObject:
		return img.Href().String()
	default:
		return ""
	}
}

func yieldText(y schema.Yield) string {
	switch y := y.(type) {
	case schema.QuantitativeValue:
		return y.String()
	case schema.Text:
		return string(y)
	default:
		return ""
	}
}

// durationText shows the ISO 8601 form alongside a readable one, e.g.
// "1h 30m (PT1H30M)".
func durationText(d *schema.Duration) string {
	if d == nil {
		return ""
	}
	std := d.Std().Round(time.Minute)
	if std <= 0 {
		return d.String()
	}
	h, m := int(std.Hours()), int(std.Minutes())%60
	var human string
	switch {
	case h == 0:
		human = fmt.Sprintf("%dm", m)
	case m == 0:
		human = fmt.Sprintf("%dh", h)
	default:
		human = fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%s (%s)", human, d.String())
}

func numberText(v schema.NumberOrText) string {
	switch v := v.(type) {
	case schema.Number:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	case schema.Text:
		return string(v)
	default:
		return ""
	}
}

func ratingText(a *schema.AggregateRating) string {
	if a == nil {
		return ""
	}
	value := numberText(a.RatingValue)
	if value == "" {
		return ""
	}
	best := int64(5)
	if a.BestRating > 0 {
		best = a.BestRating
	}
	out := fmt.Sprintf("%s / %d", value, best)

	count := a.RatingCount
	noun := "ratings"
	if count == 0 {
		count, noun = a.ReviewCount, "reviews"
	}
	if count > 0 {
		out += fmt.Sprintf(" (%d %s)", count, noun)
	}
	return out
}

// stepTexts flattens instructions into one string per step. Free text is
// split on blank lines.
func stepTexts(in schema.Instructions) []string {
	switch in := in.(type) {
	case schema.Steps:
		out := make([]string, 0, len(in))
		for _, s := range in {
			out = append(out, firstNonEmpty(s.Text, s.Name))
		}
		return out
	case schema.Text:
		var out []string
		for _, para := range strings.Split(strings.ReplaceAll(string(in), "\r\n", "\n"), "\n\n") {
			if para = strings.TrimSpace(para); para != "" {
				out = append(out, para)
			}
		}
		return out
	case *schema.CreativeWork:
		return []string{firstNonEmpty(in.Text, descriptionText(in.Description), in.Name)}
	default:
		return nil
	}
}
