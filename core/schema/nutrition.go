// Package schema — nutrition facts and ratings.
package schema

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// NutritionInformation holds nutrition facts per serving. Quantities keep their
// unit, e.g. "149 calories" or "14.6 g".
type NutritionInformation struct {
	Calories              string `json:"calories,omitempty"`
	CarbohydrateContent   string `json:"carbohydrateContent,omitempty"`
	CholesterolContent    string `json:"cholesterolContent,omitempty"`
	FatContent            string `json:"fatContent,omitempty"`
	FiberContent          string `json:"fiberContent,omitempty"`
	ProteinContent        string `json:"proteinContent,omitempty"`
	SaturatedFatContent   string `json:"saturatedFatContent,omitempty"`
	SodiumContent         string `json:"sodiumContent,omitempty"`
	SugarContent          string `json:"sugarContent,omitempty"`
	TransFatContent       string `json:"transFatContent,omitempty"`
	UnsaturatedFatContent string `json:"unsaturatedFatContent,omitempty"`
	ServingSize           string `json:"servingSize,omitempty"`
}

func (n *NutritionInformation) MarshalJSON() ([]byte, error) {
	type plain NutritionInformation
	return json.Marshal(struct {
		Type Type `json:"@type"`
		*plain
	}{TypeNutritionInformation, (*plain)(n)})
}

func decodeNutrition(path string, v gjson.Result) (*NutritionInformation, error) {
	if !v.IsObject() {
		return nil, mismatch(path, "NutritionInformation", v)
	}
	o := newObject(path, v)
	n := &NutritionInformation{}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"calories", &n.Calories},
		{"carbohydrateContent", &n.CarbohydrateContent},
		{"cholesterolContent", &n.CholesterolContent},
		{"fatContent", &n.FatContent},
		{"fiberContent", &n.FiberContent},
		{"proteinContent", &n.ProteinContent},
		{"saturatedFatContent", &n.SaturatedFatContent},
		{"sodiumContent", &n.SodiumContent},
		{"sugarContent", &n.SugarContent},
		{"transFatContent", &n.TransFatContent},
		{"unsaturatedFatContent", &n.UnsaturatedFatContent},
		{"servingSize", &n.ServingSize},
	} {
		field(o, f.key, f.dst, decodeText)
	}
	return n, o.err
}

// AggregateRating is the average of several ratings. Unknown fields are rejected.
type AggregateRating struct {
	// RatingValue keeps the source form, number or text.
	RatingValue NumberOrText `json:"ratingValue,omitempty"`
	BestRating  int64        `json:"bestRating,omitempty"`
	WorstRating int64        `json:"worstRating,omitempty"`
	RatingCount int64        `json:"ratingCount,omitempty"`
	ReviewCount int64        `json:"reviewCount,omitempty"`
}

func (a *AggregateRating) MarshalJSON() ([]byte, error) {
	type plain AggregateRating
	return json.Marshal(struct {
		Type Type `json:"@type"`
		*plain
	}{TypeAggregateRating, (*plain)(a)})
}

func decodeAggregateRating(path string, v gjson.Result) (*AggregateRating, error) {
	if !v.IsObject() {
		return nil, mismatch(path, "AggregateRating", v)
	}
	o := newObject(path, v)
	o.strict("AggregateRating", "@id", "@type", "ratingValue", "bestRating", "worstRating", "ratingCount", "reviewCount")
	a := &AggregateRating{}
	field(o, "ratingValue", &a.RatingValue, decodeNumberOrText)
	field(o, "bestRating", &a.BestRating, decodeCount)
	field(o, "worstRating", &a.WorstRating, decodeCount)
	field(o, "ratingCount", &a.RatingCount, decodeCount)
	field(o, "reviewCount", &a.ReviewCount, decodeCount)
	return a, o.err
}

// Review is a schema.org Review.
type Review struct {
	Name          string  `json:"name,omitempty"`
	ReviewRating  *Rating `json:"reviewRating,omitempty"`
	Author        Party   `json:"author,omitempty"`
	DatePublished *Date   `json:"datePublished,omitempty"`
	ReviewBody    string  `json:"reviewBody,omitempty"`
}

func (r Review) MarshalJSON() ([]byte, error) {
	type plain Review
	return json.Marshal(struct {
		Type Type `json:"@type"`
		plain
	}{TypeReview, plain(r)})
}

func decodeReview(path string, v gjson.Result) (Review, error) {
	if !v.IsObject() {
		return Review{}, mismatch(path, "Review", v)
	}
	o := newObject(path, v)
	var r Review
	field(o, "name", &r.Name, decodeText)
	field(o, "reviewRating", &r.ReviewRating, decodeRating)
	field(o, "author", &r.Author, decodeParty)
	field(o, "datePublished", &r.DatePublished, decodeDate)
	field(o, "reviewBody", &r.ReviewBody, decodeText)
	return r, o.err
}

// decodeReviews accepts a list of reviews or a single review.
func decodeReviews(path string, v gjson.Result) ([]Review, error) {
	if !v.IsArray() {
		r, err := decodeReview(path, v)
		if err != nil {
			return nil, err
		}
		return []Review{r}, nil
	}
	items := v.Array()
	out := make([]Review, 0, len(items))
	for i, item := range items {
		r, err := decodeReview(elem(path, i), item)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
