package schema_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/recipepipe/core/schema"
)

// recipeDoc wraps fields in a minimal Recipe document.
func recipeDoc(fields string) []byte {
	if fields == "" {
		return []byte(`{"@context":"https://schema.org","@type":"Recipe"}`)
	}
	return []byte(`{"@context":"https://schema.org","@type":"Recipe",` + fields + `}`)
}

func decode(t *testing.T, fields string) *schema.Recipe {
	t.Helper()
	r, err := schema.Decode(recipeDoc(fields))
	require.NoError(t, err)
	return r
}

func decodeErr(t *testing.T, fields string) *schema.DecodeError {
	t.Helper()
	_, err := schema.Decode(recipeDoc(fields))
	require.Error(t, err)
	var de *schema.DecodeError
	require.ErrorAs(t, err, &de)
	return de
}

func TestDecode_TopLevelShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		wantErr  error
		wantName string
	}{
		{
			name:     "flat recipe",
			doc:      `{"@context":"https://schema.org","@type":"Recipe","name":"Soup"}`,
			wantName: "Soup",
		},
		{
			name:     "type array containing recipe",
			doc:      `{"@context":"https://schema.org","@type":["NewsArticle","Recipe"],"name":"Stew"}`,
			wantName: "Stew",
		},
		{
			name: "graph selects first recipe node",
			doc: `{"@context":"https://schema.org","@graph":[
				{"@type":"WebPage","name":"page"},
				{"@type":"Recipe","name":"First"},
				{"@type":"Recipe","name":"Second"}]}`,
			wantName: "First",
		},
		{
			name:    "graph without recipe",
			doc:     `{"@context":"https://schema.org","@graph":[{"@type":"WebPage","name":"page"}]}`,
			wantErr: schema.ErrRecipeNotFound,
		},
		{
			name:     "article carrying recipe fields",
			doc:      `{"@context":"https://schema.org","@type":"Article","name":"Pie","recipeIngredient":["flour"]}`,
			wantName: "Pie",
		},
		{
			name:    "article without recipe fields",
			doc:     `{"@context":"https://schema.org","@type":"Article","name":"News"}`,
			wantErr: schema.ErrRecipeNotFound,
		},
		{
			name:    "web page with empty instructions",
			doc:     `{"@context":"https://schema.org","@type":"WebPage","recipeInstructions":[]}`,
			wantErr: schema.ErrRecipeNotFound,
		},
		{
			name:    "unrelated type",
			doc:     `{"@context":"https://schema.org","@type":"BreadcrumbList"}`,
			wantErr: schema.ErrRecipeNotFound,
		},
		{
			name:    "empty object",
			doc:     `{}`,
			wantErr: schema.ErrRecipeNotFound,
		},
		{
			name:    "top-level array is not interpreted",
			doc:     `[{"@context":"https://schema.org","@type":"Recipe","name":"Soup"}]`,
			wantErr: schema.ErrRecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := schema.Decode([]byte(tt.doc))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, r.Name)
		})
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{"", "   ", "{", `{"@type":"Recipe",}`} {
		_, err := schema.Decode([]byte(doc))
		var de *schema.DecodeError
		require.ErrorAs(t, err, &de, "doc %q", doc)
		assert.Equal(t, "$", de.Path)
	}
}

func TestDecode_GraphKeepsNodesAndContext(t *testing.T) {
	t.Parallel()

	r, err := schema.Decode([]byte(`{"@context":"http://schema.org/","@graph":[
		{"@type":"Organization","name":"Site"},
		{"@type":"Recipe","name":"Soup"}]}`))
	require.NoError(t, err)
	assert.Equal(t, schema.ContextSchemaOrg, r.Context)
	assert.Len(t, r.Graph, 2)
	assert.Equal(t, schema.TypeRecipe, r.Type)
}

func TestDecode_GraphMustBeArray(t *testing.T) {
	t.Parallel()

	_, err := schema.Decode([]byte(`{"@graph":{"@type":"Recipe"}}`))
	var de *schema.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "$.@graph", de.Path)
	assert.Equal(t, "object", de.Got)
}

func TestDecode_Type(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want schema.Type
	}{
		{`"Recipe"`, schema.TypeRecipe},
		{`["NewsArticle","Recipe"]`, schema.TypeRecipe},
		{`["Recipe","NewsArticle"]`, schema.TypeNewsArticle},
		{`["Recipe","SomethingElse"]`, schema.TypeRecipe},
		{`["Recipe","http://schema.org/WebPage"]`, schema.TypeWebPage},
	}
	for _, tt := range tests {
		doc := `{"@context":"https://schema.org","@type":` + tt.raw + `,"recipeIngredient":["salt"]}`
		r, err := schema.Decode([]byte(doc))
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, r.Type, tt.raw)
	}
}

func TestDecode_Context(t *testing.T) {
	t.Parallel()

	for _, ctx := range []string{
		`"https://schema.org"`, `"http://schema.org"`, `"https://schema.org/"`, `"http://schema.org//"`,
		`["https://schema.org", {"@language":"en"}]`, `{"@vocab":"https://schema.org/"}`,
	} {
		r, err := schema.Decode([]byte(`{"@context":` + ctx + `,"@type":"Recipe"}`))
		require.NoError(t, err, ctx)
		assert.Equal(t, schema.ContextSchemaOrg, r.Context, ctx)
	}

	r, err := schema.Decode([]byte(`{"@type":"Recipe"}`))
	require.NoError(t, err)
	assert.Equal(t, schema.ContextSchemaOrg, r.Context, "absent context defaults")

	_, err = schema.Decode([]byte(`{"@context":"https://example.org","@type":"Recipe"}`))
	var de *schema.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "$.@context", de.Path)
}

func TestDecode_Name(t *testing.T) {
	t.Parallel()

	r := decode(t, `"name":"  Roasted Carrot Soup \n"`)
	assert.Equal(t, "Roasted Carrot Soup", r.Name)
}

func TestDecode_Image(t *testing.T) {
	t.Parallel()

	t.Run("url", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"image":"https://img.example/a.jpg"`)
		assert.Equal(t, schema.URL("https://img.example/a.jpg"), r.Image)
	})
	t.Run("empty string is an empty image object", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"image":""`)
		assert.Equal(t, &schema.ImageObject{}, r.Image)
	})
	t.Run("array yields last element", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"image":["https://img.example/1.jpg","https://img.example/2.jpg","https://img.example/3.jpg"]`)
		assert.Equal(t, schema.URL("https://img.example/3.jpg"), r.Image)
	})
	t.Run("image object", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"image":{"@type":"ImageObject","url":"https://img.example/a.jpg","height":"60","width":90}`)
		img, ok := r.Image.(*schema.ImageObject)
		require.True(t, ok)
		assert.Equal(t, schema.TypeImageObject, img.Type)
		assert.Equal(t, schema.URL("https://img.example/a.jpg"), img.Href())
		assert.Equal(t, schema.Text("60"), img.Height)
		assert.Equal(t, schema.Number(90), img.Width)
	})
	t.Run("image object rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		de := decodeErr(t, `"image":{"@type":"ImageObject","url":"https://img.example/a.jpg","license":"cc"}`)
		assert.Equal(t, "$.image.license", de.Path)
	})
	t.Run("number is a mismatch", func(t *testing.T) {
		t.Parallel()
		de := decodeErr(t, `"image":42`)
		assert.Equal(t, "$.image", de.Path)
		assert.Equal(t, "number", de.Got)
	})
}

func TestDecode_Party(t *testing.T) {
	t.Parallel()

	t.Run("organization", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"author":{"@type":"Organization","name":"CLAUDIA","logo":{"@type":"ImageObject","url":"https://img.example/logo.png"}}`)
		org, ok := r.Author.(*schema.Organization)
		require.True(t, ok)
		assert.Equal(t, "CLAUDIA", org.DisplayName())
		assert.IsType(t, &schema.ImageObject{}, org.Logo)
	})
	t.Run("organization subtype", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"publisher":{"@type":"NewsMediaOrganization","name":"Paper"}`)
		assert.IsType(t, &schema.Organization{}, r.Publisher)
	})
	t.Run("person", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"author":{"@type":"Person","name":"Sonja Overhiser","jobTitle":"cook"}`)
		assert.Equal(t, &schema.Person{Name: "Sonja Overhiser"}, r.Author)
	})
	t.Run("untyped object is a person", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"author":{"name":"Anon"}`)
		assert.Equal(t, &schema.Person{Name: "Anon"}, r.Author)
	})
	t.Run("string is a person name", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"author":"Abuelas Cuban Counter"`)
		assert.Equal(t, &schema.Person{Name: "Abuelas Cuban Counter"}, r.Author)
	})
	t.Run("array yields first party", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"author":[{"@type":"Person","name":"A"},{"@type":"Person","name":"B"}]`)
		assert.Equal(t, "A", r.Author.DisplayName())
	})
	t.Run("organization rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		de := decodeErr(t, `"publisher":{"@type":"Organization","name":"X","foundingDate":"1999"}`)
		assert.Equal(t, "$.publisher.foundingDate", de.Path)
	})
}

func TestDecode_CategoryAndCuisine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, schema.DefaultCategory, decode(t, "").RecipeCategory)
	assert.Equal(t, schema.DefaultCategory, decode(t, `"recipeCategory":""`).RecipeCategory)
	assert.Equal(t, schema.DefaultCategory, decode(t, `"recipeCategory":[]`).RecipeCategory)
	assert.Equal(t, "Soups", decode(t, `"recipeCategory":["Soups","Starters"]`).RecipeCategory)
	assert.Equal(t, "Dinner", decode(t, `"recipeCategory":"Dinner"`).RecipeCategory)
	assert.Equal(t, "American", decode(t, `"recipeCuisine":["American","Cuban"]`).RecipeCuisine)
}

func TestDecode_Keywords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, schema.Text("soup, carrot"), decode(t, `"keywords":"soup, carrot"`).Keywords)
	assert.Equal(t, schema.Text("soup,carrot,easy"), decode(t, `"keywords":["soup","carrot","easy"]`).Keywords)
	assert.Equal(t, schema.URL("https://example.com/tags/soup"), decode(t, `"keywords":"https://example.com/tags/soup"`).Keywords)
	assert.Equal(t, &schema.DefinedTerm{Name: "soup"}, decode(t, `"keywords":{"@type":"DefinedTerm","name":"soup"}`).Keywords)
	assert.Equal(t, schema.URL("https://example.com/tags/soup"), decode(t, `"keywords":[" https://example.com/tags/soup"]`).Keywords)
}

func TestDecode_Yield(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want schema.Yield
	}{
		{``, schema.QuantitativeValue{Value: 1}},
		{`"recipeYield":4`, schema.QuantitativeValue{Value: 4}},
		{`"recipeYield":"4"`, schema.Text("4")},
		{`"recipeYield":"4 servings"`, schema.Text("4 servings")},
		{`"recipeYield":["6","6 servings"]`, schema.QuantitativeValue{Value: 6}},
		{`"recipeYield":["6 servings","6"]`, schema.Text("6 servings")},
		{`"recipeYield":[8]`, schema.QuantitativeValue{Value: 8}},
		{`"recipeYield":[]`, schema.QuantitativeValue{Value: 1}},
		{`"recipeYield":2.5`, schema.Text("2.5")},
		{`"recipeYield":{"@type":"QuantitativeValue","value":3}`, schema.QuantitativeValue{Value: 3}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, decode(t, tt.raw).RecipeYield, tt.raw)
	}

	de := decodeErr(t, `"recipeYield":true`)
	assert.Equal(t, "$.recipeYield", de.Path)
}

func TestDecode_Instructions(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"recipeInstructions":"Cook the beef. Add cream."`)
		assert.Equal(t, schema.Text("Cook the beef. Add cream."), r.RecipeInstructions)
	})
	t.Run("steps keep order and normalize text", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"recipeInstructions":[
			{"@type":"HowToStep","text":"  Peel&nbsp;carrots ","image":""},
			{"@type":"HowToStep","name":"Roast","text":"Roast them."},
			"Blend.",
			{"@type":"HowToStep","name":"Serve"},
			{"@type":"HowToStep","text":"   "}]`)
		steps, ok := r.RecipeInstructions.(schema.Steps)
		require.True(t, ok)
		require.Len(t, steps, 4)
		assert.Equal(t, "Peel carrots", steps[0].Text)
		assert.Equal(t, &schema.ImageObject{}, steps[0].Image)
		assert.Equal(t, "Roast", steps[1].Name)
		assert.Equal(t, "Roast them.", steps[1].Text)
		assert.Equal(t, "Blend.", steps[2].Text)
		assert.Equal(t, "Serve", steps[3].Text, "missing text falls back to name")
	})
	t.Run("sections are flattened", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"recipeInstructions":[
			{"@type":"HowToSection","name":"Sauce","itemListElement":[
				{"@type":"HowToStep","text":"Melt butter."},
				{"@type":"HowToStep","text":"Whisk flour."}]},
			{"@type":"HowToSection","name":"Pasta","itemListElement":[
				{"@type":"HowToStep","text":"Boil water."}]}]`)
		steps := r.RecipeInstructions.(schema.Steps)
		require.Len(t, steps, 3)
		assert.Equal(t, []string{"Melt butter.", "Whisk flour.", "Boil water."},
			[]string{steps[0].Text, steps[1].Text, steps[2].Text})
	})
	t.Run("single step object", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"recipeInstructions":{"@type":"HowToStep","text":"Mix."}`)
		assert.Equal(t, schema.Steps{{Text: "Mix."}}, r.RecipeInstructions)
	})
	t.Run("creative work", func(t *testing.T) {
		t.Parallel()
		r := decode(t, `"recipeInstructions":{"@type":"CreativeWork","name":"Method","url":"https://example.com/method"}`)
		cw, ok := r.RecipeInstructions.(*schema.CreativeWork)
		require.True(t, ok)
		assert.Equal(t, "Method", cw.Name)
	})
	t.Run("number is a mismatch", func(t *testing.T) {
		t.Parallel()
		de := decodeErr(t, `"recipeInstructions":[{"@type":"HowToStep","text":"ok"}, 5]`)
		assert.Equal(t, "$.recipeInstructions[1]", de.Path)
	})
}

func TestDecode_AggregateRating(t *testing.T) {
	t.Parallel()

	r := decode(t, `"aggregateRating":{"@type":"AggregateRating","ratingValue":"5","reviewCount":"3"}`)
	require.NotNil(t, r.AggregateRating)
	assert.Equal(t, schema.Text("5"), r.AggregateRating.RatingValue)
	assert.Equal(t, int64(3), r.AggregateRating.ReviewCount)

	r = decode(t, `"aggregateRating":{"@type":"AggregateRating","ratingValue":4,"bestRating":5,"ratingCount":38}`)
	assert.Equal(t, schema.Number(4), r.AggregateRating.RatingValue)
	assert.Equal(t, int64(5), r.AggregateRating.BestRating)
	assert.Equal(t, int64(38), r.AggregateRating.RatingCount)

	r = decode(t, `"aggregateRating":{"ratingValue":4.5,"reviewCount":"many"}`)
	assert.Equal(t, schema.Number(4.5), r.AggregateRating.RatingValue)
	assert.Zero(t, r.AggregateRating.ReviewCount, "non-numeric count is absent")

	de := decodeErr(t, `"aggregateRating":{"ratingValue":4,"itemReviewed":"x"}`)
	assert.Equal(t, "$.aggregateRating.itemReviewed", de.Path)
}

func TestDecode_Dates(t *testing.T) {
	t.Parallel()

	r := decode(t, `"datePublished":"2023-10-24T19:45:56+00:00","dateModified":"2021-03-15","dateCreated":"2019-02-01T10:00:00-03:00"`)
	require.NotNil(t, r.DatePublished)
	assert.True(t, r.DatePublished.Time.Equal(time.Date(2023, 10, 24, 19, 45, 56, 0, time.UTC)))
	assert.Equal(t, time.UTC, r.DatePublished.Time.Location())
	assert.False(t, r.DatePublished.DateOnly)
	assert.True(t, r.DateModified.DateOnly)
	assert.Equal(t, "2021-03-15", r.DateModified.String())
	_, offset := r.DateCreated.Time.Zone()
	assert.Equal(t, -3*3600, offset)

	de := decodeErr(t, `"datePublished":"yesterday"`)
	assert.Equal(t, "$.datePublished", de.Path)
}

func TestDecode_Durations(t *testing.T) {
	t.Parallel()

	r := decode(t, `"cookTime":"PT35M","prepTime":"PT10M","totalTime":"PT1H5M","performTime":""`)
	assert.Equal(t, "PT35M", r.CookTime.String())
	assert.Equal(t, 35*time.Minute, r.CookTime.Std())
	assert.Equal(t, 10*time.Minute, r.PrepTime.Std())
	assert.Equal(t, 65*time.Minute, r.TotalTime.Std())
	assert.Nil(t, r.PerformTime, "empty duration is absent")

	de := decodeErr(t, `"cookTime":"35 minutes"`)
	assert.Equal(t, "$.cookTime", de.Path)
}

func TestDecode_Diet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, schema.VegetarianDiet, decode(t, `"suitableForDiet":"https://schema.org/VegetarianDiet"`).SuitableForDiet)
	assert.Equal(t, schema.VeganDiet, decode(t, `"suitableForDiet":"VeganDiet"`).SuitableForDiet)
	assert.Equal(t, schema.UnspecifiedDiet, decode(t, `"suitableForDiet":"PaleoDiet"`).SuitableForDiet)
	assert.Equal(t, schema.GlutenFreeDiet, decode(t, `"suitableForDiet":["http://schema.org/GlutenFreeDiet"]`).SuitableForDiet)
}

func TestDecode_IsAccessibleForFree(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]bool{`true`: true, `false`: false, `"True"`: true, `"FALSE"`: false} {
		r := decode(t, `"isAccessibleForFree":`+raw)
		require.NotNil(t, r.IsAccessibleForFree, raw)
		assert.Equal(t, want, *r.IsAccessibleForFree, raw)
	}
	de := decodeErr(t, `"isAccessibleForFree":"maybe"`)
	assert.Equal(t, "$.isAccessibleForFree", de.Path)
}

func TestDecode_Video(t *testing.T) {
	t.Parallel()

	r := decode(t, `"video":{"@type":"VideoObject","name":"Soup","description":"How to",
		"contentUrl":"https://youtu.be/g63Nto5ld-k","embedUrl":"https://youtu.be/g63Nto5ld-k",
		"thumbnailUrl":["https://img.example/1.jpg","https://img.example/2.jpg"],
		"duration":"","uploadDate":"2023-10-24T19:45:56+00:00"}`)
	video, ok := r.Video.(*schema.VideoObject)
	require.True(t, ok)
	assert.Equal(t, schema.URL("https://youtu.be/g63Nto5ld-k"), video.ContentURL)
	assert.Len(t, video.ThumbnailURL, 2)
	assert.Nil(t, video.Duration)
	require.NotNil(t, video.UploadDate)

	r = decode(t, `"video":[{"@type":"Clip","name":"Step 1","url":"https://example.com/v#t=10","startOffset":10}]`)
	assert.Equal(t, &schema.Clip{Name: "Step 1", URL: "https://example.com/v#t=10", StartOffset: 10}, r.Video)

	de := decodeErr(t, `"video":{"@type":"VideoObject","name":"x","description":"y","embedUrl":"https://e","thumbnailUrl":[]}`)
	assert.Equal(t, "$.video.contentUrl", de.Path)
	assert.Equal(t, "nothing", de.Got)
}

func TestDecode_ReviewsAndNutrition(t *testing.T) {
	t.Parallel()

	r := decode(t, `"review":{"@type":"Review","reviewRating":{"@type":"Rating","ratingValue":"5"},
		"author":{"@type":"Person","name":"Larry"},"datePublished":"2022-01-02","reviewBody":"Great"},
		"nutrition":{"@type":"NutritionInformation","calories":"149 calories","fatContent":"14.6 g","servingSize":1}`)
	require.Len(t, r.Review, 1)
	assert.Equal(t, schema.Text("5"), r.Review[0].ReviewRating.RatingValue)
	assert.Equal(t, "Larry", r.Review[0].Author.DisplayName())
	assert.Equal(t, "149 calories", r.Nutrition.Calories)
	assert.Equal(t, "14.6 g", r.Nutrition.FatContent)
	assert.Equal(t, "1", r.Nutrition.ServingSize)
}

func TestDecode_SupplementedFields(t *testing.T) {
	t.Parallel()

	r := decode(t, `"contentRating":"Fácil","articleBody":"Body","commentCount":"12",
		"isPartOf":{"@type":"CreativeWork","name":"Issue 12"},"mainEntityOfPage":"https://example.com/r",
		"tool":["pot",{"@type":"HowToTool","name":"blender"}],"supply":"carrots",
		"inLanguage":"pt-BR","description":"","thumbnail":"https://img.example/t.jpg"`)
	assert.Equal(t, schema.Text("Fácil"), r.ContentRating)
	assert.Equal(t, "Body", r.ArticleBody)
	assert.Equal(t, int64(12), r.CommentCount)
	assert.Equal(t, "Issue 12", r.IsPartOf.(*schema.CreativeWork).Name)
	assert.Equal(t, schema.URL("https://example.com/r"), r.MainEntityOfPage)
	assert.Equal(t, []schema.Instrument{schema.Text("pot"), &schema.HowToItem{Type: "HowToTool", Name: "blender"}}, r.Tool)
	assert.Equal(t, []schema.Instrument{schema.Text("carrots")}, r.Supply)
	assert.Equal(t, schema.Text("pt-BR"), r.InLanguage)
	assert.Equal(t, schema.Text(""), r.Description)
	assert.Equal(t, &schema.ImageObject{URL: "https://img.example/t.jpg"}, r.Thumbnail)
}

func TestRecipe_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var r schema.Recipe
	require.NoError(t, json.Unmarshal(recipeDoc(`"name":"Soup","recipeIngredient":["a","b"]`), &r))
	assert.Equal(t, "Soup", r.Name)
	assert.Equal(t, []string{"a", "b"}, r.RecipeIngredient)

	err := json.Unmarshal([]byte(`{"@type":"Person"}`), &r)
	require.ErrorIs(t, err, schema.ErrRecipeNotFound)
}

func TestDecodeError_Message(t *testing.T) {
	t.Parallel()

	err := &schema.DecodeError{Path: "$.image", Expected: "URL or ImageObject", Got: "number"}
	assert.Equal(t, "decoding $.image: expected URL or ImageObject, got number", err.Error())
}
