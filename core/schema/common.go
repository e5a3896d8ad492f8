// Package schema — polymorphic values shared by recipes, reviews and media.
// Each "X or Y" shape from schema.org is a sealed interface whose variants are
// chosen by the JSON token kind of the source value.
package schema

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Image is a URL or an *ImageObject.
type Image interface {
	isImage()
}

// ImageObject is a schema.org ImageObject. Unknown fields are rejected.
type ImageObject struct {
	ID         string       `json:"@id,omitempty"`
	Type       Type         `json:"@type,omitempty"`
	Name       string       `json:"name,omitempty"`
	URL        URL          `json:"url,omitempty"`
	ContentURL URL          `json:"contentUrl,omitempty"`
	Caption    string       `json:"caption,omitempty"`
	Height     NumberOrText `json:"height,omitempty"`
	Width      NumberOrText `json:"width,omitempty"`
	InLanguage string       `json:"inLanguage,omitempty"`
}

func (URL) isImage()          {}
func (*ImageObject) isImage() {}

// Href returns the best URL for the image.
func (o *ImageObject) Href() URL {
	if o.URL != "" {
		return o.URL
	}
	return o.ContentURL
}

func decodeImageObject(path string, v gjson.Result) (*ImageObject, error) {
	if !v.IsObject() {
		return nil, mismatch(path, "ImageObject", v)
	}
	o := newObject(path, v)
	o.strict("ImageObject", "@id", "@type", "name", "url", "contentUrl", "caption", "height", "width", "inLanguage")
	img := &ImageObject{}
	field(o, "@id", &img.ID, decodeText)
	field(o, "@type", &img.Type, decodeType)
	field(o, "name", &img.Name, decodeText)
	field(o, "url", &img.URL, decodeURL)
	field(o, "contentUrl", &img.ContentURL, decodeURL)
	field(o, "caption", &img.Caption, decodeText)
	field(o, "height", &img.Height, decodeDimension)
	field(o, "width", &img.Width, decodeDimension)
	field(o, "inLanguage", &img.InLanguage, decodeText)
	return img, o.err
}

// decodeDimension accepts a number, text, or a QuantitativeValue-like object.
func decodeDimension(path string, v gjson.Result) (NumberOrText, error) {
	if v.IsObject() {
		if value, ok := newObject(path, v).get("value"); ok {
			return decodeNumberOrText(child(path, "value"), value)
		}
	}
	return decodeNumberOrText(path, v)
}

// decodeImage maps an empty string to an empty ImageObject and an array to its
// last element.
func decodeImage(path string, v gjson.Result) (Image, error) {
	switch {
	case v.Type == gjson.String:
		if strings.TrimSpace(v.String()) == "" {
			return &ImageObject{}, nil
		}
		return decodeURL(path, v)
	case v.IsObject():
		return decodeImageObject(path, v)
	case v.IsArray():
		items := v.Array()
		if len(items) == 0 {
			return nil, nil
		}
		last := len(items) - 1
		return decodeImage(elem(path, last), items[last])
	default:
		return nil, mismatch(path, "URL or ImageObject", v)
	}
}

// Party is an *Organization or a *Person.
type Party interface {
	isParty()
	// DisplayName returns the name of the party.
	DisplayName() string
}

// Organization is a schema.org Organization. Unknown fields are rejected.
type Organization struct {
	ID     string `json:"@id,omitempty"`
	Name   string `json:"name,omitempty"`
	Logo   Image  `json:"logo,omitempty"`
	URL    URL    `json:"url,omitempty"`
	SameAs []URL  `json:"sameAs,omitempty"`
}

// Person is a schema.org Person.
type Person struct {
	ID     string `json:"@id,omitempty"`
	Name   string `json:"name,omitempty"`
	URL    URL    `json:"url,omitempty"`
	SameAs []URL  `json:"sameAs,omitempty"`
}

func (*Organization) isParty() {}
func (*Person) isParty()       {}

func (o *Organization) DisplayName() string { return o.Name }
func (p *Person) DisplayName() string       { return p.Name }

func (o *Organization) MarshalJSON() ([]byte, error) {
	type plain Organization
	return json.Marshal(struct {
		Type Type `json:"@type"`
		*plain
	}{TypeOrganization, (*plain)(o)})
}

func (p *Person) MarshalJSON() ([]byte, error) {
	type plain Person
	return json.Marshal(struct {
		Type Type `json:"@type"`
		*plain
	}{TypePerson, (*plain)(p)})
}

// isOrganization accepts Organization and its schema.org subtypes by name.
func isOrganization(o *object) bool {
	for _, t := range o.types() {
		if strings.HasSuffix(trimSchemaOrg(t), "Organization") {
			return true
		}
	}
	return false
}

// decodeParty tries Organization first and falls back to Person. A bare string
// is taken as a person's name; an array yields its first party.
func decodeParty(path string, v gjson.Result) (Party, error) {
	switch {
	case v.Type == gjson.String:
		return &Person{Name: strings.TrimSpace(v.String())}, nil
	case v.IsArray():
		items := v.Array()
		if len(items) == 0 {
			return nil, nil
		}
		return decodeParty(elem(path, 0), items[0])
	case !v.IsObject():
		return nil, mismatch(path, "Organization or Person", v)
	}

	o := newObject(path, v)
	if isOrganization(o) {
		o.strict("Organization", "@id", "@type", "name", "logo", "url", "sameAs")
		org := &Organization{}
		field(o, "@id", &org.ID, decodeText)
		field(o, "name", &org.Name, decodeTrimmed)
		field(o, "logo", &org.Logo, decodeImage)
		field(o, "url", &org.URL, decodeURL)
		field(o, "sameAs", &org.SameAs, decodeURLs)
		return org, o.err
	}
	person := &Person{}
	field(o, "@id", &person.ID, decodeText)
	field(o, "name", &person.Name, decodeTrimmed)
	field(o, "url", &person.URL, decodeURL)
	field(o, "sameAs", &person.SameAs, decodeURLs)
	return person, o.err
}

// Description is Text or a *TextObject.
type Description interface {
	isDescription()
}

// TextObject is a schema.org TextObject.
type TextObject struct {
	ID   string `json:"@id,omitempty"`
	Type string `json:"@type,omitempty"`
	Text string `json:"text,omitempty"`
	URL  URL    `json:"url,omitempty"`
}

func (Text) isDescription()        {}
func (*TextObject) isDescription() {}

func decodeDescription(path string, v gjson.Result) (Description, error) {
	if v.IsObject() {
		o := newObject(path, v)
		obj := &TextObject{}
		field(o, "@id", &obj.ID, decodeText)
		field(o, "@type", &obj.Type, decodeText)
		field(o, "text", &obj.Text, decodeText)
		field(o, "url", &obj.URL, decodeURL)
		return obj, o.err
	}
	s, err := decodeText(path, v)
	if err != nil {
		return nil, mismatch(path, "text or TextObject", v)
	}
	return Text(s), nil
}

// Language is Text (usually a BCP 47 code) or a *LanguageObject.
type Language interface {
	isLanguage()
}

// LanguageObject is a schema.org Language.
type LanguageObject struct {
	Name          string `json:"name,omitempty"`
	AlternateName string `json:"alternateName,omitempty"`
}

func (Text) isLanguage()            {}
func (*LanguageObject) isLanguage() {}

func (l *LanguageObject) MarshalJSON() ([]byte, error) {
	type plain LanguageObject
	return json.Marshal(struct {
		Type string `json:"@type"`
		*plain
	}{"Language", (*plain)(l)})
}

func decodeLanguage(path string, v gjson.Result) (Language, error) {
	if v.IsObject() {
		o := newObject(path, v)
		lang := &LanguageObject{}
		field(o, "name", &lang.Name, decodeText)
		field(o, "alternateName", &lang.AlternateName, decodeText)
		return lang, o.err
	}
	s, err := decodeText(path, v)
	if err != nil {
		return nil, mismatch(path, "language code or Language", v)
	}
	return Text(s), nil
}

// Keywords is Text (possibly comma-delimited), a URL or a *DefinedTerm.
type Keywords interface {
	isKeywords()
}

// DefinedTerm is a schema.org DefinedTerm.
type DefinedTerm struct {
	Name             string `json:"name,omitempty"`
	TermCode         string `json:"termCode,omitempty"`
	InDefinedTermSet URL    `json:"inDefinedTermSet,omitempty"`
}

func (Text) isKeywords()         {}
func (URL) isKeywords()          {}
func (*DefinedTerm) isKeywords() {}

func (t *DefinedTerm) MarshalJSON() ([]byte, error) {
	type plain DefinedTerm
	return json.Marshal(struct {
		Type string `json:"@type"`
		*plain
	}{"DefinedTerm", (*plain)(t)})
}

const keywordSeparator = ","

// decodeKeywords joins arrays with keywordSeparator. Strings, and arrays
// joining to a string, holding an absolute http(s) URL become URL.
func decodeKeywords(path string, v gjson.Result) (Keywords, error) {
	switch {
	case v.Type == gjson.String:
		if s := strings.TrimSpace(v.String()); isWebURL(s) {
			return URL(s), nil
		}
		return Text(v.String()), nil
	case v.IsObject():
		o := newObject(path, v)
		term := &DefinedTerm{}
		field(o, "name", &term.Name, decodeText)
		field(o, "termCode", &term.TermCode, decodeText)
		field(o, "inDefinedTermSet", &term.InDefinedTermSet, decodeURL)
		return term, o.err
	case v.IsArray():
		var words []string
		for i, item := range v.Array() {
			switch {
			case item.Type == gjson.String, item.Type == gjson.Number:
				words = append(words, item.String())
			case item.IsObject():
				var name string
				o := newObject(elem(path, i), item)
				field(o, "name", &name, decodeText)
				if o.err != nil {
					return nil, o.err
				}
				words = append(words, name)
			default:
				return nil, mismatch(elem(path, i), "keyword", item)
			}
		}
		joined := strings.Join(words, keywordSeparator)
		if s := strings.TrimSpace(joined); isWebURL(s) {
			return URL(s), nil
		}
		return Text(joined), nil
	default:
		return nil, mismatch(path, "keywords", v)
	}
}

// Reference is a URL or a *CreativeWork. It types isPartOf and mainEntityOfPage.
type Reference interface {
	isReference()
}

// CreativeWork is a generic schema.org CreativeWork node.
type CreativeWork struct {
	ID          string      `json:"@id,omitempty"`
	Type        string      `json:"@type,omitempty"`
	Name        string      `json:"name,omitempty"`
	Description Description `json:"description,omitempty"`
	Image       Image       `json:"image,omitempty"`
	URL         URL         `json:"url,omitempty"`
	Text        string      `json:"text,omitempty"`
}

func (URL) isReference()           {}
func (*CreativeWork) isReference() {}

func decodeCreativeWork(path string, v gjson.Result) (*CreativeWork, error) {
	if !v.IsObject() {
		return nil, mismatch(path, "CreativeWork", v)
	}
	o := newObject(path, v)
	cw := &CreativeWork{}
	field(o, "@id", &cw.ID, decodeText)
	if types := o.types(); len(types) > 0 {
		cw.Type = types[len(types)-1]
	}
	field(o, "name", &cw.Name, decodeText)
	field(o, "description", &cw.Description, decodeDescription)
	field(o, "image", &cw.Image, decodeImage)
	field(o, "url", &cw.URL, decodeURL)
	field(o, "text", &cw.Text, decodeText)
	return cw, o.err
}

func decodeReference(path string, v gjson.Result) (Reference, error) {
	switch {
	case v.Type == gjson.String:
		return decodeURL(path, v)
	case v.IsObject():
		return decodeCreativeWork(path, v)
	case v.IsArray():
		items := v.Array()
		if len(items) == 0 {
			return nil, nil
		}
		return decodeReference(elem(path, 0), items[0])
	default:
		return nil, mismatch(path, "URL or CreativeWork", v)
	}
}

// ContentRating is Text or a *Rating.
type ContentRating interface {
	isContentRating()
}

// Rating is a schema.org Rating.
type Rating struct {
	RatingValue NumberOrText `json:"ratingValue,omitempty"`
	BestRating  NumberOrText `json:"bestRating,omitempty"`
	WorstRating NumberOrText `json:"worstRating,omitempty"`
}

func (Text) isContentRating()    {}
func (*Rating) isContentRating() {}

func (r *Rating) MarshalJSON() ([]byte, error) {
	type plain Rating
	return json.Marshal(struct {
		Type Type `json:"@type"`
		*plain
	}{TypeRating, (*plain)(r)})
}

func decodeRating(path string, v gjson.Result) (*Rating, error) {
	if !v.IsObject() {
		return nil, mismatch(path, "Rating", v)
	}
	o := newObject(path, v)
	r := &Rating{}
	field(o, "ratingValue", &r.RatingValue, decodeNumberOrText)
	field(o, "bestRating", &r.BestRating, decodeNumberOrText)
	field(o, "worstRating", &r.WorstRating, decodeNumberOrText)
	return r, o.err
}

func decodeContentRating(path string, v gjson.Result) (ContentRating, error) {
	switch {
	case v.Type == gjson.String:
		return Text(v.String()), nil
	case v.IsObject():
		return decodeRating(path, v)
	default:
		return nil, mismatch(path, "text or Rating", v)
	}
}

// Instrument is a tool or supply: Text or a *HowToItem.
type Instrument interface {
	isInstrument()
}

// HowToItem is a schema.org HowToTool or HowToSupply.
type HowToItem struct {
	Type             string `json:"@type,omitempty"`
	Name             string `json:"name,omitempty"`
	RequiredQuantity string `json:"requiredQuantity,omitempty"`
	URL              URL    `json:"url,omitempty"`
}

func (Text) isInstrument()       {}
func (*HowToItem) isInstrument() {}

func decodeInstrument(path string, v gjson.Result) (Instrument, error) {
	switch {
	case v.Type == gjson.String:
		return Text(v.String()), nil
	case v.IsObject():
		o := newObject(path, v)
		item := &HowToItem{}
		if types := o.types(); len(types) > 0 {
			item.Type = types[len(types)-1]
		}
		field(o, "name", &item.Name, decodeTrimmed)
		field(o, "requiredQuantity", &item.RequiredQuantity, decodeQuantityText)
		field(o, "url", &item.URL, decodeURL)
		return item, o.err
	default:
		return nil, mismatch(path, "text or HowToItem", v)
	}
}

// decodeQuantityText flattens a QuantitativeValue object into its value text.
func decodeQuantityText(path string, v gjson.Result) (string, error) {
	if v.IsObject() {
		var s string
		o := newObject(path, v)
		field(o, "value", &s, decodeText)
		return s, o.err
	}
	return decodeText(path, v)
}

func decodeInstruments(path string, v gjson.Result) ([]Instrument, error) {
	if !v.IsArray() {
		item, err := decodeInstrument(path, v)
		if err != nil {
			return nil, err
		}
		return []Instrument{item}, nil
	}
	items := v.Array()
	out := make([]Instrument, 0, len(items))
	for i, raw := range items {
		item, err := decodeInstrument(elem(path, i), raw)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
