// Package schema — enumerations and scalar values.
package schema

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sosodev/duration"
	"github.com/tidwall/gjson"
)

// Type is a schema.org type tag.
type Type string

// Recognized schema.org type tags.
const (
	TypeAggregateRating      Type = "AggregateRating"
	TypeArticle              Type = "Article"
	TypeBreadcrumbList       Type = "BreadcrumbList"
	TypeCreativeWork         Type = "CreativeWork"
	TypeHowToStep            Type = "HowToStep"
	TypeImageObject          Type = "ImageObject"
	TypeListItem             Type = "ListItem"
	TypeNewsArticle          Type = "NewsArticle"
	TypeNutritionInformation Type = "NutritionInformation"
	TypeOrganization         Type = "Organization"
	TypePerson               Type = "Person"
	TypeRating               Type = "Rating"
	TypeRecipe               Type = "Recipe"
	TypeReview               Type = "Review"
	TypeVideoObject          Type = "VideoObject"
	TypeWebPage              Type = "WebPage"
	TypeWebSite              Type = "WebSite"
	TypeUnspecified          Type = "Unspecified"
)

var knownTypes = map[string]Type{}

func init() {
	for _, t := range []Type{
		TypeAggregateRating, TypeArticle, TypeBreadcrumbList, TypeCreativeWork, TypeHowToStep,
		TypeImageObject, TypeListItem, TypeNewsArticle, TypeNutritionInformation, TypeOrganization,
		TypePerson, TypeRating, TypeRecipe, TypeReview, TypeVideoObject, TypeWebPage, TypeWebSite,
		TypeUnspecified,
	} {
		knownTypes[string(t)] = t
	}
}

// trimSchemaOrg drops a schema.org namespace prefix from a term.
func trimSchemaOrg(s string) string {
	for _, prefix := range []string{"https://schema.org/", "http://schema.org/"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			return rest
		}
	}
	return s
}

// parseType maps a raw @type string to its tag, or TypeUnspecified.
func parseType(s string) Type {
	if t, ok := knownTypes[trimSchemaOrg(strings.TrimSpace(s))]; ok {
		return t
	}
	return TypeUnspecified
}

// decodeType resolves @type. For arrays the last recognized tag wins.
func decodeType(path string, v gjson.Result) (Type, error) {
	switch {
	case v.Type == gjson.String:
		return parseType(v.String()), nil
	case v.IsArray():
		resolved := TypeUnspecified
		for _, item := range v.Array() {
			if item.Type != gjson.String {
				continue
			}
			if t := parseType(item.String()); t != TypeUnspecified {
				resolved = t
			}
		}
		return resolved, nil
	default:
		return "", mismatch(path, "a type name or list of type names", v)
	}
}

// Context is the JSON-LD vocabulary of a document.
type Context string

// ContextSchemaOrg is the only supported vocabulary.
const ContextSchemaOrg Context = "https://schema.org"

func decodeContext(path string, v gjson.Result) (Context, error) {
	switch {
	case v.Type == gjson.String:
		switch strings.TrimRight(strings.TrimSpace(v.String()), "/") {
		case "http://schema.org", "https://schema.org":
			return ContextSchemaOrg, nil
		}
		return "", &DecodeError{Path: path, Expected: "schema.org context", Got: strconv.Quote(v.String())}
	case v.IsArray():
		for i, item := range v.Array() {
			if item.Type == gjson.String {
				return decodeContext(elem(path, i), item)
			}
		}
	case v.IsObject():
		if vocab, ok := newObject(path, v).get("@vocab"); ok {
			return decodeContext(child(path, "@vocab"), vocab)
		}
	}
	return "", mismatch(path, "schema.org context", v)
}

// RestrictedDiet is a schema.org RestrictedDiet value.
type RestrictedDiet string

// Restricted diets.
const (
	DiabeticDiet    RestrictedDiet = "DiabeticDiet"
	GlutenFreeDiet  RestrictedDiet = "GlutenFreeDiet"
	HalalDiet       RestrictedDiet = "HalalDiet"
	HinduDiet       RestrictedDiet = "HinduDiet"
	KosherDiet      RestrictedDiet = "KosherDiet"
	LowCalorieDiet  RestrictedDiet = "LowCalorieDiet"
	LowFatDiet      RestrictedDiet = "LowFatDiet"
	LowLactoseDiet  RestrictedDiet = "LowLactoseDiet"
	LowSaltDiet     RestrictedDiet = "LowSaltDiet"
	VeganDiet       RestrictedDiet = "VeganDiet"
	VegetarianDiet  RestrictedDiet = "VegetarianDiet"
	UnspecifiedDiet RestrictedDiet = "Unspecified"
)

var diets = map[string]RestrictedDiet{}

func init() {
	for _, d := range []RestrictedDiet{
		DiabeticDiet, GlutenFreeDiet, HalalDiet, HinduDiet, KosherDiet, LowCalorieDiet,
		LowFatDiet, LowLactoseDiet, LowSaltDiet, VeganDiet, VegetarianDiet, UnspecifiedDiet,
	} {
		diets[string(d)] = d
	}
}

func decodeDiet(path string, v gjson.Result) (RestrictedDiet, error) {
	switch {
	case v.Type == gjson.String:
		if d, ok := diets[trimSchemaOrg(strings.TrimSpace(v.String()))]; ok {
			return d, nil
		}
		return UnspecifiedDiet, nil
	case v.IsArray():
		items := v.Array()
		if len(items) == 0 {
			return UnspecifiedDiet, nil
		}
		return decodeDiet(elem(path, 0), items[0])
	default:
		return "", mismatch(path, "a restricted diet", v)
	}
}

// Text is free text.
type Text string

// URL is an absolute or relative URL reference.
type URL string

func (u URL) String() string { return string(u) }

func decodeURL(path string, v gjson.Result) (URL, error) {
	switch {
	case v.Type == gjson.String:
		s := strings.TrimSpace(v.String())
		if _, err := url.Parse(s); err != nil {
			return "", &DecodeError{Path: path, Expected: "URL", Got: strconv.Quote(s)}
		}
		return URL(s), nil
	case v.IsArray():
		items := v.Array()
		if len(items) == 0 {
			return "", nil
		}
		return decodeURL(elem(path, 0), items[0])
	default:
		return "", mismatch(path, "URL", v)
	}
}

func decodeURLs(path string, v gjson.Result) ([]URL, error) {
	if !v.IsArray() {
		u, err := decodeURL(path, v)
		if err != nil {
			return nil, err
		}
		return []URL{u}, nil
	}
	out := make([]URL, 0, len(v.Array()))
	for i, item := range v.Array() {
		u, err := decodeURL(elem(path, i), item)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// isWebURL reports whether s is an absolute http(s) URL with a host.
func isWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// decodeText accepts a string, a number (kept verbatim) or the first element
// of an array of either.
func decodeText(path string, v gjson.Result) (string, error) {
	switch {
	case v.Type == gjson.String:
		return v.String(), nil
	case v.Type == gjson.Number:
		return v.Raw, nil
	case v.IsArray():
		items := v.Array()
		if len(items) == 0 {
			return "", nil
		}
		return decodeText(elem(path, 0), items[0])
	default:
		return "", mismatch(path, "text", v)
	}
}

func decodeTrimmed(path string, v gjson.Result) (string, error) {
	s, err := decodeText(path, v)
	return strings.TrimSpace(s), err
}

// decodeTexts accepts a list of strings or a single string.
func decodeTexts(path string, v gjson.Result) ([]string, error) {
	if !v.IsArray() {
		s, err := decodeText(path, v)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type == gjson.Null {
			continue
		}
		if item.IsArray() {
			return nil, mismatch(elem(path, i), "text", item)
		}
		s, err := decodeText(elem(path, i), item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// decodeInt accepts an integral number or a numeric string.
func decodeInt(path string, v gjson.Result) (int64, error) {
	switch v.Type {
	case gjson.Number:
		if v.Num != math.Trunc(v.Num) {
			return 0, &DecodeError{Path: path, Expected: "integer", Got: v.Raw}
		}
		return v.Int(), nil
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(v.String()), 10, 64)
		if err != nil {
			return 0, &DecodeError{Path: path, Expected: "integer", Got: strconv.Quote(v.String())}
		}
		return n, nil
	default:
		return 0, mismatch(path, "integer", v)
	}
}

// decodeCount is decodeInt where unparseable strings mean absent.
func decodeCount(path string, v gjson.Result) (int64, error) {
	if v.Type == gjson.String {
		n, err := strconv.ParseInt(strings.TrimSpace(v.String()), 10, 64)
		if err != nil {
			return 0, nil
		}
		return n, nil
	}
	if v.Type == gjson.Number {
		return int64(v.Num), nil
	}
	return 0, mismatch(path, "integer or numeric string", v)
}

func decodeBool(path string, v gjson.Result) (*bool, error) {
	var b bool
	switch v.Type {
	case gjson.True:
		b = true
	case gjson.False:
		b = false
	case gjson.String:
		s := strings.TrimSpace(v.String())
		switch {
		case strings.EqualFold(s, "true"):
			b = true
		case strings.EqualFold(s, "false"):
			b = false
		default:
			return nil, &DecodeError{Path: path, Expected: "boolean", Got: strconv.Quote(s)}
		}
	default:
		return nil, mismatch(path, "boolean", v)
	}
	return &b, nil
}

// NumberOrText is a value schema.org allows as either a number or text.
type NumberOrText interface {
	isNumberOrText()
}

// Number is a numeric value.
type Number float64

func (Number) isNumberOrText() {}
func (Text) isNumberOrText()   {}

func decodeNumberOrText(path string, v gjson.Result) (NumberOrText, error) {
	switch v.Type {
	case gjson.Number:
		return Number(v.Num), nil
	case gjson.String:
		return Text(v.String()), nil
	default:
		return nil, mismatch(path, "number or text", v)
	}
}

// Date is a calendar date or a date-time.
type Date struct {
	Time time.Time
	// DateOnly is set when the source carried no time of day.
	DateOnly bool
}

const dateLayout = "2006-01-02"

var dateTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"}

// ParseDate parses an RFC 3339 date-time or an ISO 8601 calendar date.
func ParseDate(s string) (*Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			// A zero offset is UTC, whichever way it was spelled.
			if _, offset := t.Zone(); offset == 0 {
				t = t.UTC()
			}
			return &Date{Time: t}, nil
		}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &Date{Time: t, DateOnly: true}, nil
}

func (d Date) String() string {
	if d.DateOnly {
		return d.Time.Format(dateLayout)
	}
	return d.Time.Format(time.RFC3339Nano)
}

// MarshalJSON encodes the date in the form it was parsed from.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func decodeDate(path string, v gjson.Result) (*Date, error) {
	if v.Type != gjson.String {
		return nil, mismatch(path, "date or date-time", v)
	}
	if strings.TrimSpace(v.String()) == "" {
		return nil, nil
	}
	d, err := ParseDate(v.String())
	if err != nil {
		return nil, &DecodeError{Path: path, Expected: "date or date-time", Got: strconv.Quote(v.String())}
	}
	return d, nil
}

// Duration is an ISO 8601 duration such as PT35M.
type Duration struct {
	raw string
	iso *duration.Duration
}

// ParseDuration parses an ISO 8601 duration.
func ParseDuration(s string) (*Duration, error) {
	s = strings.TrimSpace(s)
	d, err := duration.Parse(s)
	if err != nil {
		return nil, err
	}
	return &Duration{raw: s, iso: d}, nil
}

// String returns the duration as written in the source.
func (d Duration) String() string { return d.raw }

// Std converts the duration to a time.Duration. Years and months use the
// average lengths of the Gregorian calendar.
func (d Duration) Std() time.Duration {
	if d.iso == nil {
		return 0
	}
	return d.iso.ToTimeDuration()
}

// MarshalJSON encodes the duration as an ISO 8601 string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.raw)
}

// decodeDuration treats an empty string as an absent duration.
func decodeDuration(path string, v gjson.Result) (*Duration, error) {
	if v.Type != gjson.String {
		return nil, mismatch(path, "ISO 8601 duration", v)
	}
	if strings.TrimSpace(v.String()) == "" {
		return nil, nil
	}
	d, err := ParseDuration(v.String())
	if err != nil {
		return nil, &DecodeError{Path: path, Expected: "ISO 8601 duration", Got: strconv.Quote(v.String())}
	}
	return d, nil
}
