// Package schema — recipe instructions and yield.
package schema

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// NormalizeText trims s and replaces "&nbsp;" entities with spaces. Other
// entities are left as they are. NormalizeText is idempotent.
func NormalizeText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "&nbsp;", " "))
}

// Instructions is Text, a *CreativeWork or Steps.
type Instructions interface {
	isInstructions()
}

// HowToStep is a single instruction step. Text is never empty.
type HowToStep struct {
	Name  string `json:"name,omitempty"`
	Text  string `json:"text"`
	URL   URL    `json:"url,omitempty"`
	Image Image  `json:"image,omitempty"`
}

func (s HowToStep) MarshalJSON() ([]byte, error) {
	type plain HowToStep
	return json.Marshal(struct {
		Type Type `json:"@type"`
		plain
	}{TypeHowToStep, plain(s)})
}

// Steps is an ordered list of instruction steps. Sections are flattened.
type Steps []HowToStep

func (Text) isInstructions()          {}
func (*CreativeWork) isInstructions() {}
func (Steps) isInstructions()         {}

// decodeInstructions dispatches on token kind: a string is Text, an array is
// Steps, and an object is Steps when typed HowToStep or HowToSection or a
// CreativeWork otherwise.
func decodeInstructions(path string, v gjson.Result) (Instructions, error) {
	switch {
	case v.Type == gjson.String:
		return Text(v.String()), nil
	case v.IsArray():
		steps := Steps{}
		if err := appendSteps(&steps, path, v); err != nil {
			return nil, err
		}
		return steps, nil
	case v.IsObject():
		o := newObject(path, v)
		if !isStepLike(o) {
			return decodeCreativeWork(path, v)
		}
		steps := Steps{}
		if err := appendSteps(&steps, path, v); err != nil {
			return nil, err
		}
		return steps, nil
	default:
		return nil, mismatch(path, "text, CreativeWork or list of HowToStep", v)
	}
}

func isStepLike(o *object) bool {
	for _, t := range o.types() {
		switch trimSchemaOrg(t) {
		case "HowToStep", "HowToSection", "HowToDirection", "HowToTip":
			return true
		}
	}
	return false
}

func isSection(o *object) bool {
	for _, t := range o.types() {
		if trimSchemaOrg(t) == "HowToSection" {
			return true
		}
	}
	_, hasItems := o.get("itemListElement")
	_, hasText := o.get("text")
	return hasItems && !hasText
}

// appendSteps flattens v into steps. Steps whose text and name are both empty
// are dropped; a missing text falls back to the name.
func appendSteps(steps *Steps, path string, v gjson.Result) error {
	switch {
	case v.Type == gjson.String:
		if text := NormalizeText(v.String()); text != "" {
			*steps = append(*steps, HowToStep{Text: text})
		}
		return nil
	case v.IsArray():
		for i, item := range v.Array() {
			if item.Type == gjson.Null {
				continue
			}
			if err := appendSteps(steps, elem(path, i), item); err != nil {
				return err
			}
		}
		return nil
	case v.IsObject():
		o := newObject(path, v)
		if isSection(o) {
			items, ok := o.get("itemListElement")
			if !ok {
				return nil
			}
			return appendSteps(steps, child(path, "itemListElement"), items)
		}
		var step HowToStep
		field(o, "name", &step.Name, decodeText)
		field(o, "text", &step.Text, decodeText)
		field(o, "url", &step.URL, decodeURL)
		field(o, "image", &step.Image, decodeImage)
		if o.err != nil {
			return o.err
		}
		step.Name = NormalizeText(step.Name)
		step.Text = NormalizeText(step.Text)
		if step.Text == "" {
			step.Text = step.Name
		}
		if step.Text != "" {
			*steps = append(*steps, step)
		}
		return nil
	default:
		return mismatch(path, "HowToStep or text", v)
	}
}

// Yield is a QuantitativeValue or Text.
type Yield interface {
	isYield()
}

// QuantitativeValue is an integral amount, typically servings.
type QuantitativeValue struct {
	Value int64
}

func (QuantitativeValue) isYield() {}
func (Text) isYield()              {}

// MarshalJSON encodes the value as a bare integer.
func (q QuantitativeValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(q.Value, 10)), nil
}

func (q QuantitativeValue) String() string {
	return strconv.FormatInt(q.Value, 10)
}

// defaultYield applies when a recipe carries no yield.
var defaultYield = QuantitativeValue{Value: 1}

// decodeYield prefers numbers. An array yields its first element as a number
// when it parses as an integer, else as text.
func decodeYield(path string, v gjson.Result) (Yield, error) {
	switch {
	case v.Type == gjson.Number:
		if n, err := decodeInt(path, v); err == nil {
			return QuantitativeValue{Value: n}, nil
		}
		return Text(v.Raw), nil
	case v.Type == gjson.String:
		return Text(v.String()), nil
	case v.IsArray():
		items := v.Array()
		if len(items) == 0 {
			return defaultYield, nil
		}
		first := items[0]
		switch first.Type {
		case gjson.Number:
			return decodeYield(elem(path, 0), first)
		case gjson.String:
			if n, err := strconv.ParseInt(strings.TrimSpace(first.String()), 10, 64); err == nil {
				return QuantitativeValue{Value: n}, nil
			}
			return Text(first.String()), nil
		default:
			return nil, mismatch(elem(path, 0), "quantity or text", first)
		}
	case v.IsObject():
		var n int64
		o := newObject(path, v)
		require(o, "value", "integer", &n, decodeInt)
		return QuantitativeValue{Value: n}, o.err
	default:
		return nil, mismatch(path, "quantity or text", v)
	}
}
