// Package schema — decoding errors.
package schema

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// ErrRecipeNotFound is returned when a JSON-LD document does not describe a recipe.
var ErrRecipeNotFound = errors.New("recipe not found in document")

// DecodeError reports a structural mismatch while decoding a recipe document.
// Path is a JSONPath-like location such as "$.@graph[2].author".
type DecodeError struct {
	Path     string
	Expected string
	Got      string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: expected %s, got %s", e.Path, e.Expected, e.Got)
}

func mismatch(path, expected string, got gjson.Result) error {
	return &DecodeError{Path: path, Expected: expected, Got: kindOf(got)}
}

// kindOf names the JSON token kind of a value.
func kindOf(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		if !v.Exists() {
			return "nothing"
		}
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		if v.IsArray() {
			return "array"
		}
		return "object"
	}
}

func child(path, key string) string {
	return path + "." + key
}

func elem(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
