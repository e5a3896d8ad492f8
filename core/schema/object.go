// Package schema — object field access.
package schema

import (
	"slices"

	"github.com/tidwall/gjson"
)

// object is a decoded JSON object with its location. Keys are collected by
// iteration rather than path queries because "@" starts a gjson modifier.
// The first decoding failure sticks in err and short-circuits later fields.
type object struct {
	path   string
	fields map[string]gjson.Result
	err    error
}

func newObject(path string, v gjson.Result) *object {
	o := &object{path: path, fields: make(map[string]gjson.Result)}
	v.ForEach(func(key, value gjson.Result) bool {
		o.fields[key.String()] = value
		return true
	})
	return o
}

// get returns a field that is present and not null.
func (o *object) get(key string) (gjson.Result, bool) {
	v, ok := o.fields[key]
	if !ok || v.Type == gjson.Null {
		return gjson.Result{}, false
	}
	return v, true
}

// strict fails the object when it carries a key outside allowed.
func (o *object) strict(expected string, allowed ...string) {
	if o.err != nil {
		return
	}
	keys := make([]string, 0, len(o.fields))
	for k := range o.fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !slices.Contains(allowed, k) {
			o.err = &DecodeError{Path: child(o.path, k), Expected: "a known " + expected + " field", Got: "unknown field " + k}
			return
		}
	}
}

// field decodes an optional key into dst. Absent and null keys leave dst untouched.
func field[T any](o *object, key string, dst *T, decode func(path string, v gjson.Result) (T, error)) {
	if o.err != nil {
		return
	}
	v, ok := o.get(key)
	if !ok {
		return
	}
	out, err := decode(child(o.path, key), v)
	if err != nil {
		o.err = err
		return
	}
	*dst = out
}

// require is field for keys that must be present.
func require[T any](o *object, key, expected string, dst *T, decode func(path string, v gjson.Result) (T, error)) {
	if o.err != nil {
		return
	}
	if _, ok := o.get(key); !ok {
		o.err = &DecodeError{Path: child(o.path, key), Expected: expected, Got: "nothing"}
		return
	}
	field(o, key, dst, decode)
}

// types returns the raw @type strings of the object.
func (o *object) types() []string {
	v, ok := o.get("@type")
	if !ok {
		return nil
	}
	if v.Type == gjson.String {
		return []string{v.String()}
	}
	var out []string
	if v.IsArray() {
		for _, t := range v.Array() {
			if t.Type == gjson.String {
				out = append(out, t.String())
			}
		}
	}
	return out
}

// hasType reports whether one of the object's @type values resolves to t.
func (o *object) hasType(t Type) bool {
	for _, raw := range o.types() {
		if parseType(raw) == t {
			return true
		}
	}
	return false
}
