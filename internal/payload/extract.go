// Package payload normalizes the backend's inconsistent response envelopes.
//
// Depending on the endpoint (and the backend version), a list response may be
// a bare array, `{"data": [...]}`, `{"<resourceKey>": [...]}`, or
// `{"data": {"<resourceKey>": [...]}}`. Single items come back either under
// "data" or as the payload itself. This package is the only place that
// inconsistency is allowed to exist: callers hand over the raw body plus the
// candidate keys for their resource and get a canonical result back.
package payload

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// ExtractList returns the list contained in body, trying each shape in a
// fixed priority order. Absence of data is not an error at this layer: an
// unrecognised shape yields an empty slice, never a failure.
func ExtractList(body []byte, keys ...string) []gjson.Result {
	root := gjson.ParseBytes(body)

	if root.IsArray() {
		return root.Array()
	}
	if !root.IsObject() {
		return nil
	}

	if data := root.Get("data"); data.IsArray() {
		return data.Array()
	}
	for _, key := range keys {
		if v := root.Get(key); v.IsArray() {
			return v.Array()
		}
	}
	// Some endpoints nest the keyed list one level down under "data".
	if data := root.Get("data"); data.IsObject() {
		for _, key := range keys {
			if v := data.Get(key); v.IsArray() {
				return v.Array()
			}
		}
	}
	return nil
}

// ExtractItem returns the single entity in body: the "data" field when
// present, otherwise the payload itself. ok is false when body holds nothing
// usable.
func ExtractItem(body []byte) (gjson.Result, bool) {
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}, false
	}
	if data := root.Get("data"); data.Exists() && data.IsObject() {
		return data, true
	}
	return root, true
}

// Identifier resolves an entity's identifier, accepting both the current "id"
// and the legacy Mongo "_id" field. Downstream code never branches on
// identifier shape; it happens here only.
func Identifier(r gjson.Result) string {
	if id := r.Get("id"); id.Exists() {
		return id.String()
	}
	return r.Get("_id").String()
}

// ExtractField returns the named object from the payload, looking under
// "data" first (`{"data":{"user":{...}}}`), then at the top level. Older
// backends return the entity bare, so an absent key falls back to
// ExtractItem.
func ExtractField(body []byte, key string) (gjson.Result, bool) {
	root := gjson.ParseBytes(body)
	if v := root.Get("data." + key); v.IsObject() {
		return v, true
	}
	if v := root.Get(key); v.IsObject() {
		return v, true
	}
	return ExtractItem(body)
}

// ExtractString returns a scalar field, looking under "data" first.
func ExtractString(body []byte, key string) string {
	root := gjson.ParseBytes(body)
	if v := root.Get("data." + key); v.Exists() {
		return v.String()
	}
	return root.Get(key).String()
}

type normalizable interface {
	Normalize()
}

// DecodeList extracts and decodes a list of entities, canonicalising each
// identifier on the way in. Entries that fail to decode are dropped rather
// than failing the whole list; the tolerant contract of this layer is that
// malformed data degrades to absence.
func DecodeList[T any, PT interface {
	*T
	normalizable
}](body []byte, keys ...string) []T {
	results := ExtractList(body, keys...)
	out := make([]T, 0, len(results))
	for _, r := range results {
		var v T
		if err := json.Unmarshal([]byte(r.Raw), &v); err != nil {
			continue
		}
		PT(&v).Normalize()
		out = append(out, v)
	}
	return out
}

// DecodeField extracts and decodes the named entity (e.g. the "user" inside
// a login response), canonicalising its identifier. Returns nil when the
// payload holds no usable entity.
func DecodeField[T any, PT interface {
	*T
	normalizable
}](body []byte, key string) *T {
	r, ok := ExtractField(body, key)
	if !ok {
		return nil
	}
	var v T
	if err := json.Unmarshal([]byte(r.Raw), &v); err != nil {
		return nil
	}
	PT(&v).Normalize()
	return &v
}

// DecodeItem extracts and decodes a single entity, canonicalising its
// identifier. Returns nil when the payload holds no usable entity.
func DecodeItem[T any, PT interface {
	*T
	normalizable
}](body []byte) *T {
	r, ok := ExtractItem(body)
	if !ok {
		return nil
	}
	var v T
	if err := json.Unmarshal([]byte(r.Raw), &v); err != nil {
		return nil
	}
	PT(&v).Normalize()
	return &v
}
