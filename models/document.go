// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// DocumentKind names the JSON type of a [Document]'s root value.
type DocumentKind string

const (
	DocumentKindNull    DocumentKind = "null"
	DocumentKindBoolean DocumentKind = "boolean"
	DocumentKindNumber  DocumentKind = "number"
	DocumentKindString  DocumentKind = "string"
	DocumentKindArray   DocumentKind = "array"
	DocumentKindObject  DocumentKind = "object"

	// DocumentKindUnknown is reported for values that did not come from a
	// JSON decoder.
	DocumentKindUnknown DocumentKind = "unknown"
)

// Document is an arbitrary JSON value loaded verbatim from disk.
//
// No schema is assumed: the root may be an object, array, string, number,
// boolean or null. Numbers are kept as [json.Number] so that they are written
// back exactly as they were read.
//
// A Document is never mutated after construction. Accessors return the
// underlying value as-is, so callers must not modify maps or slices reached
// through [Document.Value].
type Document struct {
	value any
}

// NewDocument wraps an already decoded JSON value. The value is expected to
// be one of the types produced by encoding/json when decoding into any
// (with UseNumber enabled): nil, bool, json.Number, float64, string, []any
// or map[string]any.
func NewDocument(value any) Document {
	return Document{value: value}
}

// Value returns the decoded root value.
func (d Document) Value() any {
	return d.value
}

// Kind reports the JSON type of the root value.
func (d Document) Kind() DocumentKind {
	switch d.value.(type) {
	case nil:
		return DocumentKindNull
	case bool:
		return DocumentKindBoolean
	case json.Number, float64, float32, int, int64:
		return DocumentKindNumber
	case string:
		return DocumentKindString
	case []any:
		return DocumentKindArray
	case map[string]any:
		return DocumentKindObject
	default:
		return DocumentKindUnknown
	}
}

// MarshalJSON encodes the wrapped value, so a Document serializes exactly
// like the JSON it was loaded from (modulo whitespace and object key order).
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.value)
}

// UnmarshalJSON decodes any JSON value into the Document, preserving numbers.
func (d *Document) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	d.value = v
	return nil
}

// RootResponse is the body returned by the root endpoint.
type RootResponse struct {
	// Message carries the loaded document unchanged.
	Message Document `json:"message"`
}
