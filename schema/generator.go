/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package schema derives JSON schemas from Go types for model-facing
// response contracts.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Reflect returns the JSON schema for v with the settings model-facing
// schemas need: required fields come from jsonschema struct tags, the
// top-level struct is expanded rather than referenced, and additional
// properties stay open so a chatty model does not fail validation.
func Reflect(v any) *jsonschema.Schema {
	r := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
	}
	return r.Reflect(v)
}

// ReflectType reflects a zero value of T.
func ReflectType[T any]() *jsonschema.Schema {
	var zero T
	return Reflect(&zero)
}

// JSON renders the schema for T as indented JSON, the form embedded in
// prompts that ask a model to match it.
func JSON[T any]() (string, error) {
	b, err := json.MarshalIndent(ReflectType[T](), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling schema: %w", err)
	}
	return string(b), nil
}

// MustJSON is JSON for package-level schema variables; it panics if the
// schema cannot be marshaled.
func MustJSON[T any]() string {
	s, err := JSON[T]()
	if err != nil {
		panic(err)
	}
	return s
}
