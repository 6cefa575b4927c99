/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package result extracts structured payloads from model output. Models
// asked for strict JSON still wrap it in markdown fences or stray prose
// often enough that callers should never hand raw response text straight
// to json.Unmarshal.
package result

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON returns the JSON payload embedded in model output. It
// prefers the first ```json fenced block; failing that it strips inline
// fence markers and surrounding whitespace and returns what remains.
func ExtractJSON(text string) string {
	if body, ok := fencedBlock(text); ok {
		return body
	}

	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, "```json"):
		trimmed = strings.TrimPrefix(trimmed, "```json")
	case strings.HasPrefix(trimmed, "```"):
		trimmed = strings.TrimPrefix(trimmed, "```")
	}
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}

// fencedBlock finds the first ```json fence opened on its own line and
// returns the content up to the closing fence, or to the end of input
// when the model stopped before closing it.
func fencedBlock(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "```json" {
			continue
		}
		var body []string
		for _, inner := range lines[i+1:] {
			if strings.TrimSpace(inner) == "```" {
				break
			}
			body = append(body, inner)
		}
		return strings.TrimSpace(strings.Join(body, "\n")), true
	}
	return "", false
}

// Extract unmarshals the JSON payload in text into T.
func Extract[T any](text string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &out); err != nil {
		return out, fmt.Errorf("unmarshaling model response: %w", err)
	}
	return out, nil
}
