/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"fmt"

	"chainguard.dev/prbutler/result"
)

// DefaultSummary is used when the model's response carries no summary
// field at all.
const DefaultSummary = "Code Review"

// candidate mirrors the wire shape of one comment with every field
// optional, so presence can be distinguished from a zero value.
type candidate struct {
	Path *string `json:"path"`
	Line *int    `json:"line"`
	Body *string `json:"body"`
}

// envelope mirrors the wire shape of the whole response.
type envelope struct {
	Summary  *string     `json:"summary"`
	Action   *string     `json:"action"`
	Comments []candidate `json:"comments"`
}

// Parse reads raw model output into a merged Result.
//
// Absent fields take defaults (summary falls back to DefaultSummary,
// comments to empty), and candidate records missing a path, line, or
// body are dropped without error. When the payload does not parse as
// JSON at all, Parse returns a degraded summary-only Result describing
// the failure along with the parse error itself; the Result remains
// postable either way.
func Parse(raw string) (Result, error) {
	env, err := result.Extract[envelope](raw)
	if err != nil {
		return Result{
			Summary: fmt.Sprintf("Error parsing model response: %v", err),
		}, err
	}

	res := Result{Summary: DefaultSummary}
	if env.Summary != nil {
		res.Summary = *env.Summary
	}
	if env.Action != nil {
		res.Action = *env.Action
	}
	for _, c := range env.Comments {
		if c.Path == nil || *c.Path == "" ||
			c.Line == nil || *c.Line == 0 ||
			c.Body == nil || *c.Body == "" {
			res.Dropped++
			continue
		}
		res.Comments = append(res.Comments, Comment{
			Path: *c.Path,
			Line: *c.Line,
			Body: *c.Body,
		})
	}
	kept := len(res.Comments)
	res.Comments = Merge(res.Comments)
	res.Merged = kept - len(res.Comments)
	return res, nil
}
