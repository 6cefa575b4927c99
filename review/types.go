/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

// Comment is one inline review comment anchored to a file and line.
type Comment struct {
	// Path identifies the file the comment applies to.
	Path string `json:"path" jsonschema:"description=Path of the file the comment applies to,required"`

	// Line is the line number in the new version of the file. It must
	// reference one of the diff's added lines for GitHub to accept it.
	Line int `json:"line" jsonschema:"description=Exact line number among the added lines of the diff,required"`

	// Body is the comment text in GitHub-flavored markdown.
	Body string `json:"body" jsonschema:"description=Comment text in GitHub-flavored markdown,required"`
}

// Result is the structured outcome of one review call, immutable once
// parsed and merged.
type Result struct {
	// Summary is the high-level review summary posted as the review body.
	Summary string `json:"summary" jsonschema:"description=High-level summary of the changes,required"`

	// Action is the model's advisory verdict. It never changes how the
	// review is submitted; formal reviews always post as a neutral
	// comment.
	Action string `json:"action,omitempty" jsonschema:"description=Advisory verdict,enum=APPROVE,enum=REQUEST_CHANGES,enum=COMMENT"`

	// Comments holds the merged inline comments in first-seen order.
	Comments []Comment `json:"comments" jsonschema:"description=Inline comments anchored to added lines of the diff"`

	// Dropped counts candidate comments discarded for missing fields and
	// Merged counts records folded into an earlier comment on the same
	// line. Both are run accounting, not part of the wire format.
	Dropped int `json:"-"`
	Merged  int `json:"-"`
}
