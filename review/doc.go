/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package review turns raw model output into a postable code review.

Parse applies a typed, tolerant read of the model's JSON: a missing
summary falls back to a placeholder, a missing or malformed comment list
becomes empty, and any comment record lacking a path, line, or body is
dropped silently. A response that fails to parse at all degrades to a
summary-only Result whose summary carries the parse error; the caller
still posts it rather than aborting the run.

Merge deduplicates inline comments by their (path, line) key. Models
asked to be exhaustive routinely emit several findings for the same
line, and GitHub rejects a review containing duplicate anchors, so
colliding bodies are concatenated in encounter order with a visual
divider. The merged record keeps the first occurrence's path and line,
and distinct keys keep their first-seen order.
*/
package review
