/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

// bodySeparator joins the bodies of comments that collide on a merge
// key, keeping each finding visually distinct in the posted comment.
const bodySeparator = "\n\n---\n\n"

type mergeKey struct {
	path string
	line int
}

// Merge collapses comments sharing a (path, line) key into one comment
// per key. Bodies concatenate in encounter order with bodySeparator;
// the merged comment keeps the first occurrence's path and line, and
// distinct keys keep their first-seen order.
func Merge(comments []Comment) []Comment {
	merged := make([]Comment, 0, len(comments))
	index := make(map[mergeKey]int, len(comments))
	for _, c := range comments {
		k := mergeKey{path: c.Path, line: c.Line}
		if at, ok := index[k]; ok {
			merged[at].Body += bodySeparator + c.Body
			continue
		}
		index[k] = len(merged)
		merged = append(merged, c)
	}
	return merged
}
