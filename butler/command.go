/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package butler

import "strings"

// Kind identifies the command a PR comment carries.
type Kind int

const (
	// None means the comment is not addressed to the butler.
	None Kind = iota
	// Ask requests a conversational answer to a question.
	Ask
	// Review requests a full review of the pull request diff.
	Review
)

// Command is the parsed form of a triggering comment.
type Command struct {
	Kind Kind

	// Question is the text following /ask, with surrounding whitespace
	// removed. Empty for a bare /ask.
	Question string
}

// ParseCommand interprets a comment body as a butler command. Commands
// are recognized by prefix after trimming surrounding whitespace, so
// "  /review\n" triggers a review. Anything else is None.
func ParseCommand(body string) Command {
	trimmed := strings.TrimSpace(body)
	switch {
	case strings.HasPrefix(trimmed, "/ask"):
		return Command{
			Kind:     Ask,
			Question: strings.TrimSpace(strings.TrimPrefix(trimmed, "/ask")),
		}
	case strings.HasPrefix(trimmed, "/review"):
		return Command{Kind: Review}
	default:
		return Command{Kind: None}
	}
}
