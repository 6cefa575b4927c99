/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package butler

import (
	"chainguard.dev/prbutler/promptbuilder"
	"chainguard.dev/prbutler/review"
	"chainguard.dev/prbutler/schema"
)

// reviewSchema is the JSON schema the model's review response must
// match, generated from the review types so prompt and parser cannot
// drift apart.
var reviewSchema = schema.MustJSON[review.Result]()

// reviewPrompt asks for an exhaustive review in strict JSON.
var reviewPrompt = promptbuilder.MustNewPrompt(`You are a strict Senior Software Engineer Code Reviewer. Review this git diff. Your goal is to identify **ALL** bugs, security vulnerabilities, logic errors, unused variables or dead code, and code style violations.

IMPORTANT INSTRUCTIONS:
1. **Be Exhaustive:** Do not stop after finding one error. Scan the entire diff from top to bottom.
2. **Multiple Comments:** If there are 5 different bugs, output 5 different inline comments.
3. **Strict JSON:** You must respond in valid JSON format only.
4. **Line Numbers:** 'line' must be the exact line number in the new code (lines starting with +).
5. **Changed Lines Only:** Do not comment on unchanged code (lines without a '+').
6. **Uncertain Placement:** If you are unsure of the line number, put the comment in the 'summary' instead.

Output Schema:
{{schema}}
{{instructions}}
DIFF:
{{diff}}`)

// askPrompt forwards a conversational question.
var askPrompt = promptbuilder.MustNewPrompt(`You are a helpful coding assistant. The user said: {{question}}`)
