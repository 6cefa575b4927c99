/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder builds model prompts from templates with {{name}}
placeholders, with single-pass substitution and immutable binding.

Templates are declared once (typically as package-level variables) and
bound per invocation. Each Bind returns a new Prompt, so a shared
template is never mutated by a run:

	var askPrompt = promptbuilder.MustNewPrompt(
		`You are a helpful coding assistant. The user said: {{question}}`)

	p, err := askPrompt.Bind("question", q)
	if err != nil {
		return err
	}
	text, err := p.Render()

Substitution is single-pass: a bound value containing "{{" is emitted
verbatim, never re-expanded, so model- or user-provided text cannot
introduce new placeholders. Render fails if any placeholder remains
unbound, which catches template drift at the call site instead of
sending a half-built prompt to a model.
*/
package promptbuilder
