/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders a one-run summary of what the butler did,
// suitable for the GitHub Actions step summary pane.
package report

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"chainguard.dev/prbutler/diffstat"
	"chainguard.dev/prbutler/llm"
)

// Report captures the observable outcome of a butler run.
type Report struct {
	Repo    string
	Number  int
	Command string

	Provider string
	Model    string

	// Stats is set for review runs that fetched a diff.
	Stats *diffstat.Stats

	// Comment accounting for review runs. Dropped counts malformed
	// records the parser discarded; Merged counts records folded into
	// an earlier comment on the same line.
	Posted  int
	Merged  int
	Dropped int

	// Degraded is set when the model response could not be parsed and
	// the review was posted summary-only.
	Degraded bool

	// FellBack is set when the review submission was rejected and the
	// body was posted as a plain comment instead.
	FellBack bool

	Usage    llm.Usage
	Duration time.Duration

	Outcome string
}

// Markdown renders the report as a markdown section with a field table.
func (r *Report) Markdown() string {
	var buf bytes.Buffer
	table := newMarkdownTable([]string{"Field", "Value"}, &buf)

	_ = table.Append([]string{"Repository", fmt.Sprintf("%s#%d", r.Repo, r.Number)})
	_ = table.Append([]string{"Command", r.Command})
	_ = table.Append([]string{"Model", fmt.Sprintf("%s (%s)", r.Provider, r.Model)})

	if r.Stats != nil {
		_ = table.Append([]string{"Diff", fmt.Sprintf("%d files, +%d/-%d", r.Stats.Files, r.Stats.Additions, r.Stats.Deletions)})
	}
	if r.Command == "review" {
		comments := fmt.Sprintf("%d posted", r.Posted)
		if r.Merged > 0 || r.Dropped > 0 {
			comments = fmt.Sprintf("%d posted (%d merged, %d dropped)", r.Posted, r.Merged, r.Dropped)
		}
		_ = table.Append([]string{"Comments", comments})
	}
	if r.Usage.PromptTokens > 0 || r.Usage.CompletionTokens > 0 {
		_ = table.Append([]string{"Tokens", fmt.Sprintf("%d prompt, %d completion", r.Usage.PromptTokens, r.Usage.CompletionTokens)})
	}
	if r.Duration > 0 {
		_ = table.Append([]string{"Duration", r.Duration.Round(time.Millisecond).String()})
	}

	outcome := r.Outcome
	if r.Degraded {
		outcome += " (degraded: summary only)"
	}
	if r.FellBack {
		outcome += " (fallback comment)"
	}
	_ = table.Append([]string{"Outcome", outcome})

	_ = table.Render()
	return fmt.Sprintf("## PR Butler Run\n\n%s", buf.String())
}

// WriteStepSummary appends the report to the file GitHub Actions
// designates via GITHUB_STEP_SUMMARY. Outside of Actions this is a
// no-op.
func (r *Report) WriteStepSummary() error {
	path := os.Getenv("GITHUB_STEP_SUMMARY")
	if path == "" {
		return nil
	}
	return r.AppendTo(path)
}

// AppendTo appends the rendered report to the named file, creating it
// if needed. Appending keeps summaries from earlier steps intact.
func (r *Report) AppendTo(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening step summary %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s\n", r.Markdown()); err != nil {
		return fmt.Errorf("writing step summary: %w", err)
	}
	return nil
}
