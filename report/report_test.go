/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chainguard.dev/prbutler/diffstat"
	"chainguard.dev/prbutler/llm"
	"chainguard.dev/prbutler/report"
)

func TestMarkdownReview(t *testing.T) {
	r := &report.Report{
		Repo:     "octo/widgets",
		Number:   7,
		Command:  "review",
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
		Stats:    &diffstat.Stats{Files: 3, Additions: 120, Deletions: 14},
		Posted:   4,
		Merged:   1,
		Dropped:  2,
		Usage:    llm.Usage{PromptTokens: 1834, CompletionTokens: 412},
		Duration: 3200 * time.Millisecond,
		Outcome:  "review posted",
	}

	got := r.Markdown()
	t.Logf("Generated report:\n%s", got)

	for _, want := range []string{
		"## PR Butler Run",
		"octo/widgets#7",
		"review",
		"gemini (gemini-2.5-flash)",
		"3 files, +120/-14",
		"4 posted (1 merged, 2 dropped)",
		"1834 prompt, 412 completion",
		"3.2s",
		"review posted",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown() missing %q", want)
		}
	}
}

func TestMarkdownDegradedFallback(t *testing.T) {
	r := &report.Report{
		Repo:     "octo/widgets",
		Number:   7,
		Command:  "review",
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
		Degraded: true,
		FellBack: true,
		Outcome:  "review posted",
	}

	got := r.Markdown()
	if !strings.Contains(got, "degraded: summary only") {
		t.Error("Markdown() should note the degraded review")
	}
	if !strings.Contains(got, "fallback comment") {
		t.Error("Markdown() should note the fallback")
	}
}

func TestMarkdownAsk(t *testing.T) {
	r := &report.Report{
		Repo:     "octo/widgets",
		Number:   7,
		Command:  "ask",
		Provider: "claude",
		Model:    "claude-sonnet-4-5",
		Outcome:  "reply posted",
	}

	got := r.Markdown()
	if strings.Contains(got, "Comments") {
		t.Error("Markdown() should not include a comment row for ask runs")
	}
	if strings.Contains(got, "Diff") {
		t.Error("Markdown() should not include a diff row without stats")
	}
	if !strings.Contains(got, "reply posted") {
		t.Error("Markdown() should include the outcome")
	}
}

func TestAppendTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	r := &report.Report{
		Repo:    "octo/widgets",
		Number:  7,
		Command: "review",
		Outcome: "review posted",
	}

	if err := r.AppendTo(path); err != nil {
		t.Fatalf("AppendTo() error = %v", err)
	}
	if err := r.AppendTo(path); err != nil {
		t.Fatalf("AppendTo() second call error = %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got := strings.Count(string(b), "## PR Butler Run"); got != 2 {
		t.Errorf("AppendTo() wrote %d sections, wanted 2", got)
	}
}

func TestWriteStepSummaryUnset(t *testing.T) {
	t.Setenv("GITHUB_STEP_SUMMARY", "")
	r := &report.Report{Repo: "octo/widgets", Number: 7}
	if err := r.WriteStepSummary(); err != nil {
		t.Fatalf("WriteStepSummary() error = %v", err)
	}
}

func TestWriteStepSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	t.Setenv("GITHUB_STEP_SUMMARY", path)

	r := &report.Report{Repo: "octo/widgets", Number: 7, Command: "ask", Outcome: "reply posted"}
	if err := r.WriteStepSummary(); err != nil {
		t.Fatalf("WriteStepSummary() error = %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(b), "octo/widgets#7") {
		t.Error("WriteStepSummary() did not write the report")
	}
}
