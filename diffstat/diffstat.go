/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package diffstat summarizes unified diffs and enforces the size
// limits below which a change is worth sending to a model at all.
package diffstat

import (
	"fmt"

	"github.com/waigani/diffparser"
)

// Stats summarizes one unified diff.
type Stats struct {
	Files     int
	Additions int
	Deletions int
}

// TotalChanges is the added plus removed line count.
func (s Stats) TotalChanges() int {
	return s.Additions + s.Deletions
}

// Limits bounds the size of a change the bot will review. A zero field
// is unbounded.
type Limits struct {
	MaxFiles        int
	MaxAdditions    int
	MaxTotalChanges int
}

// Parse summarizes unified diff text.
func Parse(diff string) (Stats, error) {
	parsed, err := diffparser.Parse(diff)
	if err != nil {
		return Stats{}, fmt.Errorf("parsing diff: %w", err)
	}
	s := Stats{Files: len(parsed.Files)}
	for _, f := range parsed.Files {
		for _, h := range f.Hunks {
			for _, l := range h.WholeRange.Lines {
				switch l.Mode {
				case diffparser.ADDED:
					s.Additions++
				case diffparser.REMOVED:
					s.Deletions++
				}
			}
		}
	}
	return s, nil
}

// Exceeds returns a human-readable reason when the stats break one of
// the limits, or the empty string when the change fits. Limits are
// checked files first, then additions, then total changes, so the
// reported reason is stable for a given diff.
func (s Stats) Exceeds(l Limits) string {
	if l.MaxFiles > 0 && s.Files > l.MaxFiles {
		return fmt.Sprintf("%d files changed (limit %d)", s.Files, l.MaxFiles)
	}
	if l.MaxAdditions > 0 && s.Additions > l.MaxAdditions {
		return fmt.Sprintf("%d lines added (limit %d)", s.Additions, l.MaxAdditions)
	}
	if l.MaxTotalChanges > 0 && s.TotalChanges() > l.MaxTotalChanges {
		return fmt.Sprintf("%d total line changes (limit %d)", s.TotalChanges(), l.MaxTotalChanges)
	}
	return ""
}
