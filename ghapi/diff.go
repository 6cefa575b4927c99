/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ghapi

import (
	"context"
	"fmt"

	"github.com/google/go-github/v84/github"
)

// FetchDiff returns the unified diff of a pull request, as served by
// the pulls endpoint with the diff media type.
func (c *Client) FetchDiff(ctx context.Context, number int) (string, error) {
	diff, _, err := c.gh.PullRequests.GetRaw(ctx, c.owner, c.repo, number, github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("fetching diff for %s/%s#%d: %w", c.owner, c.repo, number, err)
	}
	return diff, nil
}
