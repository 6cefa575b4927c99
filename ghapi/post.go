/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ghapi

import (
	"context"
	"fmt"

	"github.com/google/go-github/v84/github"

	"chainguard.dev/prbutler/review"
)

// SubmitReview posts a COMMENT review with inline comments anchored to
// diff lines. GitHub rejects the entire review when any anchor falls
// outside the diff, so callers should be prepared to fall back to
// PostComment.
func (c *Client) SubmitReview(ctx context.Context, number int, body string, comments []review.Comment) error {
	drafts := make([]*github.DraftReviewComment, 0, len(comments))
	for _, rc := range comments {
		drafts = append(drafts, &github.DraftReviewComment{
			Path: github.Ptr(rc.Path),
			Line: github.Ptr(rc.Line),
			Body: github.Ptr(rc.Body),
		})
	}

	req := &github.PullRequestReviewRequest{
		Event:    github.Ptr("COMMENT"),
		Body:     github.Ptr(body),
		Comments: drafts,
	}
	if _, _, err := c.gh.PullRequests.CreateReview(ctx, c.owner, c.repo, number, req); err != nil {
		return fmt.Errorf("creating review on %s/%s#%d: %w", c.owner, c.repo, number, err)
	}
	return nil
}

// PostComment posts a plain comment on a pull request or issue.
func (c *Client) PostComment(ctx context.Context, number int, body string) error {
	comment := &github.IssueComment{Body: github.Ptr(body)}
	if _, _, err := c.gh.Issues.CreateComment(ctx, c.owner, c.repo, number, comment); err != nil {
		return fmt.Errorf("creating comment on %s/%s#%d: %w", c.owner, c.repo, number, err)
	}
	return nil
}

// ReplyToReviewComment posts a threaded reply to an existing inline
// review comment.
func (c *Client) ReplyToReviewComment(ctx context.Context, number int, commentID int64, body string) error {
	if _, _, err := c.gh.PullRequests.CreateCommentInReplyTo(ctx, c.owner, c.repo, number, body, commentID); err != nil {
		return fmt.Errorf("replying to review comment %d on %s/%s#%d: %w", commentID, c.owner, c.repo, number, err)
	}
	return nil
}
