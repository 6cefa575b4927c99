/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package butler turns pull request comments into actions: /review runs
// a full model review of the PR diff and posts it as a GitHub review,
// /ask answers a question on the thread it was asked in.
package butler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/prbutler/diffstat"
	"chainguard.dev/prbutler/ghapi"
	"chainguard.dev/prbutler/llm"
	"chainguard.dev/prbutler/report"
	"chainguard.dev/prbutler/review"
)

// Butler executes one PR comment command end to end.
type Butler struct {
	cfg   Config
	gh    *ghapi.Client
	model llm.Client
}

// New wires a Butler from its configuration.
func New(ctx context.Context, cfg Config) (*Butler, error) {
	gh, err := ghapi.New(ctx, cfg.Repo, cfg.auth())
	if err != nil {
		return nil, err
	}
	model, err := llm.New(ctx, cfg.llmConfig())
	if err != nil {
		return nil, err
	}
	return &Butler{cfg: cfg, gh: gh, model: model}, nil
}

// NewWithClients wires a Butler from pre-built clients. Intended for
// tests.
func NewWithClients(cfg Config, gh *ghapi.Client, model llm.Client) *Butler {
	return &Butler{cfg: cfg, gh: gh, model: model}
}

// Run parses the triggering comment and executes its command. Runs that
// end without posting (non-commands, upstream failures) return a nil
// error so the surrounding workflow stays green; only a failure to post
// the last-resort plain comment surfaces as an error.
func (b *Butler) Run(ctx context.Context) (*report.Report, error) {
	log := clog.FromContext(ctx)
	start := time.Now()

	rep := &report.Report{
		Repo:     b.cfg.Repo,
		Number:   b.cfg.Number,
		Provider: b.cfg.Provider,
		Model:    b.cfg.Model,
	}

	cmd := ParseCommand(b.cfg.CommentBody)
	switch cmd.Kind {
	case Review:
		rep.Command = "review"
	case Ask:
		rep.Command = "ask"
	default:
		rep.Command = "none"
	}

	var err error
	switch {
	case cmd.Kind == None:
		log.Info("No command found (starts with /ask or /review), skipping")
		rep.Outcome = "skipped: not a butler command"
	case b.cfg.Disabled:
		log.Info("Butler is disabled for this repository, skipping")
		rep.Outcome = "skipped: disabled by repo config"
	case cmd.Kind == Review:
		err = b.review(ctx, rep)
	default:
		err = b.ask(ctx, cmd.Question, rep)
	}

	rep.Duration = time.Since(start)
	return rep, err
}

// review fetches the PR diff, asks the model for a structured review,
// and submits it with inline comments. A rejected submission falls back
// to a plain comment carrying just the review body.
func (b *Butler) review(ctx context.Context, rep *report.Report) error {
	log := clog.FromContext(ctx)
	log.Infof("Starting full code review for %s#%d", b.cfg.Repo, b.cfg.Number)

	diff, err := b.gh.FetchDiff(ctx, b.cfg.Number)
	if err != nil {
		log.Errorf("%v", &FetchError{err})
		rep.Outcome = "skipped: diff fetch failed"
		return nil
	}
	if strings.TrimSpace(diff) == "" {
		log.Info("Diff is empty, nothing to review")
		rep.Outcome = "skipped: empty diff"
		return nil
	}

	stats, err := diffstat.Parse(diff)
	if err != nil {
		// An unparseable diff is still reviewable; the guard just
		// cannot size it.
		log.Warnf("Could not parse diff for sizing: %v", err)
	} else {
		rep.Stats = &stats
		if reason := stats.Exceeds(b.cfg.limits()); reason != "" {
			log.Infof("Skipping review: %s", reason)
			return b.postSkipNotice(ctx, reason, rep)
		}
	}

	prompt, err := b.buildReviewPrompt(diff)
	if err != nil {
		return fmt.Errorf("building review prompt: %w", err)
	}

	log.Infof("Asking %s to review...", b.cfg.Model)
	resp, err := b.model.Generate(ctx, llm.Request{Prompt: prompt, JSON: true})
	if err != nil {
		log.Errorf("%v", &ModelError{err})
		rep.Outcome = "skipped: model call failed"
		return nil
	}
	rep.Usage = resp.Usage

	res, err := review.Parse(resp.Text)
	if err != nil {
		// The degraded result still carries a postable summary.
		log.Errorf("%v", &ParseError{err})
		rep.Degraded = true
	}
	rep.Posted = len(res.Comments)
	rep.Merged = res.Merged
	rep.Dropped = res.Dropped

	body := fmt.Sprintf("## %s\n\n%s", b.cfg.ReviewTitle, res.Summary)

	if b.cfg.DryRun {
		log.Infof("Dry run: would submit review with %d inline comments:\n%s", len(res.Comments), body)
		rep.Outcome = "dry run: nothing posted"
		return nil
	}

	log.Infof("Submitting review with %d inline comments...", len(res.Comments))
	if err := b.gh.SubmitReview(ctx, b.cfg.Number, body, res.Comments); err != nil {
		// GitHub rejects the whole review when any anchor is invalid.
		log.Errorf("%v", &SubmissionError{err})
		log.Info("Fallback: posting general comment only")
		if err := b.gh.PostComment(ctx, b.cfg.Number, body); err != nil {
			return &PlainPostError{err}
		}
		rep.FellBack = true
		rep.Outcome = "fallback comment posted"
		return nil
	}

	log.Info("Review submitted successfully")
	rep.Outcome = "review posted"
	return nil
}

// postSkipNotice tells the PR author why an oversized diff was not
// reviewed.
func (b *Butler) postSkipNotice(ctx context.Context, reason string, rep *report.Report) error {
	body := fmt.Sprintf("## %s\n\nThis pull request is too large to review automatically: %s.", b.cfg.ReviewTitle, reason)
	rep.Outcome = "skipped: " + reason

	if b.cfg.DryRun {
		clog.FromContext(ctx).Infof("Dry run: would post skip notice:\n%s", body)
		return nil
	}
	if err := b.gh.PostComment(ctx, b.cfg.Number, body); err != nil {
		return &PlainPostError{err}
	}
	return nil
}

func (b *Butler) buildReviewPrompt(diff string) (string, error) {
	instructions := ""
	if b.cfg.Instructions != "" {
		instructions = fmt.Sprintf("\nADDITIONAL GUIDANCE:\n%s\n", strings.TrimSpace(b.cfg.Instructions))
	}

	p := reviewPrompt.MustBind("schema", reviewSchema)
	p, err := p.Bind("instructions", instructions)
	if err != nil {
		return "", err
	}
	p, err = p.Bind("diff", diff)
	if err != nil {
		return "", err
	}
	return p.Render()
}

// ask answers a question from a PR comment. Replies land on the thread
// that asked: general conversation goes to the issue comments, while
// questions on an inline review comment get a threaded reply.
func (b *Butler) ask(ctx context.Context, question string, rep *report.Report) error {
	log := clog.FromContext(ctx)

	if question == "" {
		log.Info("No question found after /ask")
		rep.Outcome = "skipped: empty question"
		return nil
	}

	log.Infof("Asking %s: %s", b.cfg.AssistantName, question)

	p, err := askPrompt.Bind("question", question)
	if err != nil {
		return fmt.Errorf("building ask prompt: %w", err)
	}
	prompt, err := p.Render()
	if err != nil {
		return fmt.Errorf("building ask prompt: %w", err)
	}

	resp, err := b.model.Generate(ctx, llm.Request{Prompt: prompt})
	if err != nil {
		log.Errorf("%v", &ModelError{err})
		rep.Outcome = "skipped: model call failed"
		return nil
	}
	rep.Usage = resp.Usage

	switch b.cfg.EventName {
	case "issue_comment":
		body := fmt.Sprintf("> %s\n\n**%s:**\n%s", question, b.cfg.AssistantName, resp.Text)
		if b.cfg.DryRun {
			log.Infof("Dry run: would post comment:\n%s", body)
			rep.Outcome = "dry run: nothing posted"
			return nil
		}
		if err := b.gh.PostComment(ctx, b.cfg.Number, body); err != nil {
			return &PlainPostError{err}
		}

	case "pull_request_review_comment":
		if b.cfg.CommentID == 0 {
			return fmt.Errorf("COMMENT_ID is required for %s events", b.cfg.EventName)
		}
		body := fmt.Sprintf("**%s:**\n%s", b.cfg.AssistantName, resp.Text)
		if b.cfg.DryRun {
			log.Infof("Dry run: would reply to comment %d:\n%s", b.cfg.CommentID, body)
			rep.Outcome = "dry run: nothing posted"
			return nil
		}
		if err := b.gh.ReplyToReviewComment(ctx, b.cfg.Number, b.cfg.CommentID, body); err != nil {
			return &PlainPostError{err}
		}

	default:
		log.Warnf("Unknown event %q, not posting", b.cfg.EventName)
		rep.Outcome = "skipped: unknown event"
		return nil
	}

	rep.Outcome = "reply posted"
	return nil
}
