/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package llm

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/prbutler/metrics"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/vertex"
	"github.com/chainguard-dev/clog"
)

// claude implements Client using Claude, either directly or via Vertex AI.
type claude struct {
	client       anthropic.Client
	model        string
	maxTokens    int64
	temperature  *float64
	genaiMetrics *metrics.GenAI
}

func newClaude(ctx context.Context, cfg Config) (*claude, error) {
	var client anthropic.Client
	switch {
	case cfg.AnthropicAPIKey != "":
		client = anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))
	case cfg.Project != "":
		client = anthropic.NewClient(vertex.WithGoogleAuth(ctx, cfg.Region, cfg.Project))
	default:
		return nil, errors.New("claude requires ANTHROPIC_API_KEY or GOOGLE_CLOUD_PROJECT")
	}

	return &claude{
		client:       client,
		model:        cfg.Model,
		maxTokens:    int64(cfg.MaxOutputTokens),
		temperature:  cfg.Temperature,
		genaiMetrics: metrics.NewGenAI(meterName),
	}, nil
}

// Generate implements Client.
func (c *claude) Generate(ctx context.Context, req Request) (*Response, error) {
	log := clog.FromContext(ctx)

	prompt := req.Prompt
	if req.JSON {
		// No native JSON response mode; the instruction rides in the prompt.
		prompt += "\n\nRespond with valid JSON only, no surrounding prose."
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(prompt),
			},
		}},
	}
	if c.temperature != nil {
		params.Temperature = anthropic.Float(*c.temperature)
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	log.With("model", c.model).Info("Calling Claude")
	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("creating message with model %q: %w", c.model, err)
	}

	var text string
	for _, content := range message.Content {
		if content.Type == "text" {
			text = content.Text
			break
		}
	}
	if text == "" {
		return nil, errors.New("no text content in Claude response")
	}

	out := &Response{
		Text:  text,
		Model: c.model,
		Usage: Usage{
			PromptTokens:     message.Usage.InputTokens,
			CompletionTokens: message.Usage.OutputTokens,
		},
	}
	c.genaiMetrics.RecordTokens(ctx, c.model, out.Usage.PromptTokens, out.Usage.CompletionTokens)
	return out, nil
}
