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
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// gpt implements Client using the OpenAI chat completions API.
type gpt struct {
	client       openai.Client
	model        string
	maxTokens    int64
	temperature  *float64
	genaiMetrics *metrics.GenAI
}

func newOpenAI(cfg Config) (*gpt, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("openai requires OPENAI_API_KEY")
	}
	return &gpt{
		client:       openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey)),
		model:        cfg.Model,
		maxTokens:    int64(cfg.MaxOutputTokens),
		temperature:  cfg.Temperature,
		genaiMetrics: metrics.NewGenAI(meterName),
	}, nil
}

// Generate implements Client.
func (g *gpt) Generate(ctx context.Context, req Request) (*Response, error) {
	log := clog.FromContext(ctx)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(g.model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(g.maxTokens),
	}
	if g.temperature != nil {
		params.Temperature = openai.Float(*g.temperature)
	}
	if req.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	log.With("model", g.model).Info("Calling OpenAI")
	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("creating completion with model %q: %w", g.model, err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("no choices in OpenAI response")
	}
	text := completion.Choices[0].Message.Content
	if text == "" {
		return nil, errors.New("no text content in OpenAI response")
	}

	out := &Response{
		Text:  text,
		Model: g.model,
		Usage: Usage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
		},
	}
	g.genaiMetrics.RecordTokens(ctx, g.model, out.Usage.PromptTokens, out.Usage.CompletionTokens)
	return out, nil
}
