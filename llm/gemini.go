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
	"google.golang.org/genai"
)

// gemini implements Client using Google Gemini.
type gemini struct {
	client          *genai.Client
	model           string
	maxOutputTokens int32
	temperature     *float64
	genaiMetrics    *metrics.GenAI
}

// newGemini creates a Gemini client. An API key selects the Gemini API
// backend; otherwise a project/region pair selects Vertex AI.
func newGemini(ctx context.Context, cfg Config) (*gemini, error) {
	cc := &genai.ClientConfig{}
	switch {
	case cfg.GeminiAPIKey != "":
		cc.APIKey = cfg.GeminiAPIKey
		cc.Backend = genai.BackendGeminiAPI
	case cfg.Project != "":
		cc.Project = cfg.Project
		cc.Location = cfg.Region
		cc.Backend = genai.BackendVertexAI
	default:
		return nil, errors.New("gemini requires GEMINI_API_KEY or GOOGLE_CLOUD_PROJECT")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &gemini{
		client:          client,
		model:           cfg.Model,
		maxOutputTokens: cfg.MaxOutputTokens,
		temperature:     cfg.Temperature,
		genaiMetrics:    metrics.NewGenAI(meterName),
	}, nil
}

// Generate implements Client.
func (g *gemini) Generate(ctx context.Context, req Request) (*Response, error) {
	log := clog.FromContext(ctx)

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: g.maxOutputTokens,
	}
	if g.temperature != nil {
		config.Temperature = ptr(float32(*g.temperature))
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{
				Text: req.System,
			}},
		}
	}
	if req.JSON {
		config.ResponseMIMEType = "application/json"
	}

	log.With("model", g.model).Info("Calling Gemini")
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), config)
	if err != nil {
		return nil, fmt.Errorf("generating content with model %q: %w", g.model, err)
	}

	out := &Response{Model: g.model}
	if resp.UsageMetadata != nil {
		out.Usage = Usage{
			PromptTokens:     int64(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int64(resp.UsageMetadata.CandidatesTokenCount),
		}
		g.genaiMetrics.RecordTokens(ctx, g.model, out.Usage.PromptTokens, out.Usage.CompletionTokens)
	}

	text, err := firstText(resp)
	if err != nil {
		return nil, err
	}
	out.Text = text
	return out, nil
}

// firstText pulls the first non-thought text part from the response.
func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no content generated - no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content generated - candidate is empty")
	}
	for _, part := range candidate.Content.Parts {
		if part.Thought {
			continue
		}
		if part.Text != "" {
			return part.Text, nil
		}
	}
	return "", errors.New("no text content found in response")
}

// ptr is a helper function to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}
