/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package llm

import (
	"context"
	"fmt"
)

// Supported provider names for Config.Provider.
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
)

// meterName is the unified meter for all providers; the model name is a
// dimension on the recorded metrics.
const meterName = "chainguard.ai.prbutler"

// Request is one generation call.
type Request struct {
	// System is the system instruction. May be empty.
	System string

	// Prompt is the user prompt.
	Prompt string

	// JSON asks for strict JSON output where the provider supports a
	// native response format; providers without one fall back to a
	// prompt-level instruction.
	JSON bool
}

// Usage reports token consumption for one call.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
}

// Response is the raw model output of one call.
type Response struct {
	Text  string
	Model string
	Usage Usage
}

// Client is a generative model behind a single Generate call. One
// request, one response, no retry.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Config selects and configures a provider.
type Config struct {
	// Provider is one of the Provider constants; empty means gemini.
	Provider string

	// Model is the provider-specific model name.
	Model string

	// MaxOutputTokens caps the completion length.
	MaxOutputTokens int32

	// Temperature overrides the provider default when non-nil.
	Temperature *float64

	// Provider credentials. Gemini and Claude accept either an API key
	// or a Google Cloud project/region pair (Vertex AI).
	GeminiAPIKey    string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	Project         string
	Region          string
}

// New constructs the provider selected by cfg.Provider.
func New(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case "", ProviderGemini:
		return newGemini(ctx, cfg)
	case ProviderClaude:
		return newClaude(ctx, cfg)
	case ProviderOpenAI:
		return newOpenAI(cfg)
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}
