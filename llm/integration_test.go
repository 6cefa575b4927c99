//go:build withauth

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package llm_test

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"chainguard.dev/prbutler/llm"
)

// These tests call the live Gemini API and only run with the withauth
// build tag and a real key in the environment:
//
//	GEMINI_API_KEY=... go test -tags withauth ./llm/...

func newLiveGemini(ctx context.Context, t *testing.T) llm.Client {
	t.Helper()
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		t.Skip("Skipping integration test: GEMINI_API_KEY not set")
	}
	client, err := llm.New(ctx, llm.Config{
		Provider:        llm.ProviderGemini,
		Model:           "gemini-2.5-flash",
		GeminiAPIKey:    key,
		MaxOutputTokens: 1000,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestGenerateJSON(t *testing.T) {
	ctx := context.Background()
	client := newLiveGemini(ctx, t)

	resp, err := client.Generate(ctx, llm.Request{
		Prompt: `Respond with a JSON object of the form {"answer": "<yes or no>"}. Is Go a compiled language?`,
		JSON:   true,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var out struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(resp.Text), &out); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, resp.Text)
	}
	if !strings.EqualFold(out.Answer, "yes") {
		t.Errorf("Answer = %q, wanted yes", out.Answer)
	}
	if resp.Usage.PromptTokens == 0 {
		t.Error("Usage.PromptTokens = 0, wanted a nonzero count")
	}
}

func TestGeneratePlain(t *testing.T) {
	ctx := context.Background()
	client := newLiveGemini(ctx, t)

	resp, err := client.Generate(ctx, llm.Request{
		Prompt: "You are a helpful coding assistant. The user said: In one sentence, what does reading a missing key from a nil map return in Go?",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		t.Error("Generate() returned empty text")
	}
}
