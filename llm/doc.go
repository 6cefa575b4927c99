/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package llm adapts generative-AI providers behind a single Generate
call: one request in, raw response text out. There is no conversation
state, no tool use, and no retry; a failed call is the caller's signal
to abort the run.

Three providers are available, selected by Config.Provider: Gemini
(API key or Vertex AI), Claude (API key or Vertex AI), and OpenAI
(API key). Requests asking for JSON get the provider's native strict
response format when it has one, and a prompt-level instruction when
it does not. Every call records prompt and completion token counts on
the shared OpenTelemetry meter with the model name as a dimension.
*/
package llm
