/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package butler

import (
	"chainguard.dev/prbutler/diffstat"
	"chainguard.dev/prbutler/ghapi"
	"chainguard.dev/prbutler/llm"
	"chainguard.dev/prbutler/repoconfig"
)

// Config is the butler's environment configuration. In GitHub Actions
// the workflow populates the event inputs from the triggering comment;
// everything else has a usable default.
type Config struct {
	// GitHub credentials. A token is the common case; App installation
	// credentials are the alternative for org-wide installs.
	GitHubToken          string `env:"GITHUB_TOKEN"`
	GitHubAppID          int64  `env:"GITHUB_APP_ID"`
	GitHubInstallationID int64  `env:"GITHUB_APP_INSTALLATION_ID"`
	GitHubAppPrivateKey  string `env:"GITHUB_APP_PRIVATE_KEY"`

	// Event inputs.
	Repo        string `env:"REPO,required"`
	CommentBody string `env:"COMMENT_BODY,required"`
	Number      int    `env:"PR_OR_ISSUE_NUMBER,required"`
	EventName   string `env:"EVENT_NAME"`
	CommentID   int64  `env:"COMMENT_ID"`

	// Model selection.
	Provider        string   `env:"LLM_PROVIDER,default=gemini"`
	Model           string   `env:"LLM_MODEL,default=gemini-2.5-flash"`
	MaxOutputTokens int32    `env:"LLM_MAX_OUTPUT_TOKENS,default=4000"`
	Temperature     *float64 `env:"LLM_TEMPERATURE"`
	GeminiAPIKey    string   `env:"GEMINI_API_KEY"`
	AnthropicAPIKey string   `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string   `env:"OPENAI_API_KEY"`
	Project         string   `env:"GOOGLE_CLOUD_PROJECT"`
	Region          string   `env:"GOOGLE_CLOUD_REGION,default=us-central1"`

	// Presentation.
	ReviewTitle   string `env:"REVIEW_TITLE,default=⚡ Gemini 2.5 Flash Review"`
	AssistantName string `env:"ASSISTANT_NAME,default=Gemini"`

	// Instructions is free-form guidance appended to the review prompt;
	// usually set from .prbutler.yml rather than the environment.
	Instructions string `env:"REVIEW_INSTRUCTIONS"`

	// Diff size guard. Oversized PRs get a skip notice instead of a
	// review.
	MaxFiles        int `env:"MAX_FILES,default=25"`
	MaxAdditions    int `env:"MAX_ADDITIONS,default=800"`
	MaxTotalChanges int `env:"MAX_TOTAL_CHANGES,default=1200"`

	// DryRun runs the full pipeline but logs instead of posting.
	DryRun bool `env:"DRY_RUN,default=false"`

	// RepoConfigPath locates the optional per-repository settings file
	// in the checked-out workspace.
	RepoConfigPath string `env:"REPO_CONFIG_PATH,default=.prbutler.yml"`

	// Disabled turns the butler off entirely. Only settable through the
	// per-repository config file.
	Disabled bool
}

// ApplyOverrides folds per-repository settings into the environment
// configuration. Fields the repository left unset keep their base
// values.
func (c *Config) ApplyOverrides(rc *repoconfig.Config) {
	if rc == nil {
		return
	}
	if rc.Disabled {
		c.Disabled = true
	}
	if rc.Provider != "" {
		c.Provider = rc.Provider
	}
	if rc.Model != "" {
		c.Model = rc.Model
	}
	if rc.ReviewTitle != "" {
		c.ReviewTitle = rc.ReviewTitle
	}
	if rc.AssistantName != "" {
		c.AssistantName = rc.AssistantName
	}
	if rc.MaxOutputTokens != 0 {
		c.MaxOutputTokens = rc.MaxOutputTokens
	}
	if rc.Temperature != nil {
		c.Temperature = rc.Temperature
	}
	if rc.Instructions != "" {
		c.Instructions = rc.Instructions
	}
	if rc.Limits != nil {
		if rc.Limits.MaxFiles != 0 {
			c.MaxFiles = rc.Limits.MaxFiles
		}
		if rc.Limits.MaxAdditions != 0 {
			c.MaxAdditions = rc.Limits.MaxAdditions
		}
		if rc.Limits.MaxTotalChanges != 0 {
			c.MaxTotalChanges = rc.Limits.MaxTotalChanges
		}
	}
}

func (c *Config) auth() ghapi.Auth {
	return ghapi.Auth{
		Token:          c.GitHubToken,
		AppID:          c.GitHubAppID,
		InstallationID: c.GitHubInstallationID,
		PrivateKey:     []byte(c.GitHubAppPrivateKey),
	}
}

func (c *Config) llmConfig() llm.Config {
	return llm.Config{
		Provider:        c.Provider,
		Model:           c.Model,
		MaxOutputTokens: c.MaxOutputTokens,
		Temperature:     c.Temperature,
		GeminiAPIKey:    c.GeminiAPIKey,
		AnthropicAPIKey: c.AnthropicAPIKey,
		OpenAIAPIKey:    c.OpenAIAPIKey,
		Project:         c.Project,
		Region:          c.Region,
	}
}

func (c *Config) limits() diffstat.Limits {
	return diffstat.Limits{
		MaxFiles:        c.MaxFiles,
		MaxAdditions:    c.MaxAdditions,
		MaxTotalChanges: c.MaxTotalChanges,
	}
}
