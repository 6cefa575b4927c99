/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package repoconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
provider: claude
model: claude-sonnet-4-5
review_title: "🤖 Claude Review"
assistant_name: Claude
max_output_tokens: 8000
temperature: 0.2
limits:
  max_files: 10
  max_additions: 400
  max_total_changes: 600
instructions: |
  Pay extra attention to SQL statements.
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.False(t, cfg.Disabled)
	assert.Equal(t, "claude", cfg.Provider)
	assert.Equal(t, "claude-sonnet-4-5", cfg.Model)
	assert.Equal(t, "🤖 Claude Review", cfg.ReviewTitle)
	assert.Equal(t, "Claude", cfg.AssistantName)
	assert.Equal(t, int32(8000), cfg.MaxOutputTokens)
	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, 0.2, *cfg.Temperature)
	require.NotNil(t, cfg.Limits)
	assert.Equal(t, 10, cfg.Limits.MaxFiles)
	assert.Equal(t, 400, cfg.Limits.MaxAdditions)
	assert.Equal(t, 600, cfg.Limits.MaxTotalChanges)
	assert.Contains(t, cfg.Instructions, "SQL statements")
}

func TestLoadPartial(t *testing.T) {
	path := writeFile(t, "model: gemini-2.5-pro\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Empty(t, cfg.Provider)
	assert.Nil(t, cfg.Temperature)
	assert.Nil(t, cfg.Limits)
}

func TestLoadDisabled(t *testing.T) {
	path := writeFile(t, "disabled: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.Disabled)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, "model: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}
