/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder_test

import (
	"strings"
	"testing"

	"chainguard.dev/prbutler/promptbuilder"
	"github.com/google/go-cmp/cmp"
)

func TestNewPrompt(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []string
		wantErr  string
	}{{
		name:     "no placeholders",
		template: "Review this change carefully.",
		want:     []string{},
	}, {
		name:     "single placeholder",
		template: "DIFF:\n{{diff}}",
		want:     []string{"diff"},
	}, {
		name:     "multiple placeholders",
		template: "Schema: {{schema}}\n\nDiff: {{diff}}",
		want:     []string{"diff", "schema"},
	}, {
		name:     "repeated placeholder counts once",
		template: "{{q}} and {{q}} again",
		want:     []string{"q"},
	}, {
		name:     "spaces inside braces",
		template: "Hello {{ name }}",
		want:     []string{"name"},
	}, {
		name:     "unclosed placeholder",
		template: "Hello {{name",
		wantErr:  "unclosed placeholder",
	}, {
		name:     "empty placeholder name",
		template: "Hello {{}}",
		wantErr:  "invalid placeholder name",
	}, {
		name:     "name starting with digit",
		template: "Hello {{1st}}",
		wantErr:  "invalid placeholder name",
	}, {
		name:     "name with punctuation",
		template: "Hello {{na-me}}",
		wantErr:  "invalid placeholder name",
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := promptbuilder.NewPrompt(tc.template)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("NewPrompt() error = %v, wanted %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPrompt() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, p.Placeholders()); diff != "" {
				t.Errorf("Placeholders() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBindAndRender(t *testing.T) {
	t.Run("renders bound values", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("Q: {{question}}\nA:")
		p, err := p.Bind("question", "what does this do?")
		if err != nil {
			t.Fatalf("Bind() error = %v", err)
		}
		got, err := p.Render()
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		want := "Q: what does this do?\nA:"
		if got != want {
			t.Errorf("Render() = %q, wanted %q", got, want)
		}
	})

	t.Run("repeated placeholder renders everywhere", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("{{x}}-{{x}}").MustBind("x", "ab")
		got, err := p.Render()
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if got != "ab-ab" {
			t.Errorf("Render() = %q, wanted %q", got, "ab-ab")
		}
	})

	t.Run("binding unknown name fails", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("{{diff}}")
		if _, err := p.Bind("schema", "{}"); err == nil {
			t.Error("Bind() error = nil, wanted not found error")
		}
	})

	t.Run("double bind fails", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("{{diff}}").MustBind("diff", "a")
		if _, err := p.Bind("diff", "b"); err == nil {
			t.Error("Bind() error = nil, wanted already bound error")
		}
	})

	t.Run("render with unbound placeholder fails", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("{{schema}} {{diff}}").MustBind("diff", "x")
		_, err := p.Render()
		if err == nil || !strings.Contains(err.Error(), "schema") {
			t.Errorf("Render() error = %v, wanted unbound schema error", err)
		}
	})

	t.Run("bind does not mutate the original", func(t *testing.T) {
		base := promptbuilder.MustNewPrompt("{{q}}")
		first := base.MustBind("q", "one")
		second := base.MustBind("q", "two")
		got1, err := first.Render()
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		got2, err := second.Render()
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if got1 != "one" || got2 != "two" {
			t.Errorf("Render() = %q, %q; wanted %q, %q", got1, got2, "one", "two")
		}
	})

	t.Run("bound value with braces is not re-expanded", func(t *testing.T) {
		p := promptbuilder.MustNewPrompt("{{diff}}").MustBind("diff", "x := {{injected}}")
		got, err := p.Render()
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if got != "x := {{injected}}" {
			t.Errorf("Render() = %q, wanted the literal value", got)
		}
	})
}

func TestBindJSON(t *testing.T) {
	p := promptbuilder.MustNewPrompt("Respond matching:\n{{schema}}")
	p, err := p.BindJSON("schema", map[string]string{"summary": "string"})
	if err != nil {
		t.Fatalf("BindJSON() error = %v", err)
	}
	got, err := p.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, `"summary": "string"`) {
		t.Errorf("Render() = %q, wanted embedded JSON", got)
	}
}

func TestBindYAML(t *testing.T) {
	p := promptbuilder.MustNewPrompt("Context:\n{{settings}}")
	p, err := p.BindYAML("settings", map[string]any{"model": "gemini-2.5-flash", "strict": true})
	if err != nil {
		t.Fatalf("BindYAML() error = %v", err)
	}
	got, err := p.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, "model: gemini-2.5-flash") || !strings.Contains(got, "strict: true") {
		t.Errorf("Render() = %q, wanted embedded YAML", got)
	}
}

func TestMustNewPromptPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewPrompt() did not panic on a bad template")
		}
	}()
	promptbuilder.MustNewPrompt("{{broken")
}
