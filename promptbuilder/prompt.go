/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"encoding/json"
	"fmt"
	"maps"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Prompt is an immutable template with {{name}} placeholders. Binding a
// value returns a new Prompt; the original is never modified, so a
// package-level template can be shared across invocations safely.
type Prompt struct {
	template string
	names    map[string]bool
	values   map[string]string
}

// NewPrompt parses a template and records its placeholders. It returns an
// error for an unclosed placeholder or an invalid placeholder name.
func NewPrompt(template string) (*Prompt, error) {
	names := make(map[string]bool)
	if err := scanTemplate(template, func(name string) (string, error) {
		names[name] = true
		return "", nil
	}); err != nil {
		return nil, err
	}
	return &Prompt{
		template: template,
		names:    names,
		values:   map[string]string{},
	}, nil
}

// MustNewPrompt is NewPrompt for package-level template variables; it
// panics if the template does not parse.
func MustNewPrompt(template string) *Prompt {
	p, err := NewPrompt(template)
	if err != nil {
		panic(err)
	}
	return p
}

// Placeholders returns the template's placeholder names in sorted order.
func (p *Prompt) Placeholders() []string {
	names := make([]string, 0, len(p.names))
	for name := range p.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bind substitutes a string value for a placeholder, returning a new
// Prompt. It is an error to bind a name the template does not contain,
// or to bind the same name twice.
func (p *Prompt) Bind(name, value string) (*Prompt, error) {
	if !p.names[name] {
		return nil, fmt.Errorf("placeholder %q not found in template", name)
	}
	if _, bound := p.values[name]; bound {
		return nil, fmt.Errorf("placeholder %q already bound", name)
	}
	next := &Prompt{
		template: p.template,
		names:    p.names,
		values:   maps.Clone(p.values),
	}
	next.values[name] = value
	return next, nil
}

// BindJSON marshals v with indentation and binds the result. Useful for
// embedding a schema or a structured example into a prompt.
func (p *Prompt) BindJSON(name string, v any) (*Prompt, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %q: %w", name, err)
	}
	return p.Bind(name, string(b))
}

// BindYAML marshals v as YAML and binds the result.
func (p *Prompt) BindYAML(name string, v any) (*Prompt, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling %q: %w", name, err)
	}
	return p.Bind(name, string(b))
}

// MustBind is Bind that panics on error, for values known valid at
// construction time.
func (p *Prompt) MustBind(name, value string) *Prompt {
	next, err := p.Bind(name, value)
	if err != nil {
		panic(err)
	}
	return next
}

// Render produces the final prompt text. Every placeholder must be bound;
// otherwise Render reports the unbound names.
func (p *Prompt) Render() (string, error) {
	var unbound []string
	out, err := scanTemplate(p.template, func(name string) (string, error) {
		val, ok := p.values[name]
		if !ok {
			unbound = append(unbound, name)
		}
		return val, nil
	})
	if err != nil {
		return "", err
	}
	if len(unbound) > 0 {
		sort.Strings(unbound)
		return "", fmt.Errorf("unbound placeholders: %s", strings.Join(unbound, ", "))
	}
	return out, nil
}

// scanTemplate walks the template, calling resolve for each placeholder
// and splicing its return value into the output. Parsing and rendering
// share this walk so they agree on what counts as a placeholder.
func scanTemplate(template string, resolve func(name string) (string, error)) (string, error) {
	var out strings.Builder
	for {
		start := strings.Index(template, "{{")
		if start < 0 {
			out.WriteString(template)
			return out.String(), nil
		}
		out.WriteString(template[:start])
		rest := template[start:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			return "", fmt.Errorf("unclosed placeholder near %q", truncate(rest))
		}
		name := strings.TrimSpace(rest[2:end])
		if !validName(name) {
			return "", fmt.Errorf("invalid placeholder name %q", name)
		}
		val, err := resolve(name)
		if err != nil {
			return "", err
		}
		out.WriteString(val)
		template = rest[end+2:]
	}
}

// validName reports whether s is a legal placeholder name: a letter
// followed by letters, digits, or underscores.
func validName(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '_'):
		default:
			return false
		}
	}
	return s != ""
}

func truncate(s string) string {
	if len(s) > 20 {
		return s[:20] + "..."
	}
	return s
}
