/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package butler

import "testing"

func TestParseCommand(t *testing.T) {
	for _, c := range []struct {
		name string
		body string
		want Command
	}{{
		name: "review",
		body: "/review",
		want: Command{Kind: Review},
	}, {
		name: "review with trailing text",
		body: "/review please take a look",
		want: Command{Kind: Review},
	}, {
		name: "review with surrounding whitespace",
		body: "  /review\n",
		want: Command{Kind: Review},
	}, {
		name: "ask with question",
		body: "/ask Why does this retry twice?",
		want: Command{Kind: Ask, Question: "Why does this retry twice?"},
	}, {
		name: "ask question keeps inner whitespace",
		body: "/ask   what does  this do?",
		want: Command{Kind: Ask, Question: "what does  this do?"},
	}, {
		name: "bare ask",
		body: "/ask",
		want: Command{Kind: Ask},
	}, {
		name: "ask with only whitespace after",
		body: "/ask   \n",
		want: Command{Kind: Ask},
	}, {
		// Prefix matching, same as matching on startswith. "/asking"
		// still triggers an ask.
		name: "ask prefix without space",
		body: "/asking for a friend",
		want: Command{Kind: Ask, Question: "ing for a friend"},
	}, {
		name: "not a command",
		body: "LGTM, nice work",
		want: Command{Kind: None},
	}, {
		name: "command mid-comment is ignored",
		body: "could you /review this?",
		want: Command{Kind: None},
	}, {
		name: "empty body",
		body: "",
		want: Command{Kind: None},
	}} {
		t.Run(c.name, func(t *testing.T) {
			if got := ParseCommand(c.body); got != c.want {
				t.Errorf("ParseCommand(%q) = %+v, want %+v", c.body, got, c.want)
			}
		})
	}
}
