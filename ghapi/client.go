/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package ghapi wraps the GitHub REST API operations the butler needs:
// fetching pull request diffs and posting review feedback and comments.
package ghapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

// Auth holds GitHub credentials. A personal access token takes
// precedence; otherwise GitHub App installation credentials are used.
type Auth struct {
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKey     []byte
}

// Client issues GitHub API calls scoped to a single repository.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// New returns a Client for the given "owner/name" repository slug.
func New(ctx context.Context, slug string, auth Auth) (*Client, error) {
	owner, name, err := splitRepo(slug)
	if err != nil {
		return nil, err
	}

	switch {
	case auth.Token != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: auth.Token})
		return &Client{
			gh:    github.NewClient(oauth2.NewClient(ctx, ts)),
			owner: owner,
			repo:  name,
		}, nil

	case auth.AppID != 0 && auth.InstallationID != 0 && len(auth.PrivateKey) > 0:
		itr, err := ghinstallation.New(http.DefaultTransport, auth.AppID, auth.InstallationID, auth.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("creating github app transport: %w", err)
		}
		return &Client{
			gh:    github.NewClient(&http.Client{Transport: itr}),
			owner: owner,
			repo:  name,
		}, nil

	default:
		return nil, errors.New("github auth requires GITHUB_TOKEN or app credentials (GITHUB_APP_ID, GITHUB_APP_INSTALLATION_ID, GITHUB_APP_PRIVATE_KEY)")
	}
}

// NewWithHTTPClient creates a Client with a custom http.Client and base
// URL. This constructor is intended for tests, allowing injection of an
// httptest server.
func NewWithHTTPClient(httpClient *http.Client, baseURL, slug string) (*Client, error) {
	owner, name, err := splitRepo(slug)
	if err != nil {
		return nil, err
	}

	gh := github.NewClient(httpClient)
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	gh.BaseURL = u

	return &Client{gh: gh, owner: owner, repo: name}, nil
}

// Repo returns the "owner/name" slug this client is scoped to.
func (c *Client) Repo() string {
	return c.owner + "/" + c.repo
}

// splitRepo splits an "owner/name" slug into its two components.
func splitRepo(slug string) (string, string, error) {
	owner, name, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", slug)
	}
	return owner, name, nil
}
