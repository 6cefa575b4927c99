/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// prbutler is the GitHub Actions entrypoint. It reads the triggering
// comment from the environment, runs the requested command, and writes
// a run report to the job summary.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"chainguard.dev/prbutler/butler"
	"chainguard.dev/prbutler/repoconfig"
)

var flagDryRun bool

var rootCmd = &cobra.Command{
	Use:   "prbutler",
	Short: "AI review and Q&A for pull request comments",
	Long: "prbutler reacts to /review and /ask commands in PR comments: it reviews\n" +
		"the PR diff with a model and posts the result as a GitHub review, or\n" +
		"answers questions in the thread they were asked.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func run(ctx context.Context) error {
	var cfg butler.Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return fmt.Errorf("processing environment: %w", err)
	}
	if flagDryRun {
		cfg.DryRun = true
	}

	rc, err := repoconfig.Load(cfg.RepoConfigPath)
	if err != nil {
		// A broken repo config should not block the run.
		clog.WarnContextf(ctx, "Ignoring repo config: %v", err)
	}
	cfg.ApplyOverrides(rc)

	b, err := butler.New(ctx, cfg)
	if err != nil {
		return err
	}

	rep, runErr := b.Run(ctx)
	if rep != nil {
		fmt.Println(rep.Markdown())
		if err := rep.WriteStepSummary(); err != nil {
			clog.WarnContextf(ctx, "Could not write step summary: %v", err)
		}
	}
	return runErr
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Log what would be posted without posting anything")
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		clog.FatalContextf(ctx, "%v", err)
	}
}
