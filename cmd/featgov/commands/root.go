// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Featgov - Featgov is a standalone governance snapshot tool for BDD feature files in pnpm monorepos.
It scans feature files under each app, classifies scenario readiness from tags, audits implementation links, and generates deterministic JSON snapshots and markdown reports for humans and CI.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package commands contains Cobra subcommands for the featgov CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bartekus/featgov/cmd/featgov/internal/clierr"
	"github.com/bartekus/featgov/internal/config"
	"github.com/bartekus/featgov/internal/logging"
	"github.com/bartekus/featgov/internal/projectroot"
	"github.com/bartekus/featgov/pkg/gov"
)

// logger is installed by the root PersistentPreRunE and shared by subcommands.
var logger = zap.NewNop()

// NewRootCmd constructs the featgov root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("FEATGOV_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "featgov",
		Short:         "Featgov - BDD governance snapshots for pnpm monorepos",
		Long:          "Featgov scans apps/*/features for .feature files, classifies scenario readiness from tags, audits implementation links, and emits deterministic snapshots, reports, and CI gates.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			l, err := logging.New(verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of featgov",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "featgov version %s\n", version)
		},
	})

	cmd.AddCommand(NewSnapshotCommand())
	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewWatchCommand())

	return cmd
}

// buildSnapshot resolves the repo root from dir, loads config, and builds the
// snapshot. Root resolution problems exit 2, snapshot failures exit 1.
func buildSnapshot(dir string) (*gov.Snapshot, *config.Config, string, error) {
	start := dir
	if start == "" {
		start = "."
	}

	root, err := projectroot.Find(start)
	if err != nil {
		return nil, nil, "", clierr.Wrap(2, "resolving repo root", err)
	}

	cfg := config.LoadWithEnv(root)

	snap, err := gov.BuildSnapshot(gov.Options{
		RootDir:     root,
		AppsDir:     cfg.AppsDir,
		FeaturesDir: cfg.FeaturesDir,
		IgnoreGlobs: cfg.ExtraIgnore,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, "", clierr.Wrap(1, "building snapshot", err)
	}
	return snap, cfg, root, nil
}
