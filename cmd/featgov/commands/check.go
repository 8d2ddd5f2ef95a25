// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/featgov/cmd/featgov/internal/clierr"
	"github.com/bartekus/featgov/internal/checks"
	"github.com/bartekus/featgov/internal/ui"
)

func NewCheckCommand() *cobra.Command {
	var dir string
	var maxMissing, maxConflicts, maxReadyUnlinked int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate governance gates and fail when limits are exceeded",
		Long: `Build a snapshot and evaluate the governance gates against it:
scenarios without a status tag, scenarios with conflicting status tags, and
ready scenarios without an implementation link. Gate state is kept under
.featgov/ for CI to inspect.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, cfg, root, err := buildSnapshot(dir)
			if err != nil {
				return err
			}

			// Flags override config when set; -1 means use the configured limit
			limits := cfg.Check
			if maxMissing >= 0 {
				limits.MaxMissingStatus = maxMissing
			}
			if maxConflicts >= 0 {
				limits.MaxConflicts = maxConflicts
			}
			if maxReadyUnlinked >= 0 {
				limits.MaxReadyUnlinked = maxReadyUnlinked
			}

			store := checks.NewStateStore(filepath.Join(root, checks.StateDirName))
			runner := checks.NewRunner(checks.RulesFromConfig(limits), store, cmd.OutOrStdout())

			if err := runner.Run(snap); err != nil {
				return clierr.Wrap(1, "governance gate", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Pass("all checks passed"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory to resolve the repo root from")
	cmd.Flags().IntVar(&maxMissing, "max-missing-status", -1, "override the configured missing-status limit")
	cmd.Flags().IntVar(&maxConflicts, "max-conflicts", -1, "override the configured conflicting-status limit")
	cmd.Flags().IntVar(&maxReadyUnlinked, "max-ready-unlinked", -1, "override the configured ready-unlinked limit")
	return cmd
}
