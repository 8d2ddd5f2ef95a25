// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/featgov/cmd/featgov/internal/clierr"
	"github.com/bartekus/featgov/internal/report"
	"github.com/bartekus/featgov/internal/ui"
)

func NewReportCommand() *cobra.Command {
	var dir, out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the markdown governance report",
		Long: `Build a snapshot and write the markdown governance report.
The output path defaults to report.out from .featgov.yaml
(docs/__generated__/bdd-governance.md when unconfigured).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, cfg, root, err := buildSnapshot(dir)
			if err != nil {
				return err
			}

			outPath := out
			if outPath == "" {
				outPath = cfg.Report.Out
			}
			if !filepath.IsAbs(outPath) {
				outPath = filepath.Join(root, outPath)
			}

			if err := report.WriteFile(outPath, report.Render(snap)); err != nil {
				return clierr.Wrap(1, "writing report", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Pass("Wrote "+outPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory to resolve the repo root from")
	cmd.Flags().StringVar(&out, "out", "", "report path, overrides the configured report.out")
	return cmd
}
