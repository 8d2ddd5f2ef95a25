// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/featgov/cmd/featgov/internal/clierr"
	"github.com/bartekus/featgov/internal/report"
	"github.com/bartekus/featgov/internal/ui"
)

func NewSnapshotCommand() *cobra.Command {
	var dir, out string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Build the governance snapshot and emit it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, _, root, err := buildSnapshot(dir)
			if err != nil {
				return err
			}

			if out == "" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(snap); err != nil {
					return clierr.Wrap(1, "encoding snapshot", err)
				}
				return nil
			}

			outPath := out
			if !filepath.IsAbs(outPath) {
				outPath = filepath.Join(root, outPath)
			}

			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return clierr.Wrap(1, "encoding snapshot", err)
			}
			if err := report.WriteFile(outPath, append(data, '\n')); err != nil {
				return clierr.Wrap(1, "writing snapshot", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Pass("Wrote snapshot to "+outPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory to resolve the repo root from")
	cmd.Flags().StringVar(&out, "out", "", "write JSON to this path instead of stdout")
	return cmd
}
