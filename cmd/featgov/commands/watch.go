// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bartekus/featgov/cmd/featgov/internal/clierr"
	"github.com/bartekus/featgov/internal/report"
	"github.com/bartekus/featgov/internal/ui"
	"github.com/bartekus/featgov/internal/watch"
	"github.com/bartekus/featgov/pkg/gov"
)

func NewWatchCommand() *cobra.Command {
	var dir string
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the governance report whenever feature files change",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			snap, cfg, root, err := buildSnapshot(dir)
			if err != nil {
				return err
			}

			reportPath := cfg.Report.Out
			if !filepath.IsAbs(reportPath) {
				reportPath = filepath.Join(root, reportPath)
			}

			writeReport := func(s *gov.Snapshot) error {
				return report.WriteFile(reportPath, report.Render(s))
			}

			if err := writeReport(snap); err != nil {
				return clierr.Wrap(1, "writing report", err)
			}
			fmt.Fprintln(out, ui.Pass("Wrote "+reportPath))

			lastDigest := snap.Digest

			w, err := watch.New(watch.Options{
				RootDir:  root,
				AppsDir:  cfg.AppsDir,
				Debounce: debounce,
				Logger:   logger,
				OnChange: func() {
					next, err := gov.BuildSnapshot(gov.Options{
						RootDir:     root,
						AppsDir:     cfg.AppsDir,
						FeaturesDir: cfg.FeaturesDir,
						IgnoreGlobs: cfg.ExtraIgnore,
						Logger:      logger,
					})
					if err != nil {
						fmt.Fprintln(errOut, ui.Fail("rebuild failed: "+err.Error()))
						return
					}
					if next.Digest == lastDigest {
						return // Content unchanged, keep quiet
					}
					lastDigest = next.Digest
					if err := writeReport(next); err != nil {
						fmt.Fprintln(errOut, ui.Fail("writing report: "+err.Error()))
						return
					}
					fmt.Fprintln(out, ui.Pass("Rebuilt "+reportPath))
				},
			})
			if err != nil {
				return clierr.Wrap(1, "creating watcher", err)
			}

			if err := w.Start(ctx); err != nil {
				return clierr.Wrap(1, "starting watcher", err)
			}
			defer w.Stop()

			fmt.Fprintln(out, ui.Muted("watching for feature file changes, ctrl-c to stop"))
			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory to resolve the repo root from")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "settle window before rebuilding")
	return cmd
}
