// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gov builds BDD governance snapshots: it scans a monorepo for
// tag-annotated .feature files, classifies every scenario's delivery status,
// detects tagging inconsistencies, and cross-references implementation tags
// against readiness.
package gov

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/bartekus/featgov/internal/gherkin"
	"github.com/bartekus/featgov/internal/projectroot"
	"github.com/bartekus/featgov/internal/scanner"
)

// DefaultFeaturesDir is the per-app specification folder name.
const DefaultFeaturesDir = "features"

// Options configures a snapshot build. The zero value scans the monorepo
// around the current working directory with all defaults.
type Options struct {
	// StartDir seeds repo-root resolution; "." when empty.
	StartDir string

	// RootDir pins the repo root and skips resolution entirely.
	RootDir string

	// AppsDir is the app container name under the root; "apps" when empty.
	AppsDir string

	// FeaturesDir is the per-app specification folder; "features" when empty.
	FeaturesDir string

	// IgnoreGlobs drops extra paths during discovery. Doublestar patterns,
	// matched relative to each features folder.
	IgnoreGlobs []string

	// Logger receives debug progress; defaults to a nop logger.
	Logger *zap.Logger

	// Clock stamps the snapshot; time.Now when nil.
	Clock func() time.Time
}

func (o Options) withDefaults() Options {
	if o.StartDir == "" {
		o.StartDir = "."
	}
	if o.AppsDir == "" {
		o.AppsDir = projectroot.AppsDir
	}
	if o.FeaturesDir == "" {
		o.FeaturesDir = DefaultFeaturesDir
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

// BuildSnapshot scans the monorepo and assembles the governance snapshot.
//
// The build is synchronous, single-threaded and read-only; every accumulator
// is local to the call, so repeated builds against an unchanged tree are
// idempotent. Discovery problems (absent features folder, unreadable
// directories, missing root markers) degrade to empty results. A read failure
// on a file that passed discovery, or a path-guard violation, aborts the
// whole build: there is no partial-result mode, since a snapshot with gaps
// could pass for a complete one.
func BuildSnapshot(opts Options) (*Snapshot, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	root := opts.RootDir
	if root == "" {
		var err error
		root, err = projectroot.Find(opts.StartDir)
		if err != nil {
			return nil, err
		}
	}
	log.Debug("resolved repo root", zap.String("root", root))

	snap := &Snapshot{
		GeneratedAt:       opts.Clock(),
		Apps:              []AppCounts{},
		Features:          []FeatureRow{},
		MissingStatus:     []MissingStatusIssue{},
		ConflictingStatus: []ConflictingStatusIssue{},
	}
	auditor := newImplAuditor()

	appsRoot := filepath.Join(root, opts.AppsDir)
	entries, err := os.ReadDir(appsRoot)
	if err != nil {
		// No app container at all still yields a valid, empty snapshot.
		entries = nil
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		appName := entry.Name()
		featuresDir := filepath.Join(appsRoot, appName, opts.FeaturesDir)

		files := scanner.Discover(featuresDir, scanner.Options{
			SkipDirs:    scanner.DefaultSkipDirs(),
			Extension:   gherkin.FileExtension,
			IgnoreGlobs: opts.IgnoreGlobs,
		})
		if len(files) == 0 {
			continue
		}
		log.Debug("discovered specification files",
			zap.String("app", appName), zap.Int("count", len(files)))

		app := AppCounts{Name: appName}
		for _, file := range files {
			if err := scanner.Guard(featuresDir, file, gherkin.FileExtension); err != nil {
				return nil, err
			}
			data, err := os.ReadFile(file) // #nosec G304 -- path guarded above
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", file, err)
			}
			relPath, err := filepath.Rel(root, file)
			if err != nil {
				return nil, fmt.Errorf("relativizing %s: %w", file, err)
			}

			row := buildFeatureRow(appName, filepath.ToSlash(relPath), string(data))
			for _, scn := range row.Scenarios {
				app.Add(scn.Status)
				snap.Overall.Add(scn.Status)
				if issue, ok := detectConflict(scn); ok {
					snap.ConflictingStatus = append(snap.ConflictingStatus, issue)
				}
				if issue, ok := detectMissingStatus(scn); ok {
					snap.MissingStatus = append(snap.MissingStatus, issue)
				}
				auditor.visit(scn)
			}
			snap.Features = append(snap.Features, row)
		}
		snap.Apps = append(snap.Apps, app)
	}

	// Filesystem enumeration order is not stable across platforms; the
	// snapshot contract is. Sort everything user-visible.
	sort.Slice(snap.Features, func(i, j int) bool {
		a, b := snap.Features[i], snap.Features[j]
		if a.AppName != b.AppName {
			return a.AppName < b.AppName
		}
		if a.FeatureName != b.FeatureName {
			return a.FeatureName < b.FeatureName
		}
		return a.FilePath < b.FilePath
	})
	sort.Slice(snap.Apps, func(i, j int) bool { return snap.Apps[i].Name < snap.Apps[j].Name })

	snap.ImplAudit = auditor.result()

	digest, err := computeDigest(snap)
	if err != nil {
		return nil, err
	}
	snap.Digest = digest

	log.Debug("snapshot assembled",
		zap.Int("apps", len(snap.Apps)),
		zap.Int("features", len(snap.Features)),
		zap.Int("scenarios", snap.Overall.Total))
	return snap, nil
}

func buildFeatureRow(appName, relPath, content string) FeatureRow {
	doc := gherkin.Parse(content)

	row := FeatureRow{
		AppName:     appName,
		FilePath:    relPath,
		FeatureName: doc.Name,
		FeatureTags: doc.Tags,
		Scenarios:   make([]ScenarioRow, 0, len(doc.Scenarios)),
	}
	for _, scn := range doc.Scenarios {
		sr := ScenarioRow{
			FilePath:        relPath,
			FeatureName:     doc.Name,
			ScenarioName:    scn.Name,
			Tags:            scn.Tags,
			Status:          Classify(scn.Tags),
			ImplTags:        implTags(scn.Tags),
			FeaturePrimary:  scn.FeaturePrimary,
			ScenarioPrimary: scn.ScenarioPrimary,
		}
		row.Counts.Add(sr.Status)
		row.Scenarios = append(row.Scenarios, sr)
	}
	return row
}
