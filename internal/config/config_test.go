package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg := Load(t.TempDir())

	assert.Equal(t, "apps", cfg.AppsDir)
	assert.Equal(t, "features", cfg.FeaturesDir)
	assert.Empty(t, cfg.ExtraIgnore)
	assert.Equal(t, DefaultReportOut, cfg.Report.Out)
	assert.Equal(t, 0, cfg.Check.MaxMissingStatus)
	assert.Equal(t, 0, cfg.Check.MaxConflicts)
	assert.Equal(t, 0, cfg.Check.MaxReadyUnlinked)
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	content := `appsDir: packages
featuresDir: specs
extraIgnore:
  - "**/fixtures/**"
  - "drafts/**"
report:
  out: build/gov.md
check:
  maxMissingStatus: 5
  maxConflicts: 1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))

	cfg := Load(dir)
	assert.Equal(t, "packages", cfg.AppsDir)
	assert.Equal(t, "specs", cfg.FeaturesDir)
	assert.Equal(t, []string{"**/fixtures/**", "drafts/**"}, cfg.ExtraIgnore)
	assert.Equal(t, "build/gov.md", cfg.Report.Out)
	assert.Equal(t, 5, cfg.Check.MaxMissingStatus)
	assert.Equal(t, 1, cfg.Check.MaxConflicts)
	assert.Equal(t, 0, cfg.Check.MaxReadyUnlinked)
}

func TestLoadBrokenFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(":\n  - not yaml {"), 0o644))

	cfg := Load(dir)
	assert.Equal(t, "apps", cfg.AppsDir)
	assert.Equal(t, "features", cfg.FeaturesDir)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("appsDir: packages\n"), 0o644))

	t.Setenv("FEATGOV_APPS_DIR", "services")
	t.Setenv("FEATGOV_FEATURES_DIR", "behavior")

	cfg := LoadWithEnv(dir)
	assert.Equal(t, "services", cfg.AppsDir)
	assert.Equal(t, "behavior", cfg.FeaturesDir)
}
