// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projectroot locates the monorepo root from any working directory.
package projectroot

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// WorkspaceManifest marks the monorepo root together with AppsDir.
	WorkspaceManifest = "pnpm-workspace.yaml"
	// AppsDir is the application container directory expected at the root.
	AppsDir = "apps"

	// maxHops bounds the upward walk on unusual mounts and symlink cycles.
	maxHops = 10
)

// Find walks upward from start until it reaches a directory carrying both
// root markers: the workspace manifest file and the apps directory. When no
// candidate matches within the hop budget, the absolute form of start is
// returned so callers keep working outside a recognized monorepo.
func Find(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", start, err)
	}

	dir := abs
	for hop := 0; hop <= maxHops; hop++ {
		if isRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return abs, nil
}

func isRoot(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, WorkspaceManifest))
	if err != nil || fi.IsDir() {
		return false
	}
	fi, err = os.Stat(filepath.Join(dir, AppsDir))
	return err == nil && fi.IsDir()
}
