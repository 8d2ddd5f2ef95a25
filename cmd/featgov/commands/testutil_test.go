// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Featgov - Featgov is a standalone governance snapshot tool for BDD feature files in pnpm monorepos.
It scans feature files under each app, classifies scenario readiness from tags, audits implementation links, and generates deterministic JSON snapshots and markdown reports for humans and CI.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// makeRepo lays out a minimal pnpm monorepo with the given feature files,
// keyed by slash path relative to the repo root.
func makeRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "pnpm-workspace.yaml"), []byte("packages:\n  - apps/*\n"), 0o644); err != nil {
		t.Fatalf("write workspace manifest: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "apps"), 0o755); err != nil {
		t.Fatalf("mkdir apps: %v", err)
	}

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return root
}

// runCLI executes the root command with args, capturing combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}
