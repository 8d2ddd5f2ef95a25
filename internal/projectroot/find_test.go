package projectroot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeRoot(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, WorkspaceManifest), []byte("packages:\n  - apps/*\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, AppsDir), 0o755); err != nil {
		t.Fatalf("mkdir apps: %v", err)
	}
}

func TestFindFromNestedDir(t *testing.T) {
	root := t.TempDir()
	makeRoot(t, root)

	start := filepath.Join(root, AppsDir, "web", "features")
	if err := os.MkdirAll(start, 0o755); err != nil {
		t.Fatalf("mkdir start: %v", err)
	}

	got, err := Find(start)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != root {
		t.Errorf("Find = %q, want %q", got, root)
	}
}

func TestFindAtRootItself(t *testing.T) {
	root := t.TempDir()
	makeRoot(t, root)

	got, err := Find(root)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != root {
		t.Errorf("Find = %q, want %q", got, root)
	}
}

func TestFindFallsBackWithoutMarkers(t *testing.T) {
	start := t.TempDir()

	got, err := Find(start)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != start {
		t.Errorf("Find = %q, want fallback %q", got, start)
	}
}

func TestFindRequiresBothMarkers(t *testing.T) {
	dir := t.TempDir()
	// Manifest alone must not qualify.
	if err := os.WriteFile(filepath.Join(dir, WorkspaceManifest), nil, 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	start := filepath.Join(dir, "sub")
	if err := os.MkdirAll(start, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := Find(start)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != start {
		t.Errorf("Find = %q, want fallback %q", got, start)
	}
}

func TestFindHopBudget(t *testing.T) {
	root := t.TempDir()
	makeRoot(t, root)

	// Bury the start deeper than the hop budget; the root must not be found.
	segs := make([]string, 0, maxHops+2)
	for i := 0; i < maxHops+2; i++ {
		segs = append(segs, "d")
	}
	start := filepath.Join(root, filepath.Join(segs...))
	if err := os.MkdirAll(start, 0o755); err != nil {
		t.Fatalf("mkdir deep: %v", err)
	}

	got, err := Find(start)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != start {
		t.Errorf("Find = %q, want fallback %q (root beyond hop budget)", got, start)
	}
	if !strings.HasPrefix(got, root) {
		t.Errorf("fallback %q escaped the fixture tree %q", got, root)
	}
}
