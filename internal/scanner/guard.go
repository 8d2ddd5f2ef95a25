package scanner

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Guard validates that path resolves strictly inside baseDir and carries the
// expected extension. A violation means a logic or input bug upstream, never
// an expected runtime state, so callers treat the returned error as fatal.
func Guard(baseDir, path, ext string) error {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("resolving base %q: %w", baseDir, err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", path, err)
	}

	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return fmt.Errorf("unsafe path %q: not inside %q", path, baseDir)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("unsafe path %q: not inside %q", path, baseDir)
	}

	if ext != "" && !strings.HasSuffix(absPath, ext) {
		return fmt.Errorf("unsafe path %q: extension is not %q", path, ext)
	}
	return nil
}
