// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scanner discovers specification files on the local filesystem and
// guards the paths handed back to readers.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls a Discover pass.
type Options struct {
	// SkipDirs lists directory base names discovery never descends into.
	SkipDirs []string

	// Extension restricts collected files (e.g. ".feature").
	// Empty collects every file.
	Extension string

	// IgnoreGlobs holds doublestar patterns matched against the
	// slash-separated path relative to the discovery root. Matching files
	// are dropped; a matching directory is pruned with its whole subtree.
	IgnoreGlobs []string
}

// DefaultSkipDirs returns the directory names discovery never enters:
// dependency caches, build output, coverage output, framework caches.
func DefaultSkipDirs() []string {
	return []string{
		"node_modules",
		".git",
		"dist",
		"build",
		"out",
		"coverage",
		".next",
		".turbo",
		"vendor",
	}
}

// Discover walks dir with an explicit stack and returns the matching file
// paths, sorted. Listing failures (missing directory, permission) count as
// empty directories; discovery is best-effort and never fails.
func Discover(dir string, opts Options) []string {
	skip := make(map[string]struct{}, len(opts.SkipDirs))
	for _, name := range opts.SkipDirs {
		skip[name] = struct{}{}
	}

	var files []string
	stack := []string{dir}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(current)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			full := filepath.Join(current, entry.Name())
			if entry.IsDir() {
				if _, skipped := skip[entry.Name()]; skipped {
					continue
				}
				if ignored(dir, full, opts.IgnoreGlobs) {
					continue
				}
				stack = append(stack, full)
				continue
			}
			if opts.Extension != "" && !strings.HasSuffix(entry.Name(), opts.Extension) {
				continue
			}
			if ignored(dir, full, opts.IgnoreGlobs) {
				continue
			}
			files = append(files, full)
		}
	}

	sort.Strings(files)
	return files
}

func ignored(root, path string, globs []string) bool {
	if len(globs) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, glob := range globs {
		if ok, err := doublestar.Match(glob, rel); err == nil && ok {
			return true
		}
	}
	return false
}
