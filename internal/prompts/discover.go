/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package prompts

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const promptFilePattern = "**/*.prompt.md"

// excludedDirs are dependency/metadata directories never searched for
// prompt files.
var excludedDirs = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
	".git":         {},
}

// promptFS narrows the workspace tree walked by doublestar so excluded
// directories are pruned instead of merely filtered afterwards.
type promptFS struct {
	inner fs.FS
}

func (p promptFS) Open(name string) (fs.File, error) {
	return p.inner.Open(name)
}

func (p promptFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(p.inner, name)
	if err != nil {
		return nil, err
	}

	kept := entries[:0]
	for _, entry := range entries {
		if entry.IsDir() {
			if _, excluded := excludedDirs[entry.Name()]; excluded {
				continue
			}
		}
		kept = append(kept, entry)
	}
	return kept, nil
}

// FindPromptFiles returns the workspace-relative paths (slash-separated) of
// every *.prompt.md file under workspaceRoot, sorted ascending.
func FindPromptFiles(workspaceRoot string) ([]string, error) {
	root := promptFS{inner: os.DirFS(workspaceRoot)}

	matches, err := doublestar.Glob(root, promptFilePattern)
	if err != nil {
		return nil, fmt.Errorf("Failed to search for prompt files in %v: %w",
			workspaceRoot, err)
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		if containsExcludedSegment(match) {
			continue
		}
		paths = append(paths, match)
	}
	sort.Strings(paths)

	return paths, nil
}

func containsExcludedSegment(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if _, excluded := excludedDirs[segment]; excluded {
			return true
		}
	}
	return false
}
