/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	assert.NoError(t, os.WriteFile(path, []byte("prompt text"), 0600))
}

func TestFindPromptFilesRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "editing.prompt.md")
	writeFile(t, root, "docs/tone.prompt.md")
	writeFile(t, root, "docs/readme.md")
	writeFile(t, root, "notes.txt")

	paths, err := FindPromptFiles(root)
	assert.NoError(t, err)
	assert.Equal(t, []string{"docs/tone.prompt.md", "editing.prompt.md"}, paths)
}

func TestFindPromptFilesSkipsExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.prompt.md")
	writeFile(t, root, "node_modules/pkg/skip.prompt.md")
	writeFile(t, root, "vendor/dep/skip.prompt.md")
	writeFile(t, root, ".git/hooks/skip.prompt.md")

	paths, err := FindPromptFiles(root)
	assert.NoError(t, err)
	assert.Equal(t, []string{"keep.prompt.md"}, paths)
}

func TestFindPromptFilesEmptyWorkspace(t *testing.T) {
	paths, err := FindPromptFiles(t.TempDir())
	assert.NoError(t, err)
	assert.Empty(t, paths)
}

func TestFindPromptFilesSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "z.prompt.md")
	writeFile(t, root, "a.prompt.md")
	writeFile(t, root, "m/inner.prompt.md")

	paths, err := FindPromptFiles(root)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.prompt.md", "m/inner.prompt.md", "z.prompt.md"},
		paths)
}
