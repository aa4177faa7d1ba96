/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

func TestKeyFor(t *testing.T) {
	assert.Equal(t, "api-keys.openai", KeyFor(vendors.VendorOpenAI))
	assert.Equal(t, "api-keys.google", KeyFor(vendors.VendorGoogle))
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	_, ok, err := store.Get("api-keys.openai")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Set("api-keys.openai", "sk-test-123"))

	value, ok, err := store.Get("api-keys.openai")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sk-test-123", value)
}

func TestFileStoreGetTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "api-keys.google"),
		[]byte("sk-pasted-with-newline\n"), 0600))

	value, ok, err := store.Get("api-keys.google")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sk-pasted-with-newline", value)
}

func TestFileStoreWritesRestrictedMode(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	assert.NoError(t, err)
	assert.NoError(t, store.Set("api-keys.openai", "secret"))

	info, err := os.Stat(filepath.Join(dir, "api-keys.openai"))
	assert.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, store.Set("api-keys.openai", "secret"))
	assert.NoError(t, store.Delete("api-keys.openai"))

	_, ok, err := store.Get("api-keys.openai")
	assert.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete("api-keys.openai"))
}

func TestNewFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "secrets")
	_, err := NewFileStore(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
