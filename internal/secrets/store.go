/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package secrets stores one API key per vendor and manages interactive key
// registration.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

// KeyFor is the secret-store key under which a vendor's API key lives.
func KeyFor(vendor vendors.Vendor) string {
	return "api-keys." + string(vendor)
}

// Store is the secret storage collaborator. Get returns ok=false when no
// value is stored under key.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore keeps each secret in its own 0600 file under dir, named after
// the secret key.
type FileStore struct {
	dir string
}

// NewFileStore ensures dir exists and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("Failed to create secret directory %v: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *FileStore) Get(key string) (string, bool, error) {
	content, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("Failed to read secret %v: %w", key, err)
	}

	return strings.TrimSpace(string(content)), true, nil
}

func (s *FileStore) Set(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0600); err != nil {
		return fmt.Errorf("Failed to store secret %v: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("Failed to delete secret %v: %w", key, err)
	}
	return nil
}
