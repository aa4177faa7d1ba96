/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package config persists the workspace-scoped settings: the active vendor
// combination, the active model, and the custom system-prompt source.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	settingsDir  = ".lectorgpt"
	settingsFile = "settings.json"
)

// settings mirrors the flat key layout of the settings file.
type settings struct {
	Vendors                  []string `json:"vendors,omitempty"`
	Model                    string   `json:"model,omitempty"`
	CustomSystemPromptSource string   `json:"customSystemPromptSource,omitempty"`
}

// Store is the configuration collaborator consumed by the managers. Getters
// return zero values when a key is unset; setters persist immediately.
type Store interface {
	ActiveVendors() []string
	SetActiveVendors(identifiers []string) error

	ActiveModel() string
	SetActiveModel(key string) error

	CustomSystemPromptSource() string
	SetCustomSystemPromptSource(path string) error
}

// FileStore is the workspace-scoped settings file implementation of Store.
type FileStore struct {
	path     string
	settings settings
}

// NewFileStore loads (or initializes) the settings file for workspaceRoot.
func NewFileStore(workspaceRoot string) (*FileStore, error) {
	path := filepath.Join(workspaceRoot, settingsDir, settingsFile)
	store := &FileStore{path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("Failed to read settings %v: %w", path, err)
	}
	if err := json.Unmarshal(content, &store.settings); err != nil {
		return nil, fmt.Errorf("Failed to parse settings %v: %w", path, err)
	}

	return store, nil
}

func (s *FileStore) save() error {
	content, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("Failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("Failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(s.path, content, 0600); err != nil {
		return fmt.Errorf("Failed to save settings %v: %w", s.path, err)
	}

	return nil
}

func (s *FileStore) ActiveVendors() []string {
	return s.settings.Vendors
}

func (s *FileStore) SetActiveVendors(identifiers []string) error {
	s.settings.Vendors = identifiers
	return s.save()
}

func (s *FileStore) ActiveModel() string {
	return s.settings.Model
}

func (s *FileStore) SetActiveModel(key string) error {
	s.settings.Model = key
	return s.save()
}

func (s *FileStore) CustomSystemPromptSource() string {
	return s.settings.CustomSystemPromptSource
}

func (s *FileStore) SetCustomSystemPromptSource(path string) error {
	s.settings.CustomSystemPromptSource = path
	return s.save()
}
