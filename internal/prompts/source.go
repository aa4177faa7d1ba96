/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package prompts enumerates and resolves the system-prompt text sources:
// the bundled default prompt plus any *.prompt.md file in the workspace.
package prompts

import (
	_ "embed"
)

//go:embed default_system_prompt.md
var defaultSystemPrompt string

// SourceType discriminates the prompt source variants.
type SourceType int

const (
	// SourceAsset is the default prompt bundled with the binary.
	SourceAsset SourceType = iota
	// SourceFile is a user-supplied prompt file, workspace-relative.
	SourceFile
)

// Source describes where the system prompt text comes from. Path is only
// meaningful for SourceFile.
type Source struct {
	Type SourceType
	Path string
}

// AssetSource returns the bundled-default source descriptor.
func AssetSource() *Source {
	return &Source{Type: SourceAsset}
}

// FileSource returns a descriptor for a workspace-relative prompt file.
func FileSource(path string) *Source {
	return &Source{Type: SourceFile, Path: path}
}

// Equal compares two optional sources: same type, and for file sources also
// the same path. Both nil compare equal; exactly one nil compares unequal.
func Equal(left, right *Source) bool {
	if left == nil || right == nil {
		return left == right
	}
	if left.Type != right.Type {
		return false
	}
	if left.Type == SourceFile {
		return left.Path == right.Path
	}
	return true
}

// Label renders the source for display: "<default>" for the bundled asset,
// the literal path for a file source.
func (s *Source) Label() string {
	switch s.Type {
	case SourceAsset:
		return "<default>"
	case SourceFile:
		return s.Path
	}
	panic("unsupported prompt source type")
}
