/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package editor is the text-buffer collaborator: it hands the selected
// prose to the refinement pipeline and inserts the returned suggestion next
// to the original text.
package editor

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"strings"
)

// Selection is a 1-based, inclusive line range. The zero value selects the
// whole buffer.
type Selection struct {
	StartLine int
	EndLine   int
}

func (s Selection) whole() bool {
	return s.StartLine == 0 && s.EndLine == 0
}

// Buffer exposes the selected text and accepts the refined suggestion.
// InsertSuggestion returns false (without error) when the insertion could
// not be applied because of an edit conflict.
type Buffer interface {
	SelectedText() string
	InsertSuggestion(suggestion string) (bool, error)
}

// FileBuffer edits a file on disk. The file content is captured at open
// time; an insertion is refused when the file changed underneath.
type FileBuffer struct {
	path      string
	mode      os.FileMode
	lines     []string
	selection Selection
	checksum  [sha256.Size]byte
}

// OpenFile loads path and validates the selection against its line count.
func OpenFile(path string, selection Selection) (*FileBuffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to open %v: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to read %v: %w", path, err)
	}

	lines := splitLines(string(content))
	if !selection.whole() {
		if selection.StartLine < 1 || selection.EndLine < selection.StartLine ||
			selection.EndLine > len(lines) {
			return nil, fmt.Errorf("Invalid line range %d:%d for %v (%d lines)",
				selection.StartLine, selection.EndLine, path, len(lines))
		}
	}

	return &FileBuffer{
		path:      path,
		mode:      info.Mode().Perm(),
		lines:     lines,
		selection: selection,
		checksum:  sha256.Sum256(content),
	}, nil
}

func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	// A trailing newline produces one spurious empty element.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (b *FileBuffer) selectionBounds() (int, int) {
	if b.selection.whole() {
		return 1, len(b.lines)
	}
	return b.selection.StartLine, b.selection.EndLine
}

func (b *FileBuffer) SelectedText() string {
	start, end := b.selectionBounds()
	return strings.Join(b.lines[start-1:end], "\n")
}

// InsertSuggestion writes the suggestion directly after the selected lines.
// Returns false when the file no longer matches the content captured at
// open time.
func (b *FileBuffer) InsertSuggestion(suggestion string) (bool, error) {
	current, err := os.ReadFile(b.path)
	if err != nil {
		return false, fmt.Errorf("Failed to re-read %v: %w", b.path, err)
	}
	if sha256.Sum256(current) != b.checksum {
		return false, nil
	}

	_, end := b.selectionBounds()
	var out bytes.Buffer
	for _, line := range b.lines[:end] {
		out.WriteString(line)
		out.WriteString("\n")
	}
	out.WriteString(suggestion)
	out.WriteString("\n")
	for _, line := range b.lines[end:] {
		out.WriteString(line)
		out.WriteString("\n")
	}

	if err := os.WriteFile(b.path, out.Bytes(), b.mode); err != nil {
		return false, fmt.Errorf("Failed to write %v: %w", b.path, err)
	}

	return true, nil
}

// ReaderBuffer refines a stream (typically stdin) and emits the original
// text followed by the suggestion on a writer (typically stdout).
type ReaderBuffer struct {
	text string
	out  io.Writer
}

// OpenReader slurps the whole stream as the selection.
func OpenReader(in io.Reader, out io.Writer) (*ReaderBuffer, error) {
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("Failed to read input: %w", err)
	}
	return &ReaderBuffer{text: string(content), out: out}, nil
}

func (b *ReaderBuffer) SelectedText() string {
	return b.text
}

func (b *ReaderBuffer) InsertSuggestion(suggestion string) (bool, error) {
	text := b.text
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(b.out, text+suggestion+"\n"); err != nil {
		return false, fmt.Errorf("Failed to write suggestion: %w", err)
	}
	return true, nil
}
