/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package prompts

import (
	"os"
	"path/filepath"

	"github.com/Silverdust-ZH/LectorGPT/internal/config"
	"github.com/Silverdust-ZH/LectorGPT/internal/ui"
)

// Manager enumerates and resolves the system-prompt source, and loads the
// prompt text itself.
type Manager struct {
	store         config.Store
	dialogue      ui.OptionDialogue
	notifier      ui.Notifier
	workspaceRoot string
}

func NewManager(store config.Store, dialogue ui.OptionDialogue,
	notifier ui.Notifier, workspaceRoot string) *Manager {

	return &Manager{
		store:         store,
		dialogue:      dialogue,
		notifier:      notifier,
		workspaceRoot: workspaceRoot,
	}
}

// SupportedSources returns the bundled default source plus one file source
// per *.prompt.md file discovered in the workspace.
func (m *Manager) SupportedSources() ([]*Source, error) {
	sources := []*Source{AssetSource()}

	paths, err := FindPromptFiles(m.workspaceRoot)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		sources = append(sources, FileSource(path))
	}

	return sources, nil
}

// ResolveActiveSource derives the active source purely from configuration:
// a file source when a non-empty path is configured, else the bundled
// asset. Never prompts.
func (m *Manager) ResolveActiveSource() *Source {
	if path := m.store.CustomSystemPromptSource(); path != "" {
		return FileSource(path)
	}
	return AssetSource()
}

// SelectActiveSource prompts among the supported sources with the active
// one marked. A changed selection is persisted (the asset choice clears the
// setting) and announced; an unchanged one is a no-op. Returns nil when the
// prompt is dismissed.
func (m *Manager) SelectActiveSource() (*Source, error) {
	supported, err := m.SupportedSources()
	if err != nil {
		return nil, err
	}
	active := m.ResolveActiveSource()

	choices := make([]ui.Option, len(supported))
	for i, source := range supported {
		choices[i] = ui.Option{
			Key:    source.Label(),
			Label:  source.Label(),
			Active: Equal(source, active),
		}
	}

	chosen, err := m.dialogue.SelectOption("Select the system prompt source", choices)
	if err != nil {
		return nil, err
	}
	if chosen == nil {
		return nil, nil
	}

	var selected *Source
	for _, source := range supported {
		if source.Label() == chosen.Key {
			selected = source
			break
		}
	}

	if Equal(selected, active) {
		return selected, nil
	}
	path := ""
	if selected.Type == SourceFile {
		path = selected.Path
	}
	if err := m.store.SetCustomSystemPromptSource(path); err != nil {
		return nil, err
	}
	m.notifier.Infof("System prompt source set to %s", selected.Label())

	return selected, nil
}

// LoadActiveSystemPrompt reads the prompt text for source. File sources
// resolve relative to the workspace root; read failures are reported with a
// contextual error notice and yield ok=false.
func (m *Manager) LoadActiveSystemPrompt(source *Source) (string, bool) {
	if m.workspaceRoot == "" {
		m.notifier.Errorf("No workspace folder could be resolved for the system prompt")
		return "", false
	}

	switch source.Type {
	case SourceAsset:
		return defaultSystemPrompt, true
	case SourceFile:
		path := filepath.Join(m.workspaceRoot, filepath.FromSlash(source.Path))
		content, err := os.ReadFile(path)
		if err != nil {
			m.notifier.Errorf("Failed to load the custom system prompt file at %s: %v",
				source.Path, err)
			return "", false
		}
		return string(content), true
	}
	panic("unsupported prompt source type")
}
