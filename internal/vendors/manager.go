/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package vendors

import (
	"github.com/Silverdust-ZH/LectorGPT/internal/config"
	"github.com/Silverdust-ZH/LectorGPT/internal/ui"
)

// Manager resolves or interactively selects the active vendor combination,
// persisting the user's choice in the configuration store.
type Manager struct {
	store    config.Store
	dialogue ui.OptionDialogue
	notifier ui.Notifier
}

func NewManager(store config.Store, dialogue ui.OptionDialogue,
	notifier ui.Notifier) *Manager {

	return &Manager{store: store, dialogue: dialogue, notifier: notifier}
}

// supportedSetups is the fixed set of selectable vendor combinations.
func supportedSetups() []*Descriptor {
	return []*Descriptor{
		NewDescriptor([]Vendor{VendorOpenAI}),
		NewDescriptor([]Vendor{VendorGoogle}),
		NewDescriptor([]Vendor{VendorOpenAI, VendorGoogle}),
	}
}

// ActiveVendors returns the currently configured vendor combination, or nil
// when none is set or the stored identifiers are unparseable.
func (m *Manager) ActiveVendors() *Descriptor {
	identifiers := m.store.ActiveVendors()
	if len(identifiers) == 0 {
		return nil
	}

	members := make([]Vendor, 0, len(identifiers))
	for _, identifier := range identifiers {
		vendor, ok := Parse(identifier)
		if !ok {
			return nil
		}
		members = append(members, vendor)
	}

	return NewDescriptor(members)
}

// SelectActiveVendors prompts the user to pick one of the supported vendor
// combinations, with the currently active one marked. A changed selection
// is persisted and announced; re-selecting the active combination is a
// no-op apart from returning it. Returns nil when the prompt is dismissed.
func (m *Manager) SelectActiveVendors() (*Descriptor, error) {
	active := m.ActiveVendors()

	setups := supportedSetups()
	choices := make([]ui.Option, len(setups))
	for i, setup := range setups {
		choices[i] = ui.Option{
			Key:    setup.Label(),
			Label:  setup.Label(),
			Active: Equal(setup, active),
		}
	}

	chosen, err := m.dialogue.SelectOption("Select the active AI vendors", choices)
	if err != nil {
		return nil, err
	}
	if chosen == nil {
		return nil, nil
	}

	var selected *Descriptor
	for _, setup := range setups {
		if setup.Label() == chosen.Key {
			selected = setup
			break
		}
	}

	if Equal(selected, active) {
		return selected, nil
	}
	if err := m.store.SetActiveVendors(selected.Identifiers()); err != nil {
		return nil, err
	}
	m.notifier.Infof("Active vendors set to %s", selected.Label())

	return selected, nil
}

// ResolveActiveVendors returns the active vendor combination, interactively
// selecting one when none is configured. When nothing can be resolved an
// error notice naming commandName is emitted and nil is returned.
func (m *Manager) ResolveActiveVendors(commandName string) (*Descriptor, error) {
	if active := m.ActiveVendors(); active != nil {
		return active, nil
	}

	selected, err := m.SelectActiveVendors()
	if err != nil {
		return nil, err
	}
	if selected == nil {
		m.notifier.Errorf("%s requires an active vendor setup", commandName)
		return nil, nil
	}

	return selected, nil
}
