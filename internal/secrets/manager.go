/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package secrets

import (
	"sort"
	"strings"

	"github.com/Silverdust-ZH/LectorGPT/internal/ui"
	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

const emptyKeyMessage = "API key cannot be empty"

// Manager handles interactive registration, unregistration, and bulk
// resolution of per-vendor API keys.
type Manager struct {
	store    Store
	dialogue ui.Dialogue
	notifier ui.Notifier
}

func NewManager(store Store, dialogue ui.Dialogue, notifier ui.Notifier) *Manager {
	return &Manager{store: store, dialogue: dialogue, notifier: notifier}
}

// storedKeys collects the currently stored API key for every supported
// vendor.
func (m *Manager) storedKeys() (map[vendors.Vendor]string, error) {
	keys := make(map[vendors.Vendor]string)
	for _, vendor := range vendors.All() {
		value, ok, err := m.store.Get(KeyFor(vendor))
		if err != nil {
			return nil, err
		}
		if ok {
			keys[vendor] = value
		}
	}
	return keys, nil
}

func validateKey(entered string) string {
	if strings.TrimSpace(entered) == "" {
		return emptyKeyMessage
	}
	return ""
}

// promptForKey runs the masked key-entry prompt for one vendor and persists
// the entered key when it differs from the previously stored one. Returns
// ok=false when the prompt is dismissed.
func (m *Manager) promptForKey(vendor vendors.Vendor) (string, bool, error) {
	previous, _, err := m.store.Get(KeyFor(vendor))
	if err != nil {
		return "", false, err
	}

	entered, ok, err := m.dialogue.GetSecret(
		"Enter the "+vendor.FullName()+" API key", validateKey)
	if err != nil || !ok {
		return "", false, err
	}

	if entered != previous {
		if err := m.store.Set(KeyFor(vendor), entered); err != nil {
			return "", false, err
		}
		m.notifier.Infof("%s API key registered", vendor.FullName())
	}

	return entered, true, nil
}

// RegisterNewAPIKey lets the user pick one of the vendors in setup
// (alphabetically by label) and enter a new API key for it. Vendors that
// already have a stored key are annotated with an overwrite hint. Returns
// ok=false when either prompt is dismissed.
func (m *Manager) RegisterNewAPIKey(setup *vendors.Descriptor) (string, bool, error) {
	stored, err := m.storedKeys()
	if err != nil {
		return "", false, err
	}

	members := append([]vendors.Vendor(nil), setup.Setup...)
	sort.Slice(members, func(i, j int) bool {
		return members[i].FullName() < members[j].FullName()
	})

	choices := make([]ui.Option, len(members))
	for i, vendor := range members {
		hint := ""
		if _, has := stored[vendor]; has {
			hint = "will overwrite the existing key"
		}
		choices[i] = ui.Option{
			Key:   string(vendor),
			Label: vendor.FullName(),
			Hint:  hint,
		}
	}

	chosen, err := m.dialogue.SelectOption("Select a vendor to register an API key for", choices)
	if err != nil {
		return "", false, err
	}
	if chosen == nil {
		return "", false, nil
	}
	vendor, _ := vendors.Parse(chosen.Key)

	return m.promptForKey(vendor)
}

// ResolveActiveAPIKeys returns one API key per vendor in setup, prompting
// ad hoc for any missing key. Vendors are resolved strictly in setup order,
// one prompt at a time; the first dismissal aborts the remaining vendors.
// When the set ends up incomplete a single error notice naming commandName
// is emitted and nil is returned.
func (m *Manager) ResolveActiveAPIKeys(setup *vendors.Descriptor,
	commandName string) (map[vendors.Vendor]string, error) {

	keys := make(map[vendors.Vendor]string, len(setup.Setup))
	for _, vendor := range setup.Setup {
		value, ok, err := m.store.Get(KeyFor(vendor))
		if err != nil {
			return nil, err
		}
		if ok {
			keys[vendor] = value
			continue
		}

		entered, enteredOK, err := m.promptForKey(vendor)
		if err != nil {
			return nil, err
		}
		if !enteredOK {
			break
		}
		keys[vendor] = entered
	}

	for _, vendor := range setup.Setup {
		if _, ok := keys[vendor]; !ok {
			m.notifier.Errorf("%s requires an API key for every active vendor",
				commandName)
			return nil, nil
		}
	}

	return keys, nil
}

// UnregisterAPIKey deletes one stored API key chosen by the user. When no
// key is stored at all an error notice is emitted; dismissing the prompt
// aborts silently.
func (m *Manager) UnregisterAPIKey() error {
	stored, err := m.storedKeys()
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		m.notifier.Errorf("No API keys are currently registered")
		return nil
	}

	members := make([]vendors.Vendor, 0, len(stored))
	for vendor := range stored {
		members = append(members, vendor)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].FullName() < members[j].FullName()
	})

	choices := make([]ui.Option, len(members))
	for i, vendor := range members {
		choices[i] = ui.Option{Key: string(vendor), Label: vendor.FullName()}
	}

	chosen, err := m.dialogue.SelectOption("Select a vendor to remove the API key for", choices)
	if err != nil {
		return err
	}
	if chosen == nil {
		return nil
	}
	vendor, _ := vendors.Parse(chosen.Key)

	if err := m.store.Delete(KeyFor(vendor)); err != nil {
		return err
	}
	m.notifier.Infof("%s API key removed", vendor.FullName())

	return nil
}
