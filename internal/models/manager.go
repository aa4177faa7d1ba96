/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package models resolves and selects the active model, reconciling three
// independent constraints: what the providers report as currently served,
// the curated catalog allow-list, and the active vendor set.
package models

import (
	"context"
	"sort"
	"sync"

	"github.com/Silverdust-ZH/LectorGPT/internal/catalog"
	"github.com/Silverdust-ZH/LectorGPT/internal/config"
	"github.com/Silverdust-ZH/LectorGPT/internal/llmclient"
	"github.com/Silverdust-ZH/LectorGPT/internal/result"
	"github.com/Silverdust-ZH/LectorGPT/internal/ui"
	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

// Manager resolves or interactively selects the active model.
type Manager struct {
	store    config.Store
	dialogue ui.OptionDialogue
	notifier ui.Notifier
}

func NewManager(store config.Store, dialogue ui.OptionDialogue,
	notifier ui.Notifier) *Manager {

	return &Manager{store: store, dialogue: dialogue, notifier: notifier}
}

func (m *Manager) loadCatalog() (map[string]*catalog.ModelDescriptor, bool) {
	curated, err := catalog.Load()
	if err != nil {
		// No meaningful fallback exists without the catalog.
		m.notifier.Errorf("The curated model catalog could not be loaded; please reinstall LectorGPT or contact support (%v)", err)
		return nil, false
	}
	return curated, true
}

// resolveSupportedModels queries every provider's model list in parallel
// and intersects the union of the reported "vendor:id" keys with the
// curated catalog. A single failing vendor blocks the whole resolution:
// every failure is reported (one notice per failing provider) and ok is
// false even when other vendors succeeded. Vendor groups keep the setup
// order; an empty intersection is reported as a generic error.
func (m *Manager) resolveSupportedModels(ctx context.Context,
	setup *vendors.Descriptor,
	providers map[vendors.Vendor]llmclient.ModelProvider,
	curated map[string]*catalog.ModelDescriptor) ([]*catalog.ModelDescriptor, bool) {

	listed := make(map[vendors.Vendor]result.Result[[]string], len(providers))
	var mu sync.Mutex
	var group sync.WaitGroup

	for _, vendor := range setup.Setup {
		provider, ok := providers[vendor]
		if !ok {
			continue
		}
		group.Add(1)
		go func() {
			defer group.Done()
			listing := provider.ListModels(ctx)
			mu.Lock()
			listed[vendor] = listing
			mu.Unlock()
		}()
	}
	group.Wait()

	failed := false
	for _, vendor := range setup.Setup {
		listing, ok := listed[vendor]
		if ok && listing.IsFailure() {
			m.notifier.Errorf("%s: %v", listing.Context(), listing.Err())
			failed = true
		}
	}
	if failed {
		return nil, false
	}

	supported := make([]*catalog.ModelDescriptor, 0)
	seen := make(map[string]struct{})
	for _, vendor := range setup.Setup {
		listing, ok := listed[vendor]
		if !ok {
			continue
		}
		for _, key := range listing.Value() {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if descriptor, curatedOK := curated[key]; curatedOK {
				supported = append(supported, descriptor)
			}
		}
	}

	if len(supported) == 0 {
		m.notifier.Errorf("No supported models are currently available from the active vendors")
		return nil, false
	}

	return supported, true
}

// validateActiveModel applies the strict active-model checks used during
// resolution: the configured key must be present in the curated catalog and
// its vendor must be part of the active vendor set. Violations emit a
// warning and yield nil; an unset key yields nil silently.
func (m *Manager) validateActiveModel(key string,
	curated map[string]*catalog.ModelDescriptor,
	setup *vendors.Descriptor) *catalog.ModelDescriptor {

	if key == "" {
		return nil
	}

	descriptor, ok := curated[key]
	if !ok {
		m.notifier.Warnf("The configured model %q is not supported and will be ignored", key)
		return nil
	}
	if !setup.Contains(descriptor.Vendor) {
		m.notifier.Warnf("The configured model %s belongs to %s, which is not among the active vendors",
			descriptor.Label(), descriptor.Vendor.FullName())
		return nil
	}

	return descriptor
}

// modelChoices renders the supported models as one quick-pick list with a
// separator heading per vendor group. Vendor order follows the order of
// first appearance in supported; models within a group sort by ascending
// Order. active (when non-nil) is marked.
func modelChoices(supported []*catalog.ModelDescriptor,
	active *catalog.ModelDescriptor) []ui.Option {

	groupOrder := make([]vendors.Vendor, 0)
	groups := make(map[vendors.Vendor][]*catalog.ModelDescriptor)
	for _, descriptor := range supported {
		if _, ok := groups[descriptor.Vendor]; !ok {
			groupOrder = append(groupOrder, descriptor.Vendor)
		}
		groups[descriptor.Vendor] = append(groups[descriptor.Vendor], descriptor)
	}

	choices := make([]ui.Option, 0, len(supported)+len(groupOrder))
	for _, vendor := range groupOrder {
		group := groups[vendor]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Order < group[j].Order
		})

		choices = append(choices, ui.Option{
			Label:     vendor.FullName(),
			Separator: true,
		})
		for _, descriptor := range group {
			choices = append(choices, ui.Option{
				Key:    descriptor.Key(),
				Label:  descriptor.Label(),
				Hint:   descriptor.Hint,
				Active: catalog.Equal(descriptor, active),
			})
		}
	}

	return choices
}

// SelectActiveModel presents the supported models grouped by vendor and
// persists a changed selection. The previously active model is looked up
// purely for marking and silently ignored when stale. Returns nil when the
// prompt is dismissed or the supported set cannot be resolved.
func (m *Manager) SelectActiveModel(ctx context.Context,
	setup *vendors.Descriptor,
	providers map[vendors.Vendor]llmclient.ModelProvider) (*catalog.ModelDescriptor, error) {

	curated, ok := m.loadCatalog()
	if !ok {
		return nil, nil
	}
	supported, ok := m.resolveSupportedModels(ctx, setup, providers, curated)
	if !ok {
		return nil, nil
	}

	activeKey := m.store.ActiveModel()
	var active *catalog.ModelDescriptor
	for _, descriptor := range supported {
		if descriptor.Key() == activeKey {
			active = descriptor
			break
		}
	}

	chosen, err := m.dialogue.SelectOption("Select the active model",
		modelChoices(supported, active))
	if err != nil {
		return nil, err
	}
	if chosen == nil {
		return nil, nil
	}

	var selected *catalog.ModelDescriptor
	for _, descriptor := range supported {
		if descriptor.Key() == chosen.Key {
			selected = descriptor
			break
		}
	}

	if selected.Key() != activeKey {
		if err := m.store.SetActiveModel(selected.Key()); err != nil {
			return nil, err
		}
		m.notifier.Infof("Active model set to %s", selected.Label())
	}

	return selected, nil
}

// ResolveActiveModel returns the configured active model when it passes
// strict validation, without any prompt. Otherwise (after a warning when
// the reason was an unsupported model or an excluded vendor) it falls back
// to interactive selection; when that too yields nothing an error notice
// naming commandName is emitted.
func (m *Manager) ResolveActiveModel(ctx context.Context,
	setup *vendors.Descriptor,
	providers map[vendors.Vendor]llmclient.ModelProvider,
	commandName string) (*catalog.ModelDescriptor, error) {

	curated, ok := m.loadCatalog()
	if !ok {
		return nil, nil
	}

	if active := m.validateActiveModel(m.store.ActiveModel(), curated, setup); active != nil {
		return active, nil
	}

	selected, err := m.SelectActiveModel(ctx, setup, providers)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		m.notifier.Errorf("%s requires an active model", commandName)
		return nil, nil
	}

	return selected, nil
}
