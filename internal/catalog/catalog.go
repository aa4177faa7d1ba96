/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package catalog defines the model descriptor type and loads the curated
// model catalog bundled with the binary. The catalog is the allow-list of
// models LectorGPT is willing to offer; providers report what their APIs
// actually serve and the two sets are intersected at selection time.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

//go:embed models.json
var curatedModels []byte

// ModelDescriptor identifies one selectable model. Identity is the
// (Vendor, ID) pair; Name, Hint, and Order are presentational only.
type ModelDescriptor struct {
	Vendor vendors.Vendor `json:"vendor"`
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Hint   string         `json:"hint"`
	Order  int            `json:"order"`
}

// Key returns the "vendor:id" identifier under which the model is cataloged
// and persisted.
func (d *ModelDescriptor) Key() string {
	return string(d.Vendor) + ":" + d.ID
}

// Label returns the display string for the model.
func (d *ModelDescriptor) Label() string {
	return d.Name
}

// Equal compares two optional descriptors on their (Vendor, ID) identity.
// Both nil compare equal; exactly one nil compares unequal.
func Equal(left, right *ModelDescriptor) bool {
	if left == nil || right == nil {
		return left == right
	}
	return left.Vendor == right.Vendor && left.ID == right.ID
}

// ParseKey splits a persisted "vendor:id" model key. ok is false when the
// format or the vendor identifier is invalid.
func ParseKey(key string) (vendors.Vendor, string, bool) {
	rawVendor, id, found := strings.Cut(key, ":")
	if !found || id == "" {
		return "", "", false
	}
	vendor, ok := vendors.Parse(rawVendor)
	if !ok {
		return "", "", false
	}
	return vendor, id, true
}

// Load parses the bundled curated catalog into a map keyed "vendor:id".
func Load() (map[string]*ModelDescriptor, error) {
	var descriptors []*ModelDescriptor
	if err := json.Unmarshal(curatedModels, &descriptors); err != nil {
		return nil, fmt.Errorf("Failed to parse the curated model catalog: %w", err)
	}

	catalog := make(map[string]*ModelDescriptor, len(descriptors))
	for _, descriptor := range descriptors {
		if _, ok := vendors.Parse(string(descriptor.Vendor)); !ok {
			return nil, fmt.Errorf("Failed to parse the curated model catalog: unsupported vendor %q",
				string(descriptor.Vendor))
		}
		catalog[descriptor.Key()] = descriptor
	}

	return catalog, nil
}
