/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package vendors

import (
	"sort"
	"strings"
)

// Descriptor identifies a combination of active vendors. The Setup slice is
// canonical: duplicates removed, members sorted ascending. Descriptors built
// through NewDescriptor with the same member set compare equal regardless of
// input order or duplication.
type Descriptor struct {
	Setup []Vendor
}

// NewDescriptor canonicalizes setup into a Descriptor.
func NewDescriptor(setup []Vendor) *Descriptor {
	seen := make(map[Vendor]struct{}, len(setup))
	canonical := make([]Vendor, 0, len(setup))
	for _, vendor := range setup {
		if _, ok := seen[vendor]; ok {
			continue
		}
		seen[vendor] = struct{}{}
		canonical = append(canonical, vendor)
	}
	sort.Slice(canonical, func(i, j int) bool {
		return canonical[i] < canonical[j]
	})

	return &Descriptor{Setup: canonical}
}

// Equal compares two optional descriptors: both nil compare equal, exactly
// one nil compares unequal, otherwise the canonical member sets must match.
func Equal(left, right *Descriptor) bool {
	if left == nil || right == nil {
		return left == right
	}
	if len(left.Setup) != len(right.Setup) {
		return false
	}
	for i := range left.Setup {
		if left.Setup[i] != right.Setup[i] {
			return false
		}
	}
	return true
}

// Contains reports whether vendor is part of the descriptor's setup.
func (d *Descriptor) Contains(vendor Vendor) bool {
	for _, member := range d.Setup {
		if member == vendor {
			return true
		}
	}
	return false
}

// Label renders the descriptor for display: "No vendor" for an empty setup,
// "<Vendor> only" for a single member, "OpenAI & Google" when both vendors
// are present. The two-member ordering is fixed and independent of the
// canonical sort order.
func (d *Descriptor) Label() string {
	switch len(d.Setup) {
	case 0:
		return "No vendor"
	case 1:
		return d.Setup[0].FullName() + " only"
	}

	names := []string{VendorOpenAI.FullName(), VendorGoogle.FullName()}
	return strings.Join(names, " & ")
}

// Identifiers returns the raw identifier strings of the setup, in canonical
// order, suitable for persisting in the configuration store.
func (d *Descriptor) Identifiers() []string {
	ids := make([]string, len(d.Setup))
	for i, vendor := range d.Setup {
		ids[i] = string(vendor)
	}
	return ids
}
