/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package vendors identifies the supported AI API vendors and manages which
// of them are active for a session.
package vendors

import "fmt"

// Vendor is a closed enumeration of the supported AI API vendors. Vendors
// sort lexicographically on their identifier.
type Vendor string

const (
	VendorOpenAI Vendor = "openai"
	VendorGoogle Vendor = "google"
)

// All returns every supported vendor in ascending identifier order.
func All() []Vendor {
	return []Vendor{VendorGoogle, VendorOpenAI}
}

// Parse maps a raw identifier to a Vendor.
func Parse(raw string) (Vendor, bool) {
	switch Vendor(raw) {
	case VendorOpenAI:
		return VendorOpenAI, true
	case VendorGoogle:
		return VendorGoogle, true
	}
	return "", false
}

// FullName returns the user-facing vendor name.
func (v Vendor) FullName() string {
	switch v {
	case VendorOpenAI:
		return "OpenAI"
	case VendorGoogle:
		return "Google"
	}
	panic(fmt.Sprintf("unsupported vendor %q", string(v)))
}
