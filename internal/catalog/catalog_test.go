/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

func TestLoadBundledCatalog(t *testing.T) {
	curated, err := Load()
	assert.NoError(t, err)
	assert.NotEmpty(t, curated)

	for key, descriptor := range curated {
		assert.Equal(t, descriptor.Key(), key)
		_, ok := vendors.Parse(string(descriptor.Vendor))
		assert.True(t, ok, "catalog entry %q names an unsupported vendor", key)
		assert.NotEmpty(t, descriptor.ID)
		assert.NotEmpty(t, descriptor.Name)
	}
}

func TestLoadContainsBothVendors(t *testing.T) {
	curated, err := Load()
	assert.NoError(t, err)

	haveOpenAI := false
	haveGoogle := false
	for _, descriptor := range curated {
		switch descriptor.Vendor {
		case vendors.VendorOpenAI:
			haveOpenAI = true
		case vendors.VendorGoogle:
			haveGoogle = true
		}
	}
	assert.True(t, haveOpenAI)
	assert.True(t, haveGoogle)
}

func TestDescriptorKeyAndLabel(t *testing.T) {
	d := &ModelDescriptor{
		Vendor: vendors.VendorOpenAI,
		ID:     "gpt-4o",
		Name:   "GPT-4o",
	}

	assert.Equal(t, "openai:gpt-4o", d.Key())
	assert.Equal(t, "GPT-4o", d.Label())
}

func TestEqualComparesIdentityOnly(t *testing.T) {
	a := &ModelDescriptor{Vendor: vendors.VendorOpenAI, ID: "gpt-4o", Name: "A"}
	b := &ModelDescriptor{Vendor: vendors.VendorOpenAI, ID: "gpt-4o", Name: "B", Order: 9}
	c := &ModelDescriptor{Vendor: vendors.VendorGoogle, ID: "gpt-4o"}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))
	assert.False(t, Equal(nil, a))
}

func TestParseKey(t *testing.T) {
	vendor, id, ok := ParseKey("google:gemini-2.5-pro")
	assert.True(t, ok)
	assert.Equal(t, vendors.VendorGoogle, vendor)
	assert.Equal(t, "gemini-2.5-pro", id)

	_, _, ok = ParseKey("gemini-2.5-pro")
	assert.False(t, ok)

	_, _, ok = ParseKey("google:")
	assert.False(t, ok)

	_, _, ok = ParseKey("bogus:model")
	assert.False(t, ok)
}

func TestParseKeyKeepsColonInModelID(t *testing.T) {
	// Only the first colon separates vendor from model ID.
	vendor, id, ok := ParseKey("openai:ft:gpt-4o:custom")
	assert.True(t, ok)
	assert.Equal(t, vendors.VendorOpenAI, vendor)
	assert.Equal(t, "ft:gpt-4o:custom", id)
}
