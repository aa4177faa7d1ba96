/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package llmclient

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Silverdust-ZH/LectorGPT/internal/ui"
	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

func bothVendors() *vendors.Descriptor {
	return vendors.NewDescriptor([]vendors.Vendor{
		vendors.VendorOpenAI, vendors.VendorGoogle})
}

func TestCreateOpenAIClientEmptyKey(t *testing.T) {
	var out bytes.Buffer
	factory := NewClientFactory(ui.NewWriterNotifier(&out))

	client, ok := factory.CreateOpenAIClient("")
	assert.False(t, ok)
	assert.Nil(t, client)
	assert.Contains(t, out.String(), "Failed to construct an OpenAI API client")
}

func TestCreateOpenAIClientSucceeds(t *testing.T) {
	var out bytes.Buffer
	factory := NewClientFactory(ui.NewWriterNotifier(&out))

	client, ok := factory.CreateOpenAIClient("sk-test")
	assert.True(t, ok)
	assert.NotNil(t, client)
	assert.Equal(t, "", out.String())
}

// testProviderFactory wires counting hooks into a ProviderFactory.
func testProviderFactory(t *testing.T, openaiOK, googleOK bool,
	constructions *atomic.Int32) *ProviderFactory {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	factory := NewProviderFactory(NewClientFactory(
		ui.NewWriterNotifier(&bytes.Buffer{})))
	factory.newOpenAIProvider = func(ctx context.Context,
		apiKey string) (ModelProvider, bool) {

		constructions.Add(1)
		if !openaiOK {
			return nil, false
		}
		return NewMockModelProvider(ctrl), true
	}
	factory.newGoogleProvider = func(ctx context.Context,
		apiKey string) (ModelProvider, bool) {

		constructions.Add(1)
		if !googleOK {
			return nil, false
		}
		return NewMockModelProvider(ctrl), true
	}

	return factory
}

func TestCreateProviderMapAllSucceed(t *testing.T) {
	var constructions atomic.Int32
	factory := testProviderFactory(t, true, true, &constructions)

	providers := factory.CreateProviderMap(context.Background(), bothVendors(),
		map[vendors.Vendor]string{
			vendors.VendorOpenAI: "sk-openai",
			vendors.VendorGoogle: "sk-google",
		})

	if assert.NotNil(t, providers) {
		assert.Len(t, providers, 2)
		assert.NotNil(t, providers[vendors.VendorOpenAI])
		assert.NotNil(t, providers[vendors.VendorGoogle])
	}
	assert.Equal(t, int32(2), constructions.Load())
}

func TestCreateProviderMapMissingKeyFailsFast(t *testing.T) {
	// A missing key must short-circuit before any client is constructed,
	// even for the vendors whose keys are present.
	var constructions atomic.Int32
	factory := testProviderFactory(t, true, true, &constructions)

	providers := factory.CreateProviderMap(context.Background(), bothVendors(),
		map[vendors.Vendor]string{
			vendors.VendorOpenAI: "sk-openai",
		})

	assert.Nil(t, providers)
	assert.Equal(t, int32(0), constructions.Load())
}

func TestCreateProviderMapAllOrNothing(t *testing.T) {
	// One failing construction discards the whole map, including providers
	// that were built successfully.
	var constructions atomic.Int32
	factory := testProviderFactory(t, true, false, &constructions)

	providers := factory.CreateProviderMap(context.Background(), bothVendors(),
		map[vendors.Vendor]string{
			vendors.VendorOpenAI: "sk-openai",
			vendors.VendorGoogle: "sk-google",
		})

	assert.Nil(t, providers)
}

func TestCreateProviderMapSingleVendor(t *testing.T) {
	var constructions atomic.Int32
	factory := testProviderFactory(t, true, true, &constructions)
	setup := vendors.NewDescriptor([]vendors.Vendor{vendors.VendorGoogle})

	providers := factory.CreateProviderMap(context.Background(), setup,
		map[vendors.Vendor]string{vendors.VendorGoogle: "sk-google"})

	if assert.NotNil(t, providers) {
		assert.Len(t, providers, 1)
	}
	assert.Equal(t, int32(1), constructions.Load())
}
