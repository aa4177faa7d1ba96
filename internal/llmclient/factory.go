/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package llmclient

import (
	"context"
	"errors"
	"sync"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/errgroup"

	"github.com/Silverdust-ZH/LectorGPT/internal/ui"
	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

// refineFailureContext is the fixed failure context for text refinement
// calls, shared by all providers.
const refineFailureContext = "failed to perform text refinement request"

// ClientFactory wraps vendor SDK client construction so that a constructor
// failure becomes a reported, recoverable event instead of an unhandled
// error escaping the pipeline.
type ClientFactory struct {
	notifier ui.Notifier
}

func NewClientFactory(notifier ui.Notifier) *ClientFactory {
	return &ClientFactory{notifier: notifier}
}

// CreateOpenAIClient builds the OpenAI SDK client for apiKey. Returns
// ok=false (with an error notice) when construction fails.
func (f *ClientFactory) CreateOpenAIClient(apiKey string) (OpenAIClient, bool) {
	client, err := newOpenAIClient(apiKey)
	if err != nil {
		f.notifier.Errorf("Failed to construct an OpenAI API client: %v", err)
		return nil, false
	}
	return client, true
}

func newOpenAIClient(apiKey string) (OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("empty API key")
	}
	return openai.NewClient(apiKey), nil
}

// CreateGoogleClient builds the Gemini API client for apiKey. Returns
// ok=false (with an error notice) when construction fails.
func (f *ClientFactory) CreateGoogleClient(ctx context.Context,
	apiKey string) (GoogleClient, bool) {

	client, err := NewGoogleClient(ctx, apiKey)
	if err != nil {
		f.notifier.Errorf("Failed to construct a Google API client: %v", err)
		return nil, false
	}
	return client, true
}

// ProviderFactory turns resolved API keys into live ModelProviders.
type ProviderFactory struct {
	clients *ClientFactory

	// newProvider hooks allow tests to intercept construction.
	newOpenAIProvider func(ctx context.Context, apiKey string) (ModelProvider, bool)
	newGoogleProvider func(ctx context.Context, apiKey string) (ModelProvider, bool)
}

func NewProviderFactory(clients *ClientFactory) *ProviderFactory {
	factory := &ProviderFactory{clients: clients}
	factory.newOpenAIProvider = func(ctx context.Context, apiKey string) (ModelProvider, bool) {
		client, ok := clients.CreateOpenAIClient(apiKey)
		if !ok {
			return nil, false
		}
		return NewOpenAIProvider(client), true
	}
	factory.newGoogleProvider = func(ctx context.Context, apiKey string) (ModelProvider, bool) {
		client, ok := clients.CreateGoogleClient(ctx, apiKey)
		if !ok {
			return nil, false
		}
		return NewGoogleProvider(client), true
	}

	return factory
}

// CreateProviderMap builds one provider per vendor in setup, in parallel.
// Every vendor must already have an API key in apiKeys or the call fails
// fast without constructing anything. Construction is all-or-nothing: any
// single failure yields a nil map even when other clients succeeded.
func (f *ProviderFactory) CreateProviderMap(ctx context.Context,
	setup *vendors.Descriptor,
	apiKeys map[vendors.Vendor]string) map[vendors.Vendor]ModelProvider {

	for _, vendor := range setup.Setup {
		if _, ok := apiKeys[vendor]; !ok {
			return nil
		}
	}

	var mu sync.Mutex
	providers := make(map[vendors.Vendor]ModelProvider, len(setup.Setup))

	group, groupCtx := errgroup.WithContext(ctx)
	for _, vendor := range setup.Setup {
		group.Go(func() error {
			var provider ModelProvider
			var ok bool
			switch vendor {
			case vendors.VendorOpenAI:
				provider, ok = f.newOpenAIProvider(groupCtx, apiKeys[vendor])
			case vendors.VendorGoogle:
				provider, ok = f.newGoogleProvider(groupCtx, apiKeys[vendor])
			default:
				return errors.New("unsupported vendor " + string(vendor))
			}
			if !ok {
				// Construction already reported its own vendor-named notice.
				return errors.New("client construction failed for " + string(vendor))
			}

			mu.Lock()
			providers[vendor] = provider
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil
	}

	return providers
}
