/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package inference

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Silverdust-ZH/LectorGPT/internal/catalog"
	"github.com/Silverdust-ZH/LectorGPT/internal/llmclient"
	"github.com/Silverdust-ZH/LectorGPT/internal/result"
	"github.com/Silverdust-ZH/LectorGPT/internal/ui"
	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

// nopStatus is a StatusRenderer that renders nothing.
type nopStatus struct{}

func (nopStatus) Start(label string) func() {
	return func() {}
}

func testModel() *catalog.ModelDescriptor {
	return &catalog.ModelDescriptor{
		Vendor: vendors.VendorOpenAI,
		ID:     "gpt-4o",
		Name:   "GPT-4o",
	}
}

func newTestService(out *bytes.Buffer) *Service {
	return NewService(NewFlight(), ui.NewWriterNotifier(out), nopStatus{},
		NewProgressBroadcaster(), nil)
}

func TestRefineTextSuccessTrimsSuggestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := llmclient.NewMockModelProvider(ctrl)
	provider.EXPECT().RefineText(gomock.Any(), llmclient.RefineRequest{
		Model:        "gpt-4o",
		SystemPrompt: "edit carefully",
		UserPrompt:   "teh text",
	}).Return(result.Success("  A refined passage.\n"))

	var out bytes.Buffer
	svc := newTestService(&out)

	suggestion, ok := svc.RefineText(context.Background(), provider, testModel(),
		"edit carefully", "teh text")
	assert.True(t, ok)
	assert.Equal(t, "A refined passage.", suggestion)
	assert.Equal(t, "", out.String())
}

func TestRefineTextProviderFailureReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := llmclient.NewMockModelProvider(ctrl)
	provider.EXPECT().RefineText(gomock.Any(), gomock.Any()).
		Return(result.Failure[string]("failed to perform text refinement request",
			errors.New("rate limited")))

	var out bytes.Buffer
	svc := newTestService(&out)

	_, ok := svc.RefineText(context.Background(), provider, testModel(),
		"prompt", "text")
	assert.False(t, ok)
	assert.Contains(t, out.String(),
		"failed to perform text refinement request: rate limited")
}

func TestRefineTextCancellationSuppressesError(t *testing.T) {
	// A provider failure on an already-cancelled context is the user's own
	// abort, not an error worth reporting.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	provider := llmclient.NewMockModelProvider(ctrl)
	provider.EXPECT().RefineText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context,
			request llmclient.RefineRequest) result.Result[string] {

			cancel()
			return result.Failure[string](
				"failed to perform text refinement request", ctx.Err())
		})

	var out bytes.Buffer
	svc := newTestService(&out)

	_, ok := svc.RefineText(ctx, provider, testModel(), "prompt", "text")
	assert.False(t, ok)
	assert.Equal(t, "", out.String())
}

func TestRefineTextEmptySuggestionWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := llmclient.NewMockModelProvider(ctrl)
	provider.EXPECT().RefineText(gomock.Any(), gomock.Any()).
		Return(result.Success("   \n  "))

	var out bytes.Buffer
	svc := newTestService(&out)

	_, ok := svc.RefineText(context.Background(), provider, testModel(),
		"prompt", "text")
	assert.False(t, ok)
	assert.Contains(t, out.String(), "The model returned an empty suggestion")
}

func TestRefineTextRejectsOverlappingCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})

	provider := llmclient.NewMockModelProvider(ctrl)
	provider.EXPECT().RefineText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context,
			request llmclient.RefineRequest) result.Result[string] {

			close(firstEntered)
			<-releaseFirst
			return result.Success("first suggestion")
		})

	var out bytes.Buffer
	svc := newTestService(&out)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		suggestion, ok := svc.RefineText(context.Background(), provider,
			testModel(), "prompt", "first")
		assert.True(t, ok)
		assert.Equal(t, "first suggestion", suggestion)
	}()

	<-firstEntered

	// Second call while the first is still in flight: rejected before the
	// provider is invoked (the mock would fail on an unexpected second call).
	_, ok := svc.RefineText(context.Background(), provider, testModel(),
		"prompt", "second")
	assert.False(t, ok)
	assert.Contains(t, out.String(),
		"A text refinement request is already in progress")

	close(releaseFirst)
	wg.Wait()

	// Once the first call finished the guard is released again.
	provider.EXPECT().RefineText(gomock.Any(), gomock.Any()).
		Return(result.Success("third suggestion"))
	suggestion, ok := svc.RefineText(context.Background(), provider, testModel(),
		"prompt", "third")
	assert.True(t, ok)
	assert.Equal(t, "third suggestion", suggestion)
}

func TestRefineTextPublishesProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := llmclient.NewMockModelProvider(ctrl)
	provider.EXPECT().RefineText(gomock.Any(), gomock.Any()).
		Return(result.Success("suggestion"))

	var out bytes.Buffer
	svc := newTestService(&out)

	ctx, id := EnsureInvocationID(context.Background())
	ch := svc.Progress().Subscribe(id)
	defer svc.Progress().Unsubscribe(ch, id)

	_, ok := svc.RefineText(ctx, provider, testModel(), "prompt", "text")
	assert.True(t, ok)

	var phases []ProgressPhase
	for len(ch) > 0 {
		phases = append(phases, (<-ch).Phase)
	}
	assert.Equal(t, []ProgressPhase{ProgressPhaseStart, ProgressPhaseEnd}, phases)
}
