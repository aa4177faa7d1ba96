/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package inference

import (
	"context"
	"strings"
	"time"

	"github.com/Silverdust-ZH/LectorGPT/internal/catalog"
	"github.com/Silverdust-ZH/LectorGPT/internal/llmclient"
	"github.com/Silverdust-ZH/LectorGPT/internal/ui"
)

// StatusRenderer shows an in-flight status line while a refinement call is
// outstanding. Implemented by ui.Spinner.
type StatusRenderer interface {
	Start(label string) (stop func())
}

// Service executes refinement calls one at a time. The Flight guard is
// injected by whoever constructs the service.
type Service struct {
	flight   *Flight
	notifier ui.Notifier
	status   StatusRenderer
	progress *ProgressBroadcaster
	audit    *llmclient.AuditLog
}

func NewService(flight *Flight, notifier ui.Notifier, status StatusRenderer,
	progress *ProgressBroadcaster, audit *llmclient.AuditLog) *Service {

	return &Service{
		flight:   flight,
		notifier: notifier,
		status:   status,
		progress: progress,
		audit:    audit,
	}
}

// Progress exposes the service's event broadcaster so interested parties
// can subscribe by invocation ID.
func (s *Service) Progress() *ProgressBroadcaster {
	return s.progress
}

// RefineText performs one refinement call against provider. A call that
// arrives while another is outstanding is rejected immediately, before the
// provider is ever invoked. Cancellation propagates through ctx; a provider
// failure caused by that cancellation is not reported as an error. An
// empty suggestion yields a warning; a non-empty one is returned trimmed.
func (s *Service) RefineText(ctx context.Context,
	provider llmclient.ModelProvider, model *catalog.ModelDescriptor,
	systemPrompt, selection string) (string, bool) {

	if !s.flight.TryAcquire() {
		s.notifier.Errorf("A text refinement request is already in progress")
		return "", false
	}
	defer s.flight.Release()

	ctx, invocationID := EnsureInvocationID(ctx)

	s.progress.Publish(ProgressEvent{
		InvocationID: invocationID,
		Phase:        ProgressPhaseStart,
		Time:         time.Now(),
		DisplayText:  "Refining text with " + model.Label(),
	})
	stop := s.status.Start("Refining text with " + model.Label())
	defer stop()

	s.audit.RecordRequest(invocationID, string(model.Vendor), model.ID, selection)

	refined := provider.RefineText(ctx, llmclient.RefineRequest{
		Model:        model.ID,
		SystemPrompt: systemPrompt,
		UserPrompt:   selection,
	})

	if refined.IsFailure() {
		s.audit.RecordOutcome(invocationID, "", refined.Err())
		if ctx.Err() != nil {
			// User-triggered cancellation; an error notice here would only
			// be confusing.
			s.progress.Publish(ProgressEvent{
				InvocationID: invocationID,
				Phase:        ProgressPhaseCancelled,
				Time:         time.Now(),
				DisplayText:  "Refinement cancelled",
			})
			return "", false
		}
		s.progress.Publish(ProgressEvent{
			InvocationID: invocationID,
			Phase:        ProgressPhaseEnd,
			Time:         time.Now(),
			DisplayText:  "Refinement failed",
		})
		s.notifier.Errorf("%s: %v", refined.Context(), refined.Err())
		return "", false
	}

	suggestion := strings.TrimSpace(refined.Value())
	s.audit.RecordOutcome(invocationID, suggestion, nil)
	s.progress.Publish(ProgressEvent{
		InvocationID: invocationID,
		Phase:        ProgressPhaseEnd,
		Time:         time.Now(),
		DisplayText:  "Refinement complete",
	})

	if suggestion == "" {
		s.notifier.Warnf("The model returned an empty suggestion")
		return "", false
	}

	return suggestion, true
}
