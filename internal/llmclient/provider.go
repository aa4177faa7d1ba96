/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package llmclient wraps the vendor SDK clients behind a uniform
// ModelProvider capability and builds them from resolved API keys.
package llmclient

import (
	"context"

	"github.com/Silverdust-ZH/LectorGPT/internal/result"
)

// RefineRequest carries one text-refinement call. Model is the raw
// vendor-specific model identifier (no "vendor:" prefix). Cancellation is
// signalled through the call's context.
type RefineRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
}

//go:generate mockgen --build_flags=--mod=mod -destination=provider_mock.go -package=$GOPACKAGE github.com/Silverdust-ZH/LectorGPT/internal/llmclient ModelProvider

// ModelProvider is the uniform capability implemented once per vendor.
// ListModels reports the currently served models as "vendor:id" strings.
// RefineText performs one refinement call, trimming whitespace from a
// successful response. Both convert all underlying SDK and network errors
// into Result failures instead of propagating them.
type ModelProvider interface {
	ListModels(ctx context.Context) result.Result[[]string]
	RefineText(ctx context.Context, request RefineRequest) result.Result[string]
}
