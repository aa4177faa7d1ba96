/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package inference executes the one genuinely concurrent operation in
// LectorGPT: the outbound text refinement call, guarded so that at most one
// request is in flight at a time and cancellable by the user.
package inference

import (
	"context"

	"github.com/google/uuid"
)

// invocationIDKey is an unexported context key type used to store a per-
// invocation ID so progress events and audit log entries for one refinement
// call can be correlated.
type invocationIDKey struct{}

// GetInvocationID extracts the invocation ID from the context, if present.
func GetInvocationID(ctx context.Context) (string, bool) {
	if v := ctx.Value(invocationIDKey{}); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// EnsureInvocationID returns a context that is guaranteed to carry an
// invocation ID, and the ID itself. An ID already present is reused;
// otherwise a new UUID is generated and attached.
func EnsureInvocationID(ctx context.Context) (context.Context, string) {
	if id, ok := GetInvocationID(ctx); ok {
		return ctx, id
	}
	id := uuid.NewString()
	ctx = context.WithValue(ctx, invocationIDKey{}, id)
	return ctx, id
}
