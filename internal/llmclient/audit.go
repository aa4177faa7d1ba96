/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package llmclient

import (
	"fmt"
	"log"
	"os"
)

// summarizeText returns a truncated version of s for logging purposes.
func summarizeText(s string) string {
	const maxLen = 200
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// AuditLog appends one line per refinement request and outcome to a local
// log file, correlated by invocation ID. A nil *AuditLog is a valid no-op
// sink so callers don't need to branch on whether auditing is enabled.
type AuditLog struct {
	logger *log.Logger
	file   *os.File
}

// OpenAuditLog opens (creating or appending) the audit log at path.
func OpenAuditLog(path string) (*AuditLog, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("Failed to open audit log %v: %w", path, err)
	}

	return &AuditLog{
		logger: log.New(file, "", log.LstdFlags|log.LUTC),
		file:   file,
	}, nil
}

// RecordRequest logs the start of a refinement call.
func (a *AuditLog) RecordRequest(invocationID, vendor, model, userPrompt string) {
	if a == nil {
		return
	}
	a.logger.Printf("[%s] refine start vendor=%s model=%s prompt=%q",
		invocationID, vendor, model, summarizeText(userPrompt))
}

// RecordOutcome logs the completion of a refinement call.
func (a *AuditLog) RecordOutcome(invocationID string, response string, err error) {
	if a == nil {
		return
	}
	if err != nil {
		a.logger.Printf("[%s] refine end error=%v", invocationID, err)
		return
	}
	a.logger.Printf("[%s] refine end response=%q", invocationID,
		summarizeText(response))
}

// Close releases the underlying log file.
func (a *AuditLog) Close() error {
	if a == nil || a.file == nil {
		return nil
	}
	return a.file.Close()
}
