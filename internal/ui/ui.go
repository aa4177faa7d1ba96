/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package ui provides the terminal dialogues (quick-pick, input box), the
// user notification surface, and the in-flight status spinner. The
// interfaces here are deliberately small so that managers can be exercised
// in tests with scripted fakes.
package ui

// Option is a single selectable entry in an option dialogue. Separator
// options render as unselectable group headings.
type Option struct {
	Key       string
	Label     string
	Hint      string
	Active    bool
	Separator bool
}

// OptionDialogue presents a list of options and resolves the user's choice.
// A nil option with a nil error signals that the dialogue was dismissed
// without a selection.
type OptionDialogue interface {
	SelectOption(userPrompt string, choices []Option) (*Option, error)
}

// InputDialogue prompts the user for a line of input. ok=false signals
// dismissal. GetSecret reads without echo and re-prompts while validate
// returns a non-empty message for the entered value.
type InputDialogue interface {
	Get(userPrompt string) (value string, ok bool, err error)
	GetSecret(userPrompt string, validate func(string) string) (value string, ok bool, err error)
}

// Dialogue bundles both dialogue capabilities.
type Dialogue interface {
	OptionDialogue
	InputDialogue
}

// Notifier is the fire-and-forget user notification surface. Every message
// is prefixed with the product tag.
type Notifier interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
