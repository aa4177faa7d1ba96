/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Silverdust-ZH/LectorGPT/internal/catalog"
	"github.com/Silverdust-ZH/LectorGPT/internal/chain"
	"github.com/Silverdust-ZH/LectorGPT/internal/editor"
	"github.com/Silverdust-ZH/LectorGPT/internal/llmclient"
	"github.com/Silverdust-ZH/LectorGPT/internal/prompts"
	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

const refineCommandName = "Refine Selection"

var refineLines string

// refinement is the accumulated context threaded through the refine
// pipeline; each step populates one more field.
type refinement struct {
	buffer    editor.Buffer
	selection string

	setup        *vendors.Descriptor
	apiKeys      map[vendors.Vendor]string
	providers    map[vendors.Vendor]llmclient.ModelProvider
	model        *catalog.ModelDescriptor
	source       *prompts.Source
	systemPrompt string
	suggestion   string
}

var refineCmd = &cobra.Command{
	Use:   "refine [file]",
	Short: "Refine the selected text and insert the suggestion",
	Long: `Refine sends the selected text (a file, a line range of a file, or
stdin when no file is given) to the active model together with the active
system prompt, and inserts the returned suggestion directly after the
original text. The in-flight request can be cancelled with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext()
		if err != nil {
			return err
		}
		defer app.close()

		// Ctrl-C cancels the in-flight provider call.
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()

		buffer, err := openBuffer(cmd, args)
		if err != nil {
			return err
		}

		return runRefine(ctx, app, buffer)
	},
}

func openBuffer(cmd *cobra.Command, args []string) (editor.Buffer, error) {
	if len(args) == 0 {
		return editor.OpenReader(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	selection := editor.Selection{}
	if refineLines != "" {
		parsed, err := parseLineRange(refineLines)
		if err != nil {
			return nil, err
		}
		selection = parsed
	}

	return editor.OpenFile(args[0], selection)
}

func runRefine(ctx context.Context, app *appContext, buffer editor.Buffer) error {
	var stepErr error
	fail := func(p refinement, err error) (refinement, bool) {
		stepErr = err
		return p, false
	}

	selection := buffer.SelectedText()
	start := refinement{buffer: buffer, selection: selection}
	if strings.TrimSpace(selection) == "" {
		app.notifier.Errorf("%s requires a non-empty text selection", refineCommandName)
		return nil
	}

	pipeline := chain.From(start, true).
		Bind(func(p refinement) (refinement, bool) {
			setup, err := app.vendorManager.ResolveActiveVendors(refineCommandName)
			if err != nil || setup == nil {
				return fail(p, err)
			}
			p.setup = setup
			return p, true
		}).
		Bind(func(p refinement) (refinement, bool) {
			apiKeys, err := app.secretManager.ResolveActiveAPIKeys(p.setup,
				refineCommandName)
			if err != nil || apiKeys == nil {
				return fail(p, err)
			}
			p.apiKeys = apiKeys
			return p, true
		}).
		Bind(func(p refinement) (refinement, bool) {
			providers := app.providerFactory.CreateProviderMap(ctx, p.setup,
				p.apiKeys)
			if providers == nil {
				return p, false
			}
			p.providers = providers
			return p, true
		}).
		Bind(func(p refinement) (refinement, bool) {
			model, err := app.modelManager.ResolveActiveModel(ctx, p.setup,
				p.providers, refineCommandName)
			if err != nil || model == nil {
				return fail(p, err)
			}
			p.model = model
			return p, true
		}).
		Bind(func(p refinement) (refinement, bool) {
			p.source = app.promptManager.ResolveActiveSource()
			return p, true
		}).
		Bind(func(p refinement) (refinement, bool) {
			systemPrompt, ok := app.promptManager.LoadActiveSystemPrompt(p.source)
			if !ok {
				return p, false
			}
			p.systemPrompt = systemPrompt
			return p, true
		}).
		Bind(func(p refinement) (refinement, bool) {
			suggestion, ok := app.inference.RefineText(ctx,
				p.providers[p.model.Vendor], p.model, p.systemPrompt, p.selection)
			if !ok {
				return p, false
			}
			p.suggestion = suggestion
			return p, true
		})

	applied, ran := chain.Run(pipeline, func(p refinement) bool {
		inserted, err := p.buffer.InsertSuggestion(p.suggestion)
		if err != nil {
			stepErr = err
			return false
		}
		if !inserted {
			app.notifier.Errorf("The text changed while the refinement was in progress; the suggestion was not inserted")
			return false
		}
		return true
	})

	if stepErr != nil {
		return stepErr
	}
	if ran && applied {
		app.notifier.Infof("Suggestion inserted")
	}

	return nil
}

// parseLineRange parses a 1-based inclusive "start:end" line range.
func parseLineRange(raw string) (editor.Selection, error) {
	var selection editor.Selection
	count, err := fmt.Sscanf(raw, "%d:%d", &selection.StartLine,
		&selection.EndLine)
	if err != nil || count != 2 {
		return editor.Selection{}, fmt.Errorf("Failed to parse line range %q; expected start:end", raw)
	}
	if selection.StartLine < 1 || selection.EndLine < selection.StartLine {
		return editor.Selection{}, fmt.Errorf("Failed to parse line range %q; lines are 1-based and start must not exceed end", raw)
	}
	return selection, nil
}

func init() {
	refineCmd.Flags().StringVar(&refineLines, "lines", "",
		"line range to refine, 1-based inclusive (e.g. 3:10)")
}
