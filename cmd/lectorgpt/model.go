/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Silverdust-ZH/LectorGPT/internal/llmclient"
	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

// resolveProviders runs the shared prefix of every provider-backed command:
// active vendors, then API keys, then live provider clients. A nil provider
// map (with ok=false) means a notice was already shown or a prompt was
// dismissed.
func resolveProviders(ctx context.Context, app *appContext,
	commandName string) (*vendors.Descriptor,
	map[vendors.Vendor]llmclient.ModelProvider, bool, error) {

	setup, err := app.vendorManager.ResolveActiveVendors(commandName)
	if err != nil || setup == nil {
		return nil, nil, false, err
	}

	apiKeys, err := app.secretManager.ResolveActiveAPIKeys(setup, commandName)
	if err != nil || apiKeys == nil {
		return nil, nil, false, err
	}

	providers := app.providerFactory.CreateProviderMap(ctx, setup, apiKeys)
	if providers == nil {
		return nil, nil, false, nil
	}

	return setup, providers, true, nil
}

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Select the active model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newAppContext()
		if err != nil {
			return err
		}
		defer app.close()

		setup, providers, ok, err := resolveProviders(cmd.Context(), app,
			"Select Model")
		if err != nil || !ok {
			return err
		}

		_, err = app.modelManager.SelectActiveModel(cmd.Context(), setup, providers)
		return err
	},
}
