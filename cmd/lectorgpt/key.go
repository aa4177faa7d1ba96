/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage vendor API keys",
}

var keyRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register or overwrite a vendor API key",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := newAppContext()
		if err != nil {
			return err
		}
		defer app.close()

		setup, err := app.vendorManager.ResolveActiveVendors("Register API Key")
		if err != nil || setup == nil {
			return err
		}
		_, _, err = app.secretManager.RegisterNewAPIKey(setup)
		return err
	},
}

var keyUnregisterCmd = &cobra.Command{
	Use:   "unregister",
	Short: "Delete a stored vendor API key",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := newAppContext()
		if err != nil {
			return err
		}
		defer app.close()

		return app.secretManager.UnregisterAPIKey()
	},
}

func init() {
	keyCmd.AddCommand(keyRegisterCmd)
	keyCmd.AddCommand(keyUnregisterCmd)
}
