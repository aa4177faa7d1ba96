/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Select the system prompt source",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := newAppContext()
		if err != nil {
			return err
		}
		defer app.close()

		_, err = app.promptManager.SelectActiveSource()
		return err
	},
}
