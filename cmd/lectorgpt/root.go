/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Silverdust-ZH/LectorGPT/internal/config"
	"github.com/Silverdust-ZH/LectorGPT/internal/inference"
	"github.com/Silverdust-ZH/LectorGPT/internal/llmclient"
	"github.com/Silverdust-ZH/LectorGPT/internal/models"
	"github.com/Silverdust-ZH/LectorGPT/internal/prompts"
	"github.com/Silverdust-ZH/LectorGPT/internal/secrets"
	"github.com/Silverdust-ZH/LectorGPT/internal/ui"
	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

const commandName = "lectorgpt"

// Global flag values.
var (
	verbose       bool
	workspaceFlag string
	auditLogFlag  string
)

var rootCmd = &cobra.Command{
	Use:   commandName,
	Short: "Refine prose with a configurable AI vendor",
	Long: `LectorGPT sends selected prose to a configured AI vendor (OpenAI or
Google) together with a system prompt and inserts the returned suggestion
next to the original text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging(verbose)
	},
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// appContext wires the stores, dialogues, managers, and factories consumed
// by the individual commands.
type appContext struct {
	workspaceRoot string

	settings config.Store
	secrets  secrets.Store
	dialogue ui.Dialogue
	notifier ui.Notifier

	vendorManager *vendors.Manager
	secretManager *secrets.Manager
	promptManager *prompts.Manager
	modelManager  *models.Manager

	providerFactory *llmclient.ProviderFactory
	inference       *inference.Service
	audit           *llmclient.AuditLog
}

func newAppContext() (*appContext, error) {
	workspaceRoot, err := filepath.Abs(workspaceFlag)
	if err != nil {
		return nil, fmt.Errorf("Failed to resolve workspace root: %w", err)
	}

	settings, err := config.NewFileStore(workspaceRoot)
	if err != nil {
		return nil, err
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("Failed to find user config directory: %w", err)
	}
	secretStore, err := secrets.NewFileStore(filepath.Join(userConfigDir, commandName))
	if err != nil {
		return nil, err
	}

	dialogue := ui.NewStdioDialogue()
	notifier := ui.NewColorNotifier()

	auditPath := auditLogFlag
	if auditPath == "" {
		auditPath = os.Getenv("LECTORGPT_AUDIT_LOG")
	}
	var audit *llmclient.AuditLog
	if auditPath != "" {
		audit, err = llmclient.OpenAuditLog(auditPath)
		if err != nil {
			return nil, err
		}
	}

	clientFactory := llmclient.NewClientFactory(notifier)

	app := &appContext{
		workspaceRoot:   workspaceRoot,
		settings:        settings,
		secrets:         secretStore,
		dialogue:        dialogue,
		notifier:        notifier,
		vendorManager:   vendors.NewManager(settings, dialogue, notifier),
		secretManager:   secrets.NewManager(secretStore, dialogue, notifier),
		promptManager:   prompts.NewManager(settings, dialogue, notifier, workspaceRoot),
		modelManager:    models.NewManager(settings, dialogue, notifier),
		providerFactory: llmclient.NewProviderFactory(clientFactory),
		audit:           audit,
	}
	app.inference = inference.NewService(inference.NewFlight(), notifier,
		ui.NewSpinner(), inference.NewProgressBroadcaster(), audit)

	return app, nil
}

func (app *appContext) close() {
	if err := app.audit.Close(); err != nil {
		slog.Debug("closing audit log", "err", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose output")
	rootCmd.PersistentFlags().StringVar(&workspaceFlag, "workspace", ".",
		"workspace root for settings and prompt discovery")
	rootCmd.PersistentFlags().StringVar(&auditLogFlag, "audit-log", "",
		"append refinement audit entries to this file")

	rootCmd.AddCommand(vendorsCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(refineCmd)
	rootCmd.AddCommand(versionCmd)
}
