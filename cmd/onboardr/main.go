package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "onboardr",
	Short: "Three-step sign-up wizard for the terminal",
	Long: `onboardr walks through a three-step sign-up form in the terminal:
credentials, personal details and contact information.

Each step is validated before moving on. Once the last step passes, the
collected record is shown for review and, after confirmation, printed to
stdout as JSON or YAML.`,
	RunE: runWizard,
}

func init() {
	rootCmd.Flags().StringVarP(&wizardFlags.format, "format", "o", "", "Output format for the submitted record: json or yaml (default from config)")
	rootCmd.Flags().BoolVar(&wizardFlags.maskSecrets, "mask-secrets", false, "Mask the password in the review and output")

	rootCmd.AddCommand(setupCmd)
}
