// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for abiforge.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"abiforge-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "abiforge",
		Short: "Generate typed ABI modules from smart contract artifacts",
		Long: TitleStyle.Render("abiforge") + SubtitleStyle.Render(" - Generate typed ABI modules from smart contract artifacts") + `

abiforge walks the compiled artifacts of one or more contract repositories,
extracts each contract's ABI, and emits one TypeScript module per contract
together with a signature manifest describing the generated surface.

Sources are declared in an 'abiforge.cue' config file and can point at local
checkouts or remote git repositories.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create an abiforge.cue in your project directory
  2. Declare the sources to harvest artifacts from
  3. Run: abiforge generate

` + SubtitleStyle.Render("Examples:") + `
  abiforge generate             Generate modules and the manifest
  abiforge generate --dry-run   Compute everything, write nothing
  abiforge changelog            Diff the manifest against the published one
  abiforge config show          Show current configuration`,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./abiforge.cue)")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(changelogCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the logger commands run with, honoring --verbose.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// printWarnings writes collected pipeline warnings to stderr.
func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+w)
	}
}
