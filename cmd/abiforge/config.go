// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"abiforge-cli/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage abiforge configuration",
	Long: `Manage abiforge configuration.

Configuration lives in an 'abiforge.cue' file in the working directory
unless overridden with --config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig()
		},
	})
}

func showConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return err
	}

	keyStyle := PathStyle
	valueStyle := SuccessStyle

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()
	fmt.Printf("%s: %s\n", keyStyle.Render("output_dir"), valueStyle.Render(cfg.OutputDir))
	if cfg.Package != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("package"), valueStyle.Render(cfg.Package))
	}
	if cfg.MainSource != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("main_source"), valueStyle.Render(cfg.MainSource))
	}
	fmt.Println()

	fmt.Println(TitleStyle.Render("Sources"))
	fmt.Println()
	for _, src := range cfg.Sources {
		origin := src.Repo
		if origin == "" {
			origin = src.Path
		}
		fmt.Printf("  %s  %s\n", keyStyle.Render(src.ID), SubtitleStyle.Render(origin))
	}
	return nil
}

func validateConfig() error {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Invalid: ")+formatErrorForDisplay(err, verbose))
		return err
	}
	fmt.Println(SuccessStyle.Render("Configuration is valid."))
	return nil
}
