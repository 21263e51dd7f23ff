// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"abiforge-cli/internal/app"
	"abiforge-cli/internal/config"
	"abiforge-cli/internal/discovery"

	"github.com/spf13/cobra"
)

var (
	// onMissing selects the policy for source roots that do not exist.
	onMissing string
	// skipBuild suppresses per-source build steps.
	skipBuild bool
	// dryRun computes everything but writes nothing.
	dryRun bool

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate ABI modules and the signature manifest",
		Long: `Generate ABI modules and the signature manifest.

Each configured source is fetched (or used in place for local paths), its
build step is run, and every compiled artifact is turned into one module in
the output directory. The output directory is cleared first, so it must not
contain hand-written files.`,
		RunE: runGenerate,
	}
)

func init() {
	generateCmd.Flags().StringVar(&onMissing, "on-missing", "error", "policy for missing source roots (error|warn)")
	generateCmd.Flags().BoolVar(&skipBuild, "skip-build", false, "skip per-source build steps")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute everything but write nothing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	policy, err := parseMissingPolicy(onMissing)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return err
	}

	a := app.New(cfg, newLogger(),
		app.WithMissingPolicy(policy),
		app.WithSkipBuild(skipBuild),
		app.WithDryRun(dryRun),
	)

	report, err := a.Generate(cmd.Context())
	if err != nil {
		return err
	}
	printWarnings(report.Warnings)

	if report.DryRun {
		fmt.Printf("%s %d modules (dry run, nothing written)\n",
			SuccessStyle.Render("Computed"), len(report.Modules))
		return nil
	}
	fmt.Printf("%s %d modules to %s\n",
		SuccessStyle.Render("Generated"), len(report.Modules), PathStyle.Render(cfg.OutputDir))
	return nil
}

func parseMissingPolicy(s string) (discovery.MissingPolicy, error) {
	switch discovery.MissingPolicy(s) {
	case discovery.MissingError, discovery.MissingWarn:
		return discovery.MissingPolicy(s), nil
	default:
		return "", fmt.Errorf("invalid --on-missing value %q (expected error or warn)", s)
	}
}
