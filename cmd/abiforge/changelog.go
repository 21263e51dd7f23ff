// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"abiforge-cli/internal/app"
	"abiforge-cli/internal/config"
	"abiforge-cli/internal/registry"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	// pkgName is the npm package the manifest was published under.
	pkgName string
	// distTag is the dist-tag about to be published.
	distTag string
	// registryURL overrides the npm registry endpoint.
	registryURL string
	// pretty renders the changelog for the terminal instead of raw markdown.
	pretty bool

	changelogCmd = &cobra.Command{
		Use:   "changelog",
		Short: "Diff the local manifest against the published baseline",
		Long: `Diff the local manifest against the published baseline.

The manifest written by the last 'abiforge generate' run is compared against
the manifest shipped with the best published version for the given dist-tag,
and the difference is printed as a markdown changelog fragment. A package
that was never published diffs against an empty baseline.`,
		RunE: runChangelog,
	}
)

func init() {
	changelogCmd.Flags().StringVar(&pkgName, "package", "", "npm package name (defaults to the configured package)")
	changelogCmd.Flags().StringVar(&distTag, "tag", registry.PrimaryTag, "dist-tag about to be published")
	changelogCmd.Flags().StringVar(&registryURL, "registry", "", "npm registry URL (defaults to the public registry)")
	changelogCmd.Flags().BoolVar(&pretty, "pretty", false, "render the changelog for the terminal")
}

func runChangelog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return err
	}

	pkg := pkgName
	if pkg == "" {
		pkg = cfg.Package
	}
	if pkg == "" {
		return fmt.Errorf("no package name: pass --package or set 'package' in the config")
	}

	var opts []registry.ClientOption
	if registryURL != "" {
		opts = append(opts, registry.WithBaseURL(registryURL))
	}
	if token := os.Getenv("NPM_TOKEN"); token != "" {
		opts = append(opts, registry.WithToken(token))
	}
	client := registry.NewClient(opts...)

	changelog, warnings, err := app.Changelog(cmd.Context(), client, newLogger(), app.ChangelogRequest{
		Package:   pkg,
		Tag:       distTag,
		OutputDir: cfg.OutputDir,
	})
	if err != nil {
		return err
	}
	printWarnings(warnings)

	if changelog == "" {
		fmt.Fprintln(os.Stderr, SubtitleStyle.Render("No interface changes."))
		return nil
	}

	if pretty {
		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err != nil {
			return fmt.Errorf("creating markdown renderer: %w", err)
		}
		out, err := renderer.Render(changelog)
		if err != nil {
			return fmt.Errorf("rendering changelog: %w", err)
		}
		fmt.Print(out)
		return nil
	}

	fmt.Print(changelog)
	return nil
}
