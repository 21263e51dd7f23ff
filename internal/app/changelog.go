// SPDX-License-Identifier: MPL-2.0

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"abiforge-cli/internal/manifest"
	"abiforge-cli/internal/registry"
	"abiforge-cli/internal/writer"

	"github.com/charmbracelet/log"
)

// ManifestReader fetches the manifest published at an exact version.
// Implemented by registry.Client.
type ManifestReader interface {
	ManifestAt(ctx context.Context, pkg, version string) (manifest.Manifest, error)
}

// RegistryClient is the registry surface the changelog flow needs.
type RegistryClient interface {
	registry.VersionLookup
	ManifestReader
}

// ChangelogRequest describes one changelog computation.
type ChangelogRequest struct {
	// Package is the npm package name, e.g. "@berachain/abis".
	Package string
	// Tag is the dist-tag about to be published.
	Tag string
	// OutputDir holds the freshly generated manifest.json to diff against the
	// published baseline.
	OutputDir string
}

// Changelog diffs the locally generated manifest against the best published
// baseline for the requested tag and renders the result as markdown. The
// returned string is empty when nothing changed. A package that was never
// published diffs against an empty baseline, so every module shows as added.
// Registry failures, on either the version or the manifest lookup, degrade to
// warnings and an empty baseline rather than aborting the run.
func Changelog(ctx context.Context, client RegistryClient, logger *log.Logger, req ChangelogRequest) (string, []string, error) {
	if logger == nil {
		logger = log.Default()
	}

	current, err := readLocalManifest(req.OutputDir)
	if err != nil {
		return "", nil, err
	}

	version, warnings := registry.ResolveBaseline(ctx, client, req.Package, req.Tag)

	baseline := manifest.Manifest{}
	if version != "" {
		logger.Info("diffing against published baseline", "package", req.Package, "version", version)
		fetched, err := client.ManifestAt(ctx, req.Package, version)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("manifest fetch for %s@%s failed, treating as unpublished: %v", req.Package, version, err))
		} else {
			baseline = fetched
		}
	} else {
		logger.Info("no published baseline, diffing against empty manifest", "package", req.Package)
	}

	diff := manifest.Compare(baseline, current)
	return manifest.Render(diff), warnings, nil
}

// readLocalManifest loads the manifest written by the last generation run.
func readLocalManifest(outputDir string) (manifest.Manifest, error) {
	path := filepath.Join(outputDir, writer.ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading local manifest (run 'abiforge generate' first): %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return m, nil
}
