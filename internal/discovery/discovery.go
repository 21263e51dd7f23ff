// SPDX-License-Identifier: MPL-2.0

// Package discovery walks configured source checkouts and resolves each
// contract source file to its compiled artifact. Per-file problems (missing
// artifact, unreadable JSON, empty interface) become warnings and never abort
// a walk; structural problems (missing root, failed build step, malformed
// directory config) are fatal.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"abiforge-cli/internal/config"

	"github.com/charmbracelet/log"
)

// sourceExt is the contract source file extension enumerated under src dirs.
const sourceExt = ".sol"

// MissingPolicy controls how a missing source root is handled.
type MissingPolicy string

const (
	// MissingError makes a missing source root fatal.
	MissingError MissingPolicy = "error"
	// MissingWarn degrades a missing source root to a warning and an empty
	// result for that source only.
	MissingWarn MissingPolicy = "warn"
)

type (
	// MissingResourceError is returned when a source's root directory does
	// not exist and the policy is MissingError.
	MissingResourceError struct {
		SourceID string
		Path     string
	}

	// BuildRunner executes a source's build command inside its checkout.
	BuildRunner interface {
		Run(ctx context.Context, dir, script string) error
	}

	// Walker discovers artifacts for configured sources.
	Walker struct {
		// Build runs the per-source build step; nil disables building.
		Build BuildRunner
		// SkipBuild suppresses build steps even when configured.
		SkipBuild bool
		// OnMissing is the missing-root policy; defaults to MissingError.
		OnMissing MissingPolicy

		log *log.Logger
	}

	// Result aggregates one source's discovered artifacts and the warnings
	// collected along the way, in enumeration order.
	Result struct {
		Artifacts []*ArtifactRecord
		Warnings  []string
	}
)

// Error implements the error interface.
func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("source %q: root directory %s does not exist", e.SourceID, e.Path)
}

// NewWalker creates a Walker logging through the given logger.
func NewWalker(logger *log.Logger) *Walker {
	if logger == nil {
		logger = log.Default()
	}
	return &Walker{OnMissing: MissingError, log: logger}
}

// Discover enumerates the source files of one configured source under
// rootPath and resolves each to its compiled artifact, trying the flat
// artifact layout before the nested one. Enumeration is sorted per source
// directory so output order is deterministic.
func (w *Walker) Discover(ctx context.Context, src config.SourceSpec, rootPath string) (*Result, error) {
	res := &Result{}

	if _, err := os.Stat(rootPath); err != nil {
		if w.OnMissing == MissingWarn {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("source %q: root %s does not exist, skipping", src.ID, rootPath))
			return res, nil
		}
		return nil, &MissingResourceError{SourceID: src.ID, Path: rootPath}
	}

	if src.Build != "" && !w.SkipBuild && w.Build != nil {
		w.log.Info("running build step", "source", src.ID, "cmd", src.Build)
		if err := w.Build.Run(ctx, rootPath, src.Build); err != nil {
			return nil, fmt.Errorf("source %q: build step failed: %w", src.ID, err)
		}
	}

	pairs, err := NormalizeDirs(src.SrcDirs, src.OutDirs, rootPath)
	if err != nil {
		return nil, err
	}

	for _, pair := range pairs {
		srcDir := filepath.Join(rootPath, pair.Src)
		outDir := filepath.Join(rootPath, pair.Out)

		files, err := listSources(srcDir)
		if err != nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("source %q: cannot enumerate %s: %v", src.ID, srcDir, err))
			continue
		}

		for _, rel := range files {
			base := path.Base(rel)
			if Matches(base, src.Exclude, rel) {
				w.log.Debug("excluded by pattern", "source", src.ID, "file", rel)
				continue
			}

			contractName := strings.TrimSuffix(base, filepath.Ext(base))
			relDir := path.Dir(rel)

			artifactPath := resolveArtifact(outDir, rel, base, contractName)
			if artifactPath == "" {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("source %q: no compiled artifact found for %s", src.ID, rel))
				continue
			}

			data, err := os.ReadFile(artifactPath)
			if err != nil {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("source %q: cannot read %s: %v", src.ID, artifactPath, err))
				continue
			}

			var raw RawArtifact
			if err := json.Unmarshal(data, &raw); err != nil {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("source %q: invalid artifact JSON at %s: %v", src.ID, artifactPath, err))
				continue
			}

			rec, skip := Extract(artifactPath, src.ID, relDir, raw)
			if skip != "" {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("source %q: %s: %s, skipped", src.ID, rel, skip))
				continue
			}

			w.log.Debug("discovered artifact", "source", src.ID, "contract", rec.ContractName)
			res.Artifacts = append(res.Artifacts, rec)
		}
	}

	return res, nil
}

// resolveArtifact tries the candidate artifact locations in order: the flat
// layout (out/<file>/<Name>.json, foundry-style) wins over the nested layout
// (out/<relpath>/<Name>.json, hardhat-style). Flat-first is an arbitrary
// tie-break kept stable because generated output depends on it.
func resolveArtifact(outDir, relSource, base, contractName string) string {
	candidates := []string{
		filepath.Join(outDir, base, contractName+".json"),
		filepath.Join(outDir, filepath.FromSlash(relSource), contractName+".json"),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// listSources returns the slash-separated relative paths of every contract
// source under dir, sorted lexicographically for deterministic enumeration.
func listSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), sourceExt) {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
