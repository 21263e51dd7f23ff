// SPDX-License-Identifier: MPL-2.0

// Package app wires the pipeline together: fetch each configured source,
// discover its artifacts, generate module descriptors, deduplicate, build the
// manifest, and write the output directory. It owns the run-level decisions
// (dry-run, missing-root policy) and aggregates warnings across stages.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"abiforge-cli/internal/build"
	"abiforge-cli/internal/config"
	"abiforge-cli/internal/discovery"
	"abiforge-cli/internal/generate"
	"abiforge-cli/internal/manifest"
	"abiforge-cli/internal/repo"
	"abiforge-cli/internal/writer"

	"github.com/charmbracelet/log"
)

// SourceFetcher materializes a configured source on disk and returns its root
// path. Implemented by repo.Fetcher; narrowed to an interface so the pipeline
// is testable without network access.
type SourceFetcher interface {
	Fetch(ctx context.Context, src config.SourceSpec) (string, error)
}

// App runs the generation pipeline for one loaded configuration.
type App struct {
	cfg *config.Config
	log *log.Logger

	fetcher SourceFetcher
	walker  *discovery.Walker

	// DryRun computes everything but writes nothing.
	DryRun bool
}

// Option configures an App during construction.
type Option func(*App)

// WithFetcher replaces the source fetcher, primarily for tests.
func WithFetcher(f SourceFetcher) Option {
	return func(a *App) { a.fetcher = f }
}

// WithMissingPolicy sets how a missing source root is handled.
func WithMissingPolicy(p discovery.MissingPolicy) Option {
	return func(a *App) { a.walker.OnMissing = p }
}

// WithSkipBuild suppresses per-source build steps.
func WithSkipBuild(skip bool) Option {
	return func(a *App) { a.walker.SkipBuild = skip }
}

// WithDryRun makes the run compute everything but write nothing.
func WithDryRun(dry bool) Option {
	return func(a *App) { a.DryRun = dry }
}

// New creates an App for cfg. Remote sources are cloned into the user cache
// directory unless a custom fetcher is supplied.
func New(cfg *config.Config, logger *log.Logger, opts ...Option) *App {
	if logger == nil {
		logger = log.Default()
	}

	a := &App{
		cfg:    cfg,
		log:    logger,
		walker: discovery.NewWalker(logger),
	}
	a.walker.Build = &build.ShellRunner{Stdout: os.Stdout, Stderr: os.Stderr}

	for _, opt := range opts {
		opt(a)
	}

	if a.fetcher == nil {
		a.fetcher = repo.NewFetcher(cacheDir())
	}
	return a
}

// Report summarizes a generation run.
type Report struct {
	// Modules are the deduplicated descriptors, in output order.
	Modules []*generate.ModuleDescriptor
	// Manifest is the signature manifest built from Modules.
	Manifest manifest.Manifest
	// Warnings aggregates per-file and dedup warnings across all sources.
	Warnings []string
	// DryRun records whether the output directory was left untouched.
	DryRun bool
}

// Generate runs the full pipeline. Sources are processed sequentially in
// configuration order; a structural failure in any source aborts the run
// before anything is written.
func (a *App) Generate(ctx context.Context) (*Report, error) {
	report := &Report{DryRun: a.DryRun}

	var records []*discovery.ArtifactRecord
	for _, src := range a.cfg.Sources {
		a.log.Info("processing source", "id", src.ID)

		rootPath, err := a.fetcher.Fetch(ctx, src)
		if err != nil {
			return nil, err
		}

		res, err := a.walker.Discover(ctx, src, rootPath)
		if err != nil {
			return nil, err
		}
		records = append(records, res.Artifacts...)
		report.Warnings = append(report.Warnings, res.Warnings...)
	}

	modules := make([]*generate.ModuleDescriptor, 0, len(records))
	for _, rec := range records {
		mod, err := generate.ToModule(rec, a.cfg.MainSource)
		if err != nil {
			return nil, err
		}
		modules = append(modules, mod)
	}

	deduped, warnings, err := generate.Dedupe(modules)
	if err != nil {
		return nil, err
	}
	report.Warnings = append(report.Warnings, warnings...)
	report.Modules = deduped

	m, err := manifest.Build(deduped)
	if err != nil {
		return nil, err
	}
	report.Manifest = m

	if a.DryRun {
		a.log.Info("dry run, skipping output", "modules", len(deduped))
		return report, nil
	}

	if err := writer.New(a.cfg.OutputDir).Write(deduped, m); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}
	a.log.Info("wrote output", "dir", a.cfg.OutputDir, "modules", len(deduped))
	return report, nil
}

// cacheDir returns the per-user checkout cache, falling back to a temp
// directory when the platform reports no cache home.
func cacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, config.AppName, "sources")
}
