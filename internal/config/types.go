// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel error wrapped by ConfigError.
var ErrInvalidConfig = errors.New("invalid config")

type (
	// Config is the project configuration consumed by the generation pipeline.
	// It is loaded from an abiforge.cue file validated against the embedded
	// CUE schema before decoding.
	Config struct {
		// OutputDir is where generated modules and the manifest are written.
		OutputDir string `mapstructure:"output_dir"`

		// MainSource is the id of the source promoted to the top level of the
		// output tree. Optional; when set it must reference a configured source.
		MainSource string `mapstructure:"main_source"`

		// Package is the npm package name used for changelog baseline lookups.
		Package string `mapstructure:"package"`

		// Sources lists the artifact sources to process, in order.
		Sources []SourceSpec `mapstructure:"sources"`
	}

	// SourceSpec describes one configured artifact source. Exactly one of
	// Repo or Path must be set.
	SourceSpec struct {
		// ID identifies the source; it prefixes output paths for every source
		// except the main one.
		ID string `mapstructure:"id"`

		// Repo is a remote git URL to clone (mutually exclusive with Path).
		Repo string `mapstructure:"repo"`

		// Ref is the branch, tag, or commit to check out when Repo is set.
		Ref string `mapstructure:"ref"`

		// Path is a local checkout to use in place (mutually exclusive with Repo).
		Path string `mapstructure:"path"`

		// Build is an optional shell command run before discovery (e.g. "forge build").
		Build string `mapstructure:"build"`

		// SrcDirs are the directories scanned for contract sources. A single
		// scalar in the config file decodes to a one-element list.
		SrcDirs []string `mapstructure:"src_dirs"`

		// OutDirs are the compiled artifact directories paired with SrcDirs
		// (positionally, or broadcast from a single entry).
		OutDirs []string `mapstructure:"out_dirs"`

		// Exclude holds glob patterns for source files to skip. Patterns with
		// a path separator match the source-relative path, others the filename.
		Exclude []string `mapstructure:"exclude"`
	}

	// ConfigError reports malformed source or directory configuration. It is
	// fatal and raised before any I/O happens.
	ConfigError struct {
		// Field names the offending config field (e.g. "sources[0].repo").
		Field string
		// Reason explains the violation.
		Reason string
	}
)

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidConfig for errors.Is checks.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// Source returns the source spec with the given id, or nil.
func (c *Config) Source(id string) *SourceSpec {
	for i := range c.Sources {
		if c.Sources[i].ID == id {
			return &c.Sources[i]
		}
	}
	return nil
}
