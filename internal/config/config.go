// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates abiforge project configuration. The
// config file is CUE: it is validated against an embedded schema first, then
// merged through viper so decoding and defaulting stay in one place.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"abiforge-cli/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "abiforge"
	// DefaultFileName is the config file looked up in the working directory.
	DefaultFileName = "abiforge.cue"
	// maxConfigBytes bounds config file size (1 MB); anything larger is
	// almost certainly not a config file.
	maxConfigBytes = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// Load reads, schema-validates, and decodes the config file at path. An empty
// path falls back to abiforge.cue in the working directory. The returned
// config has passed Validate.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	v := viper.New()
	if err := loadCUEIntoViper(v, path); err != nil {
		return nil, issue.New("load configuration").
			WithResource(path).
			WithSuggestion("Check that the file contains valid CUE syntax").
			WithSuggestion("Verify the values match the expected schema (run 'abiforge config show')").
			Wrap(err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the constraints the CUE schema cannot express: non-empty
// source list, unique source ids, exactly one of repo/path per source, and a
// main_source that references a configured id.
func Validate(cfg *Config) error {
	if cfg.OutputDir == "" {
		return &ConfigError{Field: "output_dir", Reason: "is required"}
	}
	if len(cfg.Sources) == 0 {
		return &ConfigError{Field: "sources", Reason: "at least one source is required"}
	}

	seen := make(map[string]bool, len(cfg.Sources))
	for i, src := range cfg.Sources {
		field := fmt.Sprintf("sources[%d]", i)
		if src.ID == "" {
			return &ConfigError{Field: field + ".id", Reason: "is required"}
		}
		if seen[src.ID] {
			return &ConfigError{Field: field + ".id", Reason: fmt.Sprintf("duplicate source id %q", src.ID)}
		}
		seen[src.ID] = true

		switch {
		case src.Repo == "" && src.Path == "":
			return &ConfigError{Field: field, Reason: "exactly one of repo or path is required"}
		case src.Repo != "" && src.Path != "":
			return &ConfigError{Field: field, Reason: "repo and path are mutually exclusive"}
		}
	}

	if cfg.MainSource != "" && !seen[cfg.MainSource] {
		return &ConfigError{
			Field:  "main_source",
			Reason: fmt.Sprintf("%q does not reference a configured source id", cfg.MainSource),
		}
	}
	return nil
}

// loadCUEIntoViper parses a CUE config file, validates it against the
// embedded #Config schema, and merges the result into viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxConfigBytes {
		return fmt.Errorf("config file exceeds %d bytes", maxConfigBytes)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return fmt.Errorf("failed to parse config: %w", userValue.Err())
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}
