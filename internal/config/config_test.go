// SPDX-License-Identifier: MPL-2.0

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"abiforge-cli/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "abiforge.cue")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
output_dir:  "src/abi"
main_source: "core"
package:     "@berachain/abis"
sources: [
	{
		id:       "core"
		path:     "../contracts"
		build:    "forge build"
		src_dirs: "src"
		out_dirs: "out"
		exclude: ["*.t.sol", "test/*"]
	},
	{
		id:   "periphery"
		repo: "https://github.com/example/periphery"
		ref:  "v1.2.0"
	},
]
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OutputDir != "src/abi" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "src/abi")
	}
	if len(cfg.Sources) != 2 {
		t.Fatalf("len(Sources) = %d, want 2", len(cfg.Sources))
	}

	core := cfg.Source("core")
	if core == nil {
		t.Fatal("Source(\"core\") = nil")
	}
	// Scalar src_dirs decodes to a one-element list.
	if len(core.SrcDirs) != 1 || core.SrcDirs[0] != "src" {
		t.Errorf("core.SrcDirs = %v, want [src]", core.SrcDirs)
	}
	if len(core.Exclude) != 2 {
		t.Errorf("core.Exclude = %v, want two patterns", core.Exclude)
	}
	if cfg.Sources[1].Ref != "v1.2.0" {
		t.Errorf("periphery.Ref = %q, want v1.2.0", cfg.Sources[1].Ref)
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
output_dir: ""
sources: []
`)
	if _, err := config.Load(path); err == nil {
		t.Error("Load() with empty output_dir succeeded, want error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *config.Config {
		return &config.Config{
			OutputDir:  "abi",
			MainSource: "a",
			Sources: []config.SourceSpec{
				{ID: "a", Path: "/tmp/a"},
				{ID: "b", Repo: "https://example.com/b.git"},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		wantOK bool
	}{
		{"valid", func(c *config.Config) {}, true},
		{"no sources", func(c *config.Config) { c.Sources = nil }, false},
		{"missing output dir", func(c *config.Config) { c.OutputDir = "" }, false},
		{"duplicate ids", func(c *config.Config) { c.Sources[1].ID = "a" }, false},
		{"neither repo nor path", func(c *config.Config) { c.Sources[0].Path = "" }, false},
		{"both repo and path", func(c *config.Config) { c.Sources[0].Repo = "x" }, false},
		{"dangling main source", func(c *config.Config) { c.MainSource = "nope" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(cfg)
			err := config.Validate(cfg)
			if tt.wantOK && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, config.ErrInvalidConfig) {
					t.Errorf("Validate() error %v is not ErrInvalidConfig", err)
				}
			}
		})
	}
}
