// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"abiforge-cli/internal/config"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultSrcDir is the conventional contract source directory.
	DefaultSrcDir = "src"
	// DefaultOutDir is the conventional compiled artifact directory.
	DefaultOutDir = "out"
	// RootDir is the sentinel relative directory for sources at the top of
	// the scan tree.
	RootDir = "."
)

// DirPair is one scan pairing of a source directory with its artifact
// directory, both relative to the checkout root.
type DirPair struct {
	Src string
	Out string
}

// NormalizeDirs expands the configured source and output directory lists into
// paired scan entries. Unset lists fall back to the checkout's foundry.toml
// profile (then to src/out); a single output directory broadcasts across all
// source directories. Mismatched multi-element lists and explicitly empty
// source lists are ConfigErrors.
func NormalizeDirs(srcDirs, outDirs []string, rootPath string) ([]DirPair, error) {
	if srcDirs != nil && len(srcDirs) == 0 {
		return nil, &config.ConfigError{Field: "src_dirs", Reason: "must not be empty"}
	}

	if len(srcDirs) == 0 || len(outDirs) == 0 {
		defSrc, defOut := foundryDefaults(rootPath)
		if len(srcDirs) == 0 {
			srcDirs = []string{defSrc}
		}
		if len(outDirs) == 0 {
			outDirs = []string{defOut}
		}
	}

	switch {
	case len(outDirs) == 1:
		// broadcast the single output directory across every source directory
		pairs := make([]DirPair, len(srcDirs))
		for i, s := range srcDirs {
			pairs[i] = DirPair{Src: s, Out: outDirs[0]}
		}
		return pairs, nil

	case len(outDirs) == len(srcDirs):
		pairs := make([]DirPair, len(srcDirs))
		for i := range srcDirs {
			pairs[i] = DirPair{Src: srcDirs[i], Out: outDirs[i]}
		}
		return pairs, nil

	default:
		return nil, &config.ConfigError{
			Field: "out_dirs",
			Reason: fmt.Sprintf("has %d entries but src_dirs has %d; lists must match or out_dirs must be a single entry",
				len(outDirs), len(srcDirs)),
		}
	}
}

// foundryDefaults reads src/out from the default profile of the checkout's
// foundry.toml, falling back to the src/out convention when the file is
// absent, unreadable, or silent on either field.
func foundryDefaults(rootPath string) (srcDir, outDir string) {
	srcDir, outDir = DefaultSrcDir, DefaultOutDir

	data, err := os.ReadFile(filepath.Join(rootPath, "foundry.toml"))
	if err != nil {
		return srcDir, outDir
	}

	var foundry struct {
		Profile map[string]struct {
			Src string `toml:"src"`
			Out string `toml:"out"`
		} `toml:"profile"`
	}
	if err := toml.Unmarshal(data, &foundry); err != nil {
		return srcDir, outDir
	}

	if p, ok := foundry.Profile["default"]; ok {
		if p.Src != "" {
			srcDir = p.Src
		}
		if p.Out != "" {
			outDir = p.Out
		}
	}
	return srcDir, outDir
}
