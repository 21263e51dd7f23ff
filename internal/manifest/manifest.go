// SPDX-License-Identifier: MPL-2.0

// Package manifest builds, compares, and renders interface-surface manifests:
// sorted maps from module export path to the sorted canonical signatures the
// module exposes. A manifest ships with each release so the next release can
// be diffed against it.
package manifest

import (
	"fmt"
	"sort"
	"strings"

	"abiforge-cli/internal/generate"
	"abiforge-cli/pkg/abi"

	"golang.org/x/exp/maps"
)

// Manifest maps export paths (module paths without extension) to sorted
// canonical signature lists. encoding/json serializes map keys sorted, so a
// marshaled manifest is deterministic.
type Manifest map[string][]string

// Build converts a deduplicated module set into a manifest. Each module's
// serialized content is re-parsed into interface items (the round-trip is
// lossless), formatted into canonical signatures, sorted, and keyed by the
// module's output path with its extension stripped.
func Build(modules []*generate.ModuleDescriptor) (Manifest, error) {
	m := make(Manifest, len(modules))

	for _, mod := range modules {
		items, err := parseContent(mod.Content)
		if err != nil {
			return nil, fmt.Errorf("re-parsing module %s: %w", mod.OutputPath, err)
		}

		sigs := abi.Signatures(items)
		sort.Strings(sigs)

		key := strings.TrimSuffix(mod.OutputPath, generate.ModuleExt)
		m[key] = sigs
	}

	return m, nil
}

// Keys returns the manifest's export paths, sorted.
func (m Manifest) Keys() []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	return keys
}

// parseContent recovers the interface array from serialized module text by
// slicing out the bracketed JSON literal between the constant declaration and
// the const assertion.
func parseContent(content string) ([]abi.Item, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end < start {
		return nil, fmt.Errorf("module content carries no interface array")
	}
	return abi.ParseItems([]byte(content[start : end+1]))
}
