// SPDX-License-Identifier: MPL-2.0

package generate

import (
	"fmt"
	"sort"
)

// CollisionError is returned when two modules share a dedup key but carry
// different content: two distinct compiled artifacts are claiming the same
// export identity, which cannot be resolved silently.
type CollisionError struct {
	// Key is the colliding dedup key, "sourceID:contractName".
	Key string
	// FirstPath and SecondPath are the artifact files involved.
	FirstPath  string
	SecondPath string
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf(
		"module collision: %q generated from both:\n  - %s\n  - %s\nthe artifacts produce different content; exclude one of them",
		e.Key, e.FirstPath, e.SecondPath)
}

// Dedupe merges modules sharing a dedup key. The first occurrence per key is
// kept; a later byte-identical duplicate is dropped with a warning, and a
// later conflicting duplicate fails the whole run with a CollisionError.
// The surviving set is sorted by (sourceID, contractName, outputPath) so
// downstream writing is deterministic.
func Dedupe(modules []*ModuleDescriptor) ([]*ModuleDescriptor, []string, error) {
	var warnings []string
	kept := make([]*ModuleDescriptor, 0, len(modules))
	byKey := make(map[string]*ModuleDescriptor, len(modules))

	for _, m := range modules {
		first, exists := byKey[m.Key]
		if !exists {
			byKey[m.Key] = m
			kept = append(kept, m)
			continue
		}

		if first.Content == m.Content {
			warnings = append(warnings,
				fmt.Sprintf("duplicate ignored: %q discovered again at %s", m.Key, m.ArtifactPath))
			continue
		}

		return nil, nil, &CollisionError{
			Key:        m.Key,
			FirstPath:  first.ArtifactPath,
			SecondPath: m.ArtifactPath,
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.SourceID != b.SourceID {
			return a.SourceID < b.SourceID
		}
		if a.ContractName != b.ContractName {
			return a.ContractName < b.ContractName
		}
		return a.OutputPath < b.OutputPath
	})

	return kept, warnings, nil
}
