// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"abiforge-cli/pkg/abi"
)

type (
	// RawArtifact is the untrusted shape of a compiled artifact JSON file.
	// Either field may be absent; foundry artifacts carry no contractName.
	RawArtifact struct {
		ABI          json.RawMessage `json:"abi"`
		ContractName string          `json:"contractName"`
	}

	// ArtifactRecord is the validated unit of work handed to module
	// generation. Immutable once created.
	ArtifactRecord struct {
		// SourceID names the configured source this artifact came from.
		SourceID string
		// Path is the absolute path of the artifact JSON file.
		Path string
		// ContractName is the trimmed, non-empty contract name.
		ContractName string
		// RelDir is the source-relative directory, RootDir for top level.
		RelDir string
		// ABI holds the parsed interface items; always non-empty.
		ABI []abi.Item
	}
)

// Extract validates a raw artifact into an ArtifactRecord. The second return
// value is a skip reason: non-empty means the artifact is unusable and should
// be reported as a warning, not an error. Interfaces and abstract contracts
// routinely compile to empty artifacts, so skips are an expected outcome.
func Extract(path, sourceID, relDir string, raw RawArtifact) (*ArtifactRecord, string) {
	if len(raw.ABI) == 0 || string(raw.ABI) == "null" {
		return nil, "artifact has no abi field"
	}

	items, err := abi.ParseItems(raw.ABI)
	if err != nil {
		return nil, "abi field is not an interface array"
	}
	if len(items) == 0 {
		return nil, "abi is empty"
	}

	name := strings.TrimSpace(raw.ContractName)
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if name == "" {
		return nil, "contract name is empty"
	}

	return &ArtifactRecord{
		SourceID:     sourceID,
		Path:         path,
		ContractName: name,
		RelDir:       relDir,
		ABI:          items,
	}, ""
}
