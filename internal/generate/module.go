// SPDX-License-Identifier: MPL-2.0

// Package generate maps discovered artifacts to output module descriptors and
// validates the resulting set for export-identity collisions.
package generate

import (
	"fmt"
	"path"

	"abiforge-cli/internal/discovery"
	"abiforge-cli/pkg/abi"
	"abiforge-cli/pkg/naming"
)

// ModuleExt is the extension of generated module files.
const ModuleExt = ".ts"

// ModuleDescriptor is one generated output module.
type ModuleDescriptor struct {
	// SourceID and ContractName identify the originating artifact.
	SourceID     string
	ContractName string

	// ArtifactPath is the artifact file the module was generated from, kept
	// for collision diagnostics.
	ArtifactPath string

	// ExportName is the canonical export identifier, e.g. "bgtStakerAbi".
	ExportName string

	// OutputPath is the slash-separated module path relative to the output
	// directory, e.g. "periphery/tokens/honey.ts". Modules of the main source
	// sit at the top level.
	OutputPath string

	// Content is the serialized module text. Byte-identical artifacts always
	// produce byte-identical content.
	Content string

	// Key is the dedup identity, "sourceID:contractName".
	Key string
}

// ToModule maps an artifact record to its module descriptor. The export name
// is the camelized contract name suffixed with "Abi"; the output path keeps
// the artifact's relative directory and is prefixed with the source id unless
// the artifact belongs to the main source.
func ToModule(rec *discovery.ArtifactRecord, mainSource string) (*ModuleDescriptor, error) {
	camel := naming.ToCamel(rec.ContractName)
	exportName := camel + "Abi"

	body, err := abi.MarshalItems(rec.ABI)
	if err != nil {
		return nil, fmt.Errorf("serializing %s:%s: %w", rec.SourceID, rec.ContractName, err)
	}

	content := fmt.Sprintf("export const %s = %s as const;\n\nexport default %s;\n",
		exportName, body, exportName)

	parts := make([]string, 0, 3)
	if rec.SourceID != mainSource {
		parts = append(parts, rec.SourceID)
	}
	if rec.RelDir != discovery.RootDir {
		parts = append(parts, rec.RelDir)
	}
	parts = append(parts, camel+ModuleExt)

	return &ModuleDescriptor{
		SourceID:     rec.SourceID,
		ContractName: rec.ContractName,
		ArtifactPath: rec.Path,
		ExportName:   exportName,
		OutputPath:   path.Join(parts...),
		Content:      content,
		Key:          rec.SourceID + ":" + rec.ContractName,
	}, nil
}
