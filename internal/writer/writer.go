// SPDX-License-Identifier: MPL-2.0

// Package writer materializes a generation run on disk. The output directory
// is fully owned by the tool: it is cleared and repopulated on every run so
// renamed or removed contracts never leave stale modules behind.
package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"abiforge-cli/internal/generate"
	"abiforge-cli/internal/manifest"
)

// ManifestFile is the manifest's filename inside the output directory.
const ManifestFile = "manifest.json"

var readmeTmpl = template.Must(template.New("readme").Parse(`# Generated ABI modules

This directory is generated by abiforge. Do not edit by hand; changes are
overwritten on the next run.

## Modules

{{range .Modules}}- ` + "`{{.OutputPath}}`" + ` ({{.SourceID}}/{{.ContractName}})
{{end}}`))

// Writer writes modules, the manifest, and a README into one directory.
type Writer struct {
	// Dir is the output directory. It is removed and recreated by Write.
	Dir string
}

// New returns a writer rooted at dir.
func New(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Write clears the output directory and writes every module file, the
// manifest, and a README index. Module output paths are slash separated and
// converted for the host filesystem here.
func (w *Writer) Write(modules []*generate.ModuleDescriptor, m manifest.Manifest) error {
	if err := os.RemoveAll(w.Dir); err != nil {
		return fmt.Errorf("clearing output dir: %w", err)
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	for _, mod := range modules {
		dst := filepath.Join(w.Dir, filepath.FromSlash(mod.OutputPath))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("creating dir for %s: %w", mod.OutputPath, err)
		}
		if err := os.WriteFile(dst, []byte(mod.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", mod.OutputPath, err)
		}
	}

	if err := w.writeManifest(m); err != nil {
		return err
	}
	return w.writeReadme(modules)
}

// writeManifest serializes the manifest with sorted keys and indented JSON so
// successive runs over the same inputs are byte identical.
func (w *Writer) writeManifest(m manifest.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(w.Dir, ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

func (w *Writer) writeReadme(modules []*generate.ModuleDescriptor) error {
	sorted := make([]*generate.ModuleDescriptor, len(modules))
	copy(sorted, modules)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].OutputPath < sorted[j].OutputPath })

	var buf bytes.Buffer
	if err := readmeTmpl.Execute(&buf, map[string]any{"Modules": sorted}); err != nil {
		return fmt.Errorf("rendering README: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.Dir, "README.md"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing README: %w", err)
	}
	return nil
}
