// SPDX-License-Identifier: MPL-2.0

package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"abiforge-cli/internal/generate"
	"abiforge-cli/internal/manifest"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "abis")
	modules := []*generate.ModuleDescriptor{
		{
			SourceID:     "core",
			ContractName: "Token",
			OutputPath:   "token.ts",
			Content:      "export const tokenAbi = [] as const;\n\nexport default tokenAbi;\n",
		},
		{
			SourceID:     "ext",
			ContractName: "Honey",
			OutputPath:   "ext/tokens/honey.ts",
			Content:      "export const honeyAbi = [] as const;\n\nexport default honeyAbi;\n",
		},
	}
	m := manifest.Manifest{
		"token":            {"function name() view returns (string)"},
		"ext/tokens/honey": {},
	}

	w := New(dir)
	if err := w.Write(modules, m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "token.ts"))
	if err != nil {
		t.Fatalf("reading module: %v", err)
	}
	if string(got) != modules[0].Content {
		t.Errorf("module content = %q, want %q", got, modules[0].Content)
	}

	if _, err := os.Stat(filepath.Join(dir, "ext", "tokens", "honey.ts")); err != nil {
		t.Errorf("nested module not written: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	manifestText := string(data)
	if !strings.Contains(manifestText, `"ext/tokens/honey"`) || !strings.Contains(manifestText, `"token"`) {
		t.Errorf("manifest missing keys:\n%s", manifestText)
	}
	// Map keys are emitted sorted, so the nested key precedes the flat one.
	if strings.Index(manifestText, `"ext/tokens/honey"`) > strings.Index(manifestText, `"token"`) {
		t.Errorf("manifest keys not sorted:\n%s", manifestText)
	}

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		t.Fatalf("reading README: %v", err)
	}
	if !strings.Contains(string(readme), "`token.ts`") || !strings.Contains(string(readme), "`ext/tokens/honey.ts`") {
		t.Errorf("README missing module entries:\n%s", readme)
	}
}

func TestWrite_ClearsStaleFiles(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "abis")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(dir, "renamed.ts")
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New(dir)
	if err := w.Write(nil, manifest.Manifest{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("stale file survived: err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ManifestFile)); err != nil {
		t.Errorf("manifest not written on empty run: %v", err)
	}
}
