// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"abiforge-cli/internal/config"
)

func TestNormalizeDirs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     []string
		out     []string
		want    []DirPair
		wantErr bool
	}{
		{
			name: "defaults when unset",
			want: []DirPair{{Src: "src", Out: "out"}},
		},
		{
			name: "paired lists",
			src:  []string{"src", "script"},
			out:  []string{"out", "out-script"},
			want: []DirPair{{Src: "src", Out: "out"}, {Src: "script", Out: "out-script"}},
		},
		{
			name: "single out broadcasts",
			src:  []string{"src", "script"},
			out:  []string{"out"},
			want: []DirPair{{Src: "src", Out: "out"}, {Src: "script", Out: "out"}},
		},
		{
			name:    "mismatched multi lists",
			src:     []string{"a", "b", "c"},
			out:     []string{"x", "y"},
			wantErr: true,
		},
		{
			name:    "explicitly empty source list",
			src:     []string{},
			out:     []string{"out"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizeDirs(tt.src, tt.out, t.TempDir())
			if tt.wantErr {
				if err == nil {
					t.Fatal("NormalizeDirs() = nil error, want ConfigError")
				}
				if !errors.Is(err, config.ErrInvalidConfig) {
					t.Errorf("NormalizeDirs() error %v is not a ConfigError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeDirs() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeDirs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeDirs_FoundryDefaults(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	foundry := `
[profile.default]
src = "contracts"
out = "artifacts"

[profile.ci]
src = "other"
`
	if err := os.WriteFile(filepath.Join(root, "foundry.toml"), []byte(foundry), 0o644); err != nil {
		t.Fatalf("writing foundry.toml: %v", err)
	}

	got, err := NormalizeDirs(nil, nil, root)
	if err != nil {
		t.Fatalf("NormalizeDirs() error = %v", err)
	}
	want := []DirPair{{Src: "contracts", Out: "artifacts"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeDirs() = %v, want %v", got, want)
	}
}

func TestNormalizeDirs_FoundryPartial(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "foundry.toml"), []byte("[profile.default]\nsrc = \"contracts\"\n"), 0o644); err != nil {
		t.Fatalf("writing foundry.toml: %v", err)
	}

	got, err := NormalizeDirs(nil, nil, root)
	if err != nil {
		t.Fatalf("NormalizeDirs() error = %v", err)
	}
	want := []DirPair{{Src: "contracts", Out: "out"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeDirs() = %v, want %v", got, want)
	}
}
