// SPDX-License-Identifier: MPL-2.0

package repo

import (
	"context"
	"path/filepath"
	"testing"

	"abiforge-cli/internal/config"
)

func TestFetch_LocalPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := NewFetcher(t.TempDir())

	got, err := f.Fetch(context.Background(), config.SourceSpec{ID: "local", Path: dir})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Fetch() = %q, want absolute path", got)
	}
	if got != dir {
		t.Errorf("Fetch() = %q, want %q", got, dir)
	}
}

func TestFetch_RelativeLocalPath(t *testing.T) {
	t.Parallel()

	f := NewFetcher(t.TempDir())
	got, err := f.Fetch(context.Background(), config.SourceSpec{ID: "local", Path: "."})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Fetch() = %q, want absolute path", got)
	}
}
