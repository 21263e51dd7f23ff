// SPDX-License-Identifier: MPL-2.0

// Package repo acquires source checkouts: remote repositories are cloned into
// a cache directory with go-git, local paths are used in place. It is a thin
// collaborator with no decision logic; any failure is terminal for the run.
package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"abiforge-cli/internal/config"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

// Fetcher materializes configured sources on disk.
type Fetcher struct {
	// CacheDir holds one checkout per remote source id.
	CacheDir string

	auth transport.AuthMethod
}

// NewFetcher creates a fetcher caching remote checkouts under cacheDir.
func NewFetcher(cacheDir string) *Fetcher {
	f := &Fetcher{CacheDir: cacheDir}
	f.setupAuth()
	return f
}

// Fetch returns the root path of the source's checkout. Local sources resolve
// to their absolute path; remote sources are cloned fresh into the cache
// (stale checkouts are discarded, not updated, so every run sees exactly the
// configured ref).
func (f *Fetcher) Fetch(ctx context.Context, src config.SourceSpec) (string, error) {
	if src.Path != "" {
		abs, err := filepath.Abs(src.Path)
		if err != nil {
			return "", fmt.Errorf("source %q: resolving path: %w", src.ID, err)
		}
		return abs, nil
	}

	dest := filepath.Join(f.CacheDir, src.ID)
	if err := os.RemoveAll(dest); err != nil {
		return "", fmt.Errorf("source %q: clearing cached checkout: %w", src.ID, err)
	}
	if err := os.MkdirAll(f.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("source %q: creating cache dir: %w", src.ID, err)
	}

	opts := &git.CloneOptions{
		URL:  src.Repo,
		Auth: f.auth,
	}
	if src.Ref == "" {
		opts.Depth = 1
		opts.SingleBranch = true
	}

	r, err := git.PlainCloneContext(ctx, dest, false, opts)
	if err != nil {
		return "", fmt.Errorf("source %q: cloning %s: %w", src.ID, src.Repo, err)
	}

	if src.Ref != "" {
		if err := checkout(r, src.Ref); err != nil {
			return "", fmt.Errorf("source %q: checking out %q: %w", src.ID, src.Ref, err)
		}
	}
	return dest, nil
}

// checkout moves the worktree to a branch, tag, or commit.
func checkout(r *git.Repository, ref string) error {
	w, err := r.Worktree()
	if err != nil {
		return err
	}

	// Try as a revision first (handles tags, commits, and remote branches).
	hash, err := r.ResolveRevision(plumbing.Revision(ref))
	if err == nil {
		return w.Checkout(&git.CheckoutOptions{Hash: *hash})
	}
	return w.Checkout(&git.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(ref)})
}

// setupAuth configures HTTPS token auth from the environment when available.
// Anonymous access is the default; public repositories need no credentials.
func (f *Fetcher) setupAuth() {
	for _, env := range []string{"GITHUB_TOKEN", "GIT_TOKEN"} {
		if token := strings.TrimSpace(os.Getenv(env)); token != "" {
			f.auth = &githttp.BasicAuth{Username: "git", Password: token}
			return
		}
	}
}
