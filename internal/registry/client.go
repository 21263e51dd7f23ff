// SPDX-License-Identifier: MPL-2.0

// Package registry queries an npm-compatible registry for published versions
// and the signature manifests shipped with them. Lookups that fail or 404 are
// reported as "not published" rather than hard errors, so a first-ever
// release degrades gracefully.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"abiforge-cli/internal/manifest"
)

const (
	// DefaultBaseURL is the public npm registry.
	DefaultBaseURL = "https://registry.npmjs.org"

	// maxJSONResponseBytes bounds registry response size (10 MB) so a
	// malformed or hostile response cannot exhaust memory.
	maxJSONResponseBytes = 10 << 20

	// defaultTimeout applies when no custom HTTP client is supplied.
	defaultTimeout = 30 * time.Second
)

// ErrNotPublished is returned when a package, tag, or version does not exist
// in the registry.
var ErrNotPublished = errors.New("not published")

type (
	// Client talks to one npm-compatible registry.
	Client struct {
		httpClient *http.Client
		baseURL    string
		token      string
		userAgent  string
	}

	// ClientOption configures a Client during construction.
	ClientOption func(*Client)

	// versionDoc is the wire shape of a published version's metadata; the
	// manifest travels in the package.json "abiforge" block.
	versionDoc struct {
		Abiforge struct {
			Manifest manifest.Manifest `json:"manifest"`
		} `json:"abiforge"`
	}
)

// WithHTTPClient sets a custom HTTP client, useful for tests.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) { cl.httpClient = c }
}

// WithBaseURL overrides the registry base URL, primarily for test servers and
// private registries.
func WithBaseURL(base string) ClientOption {
	return func(cl *Client) { cl.baseURL = strings.TrimRight(base, "/") }
}

// WithToken sets a bearer token for authenticated registries.
func WithToken(token string) ClientOption {
	return func(cl *Client) { cl.token = token }
}

// NewClient creates a registry client for the public npm registry unless
// overridden by options.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		userAgent:  "abiforge",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// VersionForTag resolves a dist-tag to the concrete version it points at.
// Returns ErrNotPublished when the package or tag does not exist.
func (c *Client) VersionForTag(ctx context.Context, pkg, tag string) (string, error) {
	var tags map[string]string
	url := c.baseURL + "/-/package/" + escapePackage(pkg) + "/dist-tags"
	if err := c.getJSON(ctx, url, &tags); err != nil {
		return "", err
	}

	version, ok := tags[tag]
	if !ok {
		return "", fmt.Errorf("tag %q: %w", tag, ErrNotPublished)
	}
	return version, nil
}

// ManifestAt fetches the signature manifest published at an exact version.
// Returns ErrNotPublished when the version does not exist (possible even for
// a version a dist-tag resolved to, on an inconsistent registry), and an
// empty manifest when the version predates manifest publishing. Callers are
// expected to treat any failure here as an empty baseline.
func (c *Client) ManifestAt(ctx context.Context, pkg, version string) (manifest.Manifest, error) {
	var doc versionDoc
	url := c.baseURL + "/" + escapePackage(pkg) + "/" + version
	if err := c.getJSON(ctx, url, &doc); err != nil {
		return nil, err
	}

	if doc.Abiforge.Manifest == nil {
		return manifest.Manifest{}, nil
	}
	return doc.Abiforge.Manifest, nil
}

// getJSON performs a bounded GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("querying registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotPublished
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registry returned status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxJSONResponseBytes))
	if err != nil {
		return fmt.Errorf("reading registry response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding registry response: %w", err)
	}
	return nil
}

// escapePackage encodes the slash of a scoped package name; registries expect
// "@scope%2Fname" in paths.
func escapePackage(pkg string) string {
	return strings.ReplaceAll(pkg, "/", "%2F")
}
