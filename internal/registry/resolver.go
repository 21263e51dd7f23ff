// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/mod/semver"
)

// PrimaryTag is the release channel every publish updates.
const PrimaryTag = "latest"

// VersionLookup resolves a dist-tag to a concrete version. Implemented by
// Client; narrowed to an interface so resolution is testable without HTTP.
type VersionLookup interface {
	VersionForTag(ctx context.Context, pkg, tag string) (string, error)
}

// ResolveBaseline picks the version to diff the next release against. The
// primary tag is looked up directly; any other tag is raced concurrently
// against the primary and the semver-newer of the two wins, with ties going
// to the primary (a stale secondary pointer is treated as superseded). Lookup
// failures are downgraded to warnings and treated as "not published", so the
// first-ever release resolves to an empty baseline.
func ResolveBaseline(ctx context.Context, lookup VersionLookup, pkg, tag string) (version string, warnings []string) {
	if tag == PrimaryTag {
		v, warn := lookupOne(ctx, lookup, pkg, PrimaryTag)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		return v, warnings
	}

	var (
		wg                      sync.WaitGroup
		tagged, primary         string
		taggedWarn, primaryWarn string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		tagged, taggedWarn = lookupOne(ctx, lookup, pkg, tag)
	}()
	go func() {
		defer wg.Done()
		primary, primaryWarn = lookupOne(ctx, lookup, pkg, PrimaryTag)
	}()
	wg.Wait()

	for _, w := range []string{taggedWarn, primaryWarn} {
		if w != "" {
			warnings = append(warnings, w)
		}
	}

	switch {
	case tagged == "":
		return primary, warnings
	case primary == "":
		return tagged, warnings
	case semver.Compare(canonical(tagged), canonical(primary)) > 0:
		return tagged, warnings
	default:
		return primary, warnings
	}
}

// lookupOne resolves one tag, downgrading any failure to a warning. A missing
// tag is expected (first release on a channel) and produces no warning.
func lookupOne(ctx context.Context, lookup VersionLookup, pkg, tag string) (version, warning string) {
	v, err := lookup.VersionForTag(ctx, pkg, tag)
	switch {
	case err == nil:
		return v, ""
	case errors.Is(err, ErrNotPublished):
		return "", ""
	default:
		return "", fmt.Sprintf("registry lookup for %s@%s failed, treating as unpublished: %v", pkg, tag, err)
	}
}

// canonical prefixes a version with "v" as x/mod/semver expects.
func canonical(version string) string {
	return "v" + strings.TrimPrefix(version, "v")
}
