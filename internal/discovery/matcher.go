// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Matches reports whether a filename is excluded by any of the given glob
// patterns. A pattern containing a path separator is tested against the
// source-relative path; a pattern without one is tested against the bare
// filename only. `*` matches zero or more characters and `?` exactly one;
// everything else is literal. An empty pattern list never matches, and a
// pattern that fails to compile degrades to no-match.
func Matches(name string, patterns []string, relPath string) bool {
	for _, pattern := range patterns {
		target := name
		if strings.ContainsAny(pattern, `/\`) {
			target = filepath.ToSlash(relPath)
			pattern = filepath.ToSlash(pattern)
		}
		if matchGlob(pattern, target) {
			return true
		}
	}
	return false
}

// matchGlob anchors the pattern against the whole target string.
func matchGlob(pattern, target string) bool {
	re, err := regexp.Compile(globToRegexp(pattern))
	if err != nil {
		return false
	}
	return re.MatchString(target)
}

// globToRegexp translates a glob pattern into an anchored regular expression.
func globToRegexp(pattern string) string {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return sb.String()
}
