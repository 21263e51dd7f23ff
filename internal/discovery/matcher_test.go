// SPDX-License-Identifier: MPL-2.0

package discovery

import "testing"

func TestMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		patterns []string
		relPath  string
		want     bool
	}{
		{"empty pattern list", "Token.sol", nil, "Token.sol", false},
		{"exact filename", "Token.sol", []string{"Token.sol"}, "Token.sol", true},
		{"star wildcard", "Token.t.sol", []string{"*.t.sol"}, "Token.t.sol", true},
		{"star matches zero chars", "x.sol", []string{"x*.sol"}, "x.sol", true},
		{"question mark one char", "V2.sol", []string{"V?.sol"}, "V2.sol", true},
		{"question mark needs a char", "V.sol", []string{"V?.sol"}, "V.sol", false},
		{"filename pattern ignores directories", "Token.sol", []string{"Token.sol"}, "test/Token.sol", true},
		{"path pattern uses relative path", "Token.sol", []string{"test/*"}, "test/Token.sol", true},
		{"path pattern misses other dirs", "Token.sol", []string{"test/*"}, "core/Token.sol", false},
		{"no partial match", "MyToken.sol", []string{"Token.sol"}, "MyToken.sol", false},
		{"second pattern wins", "Mock.sol", []string{"*.t.sol", "Mock*"}, "Mock.sol", true},
		{"regex metacharacters are literal", "a+b.sol", []string{"a+b.sol"}, "a+b.sol", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Matches(tt.file, tt.patterns, tt.relPath)
			if got != tt.want {
				t.Errorf("Matches(%q, %v, %q) = %v, want %v", tt.file, tt.patterns, tt.relPath, got, tt.want)
			}
		})
	}
}
