// SPDX-License-Identifier: MPL-2.0

// Package naming segments contract identifiers into word tokens and
// re-assembles them into camelCase, PascalCase, or kebab-case. The splitter is
// acronym-aware: "BGTStaker" yields ["bgt", "staker"], "ERC20Token" yields
// ["erc20", "token"], and a pure acronym like "WBERA" stays a single token.
package naming

import (
	"strings"
	"unicode"
)

const (
	// camelFallback is the export identifier used when an input yields no tokens.
	camelFallback = "abi"
	// pascalFallback is the type-name fallback for token-less input.
	pascalFallback = "Contract"
)

// SplitWords segments an identifier into lowercase word tokens.
//
// Boundaries are inserted, in order: before an uppercase letter that closes an
// acronym run (uppercase followed by uppercase-then-lowercase), after a
// lowercase letter or digit followed by an uppercase letter, and on any run of
// non-alphanumeric characters. Empty tokens are dropped.
func SplitWords(identifier string) []string {
	runes := []rune(identifier)

	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				// lower/digit -> Upper starts a new word
				flush()
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// close an acronym run before a capitalized word
				flush()
			}
		}

		current.WriteRune(r)
	}
	flush()

	return words
}

// ToCamel joins the tokens of identifier in camelCase. Token-less input
// falls back to "abi" so generated export names are never empty.
func ToCamel(identifier string) string {
	words := SplitWords(identifier)
	if len(words) == 0 {
		return camelFallback
	}

	var sb strings.Builder
	sb.WriteString(words[0])
	for _, w := range words[1:] {
		sb.WriteString(capitalize(w))
	}
	return sb.String()
}

// ToPascal joins the tokens of identifier in PascalCase. Token-less input
// falls back to "Contract".
func ToPascal(identifier string) string {
	words := SplitWords(identifier)
	if len(words) == 0 {
		return pascalFallback
	}

	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(capitalize(w))
	}
	return sb.String()
}

// ToKebab joins the tokens of identifier with hyphens. Token-less input yields
// the empty string.
func ToKebab(identifier string) string {
	return strings.Join(SplitWords(identifier), "-")
}

// capitalize uppercases the first rune of a lowercase token.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
