// Package query implements the predicate-composition engine shared by all
// introspection query builders: wildcard pattern matching, path
// normalization, and AND/OR filter evaluation over descriptor records.
package query

import (
	"regexp"
	"strings"
)

// Pattern is a compiled wildcard pattern. The source pattern is literal text
// in which each "*" matches zero or more characters. Matching is anchored on
// both ends: the entire candidate string must match, so a pattern without
// wildcards is plain string equality.
type Pattern struct {
	source string
	exact  string // set when the pattern has no wildcard
	re     *regexp.Regexp
}

// CompilePattern compiles a wildcard pattern for repeated matching.
// Every character other than "*" is matched literally, including characters
// that are special in regular expressions.
func CompilePattern(pattern string) *Pattern {
	if !strings.Contains(pattern, "*") {
		return &Pattern{source: pattern, exact: pattern}
	}

	parts := strings.Split(pattern, "*")
	quoted := make([]string, len(parts))
	for i, part := range parts {
		quoted[i] = regexp.QuoteMeta(part)
	}

	// Anchored on both ends; "*" expands to zero-or-more of any character.
	re := regexp.MustCompile("^" + strings.Join(quoted, ".*") + "$")
	return &Pattern{source: pattern, re: re}
}

// Match reports whether value matches the compiled pattern.
// Comparison is case-sensitive and byte exact.
func (p *Pattern) Match(value string) bool {
	if p.re == nil {
		return value == p.exact
	}
	return p.re.MatchString(value)
}

// String returns the original pattern source.
func (p *Pattern) String() string {
	return p.source
}

// HasWildcard reports whether a raw pattern contains a "*" wildcard.
// Filters that only optionally support wildcards use this to decide between
// plain string comparison and pattern matching.
func HasWildcard(pattern string) bool {
	return strings.Contains(pattern, "*")
}

// MatchPattern is a convenience for one-shot matching. Builders that apply a
// pattern across a full candidate collection should compile once instead.
func MatchPattern(value, pattern string) bool {
	return CompilePattern(pattern).Match(value)
}
