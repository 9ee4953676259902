package query

import "strings"

// NormalizePath canonicalizes a URI path for comparison: the result always
// has exactly one leading "/" and no other change. An empty path normalizes
// to "/".
func NormalizePath(path string) string {
	return "/" + strings.TrimLeft(path, "/")
}

// BaseName returns the portion of a parameterized token before the first
// ":". Middleware assignments such as "throttle:60,1" compare by base name,
// never by the full token text.
func BaseName(token string) string {
	if i := strings.Index(token, ":"); i >= 0 {
		return token[:i]
	}
	return token
}
