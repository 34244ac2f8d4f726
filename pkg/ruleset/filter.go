package ruleset

import "strings"

// Excluded reports whether a concrete path matches any of the exclusion
// patterns. Supported pattern shapes:
//   - "prefix*" matches paths starting with "prefix"
//   - "*suffix" matches paths ending with "suffix"
//   - "*contains*" matches paths containing "contains"
//   - "exact" matches paths exactly
//
// Exclusions let a rules file carve legacy or vendored sections out of
// validation without touching the rules themselves.
func Excluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchesPattern(path, pattern) {
			return true
		}
	}
	return false
}

// matchesPattern checks if a path matches a wildcard pattern.
func matchesPattern(path, pattern string) bool {
	// No wildcard - exact match
	if !strings.Contains(pattern, "*") {
		return path == pattern
	}

	// *contains* - contains match
	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		substr := strings.Trim(pattern, "*")
		return strings.Contains(path, substr)
	}

	// *suffix - ends with match
	if strings.HasPrefix(pattern, "*") {
		suffix := strings.TrimPrefix(pattern, "*")
		return strings.HasSuffix(path, suffix)
	}

	// prefix* - starts with match
	if strings.HasSuffix(pattern, "*") {
		prefix := strings.TrimSuffix(pattern, "*")
		return strings.HasPrefix(path, prefix)
	}

	return false
}
