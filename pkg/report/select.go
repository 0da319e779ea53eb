package report

import (
	"strings"

	"github.com/agnivade/levenshtein"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
)

// maxSuggestionDistance is the largest edit distance at which a field
// name is still offered as a typo suggestion.
const maxSuggestionDistance = 2

// Select returns the fields whose names match any of the provided
// patterns, preserving report order. With no patterns every field is
// returned. A pattern that matches no field at all is rejected, which
// catches typos in field selections.
//
// Supported wildcard patterns:
//   - "prefix*" matches names starting with "prefix"
//   - "*suffix" matches names ending with "suffix"
//   - "*contains*" matches names containing "contains"
//   - "exact" matches names exactly
func Select(fields []Field, patterns []string) ([]Field, error) {
	if len(patterns) == 0 {
		return append([]Field(nil), fields...), nil
	}

	matched := make([]bool, len(fields))
	for _, pattern := range patterns {
		found := false
		for i, f := range fields {
			if matchesPattern(f.Name, pattern) {
				matched[i] = true
				found = true
			}
		}
		if !found {
			if suggestion := closestName(fields, pattern); suggestion != "" {
				return nil, zyerrors.Newf(zyerrors.ErrCodeInvalidRequest, "no field matches pattern %q (did you mean %q?)", pattern, suggestion)
			}
			return nil, zyerrors.Newf(zyerrors.ErrCodeInvalidRequest, "no field matches pattern %q", pattern)
		}
	}

	result := make([]Field, 0, len(fields))
	for i, f := range fields {
		if matched[i] {
			result = append(result, f)
		}
	}

	return result, nil
}

// closestName returns the field name nearest to a mistyped exact
// pattern, or "" when nothing is close enough. Wildcard patterns get
// no suggestion since they express intent, not a typo.
func closestName(fields []Field, pattern string) string {
	if strings.Contains(pattern, "*") {
		return ""
	}

	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, f := range fields {
		if d := levenshtein.ComputeDistance(pattern, f.Name); d < bestDistance {
			best = f.Name
			bestDistance = d
		}
	}

	return best
}

// matchesPattern checks if a name matches a wildcard pattern.
func matchesPattern(name, pattern string) bool {
	// No wildcard - exact match
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}

	// *contains* - substring match
	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		substr := strings.Trim(pattern, "*")
		return strings.Contains(name, substr)
	}

	// *suffix - ends with match
	if strings.HasPrefix(pattern, "*") {
		suffix := strings.TrimPrefix(pattern, "*")
		return strings.HasSuffix(name, suffix)
	}

	// prefix* - starts with match
	if strings.HasSuffix(pattern, "*") {
		prefix := strings.TrimSuffix(pattern, "*")
		return strings.HasPrefix(name, prefix)
	}

	return false
}
