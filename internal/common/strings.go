package common

import "strings"

// UnknownStr is the String form of out-of-range enum values.
const UnknownStr = "unknown"

// ContainsAny reports whether s contains any of the non-empty fragments.
func ContainsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if f != "" && strings.Contains(s, f) {
			return true
		}
	}

	return false
}

// HasSuffixFold reports whether s ends with any of the suffixes, ignoring case.
func HasSuffixFold(s string, suffixes []string) bool {
	lower := strings.ToLower(s)
	for _, suffix := range suffixes {
		if suffix != "" && strings.HasSuffix(lower, strings.ToLower(suffix)) {
			return true
		}
	}

	return false
}
