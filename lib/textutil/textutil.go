package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Normalize lowercases and strips all whitespace so that keyword
// containment checks are insensitive to upstream formatting.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Trim(s, " \n\t")
	return whitespaceRegex.ReplaceAllString(s, "")
}

// ContainsAny reports whether the normalized value contains any of the
// given keywords.
func ContainsAny(value string, keywords []string) bool {
	value = Normalize(value)
	for _, k := range keywords {
		if strings.Contains(value, k) {
			return true
		}
	}
	return false
}
