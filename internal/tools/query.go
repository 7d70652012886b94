package tools

import (
	"regexp"
	"strings"
)

var (
	queryPrefixRe = regexp.MustCompile(`(?i)^(what is|what are|tell me about|search for|find|information on)\s+`)
	querySuffixRe = regexp.MustCompile(`\?$`)
)

// CleanPlantQuery strips interrogative prefixes and a trailing question mark
// from a natural-language query so the remainder can be used as a search
// term. If stripping leaves nothing, the trimmed original is returned.
func CleanPlantQuery(query string) string {
	cleaned := strings.TrimSpace(query)
	if cleaned == "" {
		return ""
	}

	cleaned = strings.TrimSpace(queryPrefixRe.ReplaceAllString(cleaned, ""))
	cleaned = strings.TrimSpace(querySuffixRe.ReplaceAllString(cleaned, ""))

	if cleaned == "" {
		return strings.TrimSpace(query)
	}
	return cleaned
}
