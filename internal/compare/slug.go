package compare

import (
	"regexp"
	"strings"
)

var (
	separatorRuns = regexp.MustCompile(`[\s_]+`)
	hyphenRuns    = regexp.MustCompile(`-{2,}`)
)

// NormalizeSlug canonicalizes free-form comparison input: lowercase, trimmed,
// runs of whitespace or underscores become a single hyphen, hyphen runs
// collapse, and edge hyphens are stripped. Idempotent.
func NormalizeSlug(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = separatorRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SplitPair splits a normalized slug on the "-vs-" separator. ok is true only
// when the split yields exactly two non-empty tool tokens.
func SplitPair(slug string) (left, right string, ok bool) {
	parts := strings.Split(slug, "-vs-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
