// Package sanitize holds the field-level validation and truncation rules
// applied to text before it is emitted as registry tag content.
package sanitize

import (
	"regexp"
	"strings"
)

// htmlTagPattern matches anything that looks like an HTML tag.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// IsAcceptable reports whether s is usable as registry tag text: non-empty
// after trimming whitespace and free of HTML tags.
func IsAcceptable(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return !htmlTagPattern.MatchString(s)
}

// ellipsis marks a truncated value.
const ellipsis = "..."

// Truncate caps s at max characters, replacing the tail with "..." when s is
// longer than max. The returned string never exceeds max characters.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return ellipsis[:max]
	}
	return s[:max-len(ellipsis)] + ellipsis
}
