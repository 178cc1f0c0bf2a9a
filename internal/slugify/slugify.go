// Package slugify derives URL slugs from free-text titles.
package slugify

import (
	"regexp"
	"strings"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	edgeDash = regexp.MustCompile(`^-|-$`)
)

// Make lowercases the title, collapses every run of non-alphanumeric
// characters to a single hyphen and strips leading/trailing hyphens.
func Make(title string) string {
	s := strings.ToLower(title)
	s = nonAlnum.ReplaceAllString(s, "-")
	return edgeDash.ReplaceAllString(s, "")
}
