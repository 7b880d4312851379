package utils

import (
	"regexp"
	"strings"
)

var (
	slugCheck   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
)

// IsValidSlug reports whether s is lowercase letters, numbers and hyphens.
func IsValidSlug(s string) bool {
	return slugCheck.MatchString(s)
}

// Slugify derives a URL key from a title: "Brand Launch 2024" -> "brand-launch-2024".
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalid.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
