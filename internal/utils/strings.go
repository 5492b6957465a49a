package utils

import (
	"regexp"
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail performs the same shallow shape check the registration form does.
func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a page name into a URL slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
