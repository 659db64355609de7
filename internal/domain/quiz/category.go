package quiz

import "regexp"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValidSlug valida o identificador de categoria (impede path traversal).
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}
