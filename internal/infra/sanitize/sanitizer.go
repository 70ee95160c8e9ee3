// Package sanitize provides the concrete implementation of the domain
// Sanitizer service using bluemonday's strict policy.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"evently/internal/domain/service"
)

// htmlSanitizer strips all HTML markup from untrusted strings. Script tags
// are removed together with their contents; remaining text survives.
type htmlSanitizer struct {
	policy *bluemonday.Policy
}

// New is the constructor for htmlSanitizer.
// It returns the implementation as a service.Sanitizer interface.
func New() service.Sanitizer {
	return &htmlSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Clean removes every HTML element from s and trims whitespace. The policy
// escapes text content on the way out, so entities are unescaped back to
// plain text before returning; stored values are text, not HTML.
func (s *htmlSanitizer) Clean(value string) string {
	cleaned := s.policy.Sanitize(value)

	return strings.TrimSpace(html.UnescapeString(cleaned))
}
