package htmlutil

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup from author-supplied article content
// before it reaches the persistence layer.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a new Sanitizer instance with configured policy.
func NewSanitizer() *Sanitizer {
	// UGCPolicy allows the formatting authors actually use (p, a, strong, em, ...)
	p := bluemonday.UGCPolicy()

	// Enforce nofollow and target=_blank on links
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &Sanitizer{
		policy: p,
	}
}

// SanitizeHTML sanitizes the given HTML string.
func (s *Sanitizer) SanitizeHTML(html string) string {
	return s.policy.Sanitize(html)
}

// SanitizeHTMLAndTrim sanitizes the HTML and trims surrounding whitespace.
func (s *Sanitizer) SanitizeHTMLAndTrim(html string) string {
	return strings.TrimSpace(s.SanitizeHTML(html))
}

// StripTags removes HTML tags from a string and returns plain text.
// It uses bluemonday's strict policy which strips all tags.
func StripTags(raw string) string {
	p := bluemonday.StrictPolicy()
	fields := strings.Fields(p.Sanitize(raw))
	return strings.Join(fields, " ")
}
