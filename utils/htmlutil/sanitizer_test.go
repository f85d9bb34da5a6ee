package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML_RemovesScript(t *testing.T) {
	s := NewSanitizer()

	out := s.SanitizeHTML(`<p>hello</p><script>alert("x")</script>`)
	assert.Equal(t, "<p>hello</p>", out)
}

func TestSanitizeHTML_KeepsFormatting(t *testing.T) {
	s := NewSanitizer()

	out := s.SanitizeHTML("<p><strong>bold</strong> and <em>italic</em></p>")
	assert.Equal(t, "<p><strong>bold</strong> and <em>italic</em></p>", out)
}

func TestSanitizeHTML_ForcesNoFollowOnLinks(t *testing.T) {
	s := NewSanitizer()

	out := s.SanitizeHTML(`<a href="https://example.com">link</a>`)
	assert.Contains(t, out, `rel="nofollow`)
	assert.Contains(t, out, `target="_blank"`)
}

func TestSanitizeHTMLAndTrim(t *testing.T) {
	s := NewSanitizer()

	out := s.SanitizeHTMLAndTrim("  <p>padded</p>  ")
	assert.Equal(t, "<p>padded</p>", out)
}

func TestStripTags(t *testing.T) {
	out := StripTags("<h1>Title</h1>\n<p>Body   text</p>")
	assert.Equal(t, "Title Body text", out)
}
