package sanitizer

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLStripperer removes markup from user supplied text
type HTMLStripperer interface {
	StripHTML(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

var _ HTMLStripperer = (*HTMLStripper)(nil)

// NewHTMLStripper return a new instance of blue monday policy
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

// maxStripPasses bounds the decode loop for deeply nested entity encodings
const maxStripPasses = 8

// StripHTML drops every tag and returns plain text with entities decoded
// ("A &amp; B" becomes "A & B"). Decoding can surface markup that was
// entity-encoded in the input, so sanitize and decode repeat until the text
// is stable.
func (hs *HTMLStripper) StripHTML(s string) string {
	for i := 0; i < maxStripPasses; i++ {
		out := html.UnescapeString(hs.bm.Sanitize(s))
		if out == s {
			return out
		}
		s = out
	}
	// still changing: keep the escaped form rather than decoded markup
	return hs.bm.Sanitize(s)
}
