package detect

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// End-of-book markers. "the end" must occupy the whole line so ordinary
// prose never terminates a chapter; the Project Gutenberg markers vary in
// wording and decoration, so a substring hit is enough.
var endMarkerPhrases = []string{
	"the end",
	"end of the project gutenberg ebook",
	"end of this project gutenberg ebook",
	"end of project gutenberg",
}

var endMarkerMatcher = ahocorasick.NewStringMatcher(endMarkerPhrases)

// isEndMarker reports whether line terminates the body of the book.
func isEndMarker(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	if l == "" {
		return false
	}
	for _, idx := range endMarkerMatcher.MatchThreadSafe([]byte(l)) {
		if endMarkerPhrases[idx] == "the end" {
			if l == "the end" || l == "the end." {
				return true
			}
			continue
		}
		return true
	}
	return false
}
