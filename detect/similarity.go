package detect

import (
	"regexp"
	"strings"
)

var punctStripper = regexp.MustCompile(`[^a-z0-9\s]+`)

func wordSet(s string) map[string]struct{} {
	s = punctStripper.ReplaceAllString(strings.ToLower(s), " ")
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}

// TitleSimilarity scores two short fragments by Jaccard similarity of their
// distinct word sets, lowercased with punctuation stripped. Returns a value
// in [0, 1]. This is a bag-of-words heuristic, not an edit distance; the
// locator and extractor thresholds are calibrated against this exact metric.
func TitleSimilarity(a, b string) float64 {
	as, bs := wordSet(a), wordSet(b)
	if len(as) == 0 || len(bs) == 0 {
		return 0
	}
	inter := 0
	for w := range as {
		if _, ok := bs[w]; ok {
			inter++
		}
	}
	union := len(as) + len(bs) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
