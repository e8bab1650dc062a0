package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kljensen/snowball"
)

// Extractor pulls the most salient words out of a text fragment. Detection
// callers use it to hint titles for pseudo-chapters that have none of their
// own.
type Extractor struct {
	stopWords map[string]bool
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

func NewExtractor() *Extractor {
	stopWords := map[string]bool{
		"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
		"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
		"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
		"that": true, "the": true, "to": true, "was": true, "were": true, "will": true,
		"with": true, "would": true, "could": true, "should": true, "may": true,
		"might": true, "can": true, "must": true, "shall": true, "do": true,
		"does": true, "did": true, "have": true, "had": true, "this": true,
		"these": true, "they": true, "them": true, "their": true, "his": true,
		"her": true, "she": true, "we": true, "you": true, "your": true,
		"our": true, "us": true, "me": true, "my": true, "i": true,
		"but": true, "not": true, "so": true, "then": true, "there": true,
		"when": true, "where": true, "who": true, "all": true, "into": true,
		"out": true, "up": true, "down": true, "said": true, "one": true,
	}
	return &Extractor{stopWords: stopWords}
}

// Extract returns up to limit keywords ranked by stem frequency, most
// frequent first, ties broken by first appearance. Each stem contributes
// its first surface form, so the result reads naturally in a title.
func (e *Extractor) Extract(text string, limit int) []string {
	text = nonWordRe.ReplaceAllString(strings.ToLower(text), " ")

	type entry struct {
		surface string
		count   int
		first   int
	}
	byStem := make(map[string]*entry)

	for i, word := range strings.Fields(text) {
		if len(word) < 3 || e.stopWords[word] {
			continue
		}
		stemmed, err := snowball.Stem(word, "english", true)
		if err != nil {
			stemmed = word
		}
		if ent, ok := byStem[stemmed]; ok {
			ent.count++
			continue
		}
		byStem[stemmed] = &entry{surface: word, count: 1, first: i}
	}

	entries := make([]*entry, 0, len(byStem))
	for _, ent := range byStem {
		entries = append(entries, ent)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].first < entries[j].first
	})

	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	var out []string
	for _, ent := range entries[:limit] {
		out = append(out, ent.surface)
	}
	return out
}
