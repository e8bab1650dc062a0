package segment

import (
	"strings"
	"testing"
)

func repeatWords(word string, n int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n))
}

func TestParseBracket(t *testing.T) {
	for _, s := range []string{"3-5", "6-8", "9-12"} {
		if _, err := ParseBracket(s); err != nil {
			t.Errorf("ParseBracket(%q) unexpected error: %v", s, err)
		}
	}
	for _, s := range []string{"", "4-6", "adult"} {
		if _, err := ParseBracket(s); err == nil {
			t.Errorf("ParseBracket(%q) expected error, got none", s)
		}
	}
}

func TestTargetWords(t *testing.T) {
	testCases := []struct {
		bracket Bracket
		want    int
	}{
		{Bracket3to5, 150},
		{Bracket6to8, 400},
		{Bracket9to12, 800},
		{Bracket("4-6"), 0},
	}
	for _, tc := range testCases {
		if got := tc.bracket.TargetWords(); got != tc.want {
			t.Errorf("TargetWords(%q) = %d, want %d", tc.bracket, got, tc.want)
		}
	}
}

func TestForAgeNaturalBreaks(t *testing.T) {
	// Twenty paragraphs of 100 words each. At a 150-word target the
	// ceiling is 225, so paragraphs pair up into 200-word chunks.
	paragraph := repeatWords("stone", 100)
	text := strings.Repeat(paragraph+"\n\n", 20)

	s := NewSegmenter(DefaultConfig(), nil)
	chunks := s.ForAge(text, Bracket3to5)

	if len(chunks) != 10 {
		t.Fatalf("expected 10 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		words := len(strings.Fields(c))
		if words < 50 || words > 225 {
			t.Errorf("chunk %d: %d words, want within [50, 225]", i, words)
		}
	}
}

func TestForAgeNeverSplitsParagraphs(t *testing.T) {
	paragraphs := []string{
		repeatWords("river", 120),
		repeatWords("forest", 90),
		repeatWords("meadow", 110),
		repeatWords("harbor", 100),
		repeatWords("garden", 130),
	}
	text := strings.Join(paragraphs, "\n\n")

	s := NewSegmenter(DefaultConfig(), nil)
	chunks := s.ForAge(text, Bracket3to5)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for _, p := range paragraphs {
		hits := 0
		for _, c := range chunks {
			hits += strings.Count(c, p)
		}
		if hits != 1 {
			t.Errorf("paragraph %q... appears %d times across chunks, want exactly 1", p[:12], hits)
		}
	}
}

func TestForAgeFixedLengthFallback(t *testing.T) {
	// One continuous paragraph cannot satisfy the minimum chunk count, so
	// the fixed-length pass takes over.
	text := repeatWords("stone", 2000)

	s := NewSegmenter(DefaultConfig(), nil)
	chunks := s.ForAge(text, Bracket3to5)

	if len(chunks) < 2 {
		t.Fatalf("expected fixed-length fallback to produce multiple chunks, got %d", len(chunks))
	}

	budget := 150 * 6
	longest := len("stone")
	total := 0
	for i, c := range chunks {
		if len(c) > budget+longest {
			t.Errorf("chunk %d: %d chars, exceeds budget bound %d", i, len(c), budget+longest)
		}
		total += len(strings.Fields(c))
	}
	if total != 2000 {
		t.Errorf("chunks hold %d words in total, want 2000", total)
	}
}

func TestForAgeRejectsUndersizedChunk(t *testing.T) {
	// A 220-word paragraph followed by a 10-word one forces a natural
	// chunk below a third of the target, which rejects the natural pass.
	long := repeatWords("stone", 220)
	text := long + "\n\n" + repeatWords("pebble", 10)

	s := NewSegmenter(DefaultConfig(), nil)
	chunks := s.ForAge(text, Bracket3to5)

	for _, c := range chunks {
		if strings.Contains(c, long) {
			t.Error("long paragraph survived intact; expected the fixed-length pass to re-split it")
		}
	}
}

func TestForAgeEmptyAndUnknown(t *testing.T) {
	s := NewSegmenter(DefaultConfig(), nil)
	if chunks := s.ForAge("", Bracket3to5); chunks != nil {
		t.Errorf("empty input: got %d chunks", len(chunks))
	}
	if chunks := s.ForAge("   \n\n \t", Bracket6to8); chunks != nil {
		t.Errorf("whitespace input: got %d chunks", len(chunks))
	}
	if chunks := s.ForAge("some words here", Bracket("4-6")); chunks != nil {
		t.Errorf("unknown bracket: got %d chunks", len(chunks))
	}
}

func TestSentenceChunks(t *testing.T) {
	text := strings.Repeat("The fox ran across the field. The hen watched from the fence. ", 80)

	s := NewSegmenter(DefaultConfig(), nil)
	chunks, err := s.SentenceChunks(text, Bracket3to5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if strings.TrimSpace(c) == "" {
			t.Errorf("chunk %d is blank", i)
		}
	}
}

func TestSentenceChunksUnknownBracket(t *testing.T) {
	s := NewSegmenter(DefaultConfig(), nil)
	if _, err := s.SentenceChunks("words", Bracket("adult")); err == nil {
		t.Error("expected error for unknown bracket")
	}
}

func TestSentenceChunksEmpty(t *testing.T) {
	s := NewSegmenter(DefaultConfig(), nil)
	chunks, err := s.SentenceChunks("  \n ", Bracket6to8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunks != nil {
		t.Errorf("expected nil chunks, got %d", len(chunks))
	}
}
