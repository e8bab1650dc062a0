package segment

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
)

// SentenceChunks is an opt-in alternative to ForAge for callers who want
// overlap-aware chunks that prefer sentence boundaries over a hard word
// budget. Chunk size derives from the bracket's word target through the
// same character-per-word proxy the fixed-length pass uses.
func (s *Segmenter) SentenceChunks(text string, bracket Bracket) ([]string, error) {
	target := bracket.TargetWords()
	if target <= 0 {
		return nil, fmt.Errorf("unknown age bracket %q", bracket)
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(target*s.cfg.CharsPerWord),
		textsplitter.WithChunkOverlap(s.cfg.SentenceOverlap),
		textsplitter.WithSeparators([]string{"\n\n", "\n", ".", "!", "?", " ", ""}),
		textsplitter.WithKeepSeparator(true),
	)
	chunks, err := splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("failed to split text: %w", err)
	}

	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out, nil
}
