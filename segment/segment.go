package segment

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Bracket is a target reader age range.
type Bracket string

const (
	Bracket3to5  Bracket = "3-5"
	Bracket6to8  Bracket = "6-8"
	Bracket9to12 Bracket = "9-12"
)

// ParseBracket converts a string to a Bracket.
func ParseBracket(s string) (Bracket, error) {
	switch b := Bracket(s); b {
	case Bracket3to5, Bracket6to8, Bracket9to12:
		return b, nil
	}
	return "", fmt.Errorf("unknown age bracket %q", s)
}

// TargetWords returns the per-chunk word budget for the bracket, or 0 for
// an unknown bracket.
func (b Bracket) TargetWords() int {
	switch b {
	case Bracket3to5:
		return 150
	case Bracket6to8:
		return 400
	case Bracket9to12:
		return 800
	}
	return 0
}

// Segmenter divides running text into age-calibrated chunks. It holds no
// state between calls and is safe for concurrent use.
type Segmenter struct {
	cfg    Config
	logger *zap.Logger
}

func NewSegmenter(cfg Config, logger *zap.Logger) *Segmenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Segmenter{
		cfg:    cfg.withDefaults(),
		logger: logger,
	}
}

// ForAge splits text into chunks sized for the bracket, preferring
// paragraph boundaries and falling back to a fixed word budget when the
// natural split comes out degenerate. An unknown bracket or empty input
// yields nil.
func (s *Segmenter) ForAge(text string, bracket Bracket) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	target := bracket.TargetWords()
	if target <= 0 {
		return nil
	}

	chunks := s.naturalBreaks(text, target)
	if s.acceptable(chunks, target) {
		s.logger.Debug("segmented on paragraph breaks",
			zap.String("bracket", string(bracket)),
			zap.Int("chunks", len(chunks)))
		return chunks
	}

	s.logger.Debug("natural break result rejected, using fixed-length split",
		zap.String("bracket", string(bracket)),
		zap.Int("chunks", len(chunks)))
	return s.fixedLength(text, target)
}

var paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)

func splitParagraphs(text string) []string {
	parts := paragraphSplitRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// naturalBreaks accumulates whole paragraphs into chunks. A paragraph that
// would push the running word count past the ceiling closes the current
// chunk and opens the next one, so no paragraph is ever split.
func (s *Segmenter) naturalBreaks(text string, target int) []string {
	ceiling := int(float64(target) * s.cfg.CeilingFactor)

	var chunks []string
	var current []string
	words := 0
	for _, p := range splitParagraphs(text) {
		pw := len(strings.Fields(p))
		if words > 0 && words+pw > ceiling {
			chunks = append(chunks, strings.Join(current, "\n\n"))
			current = nil
			words = 0
		}
		current = append(current, p)
		words += pw
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n\n"))
	}
	return chunks
}

// acceptable is the quality check on a natural-break result: at least two
// chunks, none shorter than the minimum fraction of the target.
func (s *Segmenter) acceptable(chunks []string, target int) bool {
	if len(chunks) < 2 {
		return false
	}
	floor := int(float64(target) * s.cfg.MinChunkFraction)
	for _, c := range chunks {
		if len(strings.Fields(c)) < floor {
			return false
		}
	}
	return true
}

// fixedLength re-splits by raw word count against a character budget of
// target words times CharsPerWord, reusing the len(word)+1 length proxy so
// chunk sizes line up with the rest of the pipeline's estimates. Chunks are
// bounded and predictable at the cost of possibly splitting a paragraph.
func (s *Segmenter) fixedLength(text string, target int) []string {
	budget := target * s.cfg.CharsPerWord

	var chunks []string
	var current []string
	size := 0
	for _, w := range strings.Fields(text) {
		current = append(current, w)
		size += len(w) + 1
		if size >= budget {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
			size = 0
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}
