package segment

// Config carries the segmentation tunables.
type Config struct {
	// CeilingFactor caps a natural-break chunk at CeilingFactor times the
	// bracket's word target.
	CeilingFactor float64 `yaml:"ceiling_factor"`
	// MinChunkFraction rejects a natural-break result containing any chunk
	// below this fraction of the target.
	MinChunkFraction float64 `yaml:"min_chunk_fraction"`
	// CharsPerWord is the average per-word character budget used by the
	// fixed-length fallback and the sentence strategy.
	CharsPerWord int `yaml:"chars_per_word"`
	// SentenceOverlap is the character overlap between adjacent chunks in
	// the sentence strategy.
	SentenceOverlap int `yaml:"sentence_overlap"`
}

// DefaultConfig returns the default segmentation configuration
func DefaultConfig() Config {
	return Config{
		CeilingFactor:    1.5,
		MinChunkFraction: 1.0 / 3.0,
		CharsPerWord:     6,
		SentenceOverlap:  50,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CeilingFactor <= 0 {
		c.CeilingFactor = d.CeilingFactor
	}
	if c.MinChunkFraction <= 0 {
		c.MinChunkFraction = d.MinChunkFraction
	}
	if c.CharsPerWord <= 0 {
		c.CharsPerWord = d.CharsPerWord
	}
	if c.SentenceOverlap <= 0 {
		c.SentenceOverlap = d.SentenceOverlap
	}
	return c
}
