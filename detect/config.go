package detect

// Config carries the windowed-search tunables. The windows are heuristics
// that keep pathological inputs bounded, not correctness guarantees.
type Config struct {
	// TOCScanLines bounds how far into the document the contents heading
	// is sought.
	TOCScanLines int `yaml:"toc_scan_lines"`
	// TOCWindowLines is how many lines after the contents heading are
	// parsed for entries.
	TOCWindowLines int `yaml:"toc_window_lines"`
	// LocatorOffset is the first line considered when locating chapter
	// headings, skipping the TOC region so entries never match themselves.
	LocatorOffset int `yaml:"locator_offset"`
	// LocateThreshold is the minimum fuzzy title similarity for a line to
	// count as a chapter start when no exact heading exists.
	LocateThreshold float64 `yaml:"locate_threshold"`
	// TitleSkipThreshold is the similarity above which a line directly
	// after a heading is treated as a repeated title line and excluded
	// from content.
	TitleSkipThreshold float64 `yaml:"title_skip_threshold"`
	// EndMarkerWindow bounds the end-of-book marker search for the final
	// chapter, keeping publisher appendices out without scanning the whole
	// remainder of a large document.
	EndMarkerWindow int `yaml:"end_marker_window"`
	// EndMarkerSkip is how many lines past the final chapter heading the
	// marker search begins.
	EndMarkerSkip int `yaml:"end_marker_skip"`
}

// DefaultConfig returns the default detection configuration
func DefaultConfig() Config {
	return Config{
		TOCScanLines:       300,
		TOCWindowLines:     50,
		LocatorOffset:      50,
		LocateThreshold:    0.8,
		TitleSkipThreshold: 0.7,
		EndMarkerWindow:    2000,
		EndMarkerSkip:      10,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TOCScanLines <= 0 {
		c.TOCScanLines = d.TOCScanLines
	}
	if c.TOCWindowLines <= 0 {
		c.TOCWindowLines = d.TOCWindowLines
	}
	if c.LocatorOffset <= 0 {
		c.LocatorOffset = d.LocatorOffset
	}
	if c.LocateThreshold <= 0 {
		c.LocateThreshold = d.LocateThreshold
	}
	if c.TitleSkipThreshold <= 0 {
		c.TitleSkipThreshold = d.TitleSkipThreshold
	}
	if c.EndMarkerWindow <= 0 {
		c.EndMarkerWindow = d.EndMarkerWindow
	}
	if c.EndMarkerSkip <= 0 {
		c.EndMarkerSkip = d.EndMarkerSkip
	}
	return c
}
