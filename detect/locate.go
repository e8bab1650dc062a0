package detect

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// locate finds the heading line for each TOC entry, searching only past the
// TOC region. Entries with neither an exact heading nor a fuzzy title match
// are dropped; partial coverage is expected on noisy input.
func (d *Detector) locate(lines []string, entries []Record) []Record {
	start := min(d.cfg.LocatorOffset, len(lines))

	var located []Record
	for _, e := range entries {
		idx := findHeading(lines, start, headingPattern(e))
		if idx < 0 {
			idx = d.findFuzzyTitle(lines, start, e.Title)
		}
		if idx < 0 {
			d.logger.Debug("dropping unlocatable TOC entry",
				zap.Int("number", e.Number),
				zap.String("title", e.Title))
			continue
		}
		e.LineStart = idx
		located = append(located, e)
	}
	return located
}

// headingPattern matches a body heading for the entry's own identifier,
// standalone or with trailing text on the same line.
func headingPattern(e Record) *regexp.Regexp {
	id := strconv.Itoa(e.Number)
	if e.RomanForm != "" {
		id = e.RomanForm
	}
	return regexp.MustCompile(`(?i)^chapter\s+` + regexp.QuoteMeta(id) + `\b.*$`)
}

func findHeading(lines []string, start int, re *regexp.Regexp) int {
	for i := start; i < len(lines); i++ {
		if re.MatchString(strings.TrimSpace(lines[i])) {
			return i
		}
	}
	return -1
}

func (d *Detector) findFuzzyTitle(lines []string, start int, title string) int {
	for i := start; i < len(lines); i++ {
		if TitleSimilarity(lines[i], title) > d.cfg.LocateThreshold {
			return i
		}
	}
	return -1
}
