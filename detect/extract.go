package detect

import (
	"regexp"
	"strings"
)

// anyHeadingRe matches any chapter heading line regardless of identifier,
// leading whitespace tolerated.
var anyHeadingRe = regexp.MustCompile(`(?i)^\s*chapter\s+([ivxlcdm]+|\d+)\b`)

// attachContent fills Content for each located chapter. Content begins on
// the first line after the heading that is neither a near-duplicate of the
// title nor another stacked heading line, and runs to the next chapter's
// heading, or for the final chapter to the first end-of-book marker within
// the bounded window, else to the end of the document.
func (d *Detector) attachContent(lines []string, located []Record) []Record {
	for i := range located {
		start := located[i].LineStart + 1
		for start < len(lines) {
			line := strings.TrimSpace(lines[start])
			if TitleSimilarity(line, located[i].Title) > d.cfg.TitleSkipThreshold ||
				anyHeadingRe.MatchString(line) {
				start++
				continue
			}
			break
		}

		end := len(lines)
		if i+1 < len(located) {
			end = located[i+1].LineStart
		} else {
			end = d.findBodyEnd(lines, located[i].LineStart)
		}
		if end < start {
			end = start
		}
		located[i].Content = strings.Join(trimBlank(lines[start:end]), "\n")
	}
	return located
}

// findBodyEnd bounds the final chapter at the first end-of-book marker
// within EndMarkerWindow lines, starting EndMarkerSkip lines past the
// chapter heading. No marker inside the window means the chapter runs to
// the end of the document.
func (d *Detector) findBodyEnd(lines []string, headingLine int) int {
	from := headingLine + d.cfg.EndMarkerSkip
	if from > len(lines) {
		return len(lines)
	}
	to := min(from+d.cfg.EndMarkerWindow, len(lines))
	for i := from; i < to; i++ {
		if isEndMarker(lines[i]) {
			return i
		}
	}
	return len(lines)
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
