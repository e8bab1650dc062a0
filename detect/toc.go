package detect

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	tocHeadingRe = regexp.MustCompile(`(?i)^(contents|table of contents|index)$`)
	tocRomanRe   = regexp.MustCompile(`(?i)^\s*chapter\s+([ivxlcdm]+)\.\s*(.+)$`)
	tocNumericRe = regexp.MustCompile(`(?i)^\s*chapter\s+(\d+)\.\s*(.+)$`)

	// Page-number artifacts at the end of a TOC title, in stripping order:
	// dot leaders with an optional page number, then ". <digits>", then a
	// bare trailing number.
	dotLeaderRe       = regexp.MustCompile(`\s*\.{2,}\s*\d*\s*$`)
	trailingDotPageRe = regexp.MustCompile(`\.\s*\d+\s*$`)
	trailingPageRe    = regexp.MustCompile(`\s+\d+\s*$`)
)

// parseTOC scans the opening of the document for a contents heading and
// parses the entries in the window beneath it. Entries come back sorted
// ascending by number regardless of document order; duplicate numbers are
// kept as-is. A missing or unparseable TOC yields nil, never an error.
func (d *Detector) parseTOC(lines []string) []Record {
	heading := -1
	limit := min(d.cfg.TOCScanLines, len(lines))
	for i := 0; i < limit; i++ {
		if tocHeadingRe.MatchString(strings.TrimSpace(lines[i])) {
			heading = i
			break
		}
	}
	if heading < 0 {
		return nil
	}

	end := min(heading+1+d.cfg.TOCWindowLines, len(lines))
	var entries []Record
	for _, raw := range lines[heading+1 : end] {
		line := strings.TrimSpace(raw)
		if m := tocRomanRe.FindStringSubmatch(line); m != nil {
			token := strings.ToUpper(m[1])
			n, err := RomanToInt(token)
			if err != nil {
				d.logger.Debug("skipping TOC entry with malformed roman numeral",
					zap.String("token", m[1]))
				continue
			}
			entries = append(entries, Record{
				Number:    n,
				RomanForm: token,
				Title:     cleanTitle(m[2]),
				Format:    FormatRoman,
			})
			continue
		}
		if m := tocNumericRe.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			entries = append(entries, Record{
				Number: n,
				Title:  cleanTitle(m[2]),
				Format: FormatNumeric,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Number < entries[j].Number })
	return entries
}

func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = dotLeaderRe.ReplaceAllString(s, "")
	s = trailingDotPageRe.ReplaceAllString(s, "")
	s = trailingPageRe.ReplaceAllString(s, "")
	return strings.TrimRight(s, ". ")
}
