package detect

import "strings"

// patternChapters scans every line for a chapter heading and carves the
// text between consecutive headings. Numbering is positional regardless of
// any numeral in the heading text: a stray "Chapter 5" appearing second
// still becomes chapter 2. This is documented behavior, kept so detection
// output stays stable on noisy input.
func (d *Detector) patternChapters(lines []string) []Chapter {
	var starts []int
	for i, line := range lines {
		if anyHeadingRe.MatchString(line) {
			starts = append(starts, i)
		}
	}
	if len(starts) == 0 {
		return nil
	}

	chapters := make([]Chapter, 0, len(starts))
	for i, s := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		chapters = append(chapters, Chapter{
			Number:  i + 1,
			Title:   strings.TrimSpace(lines[s]),
			Content: strings.Join(trimBlank(lines[s+1:end]), "\n"),
		})
	}
	return chapters
}
