package detect

import (
	"strings"

	"go.uber.org/zap"
)

// Detector runs the structural detection pipeline: TOC parsing, heading
// location and content extraction first, with a direct heading scan as
// fallback. It holds no state between calls; Detect is a pure function over
// its input and is safe for concurrent use.
type Detector struct {
	cfg    Config
	logger *zap.Logger
}

func NewDetector(cfg Config, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{
		cfg:    cfg.withDefaults(),
		logger: logger,
	}
}

// Detect splits text into chapters. Absence of structure is not an error:
// when neither strategy finds chapters the result is empty with MethodNone.
// The input is expected to be boilerplate-stripped, \n-delimited text.
func (d *Detector) Detect(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Method: MethodNone}
	}
	lines := strings.Split(text, "\n")

	if entries := d.parseTOC(lines); len(entries) > 0 {
		if located := d.locate(lines, entries); len(located) > 0 {
			enriched := d.attachContent(lines, located)
			chapters := make([]Chapter, len(enriched))
			for i, r := range enriched {
				chapters[i] = Chapter{Number: r.Number, Title: r.Title, Content: r.Content}
			}
			d.logger.Info("chapters detected from table of contents",
				zap.Int("count", len(chapters)))
			return Result{Chapters: chapters, Method: MethodTOC}
		}
	}

	if chapters := d.patternChapters(lines); len(chapters) > 0 {
		d.logger.Info("chapters detected from heading scan",
			zap.Int("count", len(chapters)))
		return Result{Chapters: chapters, Method: MethodRegex}
	}

	d.logger.Info("no chapter structure detected")
	return Result{Method: MethodNone}
}
