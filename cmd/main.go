package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"chapterize/config"
	"chapterize/detect"
	"chapterize/keywords"
	"chapterize/segment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	var (
		inPath     = flag.String("in", "", "input text file (default: stdin)")
		configPath = flag.String("config", "", "optional yaml config file")
		mode       = flag.String("mode", "detect", "detect or age")
		age        = flag.String("age", "", "age bracket: 3-5, 6-8 or 9-12")
		strategy   = flag.String("strategy", "natural", "age mode strategy: natural or sentence")
	)
	flag.Parse()

	// =========
	// Config
	// =========
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// =========
	// Logging
	// =========
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	text, err := readInput(*inPath)
	if err != nil {
		logger.Fatal("failed to read input", zap.Error(err))
	}

	switch *mode {
	case "detect":
		runDetect(cfg, logger, text, *age, *strategy)
	case "age":
		runAge(cfg, logger, text, *age, *strategy)
	default:
		logger.Fatal("unknown mode", zap.String("mode", *mode))
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// runDetect extracts the book's own chapter structure. When no structure is
// found and an age bracket was given, it composes the fallback to
// age-calibrated segmentation.
func runDetect(cfg *config.Config, logger *zap.Logger, text, age, strategy string) {
	detector := detect.NewDetector(cfg.Detect, logger)
	result := detector.Detect(text)
	logger.Info("detection finished",
		zap.String("method", string(result.Method)),
		zap.Int("chapters", len(result.Chapters)))

	if result.Method != detect.MethodNone {
		emit(result.Chapters)
		return
	}
	if age == "" {
		emit([]detect.Chapter{})
		return
	}
	runAge(cfg, logger, text, age, strategy)
}

// runAge segments the text for an age bracket and assigns positional titles
// with a keyword hint, since segmented chunks carry no titles of their own.
func runAge(cfg *config.Config, logger *zap.Logger, text, age, strategy string) {
	bracket, err := segment.ParseBracket(age)
	if err != nil {
		logger.Fatal("invalid age bracket", zap.String("age", age), zap.Error(err))
	}

	segmenter := segment.NewSegmenter(cfg.Segment, logger)
	var chunks []string
	switch strategy {
	case "natural":
		chunks = segmenter.ForAge(text, bracket)
	case "sentence":
		chunks, err = segmenter.SentenceChunks(text, bracket)
		if err != nil {
			logger.Fatal("sentence segmentation failed", zap.Error(err))
		}
	default:
		logger.Fatal("unknown strategy", zap.String("strategy", strategy))
	}
	logger.Info("segmentation finished",
		zap.String("bracket", string(bracket)),
		zap.Int("chunks", len(chunks)))

	emit(pseudoChapters(chunks))
}

func pseudoChapters(chunks []string) []detect.Chapter {
	extractor := keywords.NewExtractor()
	chapters := make([]detect.Chapter, 0, len(chunks))
	for i, chunk := range chunks {
		title := fmt.Sprintf("Part %d", i+1)
		if kw := extractor.Extract(chunk, 2); len(kw) > 0 {
			title = fmt.Sprintf("Part %d: %s", i+1, strings.Join(kw, " "))
		}
		chapters = append(chapters, detect.Chapter{
			Number:  i + 1,
			Title:   title,
			Content: chunk,
		})
	}
	return chapters
}

func emit(chapters []detect.Chapter) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(chapters); err != nil {
		log.Fatalf("failed to encode output: %v", err)
	}
}
