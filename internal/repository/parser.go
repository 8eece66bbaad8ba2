package repository

import (
	"fmt"
	"html"
	"regexp"
	"strconv"

	"github.com/rudrodip/ytranscript/pkg/yt_transcript_models"
)

// Caption documents are a flat run of <text> elements; a single pattern per
// element is all the XML handling this format needs. Content may not contain
// a nested '<'.
var captionLineRegex = regexp.MustCompile(`<text start="([^"]*)" dur="([^"]*)">([^<]*)</text>`)

// transcriptParser turns a caption XML document into ordered caption entries.
type transcriptParser struct{}

func NewTranscriptParser() *transcriptParser {
	return &transcriptParser{}
}

// Parse extracts every caption line in document order, decoding HTML entities
// in the content and stamping each entry with lang. A start or dur value that
// does not parse as a float fails the whole document; it means the page shape
// changed and zero-filled timestamps would silently corrupt the timeline.
// A document with no caption lines yields an empty, non-nil slice.
func (p *transcriptParser) Parse(data string, lang string) ([]yt_transcript_models.CaptionEntry, error) {
	matches := captionLineRegex.FindAllStringSubmatch(data, -1)

	entries := make([]yt_transcript_models.CaptionEntry, 0, len(matches))
	for _, match := range matches {
		start, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse caption start %q: %w", match[1], err)
		}

		duration, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse caption duration %q: %w", match[2], err)
		}

		entries = append(entries, yt_transcript_models.CaptionEntry{
			Text:     html.UnescapeString(match[3]),
			Duration: duration,
			Offset:   start,
			Lang:     lang,
		})
	}

	return entries, nil
}
