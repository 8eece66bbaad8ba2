package yt_transcript_formatters

import (
	"fmt"
	"strings"

	"github.com/rudrodip/ytranscript/pkg/yt_transcript_models"
)

type TextFormatter struct {
	BaseFormatter
}

func NewTextFormatter(options ...FormatterOption) *TextFormatter {
	f := &TextFormatter{
		BaseFormatter: BaseFormatter{
			IncludeTimestamps:   true,
			IncludeLanguageCode: true,
		},
	}

	for _, opt := range options {
		opt(&f.BaseFormatter)
	}

	return f
}

func (t *TextFormatter) Format(transcript *yt_transcript_models.Transcript) (string, error) {
	var text strings.Builder

	if t.IncludeLanguageCode {
		text.WriteString(fmt.Sprintf("Language: %s (%s)\n", transcript.Language, transcript.LanguageCode))
	} else {
		text.WriteString(fmt.Sprintf("Language: %s\n", transcript.Language))
	}

	for _, entry := range transcript.Entries {
		if t.IncludeTimestamps {
			text.WriteString(fmt.Sprintf("%f: %s\n", entry.Offset, entry.Text))
		} else {
			text.WriteString(entry.Text + "\n")
		}
	}

	return text.String(), nil
}
