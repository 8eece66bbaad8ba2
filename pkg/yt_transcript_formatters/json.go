package yt_transcript_formatters

import (
	"encoding/json"

	"github.com/rudrodip/ytranscript/pkg/yt_transcript_models"
)

type jsonEntry struct {
	Text     string  `json:"text"`
	Duration float64 `json:"duration"`
	Offset   float64 `json:"offset"`
	Lang     string  `json:"lang,omitempty"`
}

type jsonTranscript struct {
	VideoID      string      `json:"video_id"`
	VideoTitle   string      `json:"video_title,omitempty"`
	LanguageCode string      `json:"language_code,omitempty"`
	Entries      []jsonEntry `json:"entries"`
}

// JSONFormatterOption is specifically for JSON formatter options
type JSONFormatterOption func(*JSONFormatter)

type JSONFormatter struct {
	BaseFormatter
	PrettyPrint bool
}

func NewJSONFormatter(baseOptions ...FormatterOption) *JSONFormatter {
	f := &JSONFormatter{
		BaseFormatter: BaseFormatter{
			IncludeTimestamps:   true,
			IncludeLanguageCode: true,
		},
		PrettyPrint: false,
	}

	for _, opt := range baseOptions {
		opt(&f.BaseFormatter)
	}
	return f
}

// WithPrettyPrint returns a function that sets the PrettyPrint option
func WithPrettyPrint(pretty bool) JSONFormatterOption {
	return func(f *JSONFormatter) {
		f.PrettyPrint = pretty
	}
}

// Configure allows applying JSON-specific options after creation
func (f *JSONFormatter) Configure(options ...JSONFormatterOption) {
	for _, opt := range options {
		opt(f)
	}
}

func (f *JSONFormatter) Format(transcript *yt_transcript_models.Transcript) (string, error) {
	out := jsonTranscript{
		VideoID:    transcript.VideoID,
		VideoTitle: transcript.VideoTitle,
		Entries:    make([]jsonEntry, len(transcript.Entries)),
	}

	if f.IncludeLanguageCode {
		out.LanguageCode = transcript.LanguageCode
	}

	for i, entry := range transcript.Entries {
		out.Entries[i] = jsonEntry{
			Text:     entry.Text,
			Duration: entry.Duration,
		}
		if f.IncludeTimestamps {
			out.Entries[i].Offset = entry.Offset
		}
		if f.IncludeLanguageCode {
			out.Entries[i].Lang = entry.Lang
		}
	}

	var (
		bytes []byte
		err   error
	)

	if f.PrettyPrint {
		bytes, err = json.MarshalIndent(out, "", "  ")
	} else {
		bytes, err = json.Marshal(out)
	}

	if err != nil {
		return "", err
	}

	return string(bytes), nil
}
