package yt_transcript_models

// CaptionEntry is a single time-aligned line of a transcript. Offset and
// Duration are seconds; Text has HTML entities decoded; Lang is the language
// code of the track the entry came from.
type CaptionEntry struct {
	Text     string  `json:"text"`
	Duration float64 `json:"duration"`
	Offset   float64 `json:"offset"`
	Lang     string  `json:"lang"`
}

// TranscriptConfig holds caller preferences for a fetch. An empty Lang means
// the platform's default track (typically the original language).
type TranscriptConfig struct {
	Lang string
}

// Transcript is one fetched caption track together with its video metadata.
// Entries preserve document order.
type Transcript struct {
	VideoID      string         `json:"video_id"`
	VideoTitle   string         `json:"video_title"`
	Language     string         `json:"language"`
	LanguageCode string         `json:"language_code"`
	IsGenerated  bool           `json:"is_generated"`
	Entries      []CaptionEntry `json:"entries"`
}
