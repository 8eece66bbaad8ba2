package service

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/rudrodip/ytranscript/internal/repository"
	yterrors "github.com/rudrodip/ytranscript/pkg/yt_transcript_errors"
	"github.com/rudrodip/ytranscript/pkg/yt_transcript_models"
)

// videoIDRegex recognizes the watch?v=, /v/, /embed/, youtu.be/ and
// channel-path URL shapes, capturing the 11-character video id.
var videoIDRegex = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// Markers scanned for in the watch page body, in precedence order.
const (
	captchaMarker     = `class="g-recaptcha"`
	playabilityMarker = `"playabilityStatus":`
	captionsAnchor    = `"captions":`
	captionsEnd       = `,"videoDetails`
)

type TranscriptService interface {
	GetTranscript(ctx context.Context, input string, config *yt_transcript_models.TranscriptConfig) (*yt_transcript_models.Transcript, error)
}

type transcriptService struct {
	fetcher repository.HTMLFetcherType
}

func NewTranscriptService(fetcher repository.HTMLFetcherType) *transcriptService {
	return &transcriptService{
		fetcher: fetcher,
	}
}

// GetTranscript resolves the video id from input, scrapes the watch page for
// the embedded captions metadata, picks the track matching config.Lang (or
// the platform's first track when no language was asked for) and downloads
// and parses its caption document. Errors from each stage propagate
// unchanged; the caller pattern-matches on the kinds in yt_transcript_errors.
func (t *transcriptService) GetTranscript(ctx context.Context, input string, config *yt_transcript_models.TranscriptConfig) (*yt_transcript_models.Transcript, error) {
	videoID, err := retrieveVideoID(input)
	if err != nil {
		return nil, err
	}

	lang := ""
	if config != nil {
		lang = config.Lang
	}

	body, err := t.fetcher.FetchVideo(ctx, videoID, lang)
	if err != nil {
		return nil, err
	}
	page := string(body)

	captionsJSON, err := extractCaptionsJSON(page, videoID)
	if err != nil {
		return nil, err
	}

	track, err := selectCaptionTrack(captionsJSON, lang, videoID)
	if err != nil {
		return nil, err
	}

	captionsBody, err := t.fetcher.Fetch(ctx, track.BaseURL, lang, nil)
	if err != nil {
		return nil, err
	}

	entries, err := repository.NewTranscriptParser().Parse(string(captionsBody), track.LanguageCode)
	if err != nil {
		return nil, err
	}

	return &yt_transcript_models.Transcript{
		VideoID:      videoID,
		VideoTitle:   extractTitle(page),
		Language:     track.Name.SimpleText,
		LanguageCode: track.LanguageCode,
		IsGenerated:  track.Kind == "asr",
		Entries:      entries,
	}, nil
}

// retrieveVideoID accepts an 11-character id verbatim, otherwise extracts
// the id from any of the recognized URL shapes.
func retrieveVideoID(input string) (string, error) {
	if len(input) == 11 {
		return input, nil
	}
	if match := videoIDRegex.FindStringSubmatch(input); match != nil {
		return match[1], nil
	}
	return "", &yterrors.InvalidVideoIDError{}
}

// extractCaptionsJSON pulls the captions object out of the watch page by
// anchored text search, after checking the page-level failure markers. The
// page template always terminates the object with `,"videoDetails`, so no
// JSON-aware scanning is needed.
func extractCaptionsJSON(body string, videoID string) (string, error) {
	if strings.Contains(body, captchaMarker) {
		return "", &yterrors.TooManyRequestsError{}
	}
	if !strings.Contains(body, playabilityMarker) {
		return "", &yterrors.VideoUnavailableError{VideoID: videoID}
	}

	parts := strings.Split(body, captionsAnchor)
	if len(parts) <= 1 {
		return "", &yterrors.TranscriptNotAvailableError{VideoID: videoID}
	}

	raw := strings.Split(parts[1], captionsEnd)[0]
	return strings.ReplaceAll(raw, "\n", ""), nil
}

type languageName struct {
	SimpleText string `json:"simpleText"`
}

// captionTrack is one per-track renderer from the captions object. These are
// ephemeral: callers only ever see the chosen track's language code, or the
// enumerated codes on a language miss.
type captionTrack struct {
	BaseURL      string       `json:"baseUrl"`
	Name         languageName `json:"name"`
	LanguageCode string       `json:"languageCode"`
	Kind         string       `json:"kind"`
}

type captionsRenderer struct {
	PlayerCaptionsTracklistRenderer *struct {
		CaptionTracks []captionTrack `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

// selectCaptionTrack parses the captions JSON and picks the track for
// requestedLang. Matching is exact and case-sensitive: en and en-US are
// distinct codes, and the platform's own listing is what the error payload
// reports back.
func selectCaptionTrack(captionsJSON string, requestedLang string, videoID string) (*captionTrack, error) {
	var renderer captionsRenderer
	if err := json.Unmarshal([]byte(captionsJSON), &renderer); err != nil {
		return nil, &yterrors.TranscriptDisabledError{VideoID: videoID}
	}
	if renderer.PlayerCaptionsTracklistRenderer == nil {
		return nil, &yterrors.TranscriptDisabledError{VideoID: videoID}
	}

	tracks := make([]captionTrack, 0, len(renderer.PlayerCaptionsTracklistRenderer.CaptionTracks))
	for _, track := range renderer.PlayerCaptionsTracklistRenderer.CaptionTracks {
		// A track missing any required field is skipped, not fatal.
		if track.LanguageCode == "" || track.BaseURL == "" || track.Name.SimpleText == "" {
			continue
		}
		tracks = append(tracks, track)
	}

	if len(tracks) == 0 {
		return nil, &yterrors.TranscriptNotAvailableError{VideoID: videoID}
	}

	if requestedLang == "" {
		return &tracks[0], nil
	}

	for i := range tracks {
		if tracks[i].LanguageCode == requestedLang {
			return &tracks[i], nil
		}
	}

	availableLangs := make([]string, 0, len(tracks))
	for _, track := range tracks {
		availableLangs = append(availableLangs, track.LanguageCode)
	}

	return nil, &yterrors.TranscriptNotAvailableLanguageError{
		Lang:           requestedLang,
		AvailableLangs: availableLangs,
		VideoID:        videoID,
	}
}

// extractTitle walks the page for the first <title> node. Best effort: an
// unparseable page just means an empty title.
func extractTitle(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil {
				title = n.FirstChild.Data
				return
			}
		}
		for c := n.FirstChild; c != nil && title == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return title
}
