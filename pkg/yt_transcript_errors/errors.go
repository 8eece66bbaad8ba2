// Package yt_transcript_errors defines the closed set of failures a
// transcript fetch can end with. Each kind is its own type carrying the
// context a caller needs to react (video id, requested language, the
// languages the platform actually offers), so callers can errors.As on the
// kind instead of string-matching messages.
package yt_transcript_errors

import (
	"fmt"
	"strings"
)

// InvalidVideoIDError means the input matched no known video id or URL shape.
type InvalidVideoIDError struct{}

func (e *InvalidVideoIDError) Error() string {
	return "impossible to retrieve youtube video ID"
}

// TooManyRequestsError means YouTube served a captcha page instead of the
// video. The caller decides whether to cool down and retry.
type TooManyRequestsError struct{}

func (e *TooManyRequestsError) Error() string {
	return "youtube is receiving too many requests from this IP and now requires solving a captcha to continue"
}

// VideoUnavailableError means the video is removed, private or otherwise gone.
type VideoUnavailableError struct {
	VideoID string
}

func (e *VideoUnavailableError) Error() string {
	return fmt.Sprintf("the video is no longer available (%s)", e.VideoID)
}

// TranscriptDisabledError means the page loaded but carries no caption
// renderer for this video.
type TranscriptDisabledError struct {
	VideoID string
}

func (e *TranscriptDisabledError) Error() string {
	return fmt.Sprintf("transcript is disabled on this video (%s)", e.VideoID)
}

// TranscriptNotAvailableError covers the coarse "no transcript can be had"
// outcomes: no caption tracks listed, or a page shape we do not recognize.
type TranscriptNotAvailableError struct {
	VideoID string
}

func (e *TranscriptNotAvailableError) Error() string {
	return fmt.Sprintf("no transcripts are available for this video (%s)", e.VideoID)
}

// TranscriptNotAvailableLanguageError means the requested language is not
// among the video's caption tracks. AvailableLangs enumerates every language
// code the platform listed, in document order.
type TranscriptNotAvailableLanguageError struct {
	Lang           string
	AvailableLangs []string
	VideoID        string
}

func (e *TranscriptNotAvailableLanguageError) Error() string {
	return fmt.Sprintf("no transcripts are available in %s for this video (%s). Available languages: [%s]",
		e.Lang, e.VideoID, strings.Join(e.AvailableLangs, ", "))
}

// RequestFailedError is the transport-level failure kind: DNS errors,
// connection resets, timeouts, non-2xx statuses. It is distinct from the
// platform-semantic kinds above and fatal for the call.
type RequestFailedError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}

func (e *RequestFailedError) Unwrap() error {
	return e.Err
}
