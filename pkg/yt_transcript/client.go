// Package yt_transcript is the public entry point: a client that fetches
// time-aligned caption entries for a YouTube video given its id or URL.
package yt_transcript

import (
	"context"
	"net/http"
	"time"

	"github.com/rudrodip/ytranscript/internal/repository"
	"github.com/rudrodip/ytranscript/internal/service"
	"github.com/rudrodip/ytranscript/pkg/yt_transcript_formatters"
	"github.com/rudrodip/ytranscript/pkg/yt_transcript_models"
)

type Client struct {
	transcriptService service.TranscriptService
	timeout           time.Duration
	formatter         yt_transcript_formatters.Formatter
	httpClient        *http.Client
}

func NewClient(options ...Option) *Client {
	formatter := yt_transcript_formatters.NewJSONFormatter()
	formatter.Configure(yt_transcript_formatters.WithPrettyPrint(true))

	client := &Client{
		timeout:   30 * time.Second,
		formatter: formatter,
	}

	for _, opt := range options {
		opt(client)
	}

	if client.transcriptService == nil {
		fetcher := repository.NewHTMLFetcher(client.httpClient)
		client.transcriptService = service.NewTranscriptService(fetcher)
	}

	return client
}

// GetTranscript fetches the caption entries for the video identified by
// input, honoring config.Lang when set. This is the primary operation; the
// client timeout bounds the whole call.
func (c *Client) GetTranscript(input string, config *yt_transcript_models.TranscriptConfig) ([]yt_transcript_models.CaptionEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	return c.GetTranscriptWithContext(ctx, input, config)
}

// GetTranscriptWithContext is GetTranscript under a caller-supplied context.
func (c *Client) GetTranscriptWithContext(ctx context.Context, input string, config *yt_transcript_models.TranscriptConfig) ([]yt_transcript_models.CaptionEntry, error) {
	transcript, err := c.transcriptService.GetTranscript(ctx, input, config)
	if err != nil {
		return nil, err
	}
	return transcript.Entries, nil
}

// GetFullTranscript returns the entries together with the video title and
// track metadata.
func (c *Client) GetFullTranscript(input string, config *yt_transcript_models.TranscriptConfig) (*yt_transcript_models.Transcript, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	return c.transcriptService.GetTranscript(ctx, input, config)
}

// GetFullTranscriptWithContext is GetFullTranscript under a caller-supplied
// context.
func (c *Client) GetFullTranscriptWithContext(ctx context.Context, input string, config *yt_transcript_models.TranscriptConfig) (*yt_transcript_models.Transcript, error) {
	return c.transcriptService.GetTranscript(ctx, input, config)
}

// GetFormattedTranscript fetches the transcript and renders it with the
// client's configured formatter.
func (c *Client) GetFormattedTranscript(input string, config *yt_transcript_models.TranscriptConfig) (string, error) {
	transcript, err := c.GetFullTranscript(input, config)
	if err != nil {
		return "", err
	}

	return c.formatter.Format(transcript)
}
