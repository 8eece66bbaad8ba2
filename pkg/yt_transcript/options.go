package yt_transcript

import (
	"net/http"
	"time"

	"github.com/rudrodip/ytranscript/internal/repository"
	"github.com/rudrodip/ytranscript/internal/service"
	"github.com/rudrodip/ytranscript/pkg/yt_transcript_formatters"
)

type Option func(*Client)

// WithHTTPClient sets the http.Client the fetcher pools connections on.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCustomFetcher swaps the page fetcher, mainly for tests.
func WithCustomFetcher(fetcher repository.HTMLFetcherType) Option {
	return func(c *Client) {
		c.transcriptService = service.NewTranscriptService(fetcher)
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithFormatter(formatter yt_transcript_formatters.Formatter) Option {
	return func(c *Client) {
		c.formatter = formatter
	}
}
