package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/cenkalti/backoff/v4"

	yterrors "github.com/rudrodip/ytranscript/pkg/yt_transcript_errors"
)

// User-Agent pinned to what YouTube expects from a desktop browser; changing
// it changes the page variant we get back.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_4) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/85.0.4183.83 Safari/537.36,gzip(gfe)"

var videoBaseURL = "https://www.youtube.com/watch?v=%s&hl=en"

var (
	consentRegex      = regexp.MustCompile(`action="https://consent\.youtube\.com/s`)
	consentValueRegex = regexp.MustCompile(`name="v" value="(.*?)"`)
)

// HTMLFetcherType is the transport capability the service layer depends on.
type HTMLFetcherType interface {
	Fetch(ctx context.Context, url string, lang string, cookie *http.Cookie) ([]byte, error)
	FetchVideo(ctx context.Context, videoID string, lang string) ([]byte, error)
}

// HTMLFetcher fetches YouTube pages over a shared connection-pooling client.
// Safe for concurrent use.
type HTMLFetcher struct {
	client *http.Client
}

func NewHTMLFetcher(client *http.Client) *HTMLFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTMLFetcher{client: client}
}

// Fetch GETs the url with the pinned User-Agent, an Accept-Language hint when
// lang is non-empty, and the optional cookie. Transient failures are retried
// with capped exponential backoff; exhaustion or a non-OK status surfaces as
// *yterrors.RequestFailedError.
func (f *HTMLFetcher) Fetch(ctx context.Context, url string, lang string, cookie *http.Cookie) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		req.Header.Set("User-Agent", userAgent)
		if lang != "" {
			req.Header.Set("Accept-Language", lang)
		}
		if cookie != nil {
			req.AddCookie(cookie)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("received status code %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(newRetryPolicy(), 2), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, &yterrors.RequestFailedError{URL: url, Err: err}
	}

	return body, nil
}

// FetchVideo fetches the watch page for videoID, transparently answering the
// EU consent interstitial when YouTube serves one.
func (f *HTMLFetcher) FetchVideo(ctx context.Context, videoID string, lang string) ([]byte, error) {
	videoURL := fmt.Sprintf(videoBaseURL, videoID)

	body, err := f.Fetch(ctx, videoURL, lang, nil)
	if err != nil {
		return nil, err
	}

	if consentRegex.Match(body) {
		cookie, err := createConsentCookie(body)
		if err != nil {
			return nil, err
		}
		body, err = f.Fetch(ctx, videoURL, lang, cookie)
		if err != nil {
			return nil, err
		}
	}

	return body, nil
}

// createConsentCookie builds the CONSENT cookie from the interstitial page
// itself, the same value the consent form would post.
func createConsentCookie(body []byte) (*http.Cookie, error) {
	match := consentValueRegex.FindSubmatch(body)
	if len(match) < 2 {
		return nil, fmt.Errorf("failed to find consent value in HTML")
	}

	return &http.Cookie{
		Name:   "CONSENT",
		Value:  "YES+" + string(match[1]),
		Domain: ".youtube.com",
	}, nil
}

func newRetryPolicy() *backoff.ExponentialBackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 4 * time.Second
	return policy
}
