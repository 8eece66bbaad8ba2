package fixtures

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
)

// MockHTMLFetcher implements repository.HTMLFetcherType for testing
type MockHTMLFetcher struct {
	mock.Mock
}

func (m *MockHTMLFetcher) Fetch(ctx context.Context, url string, lang string, cookie *http.Cookie) ([]byte, error) {
	args := m.Called(ctx, url, lang, cookie)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockHTMLFetcher) FetchVideo(ctx context.Context, videoID string, lang string) ([]byte, error) {
	args := m.Called(ctx, videoID, lang)
	return args.Get(0).([]byte), args.Error(1)
}
