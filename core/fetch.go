package core

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
)

// Fetcher retrieves the raw bytes behind a URL
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetchFunc adapts a plain function to the Fetcher interface
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

func (f FetchFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// HTTPFetcher downloads files with the dpwrap User-Agent
type HTTPFetcher struct{}

func (HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return FetchBytes(ctx, url, "application/octet-stream")
}

// FetchBytes performs a GET request and returns the full body. Transport errors and
// non-2xx responses are reported as ErrFetchFailed.
func FetchBytes(ctx context.Context, url string, contentType string) ([]byte, error) {
	log.Debug("fetching", "url", url)

	resp, err := GetWithUA(ctx, url, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, url, err)
	}
	defer resp.Body.Close()

	return ReadResponse(resp, url)
}

// ReadResponse validates the status of resp and reads its body
func ReadResponse(resp *http.Response, url string) ([]byte, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: status %s", ErrFetchFailed, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, url, err)
	}
	return body, nil
}
