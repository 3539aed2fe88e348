package core

import (
	"context"
	"net/http"
)

const UserAgent = "leocov-dev/dpwrap"

func GetWithUA(ctx context.Context, url string, contentType string) (resp *http.Response, err error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", contentType)
	return http.DefaultClient.Do(req)
}
