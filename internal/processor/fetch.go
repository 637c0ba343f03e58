// Package processor implements the fetch, parse, transform and serialize
// stages that turn the WFS parking feed into a KML document.
package processor

import (
	"context"
	"io"
	"net/http"

	"github.com/woozymasta/motopark/internal/config"

	"github.com/rs/zerolog/log"
)

// Fetch issues the single GetFeature request and returns the raw body.
// Any transport failure or non-2xx status is a *FetchError.
func Fetch(ctx context.Context, client *http.Client, feed config.Feed) ([]byte, error) {
	url := feed.URL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	for k, v := range feed.Headers {
		req.Header.Set(k, v)
	}

	log.Debug().Str("url", url).Msg("Requesting feature collection")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Feature collection downloaded")

	return body, nil
}
