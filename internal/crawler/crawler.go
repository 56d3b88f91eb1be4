package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"bestsellers/internal/observability"
)

var defaultHTTPClient = &http.Client{Timeout: 10 * time.Second}

// Fetcher downloads listing pages. A failed fetch returns an empty document
// and the error, and ParseProducts treats the empty document as no products.
type Fetcher struct {
	Client         *http.Client
	UserAgent      string
	AcceptLanguage string
	Cache          *PageCache
}

func (f *Fetcher) httpClient() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return defaultHTTPClient
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if html, ok := f.Cache.Get(ctx, url); ok {
		observability.PagesFetched.WithLabelValues("cached").Inc()
		log.Debug().Str("url", url).Msg("page served from cache")
		return html, nil
	}

	log.Info().Str("url", url).Msg("fetching page")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	if f.AcceptLanguage != "" {
		req.Header.Set("Accept-Language", f.AcceptLanguage)
	}

	resp, err := f.httpClient().Do(req)
	if err != nil {
		observability.PagesFetched.WithLabelValues("error").Inc()
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	observability.PagesFetched.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d for %s", resp.StatusCode, url)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body from %s: %w", url, err)
	}

	html := string(b)
	f.Cache.Set(ctx, url, html)
	return html, nil
}
