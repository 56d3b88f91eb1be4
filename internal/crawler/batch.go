package crawler

import (
	"context"

	"github.com/rs/zerolog/log"

	"bestsellers/internal/model"
)

// CrawlPages fetches and parses each listing page in turn, handing the
// products of every page to handler. A page that fails to load still reaches
// handler, with no products.
func CrawlPages(ctx context.Context, f *Fetcher, urls []string, baseURL string, handler func(url string, products []model.RawProduct)) {
	for _, url := range urls {
		if ctx.Err() != nil {
			return
		}
		html, err := f.Fetch(ctx, url)
		if err != nil {
			log.Error().Err(err).Str("url", url).Msg("page fetch failed")
		}
		handler(url, ParseProducts(html, baseURL))
	}
}
