package crawler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"bestsellers/internal/model"
	"bestsellers/internal/observability"
)

var errLinkWithoutHref = errors.New("product link has no href")

// blockResult is the outcome of reading one product block.
type blockResult struct {
	product model.RawProduct
	err     error
}

// ParseProducts extracts one RawProduct per product block found in html, in
// document order. Blocks that cannot be read are logged and skipped; fields
// that are simply missing come back as model.NotAvailable.
func ParseProducts(html, baseURL string) []model.RawProduct {
	if strings.TrimSpace(html) == "" {
		return []model.RawProduct{}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Warn().Err(err).Msg("could not parse listing html")
		return []model.RawProduct{}
	}

	blocks := doc.Find(productBlockSelector)
	observability.BlocksFound.Set(float64(blocks.Length()))
	log.Info().Int("blocks", blocks.Length()).Msg("parsing product blocks")

	products := make([]model.RawProduct, 0, blocks.Length())
	blocks.Each(func(i int, block *goquery.Selection) {
		res := parseBlock(block, baseURL)
		if res.err != nil {
			observability.BlocksSkipped.Inc()
			log.Warn().Err(res.err).Int("index", i).Msg("skipping product block")
			return
		}
		products = append(products, res.product)
	})

	observability.ProductsExtracted.Add(float64(len(products)))
	return products
}

func parseBlock(block *goquery.Selection, baseURL string) (res blockResult) {
	defer func() {
		if r := recover(); r != nil {
			res = blockResult{err: fmt.Errorf("unexpected block structure: %v", r)}
		}
	}()

	p := model.RawProduct{
		Rank:        textOf(block, rankRule),
		Price:       textOf(block, priceRule),
		Rating:      textOf(block, ratingRule),
		ReviewCount: textOf(block, reviewCountRule),
		Title:       model.NotAvailable,
		URL:         model.NotAvailable,
	}

	// Title is only kept when the product link is present.
	link := first(block, linkRule)
	if link == nil {
		observability.FieldsMissing.WithLabelValues(linkRule.Name).Inc()
		return blockResult{product: p}
	}
	href, ok := link.Attr("href")
	if !ok {
		return blockResult{err: errLinkWithoutHref}
	}
	p.URL = baseURL + strings.TrimSpace(href)
	p.Title = textOf(block, titleRule)

	return blockResult{product: p}
}

// first returns the match of the first selector in rule that finds anything.
func first(block *goquery.Selection, rule fieldRule) *goquery.Selection {
	for _, sel := range rule.Selectors {
		if s := block.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	return nil
}

func textOf(block *goquery.Selection, rule fieldRule) string {
	s := first(block, rule)
	if s == nil {
		observability.FieldsMissing.WithLabelValues(rule.Name).Inc()
		return model.NotAvailable
	}
	return strings.TrimSpace(s.Text())
}
