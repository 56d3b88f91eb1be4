package crawler

// Selectors for the best-seller grid. Each field lists its CSS selectors in
// the order they are tried; adding a fallback only needs a new entry here.
const productBlockSelector = "div#gridItemRoot"

type fieldRule struct {
	Name      string
	Selectors []string
}

var (
	rankRule = fieldRule{
		Name:      "rank",
		Selectors: []string{"span.zg-bdg-text"},
	}
	titleRule = fieldRule{
		Name:      "title",
		Selectors: []string{"div._cDEzb_p13n-sc-css-line-clamp-3_g3dy1"},
	}
	linkRule = fieldRule{
		Name:      "url",
		Selectors: []string{"a.a-link-normal.aok-block", "a.a-link-normal"},
	}
	priceRule = fieldRule{
		Name:      "price",
		Selectors: []string{"span._cDEzb_p13n-sc-price_3mJ9Z", "span.p13n-sc-price"},
	}
	ratingRule = fieldRule{
		Name:      "rating",
		Selectors: []string{"span.a-icon-alt"},
	}
	reviewCountRule = fieldRule{
		Name:      "review_count",
		Selectors: []string{"span.a-size-small"},
	}
)
