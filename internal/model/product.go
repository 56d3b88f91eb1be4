package model

import "strconv"

// NotAvailable marks a field the listing did not provide.
const NotAvailable = "N/A"

// Columns is the column order shared by every tabular sink.
var Columns = []string{"Rank", "Title", "Price", "Rating", "Review Count", "URL"}

// RawProduct is one product block as scraped, every field text or NotAvailable.
type RawProduct struct {
	Rank        string
	Title       string
	Price       string
	Rating      string
	ReviewCount string
	URL         string
}

// Unavailable returns a RawProduct with every field set to NotAvailable.
func Unavailable() RawProduct {
	return RawProduct{
		Rank:        NotAvailable,
		Title:       NotAvailable,
		Price:       NotAvailable,
		Rating:      NotAvailable,
		ReviewCount: NotAvailable,
		URL:         NotAvailable,
	}
}

func (p RawProduct) Record() []string {
	return []string{p.Rank, p.Title, p.Price, p.Rating, p.ReviewCount, p.URL}
}

// Product is the typed form of a RawProduct. Price and Rating are nil when
// the source text held no usable number.
type Product struct {
	Rank        int
	Title       string
	Price       *float64
	Rating      *float64
	ReviewCount int
	URL         string
}

// Raw turns the product back into text, nil numbers becoming NotAvailable.
func (p Product) Raw() RawProduct {
	return RawProduct{
		Rank:        strconv.Itoa(p.Rank),
		Title:       p.Title,
		Price:       formatOptional(p.Price),
		Rating:      formatOptional(p.Rating),
		ReviewCount: strconv.Itoa(p.ReviewCount),
		URL:         p.URL,
	}
}

// Record is the CSV row of the product; nil numbers are written as empty cells.
func (p Product) Record() []string {
	rec := p.Raw().Record()
	if p.Price == nil {
		rec[2] = ""
	}
	if p.Rating == nil {
		rec[3] = ""
	}
	return rec
}

func formatOptional(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
