package analysis

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"bestsellers/internal/model"
)

func ptr(v float64) *float64 { return &v }

func sampleProducts() []model.Product {
	return []model.Product{
		{Rank: 1, Title: "Mouse", Price: ptr(25), Rating: ptr(4.5), ReviewCount: 100},
		{Rank: 2, Title: "Monitor", Price: ptr(350), Rating: ptr(4.1), ReviewCount: 900},
		{Rank: 3, Title: "Cable", Price: nil, Rating: nil, ReviewCount: 100},
		{Rank: 4, Title: "Hub", Price: ptr(0), Rating: ptr(3.9), ReviewCount: 5000},
	}
}

func TestTopByReviews(t *testing.T) {
	products := sampleProducts()
	top := TopByReviews(products, 3)
	if len(top) != 3 {
		t.Fatalf("expected 3, got %d", len(top))
	}
	want := []string{"Hub", "Monitor", "Mouse"}
	for i, p := range top {
		if p.Title != want[i] {
			t.Errorf("top[%d] = %s, want %s", i, p.Title, want[i])
		}
	}
	if products[0].Title != "Mouse" {
		t.Error("input slice must not be reordered")
	}
	if got := TopByReviews(products, 10); len(got) != 4 {
		t.Errorf("n larger than input should return all, got %d", len(got))
	}
}

func TestUnderPrice_SkipsUnknownPrice(t *testing.T) {
	got := UnderPrice(sampleProducts(), 200)
	if len(got) != 2 {
		t.Fatalf("expected Mouse and Hub, got %d", len(got))
	}
	if got[0].Title != "Mouse" || got[1].Title != "Hub" {
		t.Errorf("unexpected selection %v, %v", got[0].Title, got[1].Title)
	}
}

func TestRated(t *testing.T) {
	if got := Rated(sampleProducts()); len(got) != 3 {
		t.Fatalf("expected 3 rated products, got %d", len(got))
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleProducts())
	if s.Count != 4 || s.Priced != 3 || s.Rated != 3 {
		t.Fatalf("counts = %+v", s)
	}
	if s.MinPrice != 0 || s.MaxPrice != 350 {
		t.Errorf("min/max = %v/%v, want 0/350", s.MinPrice, s.MaxPrice)
	}
	if s.MeanPrice != 125 {
		t.Errorf("mean price = %v, want 125", s.MeanPrice)
	}
	if got := Summarize(nil); got.Count != 0 || got.MeanPrice != 0 {
		t.Errorf("empty summary = %+v", got)
	}
}

func TestMarkdownTable_AlignsWideRunes(t *testing.T) {
	lines := MarkdownTable(
		[]string{"Rank", "Title"},
		[][]string{{"1", "ワイヤレスマウス"}, {"2", "Hub"}},
		0,
	)
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "| ---") {
		t.Errorf("separator row = %q", lines[1])
	}
	width := runewidth.StringWidth(lines[0])
	for i, l := range lines {
		if w := runewidth.StringWidth(l); w != width {
			t.Errorf("line %d width %d, want %d: %q", i, w, width, l)
		}
	}
}

func TestMarkdownTable_TruncatesAndEscapes(t *testing.T) {
	lines := MarkdownTable([]string{"Title"}, [][]string{{"a|b very long product title"}}, 10)
	if !strings.Contains(lines[2], `a\|b`) {
		t.Errorf("pipe should be escaped: %q", lines[2])
	}
	if strings.Contains(lines[2], "product") {
		t.Errorf("cell should be truncated: %q", lines[2])
	}
}
