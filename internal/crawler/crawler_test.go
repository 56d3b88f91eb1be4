package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bestsellers/internal/model"
)

func TestFetch_SendsHeaders(t *testing.T) {
	var gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(listingHTML))
	}))
	defer srv.Close()

	f := &Fetcher{UserAgent: "bestsellers-test", AcceptLanguage: "en-US,en;q=0.9"}
	html, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUA != "bestsellers-test" || gotLang != "en-US,en;q=0.9" {
		t.Fatalf("headers not sent: ua=%q lang=%q", gotUA, gotLang)
	}
	if html != listingHTML {
		t.Fatalf("unexpected body length %d", len(html))
	}
}

func TestFetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("<html>robot check</html>"))
	}))
	defer srv.Close()

	f := &Fetcher{}
	html, err := f.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if html != "" {
		t.Fatalf("expected empty document, got %q", html)
	}
	if got := ParseProducts(html, testBaseURL); len(got) != 0 {
		t.Fatalf("expected no products from failed fetch, got %d", len(got))
	}
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	}))
	defer srv.Close()

	f := &Fetcher{Client: &http.Client{Timeout: 20 * time.Millisecond}}
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestCrawlPages_HandlesEveryPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listingHTML))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	counts := map[string]int{}
	CrawlPages(context.Background(), &Fetcher{}, []string{srv.URL + "/ok", srv.URL + "/missing"}, testBaseURL,
		func(url string, products []model.RawProduct) {
			counts[url] = len(products)
		})

	if counts[srv.URL+"/ok"] != 2 {
		t.Errorf("ok page: got %d products, want 2", counts[srv.URL+"/ok"])
	}
	if n, seen := counts[srv.URL+"/missing"]; !seen || n != 0 {
		t.Errorf("missing page should be handled with 0 products, got seen=%v n=%d", seen, n)
	}
}

func TestPageCache_NilIsDisabled(t *testing.T) {
	var c *PageCache
	if _, ok := c.Get(context.Background(), "http://example.com"); ok {
		t.Fatal("nil cache should never hit")
	}
	c.Set(context.Background(), "http://example.com", "<html></html>")
}
