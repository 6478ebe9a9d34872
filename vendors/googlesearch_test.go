package vendors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchRecent(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"key":          q.Get("key"),
			"cx":           q.Get("cx"),
			"q":            q.Get("q"),
			"num":          q.Get("num"),
			"dateRestrict": q.Get("dateRestrict"),
			"lr":           q.Get("lr"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"title": "Lancement réussi",
					"link": "https://lemonde.fr/article",
					"snippet": "La fusée a décollé.",
					"displayLink": "lemonde.fr",
					"pagemap": {
						"metatags": [{"article:published_time": "2026-08-29T08:00:00Z"}]
					}
				},
				{
					"title": "Sans date",
					"link": "https://example.com/2",
					"snippet": "...",
					"displayLink": "example.com"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewGoogleSearchClient(server.URL, "test-key", "test-cx", 5)
	results, err := client.SearchRecent(context.Background(), "espace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["key"] != "test-key" || gotQuery["cx"] != "test-cx" {
		t.Errorf("credentials not passed: %v", gotQuery)
	}
	if gotQuery["q"] != "espace" {
		t.Errorf("expected query 'espace', got %q", gotQuery["q"])
	}
	if gotQuery["num"] != "5" {
		t.Errorf("expected num=5, got %q", gotQuery["num"])
	}
	if gotQuery["dateRestrict"] != "d1" {
		t.Errorf("expected dateRestrict=d1, got %q", gotQuery["dateRestrict"])
	}
	if gotQuery["lr"] != "lang_fr|lang_en" {
		t.Errorf("expected lr=lang_fr|lang_en, got %q", gotQuery["lr"])
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	first := results[0]
	if first.Title != "Lancement réussi" || first.Source != "lemonde.fr" {
		t.Errorf("unexpected first result: %+v", first)
	}
	if first.Date == nil || *first.Date != "2026-08-29T08:00:00Z" {
		t.Errorf("expected publication date, got %v", first.Date)
	}
	if results[1].Date != nil {
		t.Errorf("expected no date on second result, got %v", *results[1].Date)
	}
}

func TestSearchRecent_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 429}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGoogleSearchClient(server.URL, "test-key", "test-cx", 5)
	if _, err := client.SearchRecent(context.Background(), "espace"); err == nil {
		t.Error("expected an error for a non-200 response")
	}
}

func TestSearchRecent_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewGoogleSearchClient(server.URL, "test-key", "test-cx", 5)
	results, err := client.SearchRecent(context.Background(), "sujet obscur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearchRecent_NilClient(t *testing.T) {
	var client *GoogleSearchClient
	if _, err := client.SearchRecent(context.Background(), "espace"); err == nil {
		t.Error("expected an error from a nil client")
	}
}
