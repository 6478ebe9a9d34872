package vendors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/aguichard/persosite/config"
	"github.com/aguichard/persosite/log"
)

var (
	searchClient     *GoogleSearchClient
	searchClientOnce sync.Once
)

const googleSearchEndpoint = "https://www.googleapis.com/customsearch/v1"

// GoogleSearchClient wraps the Google Custom Search JSON API
type GoogleSearchClient struct {
	endpoint   string
	apiKey     string
	engineID   string
	maxResults int
	httpClient *http.Client
}

// SearchResult is one item returned by the search API
type SearchResult struct {
	Title   string
	Link    string
	Snippet string
	Source  string
	Date    *string
}

// customSearchResponse mirrors the relevant part of the API payload
type customSearchResponse struct {
	Items []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Snippet     string `json:"snippet"`
		DisplayLink string `json:"displayLink"`
		Pagemap     struct {
			Metatags []map[string]string `json:"metatags"`
		} `json:"pagemap"`
	} `json:"items"`
}

// GetGoogleSearchClient returns the singleton search client, nil when not configured
func GetGoogleSearchClient() *GoogleSearchClient {
	searchClientOnce.Do(func() {
		cfg := config.Get()

		if cfg.SearchAPIKey == "" || cfg.SearchEngineID == "" {
			log.Warn().Msg("GOOGLE_SEARCH_API_KEY not configured, search disabled")
			return
		}

		searchClient = NewGoogleSearchClient(googleSearchEndpoint, cfg.SearchAPIKey, cfg.SearchEngineID, cfg.NewsMaxResults)

		log.Info().Str("engineId", cfg.SearchEngineID).Msg("google search initialized")
	})

	return searchClient
}

// NewGoogleSearchClient creates a search client against the given endpoint
func NewGoogleSearchClient(endpoint, apiKey, engineID string, maxResults int) *GoogleSearchClient {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &GoogleSearchClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		engineID:   engineID,
		maxResults: maxResults,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SearchRecent queries for articles published in the last 24 hours,
// in French or English, capped at the configured result count.
func (g *GoogleSearchClient) SearchRecent(ctx context.Context, query string) ([]SearchResult, error) {
	if g == nil {
		return nil, fmt.Errorf("search client not configured")
	}

	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("cx", g.engineID)
	params.Set("q", query)
	params.Set("num", fmt.Sprintf("%d", g.maxResults))
	params.Set("dateRestrict", "d1")
	params.Set("lr", "lang_fr|lang_en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var parsed customSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	results := make([]SearchResult, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		r := SearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
			Source:  item.DisplayLink,
		}
		// Publication date, when the page exposes it
		for _, tags := range item.Pagemap.Metatags {
			if published, ok := tags["article:published_time"]; ok && published != "" {
				r.Date = &published
				break
			}
		}
		results = append(results, r)
	}

	return results, nil
}
