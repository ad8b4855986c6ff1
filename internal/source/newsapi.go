package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sofiya-medyamin/newsmood/internal/article"
)

// DefaultEndpoint is the NewsAPI everything-search endpoint.
const DefaultEndpoint = "https://newsapi.org/v2/everything"

// NewsAPIClient fetches English-language articles from the NewsAPI search
// endpoint. One synchronous request per fetch; no pagination, no retry.
type NewsAPIClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewNewsAPIClient(endpoint, apiKey string) *NewsAPIClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &NewsAPIClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

type searchResponse struct {
	Status   string        `json:"status"`
	Articles []article.Raw `json:"articles"`
}

func (c *NewsAPIClient) Fetch(ctx context.Context, query string, limit int) ([]article.Raw, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("pageSize", fmt.Sprintf("%d", ClampLimit(limit)))
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch news articles: status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	// A 200 with a missing articles field is still a valid empty result.
	return sr.Articles, nil
}
