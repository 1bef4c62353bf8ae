package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client issues search requests against SerpAPI.
type Client struct {
	apiKey     string
	baseURL    string
	engine     string
	language   string
	country    string
	httpClient *http.Client
}

// New creates a new SerpAPI client
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		engine:     cfg.Engine,
		language:   cfg.Language,
		country:    cfg.Country,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Search runs one query and returns the decoded response.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("engine", c.engine)
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("hl", c.language)
	}
	if c.country != "" {
		params.Set("gl", c.country)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("serpapi: failed to read response: %w", err)
	}

	var out SearchResponse
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && out.Error != "" {
			return nil, fmt.Errorf("serpapi: status %d: %s", resp.StatusCode, out.Error)
		}
		return nil, fmt.Errorf("serpapi: status %d: %s", resp.StatusCode, string(body))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("serpapi: failed to decode response: %w", decodeErr)
	}

	return &out, nil
}
