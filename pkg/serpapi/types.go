package serpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Config configures the SerpAPI client.
type Config struct {
	APIKey     string
	BaseURL    string
	Engine     string
	Language   string // hl
	Country    string // gl
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("serpapi: API key is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Engine == "" {
		c.Engine = DefaultEngine
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// SearchResponse keeps result entries raw so that malformed entries can be skipped one by one.
type SearchResponse struct {
	LocalResults   []json.RawMessage `json:"local_results"`
	OrganicResults []json.RawMessage `json:"organic_results"`
	Error          string            `json:"error,omitempty"`
}

// Result is the subset of a local or organic result entry the service reads.
type Result struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// DecodeResult decodes one entry. ok is false when the entry is not a JSON object.
func DecodeResult(raw json.RawMessage) (Result, bool) {
	var r Result
	if len(raw) == 0 || raw[0] != '{' {
		return r, false
	}
	if err := json.Unmarshal(raw, &r); err != nil {
		return Result{}, false
	}
	return r, true
}
