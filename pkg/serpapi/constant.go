package serpapi

import "time"

const (
	// DefaultBaseURL is the SerpAPI search endpoint
	DefaultBaseURL = "https://serpapi.com/search.json"

	// DefaultEngine is the search engine SerpAPI proxies
	DefaultEngine = "google"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 20 * time.Second
)
