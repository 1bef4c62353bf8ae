package oaicompat

import (
	"fmt"
	"net/http"
	"time"
)

// Config configures a client. BaseURL and Model fall back to the provider presets.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("oaicompat: provider is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("oaicompat: %s: API key is required", c.Provider)
	}
	if c.BaseURL == "" {
		base, ok := defaultBaseURLs[c.Provider]
		if !ok {
			return fmt.Errorf("oaicompat: %s: base URL is required for unknown provider", c.Provider)
		}
		c.BaseURL = base
	}
	if c.Model == "" {
		model, ok := defaultModels[c.Provider]
		if !ok {
			return fmt.Errorf("oaicompat: %s: model is required", c.Provider)
		}
		c.Model = model
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Request is a chat completion request.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is one chat message. Role is "system", "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Response carries the first choice of a completion.
type Response struct {
	Message      Message
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type clientImpl struct {
	provider   string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Wire format.

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
