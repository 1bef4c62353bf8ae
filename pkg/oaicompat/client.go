package oaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		provider:   cfg.Provider,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

func (c *clientImpl) Provider() string {
	return c.provider
}

func (c *clientImpl) Model() string {
	return c.model
}

// CreateChatCompletion posts to {baseURL}/chat/completions.
func (c *clientImpl) CreateChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal request: %w", c.provider, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", c.provider, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: API call failed: %w", c.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr errorBody
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%s: API error %d: %s", c.provider, resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%s: API error %d: %s", c.provider, resp.StatusCode, string(raw))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", c.provider, err)
	}

	return c.transformResponse(&out), nil
}

func (c *clientImpl) transformRequest(req *Request) *chatRequest {
	out := &chatRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, len(req.Messages)),
	}
	for i, m := range req.Messages {
		out.Messages[i] = chatMessage{Role: m.Role, Content: m.Content}
	}
	return out
}

func (c *clientImpl) transformResponse(resp *chatResponse) *Response {
	out := &Response{
		Model: resp.Model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	if out.Model == "" {
		out.Model = c.model
	}
	if len(resp.Choices) == 0 {
		out.Message = Message{Role: "assistant"}
		return out
	}

	choice := resp.Choices[0]
	out.Message = Message{Role: choice.Message.Role, Content: choice.Message.Content}
	out.FinishReason = choice.FinishReason
	return out
}
