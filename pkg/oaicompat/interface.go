package oaicompat

import "context"

// IClient is a chat completions client for one OpenAI-compatible provider.
// Implementations are safe for concurrent use.
type IClient interface {
	// CreateChatCompletion sends the messages and returns the first choice.
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Provider returns the provider name, e.g. "groq".
	Provider() string

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
