package oaicompat

import "time"

// Known providers speaking the OpenAI chat completions protocol.
const (
	ProviderGroq     = "groq"
	ProviderQwen     = "qwen"
	ProviderDeepSeek = "deepseek"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"
)

var defaultBaseURLs = map[string]string{
	ProviderGroq:     "https://api.groq.com/openai/v1",
	ProviderQwen:     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	ProviderDeepSeek: "https://api.deepseek.com/v1",
}

var defaultModels = map[string]string{
	ProviderGroq:     "gemma2-9b-it",
	ProviderQwen:     "qwen-plus",
	ProviderDeepSeek: "deepseek-chat",
}
