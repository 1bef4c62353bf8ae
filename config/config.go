package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Trip planner specifics
	Planner  PlannerConfig
	Search   SearchConfig
	Chat     ChatConfig
	Telegram TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// PlannerConfig controls the request pipeline.
type PlannerConfig struct {
	DefaultCity    string  // used when the destination cannot be extracted
	DefaultDays    int     // used together with DefaultCity
	Temperature    float64 // sampling temperature for both LLM calls
	MaxInputLength int     // characters accepted per user message at the delivery edge
}

// SearchConfig configures the place search backend.
type SearchConfig struct {
	Provider string // "serpapi" or "customsearch"
	APIKey   string
	BaseURL  string
	Language string // hl
	Country  string // gl
	EngineID string // cx, customsearch only
}

type ChatConfig struct {
	HistorySize int
	TTL         string
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string // public URL of POST /webhook/telegram
	NgrokAPI    string // local ngrok API used to discover WebhookURL in development
	SecretToken string // checked against X-Telegram-Bot-Api-Secret-Token
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Planner
	cfg.Planner.DefaultCity = viper.GetString("planner.default_city")
	cfg.Planner.DefaultDays = viper.GetInt("planner.default_days")
	cfg.Planner.Temperature = viper.GetFloat64("planner.temperature")
	cfg.Planner.MaxInputLength = viper.GetInt("planner.max_input_length")

	// Search
	cfg.Search.Provider = viper.GetString("search.provider")
	cfg.Search.APIKey = expandEnvVar(viper.GetString("search.api_key"))
	cfg.Search.BaseURL = viper.GetString("search.base_url")
	cfg.Search.Language = viper.GetString("search.language")
	cfg.Search.Country = viper.GetString("search.country")
	cfg.Search.EngineID = expandEnvVar(viper.GetString("search.engine_id"))
	if serpKey := viper.GetString("serpapi_api_key"); serpKey != "" && cfg.Search.APIKey == "" {
		cfg.Search.APIKey = serpKey
	}

	// Chat sessions
	cfg.Chat.HistorySize = viper.GetInt("chat.history_size")
	cfg.Chat.TTL = viper.GetString("chat.ttl")

	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without a config file, fall back to a single Groq provider driven by GROQ_API_KEY.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "groq",
			Enabled:  true,
			Priority: 1,
			APIKey:   viper.GetString("groq_api_key"),
			Model:    "gemma2-9b-it",
			Timeout:  "60s",
		}}
	}

	if err := ValidateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 30)

	viper.SetDefault("planner.default_city", "Bhubaneswar")
	viper.SetDefault("planner.default_days", 3)
	viper.SetDefault("planner.temperature", 0.7)
	viper.SetDefault("planner.max_input_length", 500)

	viper.SetDefault("search.provider", "serpapi")
	viper.SetDefault("search.api_key", "${SERPAPI_API_KEY}")
	viper.SetDefault("search.language", "en")
	viper.SetDefault("search.country", "in")

	viper.SetDefault("chat.history_size", 1000)
	viper.SetDefault("chat.ttl", "24h")

	// LLM defaults: one attempt per provider, no fallback chain unless configured.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "0s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		// Unresolved placeholders count as unset.
		return ""
	}

	return value
}

// ValidateLLMConfig checks that at least one enabled provider can be built.
// A missing model key is fatal for the service.
func ValidateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	usable := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true

		if provider.APIKey != "" {
			usable++
		}
	}

	if usable == 0 {
		return fmt.Errorf("no enabled LLM provider has an API key configured")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
