package llmprovider

import (
	"context"
	"errors"
	"testing"

	"trip-planner/config"
)

func TestInitializeProviders_SortsAndFilters(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g-key", Model: "gemini-2.0-flash"},
			{Name: "groq", Enabled: true, Priority: 1, APIKey: "q-key"},
			{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "d-key"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, &mockLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "groq" || providers[1].Name() != "gemini" {
		t.Errorf("unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}
	if providers[0].Model() != "gemma2-9b-it" {
		t.Errorf("expected groq preset model, got %s", providers[0].Model())
	}
}

func TestInitializeProviders_SkipsBrokenProviders(t *testing.T) {
	logger := &mockLogger{}
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "groq", Enabled: true, Priority: 1},
			{Name: "nope", Enabled: true, Priority: 2, APIKey: "k"},
			{Name: "qwen", Enabled: true, Priority: 3, APIKey: "k"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "qwen" {
		t.Fatalf("expected only qwen, got %d providers", len(providers))
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("expected 2 warnings, got %d", len(logger.warnMessages))
	}
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "groq", Enabled: false, Priority: 1, APIKey: "k"}},
	}
	_, err := InitializeProviders(context.Background(), cfg, &mockLogger{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestNewManagerFromConfig(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers:  []config.ProviderConfig{{Name: "groq", Enabled: true, Priority: 1, APIKey: "k"}},
		RetryDelay: "250ms",
	}

	m, err := NewManagerFromConfig(context.Background(), cfg, &mockLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.config.RetryAttempts != 1 {
		t.Errorf("expected retry attempts to default to 1, got %d", m.config.RetryAttempts)
	}
	if m.config.RetryDelay.Milliseconds() != 250 {
		t.Errorf("unexpected retry delay %v", m.config.RetryDelay)
	}

	cfg.MaxTotalTimeout = "soon"
	if _, err := NewManagerFromConfig(context.Background(), cfg, &mockLogger{}); err == nil {
		t.Error("expected error for invalid duration")
	}
}
