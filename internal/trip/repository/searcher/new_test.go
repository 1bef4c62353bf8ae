package searcher

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"trip-planner/config"
	"trip-planner/internal/trip/repository"
)

type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprint(args...))
}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(format, args...))
}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func TestNew_DisabledCases(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.SearchConfig
		wantWarn string
	}{
		{"missing key", config.SearchConfig{Provider: ProviderSerpAPI}, `search.api_key is not set for provider "serpapi"`},
		{"unknown provider", config.SearchConfig{Provider: "bing", APIKey: "k"}, "unknown provider"},
		{"customsearch without cx", config.SearchConfig{Provider: ProviderCustomSearch, APIKey: "k"}, "engine ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &mockLogger{}
			s := New(context.Background(), l, tt.cfg)

			if got := s.Search(context.Background(), "q", "Goa"); got != repository.DisabledSearch {
				t.Errorf("Search = %q, want disabled sentinel", got)
			}
			if len(l.warns) != 1 || !strings.Contains(l.warns[0], tt.wantWarn) {
				t.Errorf("warns = %v, want one containing %q", l.warns, tt.wantWarn)
			}
		})
	}
}

func TestNew_SerpAPI(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"local_results":[{"title":"Baga Beach","link":"https://www.google.com/maps/place/baga"}]}`))
	}))
	defer ts.Close()

	l := &mockLogger{}
	s := New(context.Background(), l, config.SearchConfig{Provider: ProviderSerpAPI, APIKey: "k", BaseURL: ts.URL})

	got := s.Search(context.Background(), "famous tourist attractions", "Goa")
	want := "**Baga Beach** ([See on Maps](https://www.google.com/maps/place/baga))"
	if got != want {
		t.Errorf("Search = %q, want %q", got, want)
	}
	if len(l.warns) != 0 {
		t.Errorf("unexpected warnings: %v", l.warns)
	}
}
