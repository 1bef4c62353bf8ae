package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"trip-planner/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeLLM answers extraction prompts with parseReply and everything else with body.
type fakeLLM struct {
	mu         sync.Mutex
	parseReply string
	parseErr   error
	body       string
	bodyErr    error
	prompts    []string
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	prompt := req.Messages[len(req.Messages)-1].Parts[0].Text

	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if strings.HasPrefix(prompt, "Extract city and days") {
		if f.parseErr != nil {
			return nil, f.parseErr
		}
		return textResponse(f.parseReply), nil
	}
	if f.bodyErr != nil {
		return nil, f.bodyErr
	}
	return textResponse(f.body), nil
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: text}}},
		Usage:   &llmprovider.Usage{},
	}
}

// fakeSearcher returns "<query>@<location>" unless a canned result is set, optionally after a delay.
type fakeSearcher struct {
	mu      sync.Mutex
	results map[string]string
	delays  map[string]time.Duration
	calls   []string
}

func (f *fakeSearcher) Search(ctx context.Context, query, location string) string {
	if d, ok := f.delays[query]; ok {
		time.Sleep(d)
	}

	f.mu.Lock()
	f.calls = append(f.calls, query+"|"+location)
	f.mu.Unlock()

	if r, ok := f.results[query]; ok {
		return r
	}
	return query + "@" + location
}

func newTestUseCase(llm *fakeLLM, searcher *fakeSearcher) (*implUseCase, *mockLogger) {
	l := &mockLogger{}
	return New(l, llm, searcher, Config{DefaultCity: DefaultCity, DefaultDays: DefaultDays, Temperature: 0.7}), l
}
