package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"trip-planner/internal/chat"
	"trip-planner/internal/model"
	"trip-planner/internal/trip"
	"trip-planner/internal/trip/delivery/telegram"
	pkgTelegram "trip-planner/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockTripUseCase struct {
	mu       sync.Mutex
	output   trip.PlanOutput
	err      error
	panicMsg string
	scopes   []model.Scope
}

func (m *mockTripUseCase) PlanTrip(ctx context.Context, sc model.Scope, input trip.PlanInput) (trip.PlanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scopes = append(m.scopes, sc)
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	return m.output, m.err
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type sent struct {
	mu       sync.Mutex
	messages []string
	modes    []string
}

func (s *sent) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.messages...)
}

type testEnv struct {
	engine   *gin.Engine
	uc       *mockTripUseCase
	sessions chat.Store
	sent     *sent
}

func newTestEnv(t *testing.T, rejectMarkdown func(text string) bool) *testEnv {
	return newTestEnvWithSecret(t, rejectMarkdown, "")
}

func newTestEnvWithSecret(t *testing.T, rejectMarkdown func(text string) bool, secret string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &sent{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			w.Write([]byte(`{"ok": true}`))
			return
		}
		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)
		mode, _ := payload["parse_mode"].(string)
		if text, _ := payload["text"].(string); rejectMarkdown != nil && mode != "" && rejectMarkdown(text) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "error_code": 400, "description": "Bad Request: can't parse entities"}`))
			return
		}
		s.mu.Lock()
		if text, ok := payload["text"].(string); ok {
			s.messages = append(s.messages, text)
			s.modes = append(s.modes, mode)
		}
		s.mu.Unlock()
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot, err := pkgTelegram.New(pkgTelegram.Config{Token: "test-token", APIURL: tgServer.URL})
	if err != nil {
		t.Fatalf("pkgTelegram.New: %v", err)
	}

	uc := &mockTripUseCase{output: trip.PlanOutput{Itinerary: "*Day 1*: Baga Beach", Location: "Goa", Days: 1}}
	sessions := chat.NewMemoryStore(10, time.Hour)

	engine := gin.New()
	h := telegram.New(&mockLogger{}, uc, bot, sessions, telegram.Config{SecretToken: secret})
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{engine: engine, uc: uc, sessions: sessions, sent: s}
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	return sendWebhookWithToken(engine, text, "")
}

func sendWebhookWithToken(engine *gin.Engine, text, token string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(pkgTelegram.SecretTokenHeader, token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(s *sent, atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if msgs := s.snapshot(); len(msgs) >= atLeast {
			return msgs
		}
		time.Sleep(20 * time.Millisecond)
	}
	return s.snapshot()
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, nil)

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env := newTestEnv(t, nil)

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1})
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleStart(t *testing.T) {
	env := newTestEnv(t, nil)

	if w := sendWebhook(env.engine, "/start"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, waitForMessages(env.sent, 1, time.Second), "Jolly Guide")
}

func TestHandleHelp(t *testing.T) {
	env := newTestEnv(t, nil)

	sendWebhook(env.engine, "/help")
	assertContains(t, waitForMessages(env.sent, 1, time.Second), "How to use me")
}

func TestHandleReset(t *testing.T) {
	env := newTestEnv(t, nil)
	sendWebhook(env.engine, "Goa for 1 day")
	waitForMessages(env.sent, 2, time.Second)

	sendWebhook(env.engine, "/reset")
	assertContains(t, waitForMessages(env.sent, 3, time.Second), "Chat reset!")

	history, err := env.sessions.Messages("tg:123")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].Content != chat.Greeting {
		t.Errorf("history after reset = %+v, want greeting only", history)
	}
}

func TestHandlePlan_Success(t *testing.T) {
	env := newTestEnv(t, nil)

	sendWebhook(env.engine, "Goa for 1 day")
	msgs := waitForMessages(env.sent, 2, time.Second)
	assertContains(t, msgs, "Bana raha hoon")
	assertContains(t, msgs, "Baga Beach")

	env.uc.mu.Lock()
	scopes := append([]model.Scope(nil), env.uc.scopes...)
	env.uc.mu.Unlock()
	if len(scopes) != 1 {
		t.Fatalf("PlanTrip calls = %d, want 1", len(scopes))
	}
	if scopes[0].UserID != "telegram_456" || scopes[0].Channel != model.ChannelTelegram || scopes[0].SessionID != "tg:123" {
		t.Errorf("scope = %+v", scopes[0])
	}

	// The assistant reply is appended after the send completes; give it a moment.
	deadline := time.Now().Add(time.Second)
	var history []model.Message
	for time.Now().Before(deadline) {
		history, _ = env.sessions.Messages("tg:123")
		if len(history) == 3 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if len(history) != 3 {
		t.Fatalf("history len = %d, want 3", len(history))
	}
	if history[1].Role != model.RoleUser || history[2].Role != model.RoleAssistant {
		t.Errorf("history roles = %s, %s", history[1].Role, history[2].Role)
	}
}

func TestHandlePlan_MarkdownRejectedFallsBackToPlain(t *testing.T) {
	env := newTestEnv(t, func(string) bool { return true })

	sendWebhook(env.engine, "Goa for 1 day")
	assertContains(t, waitForMessages(env.sent, 2, time.Second), "Baga Beach")
}

func TestHandlePlan_TooLong(t *testing.T) {
	env := newTestEnv(t, nil)

	sendWebhook(env.engine, strings.Repeat("a", 501))
	assertContains(t, waitForMessages(env.sent, 1, time.Second),
		"Input is too long! Please limit your message to 500 characters.")

	env.uc.mu.Lock()
	defer env.uc.mu.Unlock()
	if len(env.uc.scopes) != 0 {
		t.Errorf("PlanTrip should not be called for oversized input")
	}
}

func TestHandlePlan_UseCaseError(t *testing.T) {
	env := newTestEnv(t, nil)
	env.uc.err = errors.New("plan trip: boom")

	sendWebhook(env.engine, "Goa for 1 day")
	msgs := waitForMessages(env.sent, 2, time.Second)
	assertContains(t, msgs, "something went wrong")
	for _, m := range msgs {
		if strings.Contains(m, "boom") {
			t.Errorf("internal error leaked to chat: %q", m)
		}
	}
}

func TestHandleWebhook_SecretToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "nope", http.StatusUnauthorized},
		{"match", "s3cret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnvWithSecret(t, nil, "s3cret")
			if w := sendWebhookWithToken(env.engine, "/help", tt.token); w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}

func TestHandlePlan_LongItineraryRejectedChunkNotDuplicated(t *testing.T) {
	first := strings.Repeat("a", pkgTelegram.MaxMessageLength)
	second := "**Day 2** [Baga Beach](https://www.google.com/maps/search/Baga+Beach+Goa" // unbalanced Markdown
	env := newTestEnv(t, func(text string) bool { return strings.Contains(text, "Day 2") })
	env.uc.output.Itinerary = first + second

	sendWebhook(env.engine, "Goa for 2 days")
	waitForMessages(env.sent, 3, time.Second)
	time.Sleep(100 * time.Millisecond)
	msgs := env.sent.snapshot()

	firstCount, secondCount := 0, 0
	for _, m := range msgs {
		switch m {
		case first:
			firstCount++
		case second:
			secondCount++
		}
	}
	if firstCount != 1 || secondCount != 1 {
		t.Errorf("first chunk sent %d times, second %d times; want 1 and 1 (messages: %d)", firstCount, secondCount, len(msgs))
	}

	env.sent.mu.Lock()
	defer env.sent.mu.Unlock()
	for i, m := range env.sent.messages {
		if m == second && env.sent.modes[i] != "" {
			t.Errorf("rejected chunk resent with parse mode %q, want plain text", env.sent.modes[i])
		}
	}
}

func TestHandlePlan_PanicRecovered(t *testing.T) {
	env := newTestEnv(t, nil)
	env.uc.panicMsg = "boom"

	sendWebhook(env.engine, "Goa for 1 day")
	assertContains(t, waitForMessages(env.sent, 2, time.Second), "something went wrong")

	// The handler keeps serving after a panicking turn.
	if w := sendWebhook(env.engine, "/help"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 after recovered panic, got %d", w.Code)
	}
	assertContains(t, waitForMessages(env.sent, 3, time.Second), "How to use me")
}

func TestHandleCommands_GroupChatSuffix(t *testing.T) {
	env := newTestEnv(t, nil)

	sendWebhook(env.engine, "/help@TripPlannerBot")
	assertContains(t, waitForMessages(env.sent, 1, time.Second), "How to use me")

	env.uc.mu.Lock()
	defer env.uc.mu.Unlock()
	if len(env.uc.scopes) != 0 {
		t.Errorf("command with bot suffix was planned as a trip")
	}
}
