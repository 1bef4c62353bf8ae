package log

import (
	"context"
	"testing"
)

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "req-123")
	if got := TraceID(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
	if got := TraceID(context.Background()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}
}

func TestKeyed(t *testing.T) {
	tests := []struct {
		name string
		arg  []any
		want bool
	}{
		{"single message", []any{"hello"}, false},
		{"message with pair", []any{"msg", "provider", "gemini"}, true},
		{"odd pairs", []any{"msg", "a", 1, "b", 2}, true},
		{"non-string key", []any{"msg", 1, 2}, false},
		{"even length", []any{"msg", "a", 1, "b"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyed(tt.arg); got != tt.want {
				t.Errorf("keyed(%v) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "bogus", Mode: ModeDevelopment, Encoding: EncodingConsole})
	ctx := WithTraceID(context.Background(), "abc")
	l.Info(ctx, "planner ready", "location", "Goa")
	l.Infof(ctx, "days=%d", 3)
	l.Warn(ctx, "plain warning")

	NewNop().Errorf(ctx, "discarded %v", "error")
}
