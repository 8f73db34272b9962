package log

import (
	"context"
	"testing"
)

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestSplitArgs(t *testing.T) {
	msg, kv := splitArgs([]any{"hello", "k", 1})
	if msg != "hello" || len(kv) != 2 {
		t.Errorf("unexpected split: %q %v", msg, kv)
	}

	msg, kv = splitArgs([]any{42})
	if msg != "" || len(kv) != 1 {
		t.Errorf("unexpected split for non-string head: %q %v", msg, kv)
	}

	msg, kv = splitArgs(nil)
	if msg != "" || kv != nil {
		t.Errorf("unexpected split for nil: %q %v", msg, kv)
	}
}

func TestInit_DoesNotPanic(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "bogus", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		l := Init(cfg)
		l.Info(WithRequestID(context.Background(), "r"), "message", "key", "value")
		l.Debugf(context.Background(), "formatted %d", 1)
	}
}
