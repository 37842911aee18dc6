package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromWithoutLogger(t *testing.T) {
	if From(context.Background()) == nil {
		t.Error("From returned nil for a bare context")
	}
}

func TestWithFrom(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := With(context.Background(), zap.New(core))
	From(ctx).Info("hello")
	if logs.Len() != 1 {
		t.Fatalf("got %d log entries, want 1", logs.Len())
	}
	if msg := logs.All()[0].Message; msg != "hello" {
		t.Errorf("message = %q, want %q", msg, "hello")
	}
}
