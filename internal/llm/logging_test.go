package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingProvider_LogsSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 5},
	})
	p := WithLogging(mock, zap.New(core))

	ctx := WithPurpose(context.Background(), "coach")
	if _, err := p.Generate(ctx, Request{Messages: UserMessage("hi")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterMessage("generate").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["purpose"] != "coach" {
		t.Errorf("purpose = %v, want coach", fields["purpose"])
	}
	if fields["input_tokens"] != int64(10) {
		t.Errorf("input_tokens = %v, want 10", fields["input_tokens"])
	}
}

func TestLoggingProvider_LogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	entries := logs.FilterMessage("generate failed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d failure entries, want 1", len(entries))
	}
	if entries[0].ContextMap()["purpose"] != "unknown" {
		t.Errorf("purpose = %v, want unknown", entries[0].ContextMap()["purpose"])
	}
}

func TestWithLogging_NilLogger(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`1`)}), nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("gpt-4o-mini has no price")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Cost = %v, want 0.75", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Error("unknown model has a price")
	}
}
