package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func jsonHandler(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}
}

func testServer(t *testing.T, h http.Handler) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 120, "output_tokens": 40},
	}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	var gotBody string
	url := testServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		jsonHandler(http.StatusOK, anthropicMessage(`{"title":"Ready","score":82}`, "end_turn"))(w, r)
	}))

	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-haiku", BaseURL: url})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if p.ModelID() != "claude-haiku-4-5-20251001" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a career coach.",
		Messages:  UserMessage("Summarize."),
		Schema:    narrativeTestSchema(),
		MaxTokens: 300,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.StopReason != StopEnd {
		t.Errorf("StopReason = %q, want %q", resp.StopReason, StopEnd)
	}
	if resp.Usage.TotalTokens != 160 {
		t.Errorf("TotalTokens = %d, want 160", resp.Usage.TotalTokens)
	}
	if !strings.Contains(gotBody, "You are a career coach.") {
		t.Errorf("request body missing system prompt: %s", gotBody)
	}
}

func TestAnthropicProvider_SchemaViolation(t *testing.T) {
	url := testServer(t, jsonHandler(http.StatusOK, anthropicMessage(`{"title":"x"}`, "end_turn")))
	p, _ := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "m", BaseURL: url})

	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("x"), Schema: narrativeTestSchema(), MaxTokens: 10})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected *ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestAnthropicProvider_ErrorStatus(t *testing.T) {
	apiErr := map[string]any{"type": "error", "error": map[string]any{"type": "api_error", "message": "nope"}}
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		url := testServer(t, jsonHandler(tt.status, apiErr))
		p, _ := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "m", BaseURL: url})
		// The SDK retries 429 and 5xx itself; the final error is still mapped.
		_, err := p.Generate(context.Background(), Request{Messages: UserMessage("x"), MaxTokens: 10})
		if !tt.check(err) {
			t.Errorf("status %d: unexpected error type %T (%v)", tt.status, err, err)
		}
	}
}

func openAICompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 30, "completion_tokens": 20, "total_tokens": 50},
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	url := testServer(t, jsonHandler(http.StatusOK, openAICompletion(`{"title":"Ready","score":55}`, "stop")))
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-mini", BaseURL: url + "/v1"})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Errorf("ModelID() = %q, want gpt-4o-mini", p.ModelID())
	}

	resp, err := p.Generate(context.Background(), Request{Messages: UserMessage("x"), Schema: narrativeTestSchema(), MaxTokens: 100})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Usage.TotalTokens != 50 || resp.Model != "gpt-4o-mini" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestOpenAIProvider_TruncatedOutput(t *testing.T) {
	url := testServer(t, jsonHandler(http.StatusOK, openAICompletion(`{"title":"Rea`, "length")))
	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url + "/v1"})

	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("x"), Schema: narrativeTestSchema(), MaxTokens: 5})
	var trunc *ErrMaxTokensExceeded
	if !errors.As(err, &trunc) {
		t.Fatalf("expected *ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	body := openAICompletion("", "stop")
	body["choices"] = []map[string]any{}
	url := testServer(t, jsonHandler(http.StatusOK, body))
	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url + "/v1"})

	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("x")})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected *ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_RateLimited(t *testing.T) {
	url := testServer(t, jsonHandler(http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"message": "slow down", "type": "rate_limit", "code": "rate_limit_exceeded"},
	}))
	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url + "/v1"})

	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("x")})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected *ErrRateLimit, got %T (%v)", err, err)
	}
}

func TestNewOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x/y"}); err == nil {
		t.Error("expected error without API key")
	}
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "google/gemini-2.5-flash"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "google/gemini-2.5-flash" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}
}

func TestGeminiProvider_Generate(t *testing.T) {
	url := testServer(t, jsonHandler(http.StatusOK, map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": `{"title":"Ready","score":70}`}}},
			"finishReason": "STOP",
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 12, "candidatesTokenCount": 8, "totalTokenCount": 20},
	}))
	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "k", Model: "gemini-flash", BaseURL: url})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if p.ModelID() != "gemini-2.5-flash" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}

	resp, err := p.Generate(context.Background(), Request{System: "s", Messages: UserMessage("x"), Schema: narrativeTestSchema(), MaxTokens: 50, Temperature: 0.4})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Usage.TotalTokens != 20 || resp.StopReason != StopEnd {
		t.Errorf("resp = %+v", resp)
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(narrativeTestSchema().Definition)
	if s.Type != "OBJECT" {
		t.Fatalf("Type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("len(Properties) = %d, want 4", len(s.Properties))
	}
	if s.Properties["score"].Type != "INTEGER" {
		t.Errorf("score type = %s", s.Properties["score"].Type)
	}
	if got := s.Properties["tone"].Enum; len(got) != 2 {
		t.Errorf("tone enum = %v", got)
	}
	if s.Properties["tags"].Items.Type != "STRING" {
		t.Errorf("tags items type = %s", s.Properties["tags"].Items.Type)
	}
	if len(s.Required) != 2 {
		t.Errorf("Required = %v", s.Required)
	}
}

func TestStringList(t *testing.T) {
	if got := stringList([]string{"a", "b"}); len(got) != 2 {
		t.Errorf("[]string: %v", got)
	}
	if got := stringList([]any{"a", 1, "b"}); len(got) != 2 {
		t.Errorf("[]any: %v", got)
	}
	if got := stringList(nil); got != nil {
		t.Errorf("nil: %v", got)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name    string
		aliases map[string]string
		want    string
	}{
		{"claude-haiku", anthropicAliases, "claude-haiku-4-5-20251001"},
		{"gemini-pro", geminiAliases, "gemini-2.5-pro"},
		{"gpt-4.1-mini", openaiAliases, "gpt-4.1-mini"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.name, tt.aliases); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
