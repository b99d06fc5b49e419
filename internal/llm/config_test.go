package llm

import (
	"context"
	"strings"
	"testing"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestResolve_ExplicitProviderKept(t *testing.T) {
	clearKeyEnv(t)
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	got, ok := cfg.Resolve()
	if !ok || got.Provider != ProviderMock {
		t.Errorf("Resolve() = %q, %v", got.Provider, ok)
	}
}

func TestResolve_ConfiguredKeyWins(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "env-key")
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "file-key"

	got, ok := cfg.Resolve()
	if !ok || got.Provider != ProviderGemini {
		t.Errorf("Resolve() provider = %q, %v; want gemini", got.Provider, ok)
	}
}

func TestResolve_FromStandardEnv(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENROUTER_API_KEY", "or-test")

	got, ok := DefaultConfig().Resolve()
	if !ok {
		t.Fatal("Resolve() found nothing")
	}
	if got.Provider != ProviderOpenAI || got.OpenAI.APIKey != "sk-test" {
		t.Errorf("Resolve() = %q key %q", got.Provider, got.OpenAI.APIKey)
	}
}

func TestResolve_NothingFound(t *testing.T) {
	clearKeyEnv(t)
	if _, ok := DefaultConfig().Resolve(); ok {
		t.Error("Resolve() reported a provider with no keys set")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"mock", Config{Provider: ProviderMock}, ""},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "k"}}, ""},
		{"openai missing key", Config{Provider: ProviderOpenAI}, "PATHCHECK_LLM_OPENAI_API_KEY"},
		{"empty", Config{}, "no LLM provider"},
		{"unknown", Config{Provider: "watson"}, "unknown LLM provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock, Retry: fastRetry()}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Errorf("provider is %T, want *RetryProvider", p)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Provider: ProviderGemini}, nil); err == nil {
		t.Error("expected error for missing gemini key")
	}
}
