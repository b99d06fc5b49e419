package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/pathcheck/internal/llm"
)

// Service produces narratives with an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

// NewService creates a coach. A nil logger discards logs.
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger.Named("coach")}
}

// Narrate asks the model for a narrative. It blocks until the provider
// answers or cfg.Timeout elapses.
func (s *Service) Narrate(ctx context.Context, in Input) (*Narrative, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "narrative")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(buildUserMessage(in)),
		Schema:      NarrativeSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.logger.Warn("narrative failed", zap.Error(err))
		return nil, fmt.Errorf("narrative generation: %w", err)
	}

	var n Narrative
	if err := json.Unmarshal(resp.Content, &n); err != nil {
		return nil, fmt.Errorf("parse narrative response: %w", err)
	}
	s.logger.Info("narrative ready",
		zap.Int("strengths", len(n.Strengths)),
		zap.Int("gaps", len(n.Gaps)),
		zap.String("model", resp.Model))
	return &n, nil
}

// ModelID reports the model behind the coach.
func (s *Service) ModelID() string { return s.provider.ModelID() }
