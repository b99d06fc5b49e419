// Package coach asks a language model for a short personalised reading of
// already computed assessment results. It never changes a score.
package coach

import (
	"time"

	"github.com/abhisek/pathcheck/internal/answers"
	"github.com/abhisek/pathcheck/internal/scoring"
)

// Narrative is the coach's commentary on a set of results.
type Narrative struct {
	Summary   string   `json:"summary"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
	NextSteps []string `json:"next_steps"`
}

// Input is what the coach sees.
type Input struct {
	Results scoring.Results
	Answers answers.Sets
}

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   700,
		Temperature: 0.4,
		Timeout:     45 * time.Second,
	}
}
