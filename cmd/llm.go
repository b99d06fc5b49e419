package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathcheck/internal/llm"
	"github.com/abhisek/pathcheck/internal/logging"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM provider used by the coach",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which provider and model the coach would use",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		llmCfg, ok := cfg.CoachLLM()
		if !ok {
			if !cfg.Coach.Enabled {
				fmt.Fprintln(out, "Coach:     disabled (coach.enabled=false)")
			} else {
				fmt.Fprintln(out, "Coach:     no provider configured")
				fmt.Fprintln(out, "Set ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY, or llm.provider in pathcheck.yaml.")
			}
			return nil
		}

		model := configuredModel(llmCfg)
		fmt.Fprintf(out, "Coach:     enabled\n")
		fmt.Fprintf(out, "Provider:  %s\n", llmCfg.Provider)
		fmt.Fprintf(out, "Model:     %s\n", model)
		fmt.Fprintf(out, "Timeout:   %s\n", cfg.Coach.Timeout)
		fmt.Fprintf(out, "Retries:   %d attempts\n", llmCfg.Retry.MaxAttempts)
		if c := llm.LookupCost(model); c != nil {
			fmt.Fprintf(out, "Pricing:   $%.2f in / $%.2f out per million tokens\n", c.InputPerMTok, c.OutputPerMTok)
		}
		if err := llmCfg.Validate(); err != nil {
			fmt.Fprintf(out, "Problem:   %v\n", err)
		}
		return nil
	},
}

var pingSchema = &llm.Schema{
	Name:        "ping",
	Description: "Connectivity check",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ok": map[string]any{"type": "boolean"},
		},
		"required":             []any{"ok"},
		"additionalProperties": false,
	},
}

var llmTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a tiny structured request to check the provider works",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		llmCfg, ok := cfg.CoachLLM()
		if !ok {
			return fmt.Errorf("no LLM provider configured")
		}

		logger, err := logging.NewConsole(cmd.ErrOrStderr(), "warn")
		if err != nil {
			return err
		}
		provider, err := llm.NewProvider(cmd.Context(), llmCfg, logger)
		if err != nil {
			return err
		}

		start := time.Now()
		resp, err := provider.Generate(llm.WithPurpose(cmd.Context(), "ping"), llm.Request{
			System:    "Answer with the requested JSON only.",
			Messages:  llm.UserMessage(`Reply with {"ok": true}.`),
			Schema:    pingSchema,
			MaxTokens: 32,
		})
		if err != nil {
			logger.Error("provider check failed", zap.Error(err))
			return err
		}

		var body struct {
			OK bool `json:"ok"`
		}
		if err := json.Unmarshal(resp.Content, &body); err != nil {
			return fmt.Errorf("decode reply: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Model:     %s\n", resp.Model)
		fmt.Fprintf(out, "Reply ok:  %v\n", body.OK)
		fmt.Fprintf(out, "Latency:   %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Fprintf(out, "Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		if c := llm.LookupCost(resp.Model); c != nil {
			fmt.Fprintf(out, "Cost:      $%.6f\n", c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmTestCmd)
}

func configuredModel(c llm.Config) string {
	switch c.Provider {
	case llm.ProviderAnthropic:
		return c.Anthropic.Model
	case llm.ProviderOpenAI:
		return c.OpenAI.Model
	case llm.ProviderGemini:
		return c.Gemini.Model
	case llm.ProviderOpenRouter:
		return c.OpenRouter.Model
	default:
		return c.Provider
	}
}
